package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAssignmentLogQueryIsNotConstructed = errors.New(
	"AssignmentLogQuery must be created via NewAssignmentLogQuery constructor",
)

const defaultAssignmentLogLimit = 50

// AssignmentLogQuery lists recent assignment runs, newest first, so operators
// can audit what each run did or would have done.
type AssignmentLogQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewAssignmentLogQuery creates an assignment log query. A non-positive limit
// falls back to the default page size.
func NewAssignmentLogQuery(limit int) (AssignmentLogQuery, error) {
	if limit <= 0 {
		limit = defaultAssignmentLogLimit
	}
	if limit > 1000 {
		return AssignmentLogQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 1000)
	}

	return AssignmentLogQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AssignmentLogQuery) Validate() error {
	return q.guard.Validate(ErrAssignmentLogQueryIsNotConstructed)
}

// Limit returns the maximum number of runs to list.
func (q AssignmentLogQuery) Limit() int {
	return q.limit
}

// AssignmentLogRow is one assignment run.
type AssignmentLogRow struct {
	BatchID      kernel.UUID
	FilterStatus parcel.Status
	FilterZip    string
	FilterCity   string
	Total        int
	Assigned     int
	DryRun       bool
	Notes        string
	StartedAt    time.Time
	EndedAt      time.Time
}
