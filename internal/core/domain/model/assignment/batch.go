package assignment

import (
	"errors"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"
)

// ErrBatchIsNotConstructed is returned when a Batch instance was not created
// through NewBatch or RestoreBatch.
var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch")

// Filter narrows which unassigned packages an assignment run considers.
// Zero-value fields are wildcards.
type Filter struct {
	status parcel.Status
	zip    string
	city   string

	isConstructed bool
}

// NewFilter creates a package filter for an assignment run. All fields are
// optional; an empty status means any non-terminal unassigned status.
func NewFilter(status parcel.Status, zip, city string) (Filter, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return Filter{}, err
		}
	}
	return Filter{
		status:        status,
		zip:           strings.TrimSpace(zip),
		city:          strings.TrimSpace(city),
		isConstructed: true,
	}, nil
}

// Status returns the status restriction, empty for any.
func (f Filter) Status() parcel.Status { return f.status }

// Zip returns the ZIP restriction, empty for any.
func (f Filter) Zip() string { return f.zip }

// City returns the city restriction, empty for any.
func (f Filter) City() string { return f.city }

// IsEmpty reports whether the filter restricts nothing.
func (f Filter) IsEmpty() bool {
	return f.status == "" && f.zip == "" && f.city == ""
}

// Batch is the audit record of one rule-driven assignment run: when it ran,
// what it filtered on, and how many packages it considered and assigned.
// A batch row is written for every run, including dry runs, so operators can
// reconstruct what each run did or would have done.
type Batch struct {
	id       kernel.UUID
	filter   Filter
	total    int
	assigned int
	dryRun   bool
	notes    string

	startedAt time.Time
	endedAt   time.Time

	isConstructed bool
}

// NewBatch records a completed assignment run. total is the number of
// candidate packages the run considered; assigned is how many the rules
// claimed (would have claimed, for a dry run).
func NewBatch(
	id kernel.UUID,
	filter Filter,
	total int,
	assigned int,
	dryRun bool,
	notes string,
	startedAt time.Time,
	endedAt time.Time,
) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, errs.NewValueIsOutOfRangeError("total", total, 0, "unbounded")
	}
	if assigned < 0 || assigned > total {
		return nil, errs.NewValueIsOutOfRangeError("assigned", assigned, 0, total)
	}
	if endedAt.Before(startedAt) {
		return nil, errs.NewValueIsInvalidError("ended_at")
	}

	return &Batch{
		id:            id,
		filter:        filter,
		total:         total,
		assigned:      assigned,
		dryRun:        dryRun,
		notes:         notes,
		startedAt:     startedAt.UTC(),
		endedAt:       endedAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreBatch reconstructs a batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	filter Filter,
	total int,
	assigned int,
	dryRun bool,
	notes string,
	startedAt time.Time,
	endedAt time.Time,
) (*Batch, error) {
	return NewBatch(id, filter, total, assigned, dryRun, notes, startedAt, endedAt)
}

// Validate ensures the Batch instance was properly constructed.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// Filter returns the candidate filter the run used.
func (b *Batch) Filter() Filter {
	return b.filter
}

// Total returns the number of candidate packages the run considered.
func (b *Batch) Total() int {
	return b.total
}

// Assigned returns the number of packages the rules claimed.
func (b *Batch) Assigned() int {
	return b.assigned
}

// DryRun reports whether the run skipped the actual writes.
func (b *Batch) DryRun() bool {
	return b.dryRun
}

// Notes returns free-form run notes, possibly empty.
func (b *Batch) Notes() string {
	return b.notes
}

// StartedAt returns when the run began.
func (b *Batch) StartedAt() time.Time {
	return b.startedAt
}

// EndedAt returns when the run finished.
func (b *Batch) EndedAt() time.Time {
	return b.endedAt
}
