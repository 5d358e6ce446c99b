package queries

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentLogQueryHandler reads assignment run records from storage.
type AssignmentLogQueryHandler struct {
	db *gorm.DB
}

// NewAssignmentLogQueryHandler creates a handler for assignment log queries.
func NewAssignmentLogQueryHandler(db *gorm.DB) AssignmentLogQueryHandler {
	return AssignmentLogQueryHandler{db: db}
}

// Handle returns the most recent runs, newest first.
func (h AssignmentLogQueryHandler) Handle(
	ctx context.Context,
	query AssignmentLogQuery,
) ([]AssignmentLogRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, filter_status, filter_zip, filter_city,
		       total, assigned, dry_run, notes, started_at, ended_at
		FROM assignment_batches
		ORDER BY started_at DESC, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := make([]AssignmentLogRow, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			row          AssignmentLogRow
			filterStatus string
		)

		if err = rows.Scan(
			&id, &filterStatus, &row.FilterZip, &row.FilterCity,
			&row.Total, &row.Assigned, &row.DryRun, &row.Notes,
			&row.StartedAt, &row.EndedAt,
		); err != nil {
			return nil, err
		}

		row.BatchID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		row.FilterStatus = parcel.Status(filterStatus)
		row.StartedAt = row.StartedAt.UTC()
		row.EndedAt = row.EndedAt.UTC()

		log = append(log, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return log, nil
}
