package queries

import (
	"context"
	"database/sql"

	"lastmile/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductivityReportQueryHandler aggregates delivery metrics per driver. A
// package belongs to the window when it was created inside it; counters read
// the package rows directly, and every driver appears even with an empty
// window. Ratios and the productive-hours window are derived in Go so zero
// denominators are handled in exactly one place.
type ProductivityReportQueryHandler struct {
	db *gorm.DB
}

// NewProductivityReportQueryHandler creates a handler for productivity reports.
// Requires a GORM database connection for query execution.
func NewProductivityReportQueryHandler(db *gorm.DB) ProductivityReportQueryHandler {
	return ProductivityReportQueryHandler{db: db}
}

// Handle executes the report. Rows are ordered by driver name; a driver with
// no packages in the window yields a row of zero counters.
func (h ProductivityReportQueryHandler) Handle(
	ctx context.Context,
	query ProductivityReportQuery,
) ([]ProductivityReportRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			d.id,
			d.name,
			COUNT(p.id),
			COUNT(p.id) FILTER (WHERE p.status = 'delivered'),
			COUNT(p.id) FILTER (WHERE p.status = 'failed_attempt'),
			COUNT(p.id) FILTER (WHERE p.status = 'out_for_delivery'),
			COALESCE(SUM(p.attempt_count), 0),
			MIN(p.out_for_delivery_at),
			MAX(p.last_event_at),
			MAX(p.delivered_at)
		FROM drivers d
		LEFT JOIN packages p
			ON p.assigned_driver_id = d.id
			AND p.created_at BETWEEN ? AND ?
	`
	args := []any{query.DateFrom(), query.DateTo()}

	if query.WarehouseID() != nil {
		sqlText += " AND p.warehouse_id = ?"
		args = append(args, query.WarehouseID().Bytes())
	}
	if query.DriverID() != nil {
		sqlText += " WHERE d.id = ?"
		args = append(args, query.DriverID().Bytes())
	}

	sqlText += `
		GROUP BY d.id, d.name
		ORDER BY d.name
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]ProductivityReportRow, 0)

	for rows.Next() {
		var (
			id                                 uuid.UUID
			row                                ProductivityReportRow
			firstOFD, lastEvent, lastDelivered sql.NullTime
		)

		if err = rows.Scan(
			&id, &row.DriverName,
			&row.Total, &row.Delivered, &row.Failed, &row.OutForNow,
			&row.Attempts,
			&firstOFD, &lastEvent, &lastDelivered,
		); err != nil {
			return nil, err
		}

		row.DriverID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if firstOFD.Valid {
			t := firstOFD.Time.UTC()
			row.FirstOFDAt = &t
		}
		if lastEvent.Valid {
			t := lastEvent.Time.UTC()
			row.LastEventAt = &t
		}
		if lastDelivered.Valid {
			t := lastDelivered.Time.UTC()
			row.LastDelivered = &t
		}

		deriveMetrics(&row)
		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

// deriveMetrics computes the ratio metrics from the raw counters. Every
// division is guarded: an empty window yields zeroes, never NaN. Productive
// hours run from the first out-for-delivery mark to the later of the last
// delivery and the last recorded event.
func deriveMetrics(row *ProductivityReportRow) {
	if row.Total > 0 {
		row.AvgAttempts = float64(row.Attempts) / float64(row.Total)
		row.SuccessRate = float64(row.Delivered) / float64(row.Total)
	}

	if row.FirstOFDAt == nil {
		return
	}

	end := row.LastEventAt
	if row.LastDelivered != nil && (end == nil || row.LastDelivered.After(*end)) {
		end = row.LastDelivered
	}
	if end == nil {
		return
	}

	hours := end.Sub(*row.FirstOFDAt).Hours()
	if hours <= 0 {
		return
	}

	row.ProductiveHours = hours
	row.DeliveredPerHour = float64(row.Delivered) / hours
}
