package queries

import (
	"context"
	"database/sql"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageHistoryQueryHandler reads the event timeline of a package directly
// from the ledger table, joined to drivers for display names.
type PackageHistoryQueryHandler struct {
	db *gorm.DB
}

// NewPackageHistoryQueryHandler creates a handler for package timeline queries.
func NewPackageHistoryQueryHandler(db *gorm.DB) PackageHistoryQueryHandler {
	return PackageHistoryQueryHandler{db: db}
}

// Handle returns the timeline newest first. An unknown package yields
// ErrObjectNotFound rather than an empty timeline so callers can distinguish
// "no such package" from "no events yet".
func (h PackageHistoryQueryHandler) Handle(
	ctx context.Context,
	query PackageHistoryQuery,
) ([]PackageHistoryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM packages WHERE id = ?", query.PackageID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("package_id", query.PackageID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id, e.event_type, e.status_from, e.status_to, e.at_ts,
			e.driver_id, COALESCE(d.name, ''), e.lat, e.lon, e.notes
		FROM package_events e
		LEFT JOIN drivers d ON d.id = e.driver_id
		WHERE e.package_id = ?
		ORDER BY e.at_ts DESC, e.id DESC
	`, query.PackageID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]PackageHistoryRow, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			row        PackageHistoryRow
			driverID   uuid.NullUUID
			lat, lon   sql.NullFloat64
			statusFrom sql.NullString
		)

		if err = rows.Scan(
			&id, &row.EventType, &statusFrom, &row.StatusTo, &row.At,
			&driverID, &row.DriverName, &lat, &lon, &row.Notes,
		); err != nil {
			return nil, err
		}

		row.EventID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		row.At = row.At.UTC()

		if statusFrom.Valid {
			row.StatusFrom = parcel.Status(statusFrom.String)
		}

		if driverID.Valid {
			did, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.DriverID = &did
		}

		if lat.Valid && lon.Valid {
			point, geoErr := kernel.NewGeoPoint(lat.Float64, lon.Float64)
			if geoErr != nil {
				return nil, geoErr
			}
			row.Location = &point
		}

		history = append(history, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
