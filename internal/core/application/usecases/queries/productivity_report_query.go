package queries

import (
	"errors"
	"fmt"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrProductivityReportQueryIsNotConstructed = errors.New(
	"ProductivityReportQuery must be created via NewProductivityReportQuery constructor",
)

// dateOnlyLayout accepts calendar dates without a time component.
const dateOnlyLayout = "2006-01-02"

// ProductivityReportQuery computes per-driver delivery metrics for a time
// window. Bounds accept a date (2006-01-02) or an RFC 3339 timestamp; both
// default to the current day, and a date-only end bound means end of that
// day. Optional driver and warehouse filters narrow the report.
//
// Example:
//
//	query, err := NewProductivityReportQuery("2025-08-01", "2025-08-31", nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid report window: %w", err)
//	}
//	rows, err := handler.Handle(ctx, query)
type ProductivityReportQuery struct {
	dateFrom    time.Time
	dateTo      time.Time
	driverID    *kernel.UUID
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewProductivityReportQuery creates a productivity report query, parsing the
// window bounds. Empty bounds default to today.
func NewProductivityReportQuery(
	dateFrom string,
	dateTo string,
	driverID *kernel.UUID,
	warehouseID *kernel.UUID,
) (ProductivityReportQuery, error) {
	from, err := parseWindowBound(dateFrom, false)
	if err != nil {
		return ProductivityReportQuery{}, err
	}
	to, err := parseWindowBound(dateTo, true)
	if err != nil {
		return ProductivityReportQuery{}, err
	}

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return ProductivityReportQuery{}, err
		}
	}
	if warehouseID != nil {
		if err = warehouseID.Validate(); err != nil {
			return ProductivityReportQuery{}, err
		}
	}

	return ProductivityReportQuery{
		dateFrom:    from,
		dateTo:      to,
		driverID:    driverID,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ProductivityReportQuery) Validate() error {
	return q.guard.Validate(ErrProductivityReportQueryIsNotConstructed)
}

// DateFrom returns the inclusive window start.
func (q ProductivityReportQuery) DateFrom() time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive window end.
func (q ProductivityReportQuery) DateTo() time.Time {
	return q.dateTo
}

// DriverID returns the driver filter, nil for all drivers.
func (q ProductivityReportQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// WarehouseID returns the warehouse filter, nil for all warehouses.
func (q ProductivityReportQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// parseWindowBound turns a report bound into a concrete timestamp. An empty
// bound defaults to the current day; a date-only bound means start of day,
// or end of day for the upper bound.
func parseWindowBound(value string, isEnd bool) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if isEnd {
			return endOfDay(day), nil
		}
		return day, nil
	}

	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		if isEnd {
			return endOfDay(t), nil
		}
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"date",
		fmt.Errorf("cannot parse %q as a date or RFC 3339 timestamp", value),
	)
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Microsecond)
}

// ProductivityReportRow is one driver's metrics for the requested window.
// Counters come from the driver's packages created in the window; the derived
// ratios are computed in Go with zero-denominator guards.
type ProductivityReportRow struct {
	DriverID   kernel.UUID
	DriverName string

	Total         int // packages created in the window and assigned to the driver
	Delivered     int
	Failed        int
	OutForNow     int // window packages still out for delivery
	Attempts      int // total recorded attempts across the window packages
	AvgAttempts   float64
	SuccessRate   float64
	FirstOFDAt    *time.Time
	LastEventAt   *time.Time
	LastDelivered *time.Time

	ProductiveHours  float64
	DeliveredPerHour float64
}
