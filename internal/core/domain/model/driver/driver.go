package driver

import (
	"errors"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Status describes a driver's availability for work.
type Status string

const (
	// StatusActive means the driver can be assigned packages.
	StatusActive Status = "active"
	// StatusInactive means the driver is off duty and excluded from assignment.
	StatusInactive Status = "inactive"
)

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// Driver is a courier in the fleet directory. Packages and assignment rules
// reference drivers by ID; a driver referenced by any rule cannot be deleted.
// The last reported position is a best-effort cache updated from the field,
// not a track log.
type Driver struct {
	id            kernel.UUID
	name          string
	licenseNumber string
	status        Status

	lastPosition *kernel.GeoPoint
	lastSeenAt   *time.Time

	createdAt time.Time

	isConstructed bool
}

// NewDriver registers an active driver. Name is required; the license number
// is optional but recommended for dispatch audits.
func NewDriver(id kernel.UUID, name, licenseNumber string, createdAt time.Time) (*Driver, error) {
	return RestoreDriver(id, name, licenseNumber, StatusActive, nil, nil, createdAt)
}

// RestoreDriver reconstructs a driver from persistence with its full state.
func RestoreDriver(
	id kernel.UUID,
	name string,
	licenseNumber string,
	status Status,
	lastPosition *kernel.GeoPoint,
	lastSeenAt *time.Time,
	createdAt time.Time,
) (*Driver, error) {
	name = strings.TrimSpace(name)

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if lastPosition != nil {
		if err := lastPosition.Validate(); err != nil {
			return nil, err
		}
	}

	return &Driver{
		id:            id,
		name:          name,
		licenseNumber: strings.TrimSpace(licenseNumber),
		status:        status,
		lastPosition:  lastPosition,
		lastSeenAt:    lastSeenAt,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseNumber returns the driver's license number, possibly empty.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// IsActive reports whether the driver can receive assignments.
func (d *Driver) IsActive() bool {
	return d.status == StatusActive
}

// LastPosition returns the last reported position, nil when never reported.
func (d *Driver) LastPosition() *kernel.GeoPoint {
	return d.lastPosition
}

// LastSeenAt returns when the position was last reported.
func (d *Driver) LastSeenAt() *time.Time {
	return d.lastSeenAt
}

// CreatedAt returns when the driver was registered.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// Activate puts the driver back on duty.
func (d *Driver) Activate() {
	d.status = StatusActive
}

// Deactivate takes the driver off duty. Existing assignments are untouched.
func (d *Driver) Deactivate() {
	d.status = StatusInactive
}

// ReportPosition updates the cached field position.
func (d *Driver) ReportPosition(position kernel.GeoPoint, at time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}

	at = at.UTC()
	d.lastPosition = &position
	d.lastSeenAt = &at
	return nil
}
