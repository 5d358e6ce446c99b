package parcel

import (
	"errors"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage. This ensures all packages are
// properly validated.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

// Package represents a tracked parcel moving through the last-mile pipeline.
// It is the aggregate root of the package ledger and owns the status field;
// every status change must pass the finite-state machine in Status.
//
// Package maintains these invariants:
//   - Tracking number is non-empty and unique system-wide (enforced by storage)
//   - Status is always one of the defined enum values
//   - attemptCount is monotonic and equals the number of recorded delivery attempts
//   - Terminal statuses (delivered, returned, cancelled) accept no further transitions
//
// The struct uses private fields; mutations go through validated methods so
// the invariants cannot be bypassed.
type Package struct {
	id             kernel.UUID
	trackingNumber string
	status         Status
	priority       int

	recipientName string
	address       kernel.Address
	destination   *kernel.GeoPoint
	warehouseID   *kernel.UUID

	assignedDriverID *kernel.UUID
	assignedAt       *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time

	attemptCount int
	lastEventAt  *time.Time
	createdAt    time.Time

	isConstructed bool
}

// NewPackage creates a package at warehouse intake. An empty status defaults
// to received; any other value must be one of the defined enum values. The
// package starts with zero attempts and no driver assigned.
//
// Returns a validation error when the ID, tracking number, address or status
// is invalid, or when priority is negative.
func NewPackage(
	id kernel.UUID,
	trackingNumber string,
	recipientName string,
	address kernel.Address,
	priority int,
	destination *kernel.GeoPoint,
	warehouseID *kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Package, error) {
	p := &Package{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setRecipientName(recipientName),
		p.setAddress(address),
		p.setPriority(priority),
		p.setDestination(destination),
		p.setWarehouseID(warehouseID),
		p.setInitialStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence with its full state.
// Used only by repository implementations; the same field validations apply,
// but any valid status and timestamps are accepted as-is.
func RestorePackage(
	id kernel.UUID,
	trackingNumber string,
	status Status,
	priority int,
	recipientName string,
	address kernel.Address,
	destination *kernel.GeoPoint,
	warehouseID *kernel.UUID,
	assignedDriverID *kernel.UUID,
	assignedAt *time.Time,
	outForDeliveryAt *time.Time,
	deliveredAt *time.Time,
	attemptCount int,
	lastEventAt *time.Time,
	createdAt time.Time,
) (*Package, error) {
	p, err := NewPackage(id, trackingNumber, recipientName, address, priority,
		destination, warehouseID, status, createdAt)
	if err != nil {
		return nil, err
	}

	if attemptCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempt_count", attemptCount, 0, "unbounded")
	}

	p.assignedDriverID = assignedDriverID
	p.assignedAt = assignedAt
	p.outForDeliveryAt = outForDeliveryAt
	p.deliveredAt = deliveredAt
	p.attemptCount = attemptCount
	p.lastEventAt = lastEventAt
	return p, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the carrier tracking number.
func (p *Package) TrackingNumber() string {
	return p.trackingNumber
}

// Status returns the current lifecycle status.
func (p *Package) Status() Status {
	return p.status
}

// Priority returns the urgency level; higher means more urgent.
func (p *Package) Priority() int {
	return p.priority
}

// RecipientName returns the addressee's display name.
func (p *Package) RecipientName() string {
	return p.recipientName
}

// Address returns the delivery destination address.
func (p *Package) Address() kernel.Address {
	return p.address
}

// Destination returns the destination coordinates, nil when not geocoded.
func (p *Package) Destination() *kernel.GeoPoint {
	return p.destination
}

// WarehouseID returns the originating warehouse reference, nil when unknown.
func (p *Package) WarehouseID() *kernel.UUID {
	return p.warehouseID
}

// AssignedDriverID returns the assigned driver's ID, nil when unassigned.
func (p *Package) AssignedDriverID() *kernel.UUID {
	return p.assignedDriverID
}

// AssignedAt returns when the current driver assignment was made.
func (p *Package) AssignedAt() *time.Time {
	return p.assignedAt
}

// OutForDeliveryAt returns when the package last went out for delivery.
func (p *Package) OutForDeliveryAt() *time.Time {
	return p.outForDeliveryAt
}

// DeliveredAt returns when the package was delivered, nil until then.
func (p *Package) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// AttemptCount returns the number of recorded delivery attempts.
func (p *Package) AttemptCount() int {
	return p.attemptCount
}

// LastEventAt returns the timestamp of the most recent ledger event.
func (p *Package) LastEventAt() *time.Time {
	return p.lastEventAt
}

// CreatedAt returns when the package entered the system.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// IsAssigned reports whether a driver currently holds the package.
func (p *Package) IsAssigned() bool {
	return p.assignedDriverID != nil
}

// IsAssignedTo reports whether the package is assigned to the given driver.
func (p *Package) IsAssignedTo(driverID kernel.UUID) bool {
	return p.assignedDriverID != nil && p.assignedDriverID.IsEqual(driverID)
}

// TransitionTo moves the package to target when the FSM allows it, stamping
// lastEventAt (and deliveredAt when the target is delivered). The transition
// is checked against the package's current status; a disallowed pair returns
// an InvalidTransitionError and leaves the package unchanged.
func (p *Package) TransitionTo(target Status, at time.Time) error {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	at = at.UTC()
	p.status = newStatus
	p.lastEventAt = &at
	if newStatus == StatusDelivered {
		p.deliveredAt = &at
	}
	return nil
}

// Assign hands the package to a driver without changing its status.
// Reassignment of an already-assigned package is allowed; the assignment
// timestamp is refreshed.
func (p *Package) Assign(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	at = at.UTC()
	p.assignedDriverID = &driverID
	p.assignedAt = &at
	return nil
}

// StartRoute transitions the package to out_for_delivery and stamps
// outForDeliveryAt. Allowed from received or in_warehouse; received packages
// pass through in_warehouse implicitly, matching warehouse practice of
// scanning straight onto the truck.
func (p *Package) StartRoute(at time.Time) error {
	if p.status == StatusReceived {
		// received -> in_warehouse -> out_for_delivery in one step
		if err := p.TransitionTo(StatusInWarehouse, at); err != nil {
			return err
		}
	}
	if err := p.TransitionTo(StatusOutForDelivery, at); err != nil {
		return err
	}

	utc := at.UTC()
	p.outForDeliveryAt = &utc
	return nil
}

// RecordAttempt registers the outcome of one delivery attempt while the
// package is out for delivery. It transitions the package to delivered or
// failed_attempt, increments the attempt counter and returns the new attempt
// number (1-based, contiguous). The counter on the package is the source of
// truth for attempt numbering; DeliveryAttempt rows are its append-only log.
func (p *Package) RecordAttempt(result AttemptResult, at time.Time) (int, error) {
	if err := result.Validate(); err != nil {
		return 0, err
	}

	target := StatusFailedAttempt
	if result == AttemptDelivered {
		target = StatusDelivered
	}

	if err := p.TransitionTo(target, at); err != nil {
		return 0, err
	}

	p.attemptCount++
	return p.attemptCount, nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Package) setRecipientName(recipientName string) error {
	recipientName = strings.TrimSpace(recipientName)
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipient_name")
	}
	p.recipientName = recipientName
	return nil
}

func (p *Package) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Package) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsOutOfRangeError("priority", priority, 0, "unbounded")
	}
	p.priority = priority
	return nil
}

func (p *Package) setDestination(destination *kernel.GeoPoint) error {
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
	}
	p.destination = destination
	return nil
}

func (p *Package) setInitialStatus(status Status) error {
	if status == "" {
		status = StatusReceived
	}
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Package) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return err
		}
	}
	p.warehouseID = warehouseID
	return nil
}
