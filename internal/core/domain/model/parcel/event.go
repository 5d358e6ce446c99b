package parcel

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event was not created through
// the NewEvent constructor.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// EventType classifies a ledger history entry.
type EventType string

const (
	// EventCreated records a package entering the system.
	EventCreated EventType = "created"
	// EventUpdated records a generic status transition.
	EventUpdated EventType = "updated"
	// EventAssigned records a driver assignment; status is unchanged.
	EventAssigned EventType = "assigned"
	// EventOutForDelivery records a package leaving the warehouse on a route.
	EventOutForDelivery EventType = "ofd"
	// EventDelivered records a successful delivery attempt.
	EventDelivered EventType = "delivered"
	// EventFailed records a failed delivery attempt.
	EventFailed EventType = "failed"
	// EventReturned records a package sent back to origin.
	EventReturned EventType = "returned"
)

// Validate checks that the EventType is one of the defined values.
func (t EventType) Validate() error {
	switch t {
	case EventCreated, EventUpdated, EventAssigned, EventOutForDelivery,
		EventDelivered, EventFailed, EventReturned:
		return nil
	}
	return errs.NewValueIsInvalidError("event_type")
}

// Event is one immutable row of a package's history: which transition or
// action happened, when, and in which status the package was before and after.
// Events are append-only; they are created in the same unit of work as the
// status write they describe and never mutated or deleted afterwards.
type Event struct {
	id         kernel.UUID
	packageID  kernel.UUID
	eventType  EventType
	statusFrom Status
	statusTo   Status
	at         time.Time

	driverID *kernel.UUID
	location *kernel.GeoPoint
	notes    string

	isConstructed bool
}

// NewEvent creates a history entry for a package. statusFrom is empty for
// creation events; statusTo must always be a valid status. Driver, location
// and notes are optional context.
func NewEvent(
	id kernel.UUID,
	packageID kernel.UUID,
	eventType EventType,
	statusFrom Status,
	statusTo Status,
	at time.Time,
	driverID *kernel.UUID,
	location *kernel.GeoPoint,
	notes string,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		packageID.Validate(),
		eventType.Validate(),
		statusTo.Validate(),
	); err != nil {
		return nil, err
	}
	if statusFrom != "" {
		if err := statusFrom.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Event{
		id:            id,
		packageID:     packageID,
		eventType:     eventType,
		statusFrom:    statusFrom,
		statusTo:      statusTo,
		at:            at.UTC(),
		driverID:      driverID,
		location:      location,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// PackageID returns the package this event belongs to.
func (e *Event) PackageID() kernel.UUID {
	return e.packageID
}

// Type returns the event classification.
func (e *Event) Type() EventType {
	return e.eventType
}

// StatusFrom returns the status before the event; empty for creation events.
func (e *Event) StatusFrom() Status {
	return e.statusFrom
}

// StatusTo returns the status after the event.
func (e *Event) StatusTo() Status {
	return e.statusTo
}

// At returns when the event occurred.
func (e *Event) At() time.Time {
	return e.at
}

// DriverID returns the acting driver, nil when not driver-initiated.
func (e *Event) DriverID() *kernel.UUID {
	return e.driverID
}

// Location returns the geolocation captured with the event, nil when absent.
func (e *Event) Location() *kernel.GeoPoint {
	return e.location
}

// Notes returns free-form operator notes, possibly empty.
func (e *Event) Notes() string {
	return e.notes
}
