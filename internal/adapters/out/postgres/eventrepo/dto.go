// Package eventrepo persists the package event ledger. Events are append
// only; the repository never updates or deletes rows.
package eventrepo

import (
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// EventDTO is the database representation of a package history event.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID  uuid.UUID `gorm:"type:uuid;index;not null"`
	EventType  string    `gorm:"index;not null"`
	StatusFrom string
	StatusTo   string     `gorm:"not null"`
	AtTs       time.Time  `gorm:"column:at_ts;index;not null"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`
	Lat        *float64
	Lon        *float64
	Notes      string
}

// TableName overrides GORM's default naming to use "package_events".
func (EventDTO) TableName() string {
	return "package_events"
}

func fromDomain(event *parcel.Event) EventDTO {
	dto := EventDTO{
		ID:         event.ID().Bytes(),
		PackageID:  event.PackageID().Bytes(),
		EventType:  string(event.Type()),
		StatusFrom: string(event.StatusFrom()),
		StatusTo:   string(event.StatusTo()),
		AtTs:       event.At(),
		Notes:      event.Notes(),
	}

	if id := event.DriverID(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}
	if loc := event.Location(); loc != nil {
		lat, lon := loc.Lat(), loc.Lon()
		dto.Lat = &lat
		dto.Lon = &lon
	}

	return dto
}

func toDomain(dto EventDTO) (*parcel.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		did, idErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &did
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if geoErr != nil {
			return nil, geoErr
		}
		location = &point
	}

	return parcel.NewEvent(
		id,
		packageID,
		parcel.EventType(dto.EventType),
		parcel.Status(dto.StatusFrom),
		parcel.Status(dto.StatusTo),
		dto.AtTs,
		driverID,
		location,
		dto.Notes,
	)
}
