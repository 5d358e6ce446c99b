// Package packagerepo persists the package aggregate. It maps the aggregate
// to a single packages row; the event ledger and delivery attempts live in
// their own repositories.
package packagerepo

import (
	"time"

	"lastmile/internal/adapters/out/postgres/attemptrepo"
	"lastmile/internal/adapters/out/postgres/eventrepo"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO is the database representation of a package aggregate.
type PackageDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string    `gorm:"uniqueIndex;not null"`
	Status           string    `gorm:"index;not null;index:idx_packages_driver_status,priority:2"`
	Priority         int       `gorm:"not null"`
	RecipientName    string    `gorm:"not null"`
	Address          AddressDTO `gorm:"embedded;embeddedPrefix:addr_"`
	DestLat          *float64
	DestLon          *float64
	WarehouseID      *uuid.UUID `gorm:"type:uuid;index"`
	AssignedDriverID *uuid.UUID `gorm:"type:uuid;index;index:idx_packages_driver_status,priority:1"`
	AssignedAt       *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	AttemptCount     int `gorm:"not null;default:0"`
	LastEventAt      *time.Time
	CreatedAt        time.Time `gorm:"not null"`

	Events   []eventrepo.EventDTO     `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Attempts []attemptrepo.AttemptDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// AddressDTO is the embedded destination address within the packages table.
type AddressDTO struct {
	Street string `gorm:"not null"`
	City   string `gorm:"index;not null"`
	State  string
	Zip    string `gorm:"index;not null"`
}

func fromDomain(aggregate *parcel.Package) PackageDTO {
	dto := PackageDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Status:         string(aggregate.Status()),
		Priority:       aggregate.Priority(),
		RecipientName:  aggregate.RecipientName(),
		Address: AddressDTO{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			State:  aggregate.Address().State(),
			Zip:    aggregate.Address().Zip(),
		},
		AssignedAt:       aggregate.AssignedAt(),
		OutForDeliveryAt: aggregate.OutForDeliveryAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		AttemptCount:     aggregate.AttemptCount(),
		LastEventAt:      aggregate.LastEventAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}

	if dest := aggregate.Destination(); dest != nil {
		lat, lon := dest.Lat(), dest.Lon()
		dto.DestLat = &lat
		dto.DestLon = &lon
	}
	if id := aggregate.WarehouseID(); id != nil {
		raw := id.Bytes()
		dto.WarehouseID = &raw
	}
	if id := aggregate.AssignedDriverID(); id != nil {
		raw := id.Bytes()
		dto.AssignedDriverID = &raw
	}

	return dto
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.Zip,
	)
	if err != nil {
		return nil, err
	}

	var destination *kernel.GeoPoint
	if dto.DestLat != nil && dto.DestLon != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.DestLat, *dto.DestLon)
		if geoErr != nil {
			return nil, geoErr
		}
		destination = &point
	}

	warehouseID, err := optionalUUID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	assignedDriverID, err := optionalUUID(dto.AssignedDriverID)
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(
		id,
		dto.TrackingNumber,
		parcel.Status(dto.Status),
		dto.Priority,
		dto.RecipientName,
		address,
		destination,
		warehouseID,
		assignedDriverID,
		dto.AssignedAt,
		dto.OutForDeliveryAt,
		dto.DeliveredAt,
		dto.AttemptCount,
		dto.LastEventAt,
		dto.CreatedAt,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
