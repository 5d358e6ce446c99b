// Package driverrepo persists the driver aggregate.
package driverrepo

import (
	"time"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database representation of a driver aggregate.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index;not null"`
	LicenseNumber string
	Status        string `gorm:"not null"`
	LastLat       *float64
	LastLon       *float64
	LastSeenAt    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		LicenseNumber: aggregate.LicenseNumber(),
		Status:        string(aggregate.Status()),
		LastSeenAt:    aggregate.LastSeenAt(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	if pos := aggregate.LastPosition(); pos != nil {
		lat, lon := pos.Lat(), pos.Lon()
		dto.LastLat = &lat
		dto.LastLon = &lon
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lastPosition *kernel.GeoPoint
	if dto.LastLat != nil && dto.LastLon != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.LastLat, *dto.LastLon)
		if geoErr != nil {
			return nil, geoErr
		}
		lastPosition = &point
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.LicenseNumber,
		driver.Status(dto.Status),
		lastPosition,
		dto.LastSeenAt,
		dto.CreatedAt,
	)
}
