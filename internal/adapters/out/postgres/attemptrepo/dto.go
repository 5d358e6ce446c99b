// Package attemptrepo persists delivery attempts with their proof-of-delivery
// photos. An attempt and its photos are written together; photos never change
// after the attempt is recorded.
package attemptrepo

import (
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// AttemptDTO is the database representation of a delivery attempt.
type AttemptDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID  uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_attempts_package_no"`
	DriverID   uuid.UUID `gorm:"type:uuid;index;not null"`
	AttemptNo  int       `gorm:"not null;uniqueIndex:idx_attempts_package_no"`
	Result     string    `gorm:"not null"`
	ReasonCode string
	Notes      string
	Lat        float64   `gorm:"not null"`
	Lon        float64   `gorm:"not null"`
	AtTs       time.Time `gorm:"column:at_ts;not null"`

	Photos []PodPhotoDTO `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "delivery_attempts".
func (AttemptDTO) TableName() string {
	return "delivery_attempts"
}

// PodPhotoDTO is the database representation of one proof-of-delivery photo.
type PodPhotoDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AttemptID uuid.UUID `gorm:"type:uuid;index;not null"`
	Path      string    `gorm:"not null"`
	Checksum  string
	MimeType  string
	SizeBytes int64
	TakenAt   *time.Time
	Lat       *float64
	Lon       *float64
}

// TableName overrides GORM's default naming to use "pod_photos".
func (PodPhotoDTO) TableName() string {
	return "pod_photos"
}

func fromDomain(attempt *parcel.DeliveryAttempt) AttemptDTO {
	dto := AttemptDTO{
		ID:         attempt.ID().Bytes(),
		PackageID:  attempt.PackageID().Bytes(),
		DriverID:   attempt.DriverID().Bytes(),
		AttemptNo:  attempt.AttemptNo(),
		Result:     string(attempt.Result()),
		ReasonCode: attempt.ReasonCode(),
		Notes:      attempt.Notes(),
		Lat:        attempt.Location().Lat(),
		Lon:        attempt.Location().Lon(),
		AtTs:       attempt.At(),
	}

	for _, photo := range attempt.Photos() {
		photoDTO := PodPhotoDTO{
			ID:        uuid.New(),
			AttemptID: dto.ID,
			Path:      photo.Path(),
			Checksum:  photo.Checksum(),
			MimeType:  photo.MimeType(),
			SizeBytes: photo.SizeBytes(),
			TakenAt:   photo.TakenAt(),
		}
		if loc := photo.Location(); loc != nil {
			lat, lon := loc.Lat(), loc.Lon()
			photoDTO.Lat = &lat
			photoDTO.Lon = &lon
		}
		dto.Photos = append(dto.Photos, photoDTO)
	}

	return dto
}

func toDomain(dto AttemptDTO) (*parcel.DeliveryAttempt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	photos := make([]parcel.PodPhoto, 0, len(dto.Photos))
	for _, photoDTO := range dto.Photos {
		var photoLocation *kernel.GeoPoint
		if photoDTO.Lat != nil && photoDTO.Lon != nil {
			point, geoErr := kernel.NewGeoPoint(*photoDTO.Lat, *photoDTO.Lon)
			if geoErr != nil {
				return nil, geoErr
			}
			photoLocation = &point
		}

		photo, photoErr := parcel.NewPodPhoto(
			photoDTO.Path,
			photoDTO.Checksum,
			photoDTO.MimeType,
			photoDTO.SizeBytes,
			photoDTO.TakenAt,
			photoLocation,
		)
		if photoErr != nil {
			return nil, photoErr
		}
		photos = append(photos, photo)
	}

	return parcel.NewDeliveryAttempt(
		id,
		packageID,
		driverID,
		dto.AttemptNo,
		parcel.AttemptResult(dto.Result),
		dto.ReasonCode,
		dto.Notes,
		location,
		photos,
		dto.AtTs,
	)
}
