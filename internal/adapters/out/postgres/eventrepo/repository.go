package eventrepo

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends a history event.
func (r *GormEventRepository) Add(ctx context.Context, event *parcel.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByPackage returns all events for a package in chronological order.
func (r *GormEventRepository) ListByPackage(
	ctx context.Context,
	packageID kernel.UUID,
) ([]*parcel.Event, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID.Bytes()).
		Order("at_ts, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*parcel.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
