package attemptrepo

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormAttemptRepository implements AttemptRepository using GORM.
type GormAttemptRepository struct {
	db *gorm.DB
}

// NewGormAttemptRepository creates a new GORM attempt repository.
func NewGormAttemptRepository(db *gorm.DB) *GormAttemptRepository {
	return &GormAttemptRepository{db: db}
}

// Add persists an attempt together with its photos. GORM inserts the photo
// association rows in the same statement batch.
func (r *GormAttemptRepository) Add(ctx context.Context, attempt *parcel.DeliveryAttempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}

	dto := fromDomain(attempt)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByPackage returns a package's attempts ordered by attempt number.
func (r *GormAttemptRepository) ListByPackage(
	ctx context.Context,
	packageID kernel.UUID,
) ([]*parcel.DeliveryAttempt, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AttemptDTO
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("package_id = ?", packageID.Bytes()).
		Order("attempt_no").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*parcel.DeliveryAttempt, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, nil
}
