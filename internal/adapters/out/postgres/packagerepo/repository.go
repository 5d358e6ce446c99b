package packagerepo

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the packages with the given identifiers. Missing IDs
// fail the whole lookup so bulk operations stay all-or-nothing.
func (r *GormPackageRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*parcel.Package, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]PackageDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	packages := make([]*parcel.Package, 0, len(ids))
	for i, id := range ids {
		dto, ok := found[raw[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

// GetByTrackingNumber retrieves a package by its tracking number.
func (r *GormPackageRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*parcel.Package, error) {
	var dto PackageDTO
	err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking_number", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetUnassignedMatching retrieves unassigned packages in an assignable status,
// narrowed by the filter, highest priority first then oldest first.
func (r *GormPackageRepository) GetUnassignedMatching(
	ctx context.Context,
	filter assignment.Filter,
) ([]*parcel.Package, error) {
	query := r.db.WithContext(ctx).
		Where("assigned_driver_id IS NULL").
		Where("status IN ?", []string{
			string(parcel.StatusReceived),
			string(parcel.StatusInWarehouse),
		})

	if filter.Status() != "" {
		query = query.Where("status = ?", string(filter.Status()))
	}
	if filter.Zip() != "" {
		query = query.Where("addr_zip = ?", filter.Zip())
	}
	if filter.City() != "" {
		query = query.Where("LOWER(addr_city) = LOWER(?)", filter.City())
	}

	var dtos []PackageDTO
	if err := query.Order("priority DESC, created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStartableByDriver retrieves the driver's assigned packages still in a
// pre-route status.
func (r *GormPackageRepository) GetStartableByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*parcel.Package, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	err := r.db.WithContext(ctx).
		Where("assigned_driver_id = ?", driverID.Bytes()).
		Where("status IN ?", []string{
			string(parcel.StatusReceived),
			string(parcel.StatusInWarehouse),
		}).
		Order("priority DESC, created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByStatus returns the number of packages per lifecycle status.
func (r *GormPackageRepository) CountByStatus(ctx context.Context) (map[parcel.Status]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Select("status, COUNT(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[parcel.Status]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[parcel.Status(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func toDomainSlice(dtos []PackageDTO) ([]*parcel.Package, error) {
	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}
