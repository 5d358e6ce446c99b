package assignmentrepo

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRuleRepository implements RuleRepository using GORM.
type GormRuleRepository struct {
	db *gorm.DB
}

// NewGormRuleRepository creates a new GORM rule repository.
func NewGormRuleRepository(db *gorm.DB) *GormRuleRepository {
	return &GormRuleRepository{db: db}
}

// Add saves a new rule to the database.
func (r *GormRuleRepository) Add(ctx context.Context, rule *assignment.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing rule to the database. The enabled flag is updated
// explicitly so disabling a rule persists.
func (r *GormRuleRepository) Update(ctx context.Context, rule *assignment.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	result := r.db.WithContext(ctx).
		Model(&RuleDTO{}).
		Where("id = ?", dto.ID).
		Select("RuleType", "Pattern", "DriverID", "Priority", "Enabled").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a rule by ID.
func (r *GormRuleRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rule", id.String())
		}
		return nil, err
	}

	return ruleToDomain(dto)
}

// GetAllEnabled returns the enabled rules in evaluation order.
func (r *GormRuleRepository) GetAllEnabled(ctx context.Context) ([]*assignment.Rule, error) {
	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("priority DESC, rule_type, pattern").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*assignment.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := ruleToDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// CountByDriver returns how many rules reference the given driver.
func (r *GormRuleRepository) CountByDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RuleDTO{}).
		Where("driver_id = ?", driverID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Add persists a completed run record.
func (r *GormBatchRepository) Add(ctx context.Context, batch *assignment.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := batchFromDomain(batch)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// List returns run records, newest first, up to limit.
func (r *GormBatchRepository) List(ctx context.Context, limit int) ([]*assignment.Batch, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []BatchDTO
	err := r.db.WithContext(ctx).
		Order("started_at DESC, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*assignment.Batch, 0, len(dtos))
	for _, dto := range dtos {
		batch, err := batchToDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, nil
}
