// Package assignmentrepo persists assignment rules and the audit records of
// assignment runs.
package assignmentrepo

import (
	"time"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// RuleDTO is the database representation of an assignment rule.
type RuleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RuleType  string    `gorm:"not null"`
	Pattern   string    `gorm:"not null"`
	DriverID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Priority  int       `gorm:"index;not null"`
	Enabled   bool      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "assignment_rules".
func (RuleDTO) TableName() string {
	return "assignment_rules"
}

// BatchDTO is the database representation of one assignment run.
type BatchDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FilterStatus string
	FilterZip    string
	FilterCity   string
	Total        int       `gorm:"not null"`
	Assigned     int       `gorm:"not null"`
	DryRun       bool      `gorm:"not null"`
	Notes        string
	StartedAt    time.Time `gorm:"index;not null"`
	EndedAt      time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "assignment_batches".
func (BatchDTO) TableName() string {
	return "assignment_batches"
}

func ruleFromDomain(rule *assignment.Rule) RuleDTO {
	return RuleDTO{
		ID:        rule.ID().Bytes(),
		RuleType:  string(rule.Type()),
		Pattern:   rule.Pattern(),
		DriverID:  rule.DriverID().Bytes(),
		Priority:  rule.Priority(),
		Enabled:   rule.Enabled(),
		CreatedAt: rule.CreatedAt(),
	}
}

func ruleToDomain(dto RuleDTO) (*assignment.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreRule(
		id,
		assignment.RuleType(dto.RuleType),
		dto.Pattern,
		driverID,
		dto.Priority,
		dto.Enabled,
		dto.CreatedAt,
	)
}

func batchFromDomain(batch *assignment.Batch) BatchDTO {
	return BatchDTO{
		ID:           batch.ID().Bytes(),
		FilterStatus: string(batch.Filter().Status()),
		FilterZip:    batch.Filter().Zip(),
		FilterCity:   batch.Filter().City(),
		Total:        batch.Total(),
		Assigned:     batch.Assigned(),
		DryRun:       batch.DryRun(),
		Notes:        batch.Notes(),
		StartedAt:    batch.StartedAt(),
		EndedAt:      batch.EndedAt(),
	}
}

func batchToDomain(dto BatchDTO) (*assignment.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	filter, err := assignment.NewFilter(
		parcel.Status(dto.FilterStatus), dto.FilterZip, dto.FilterCity,
	)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreBatch(
		id,
		filter,
		dto.Total,
		dto.Assigned,
		dto.DryRun,
		dto.Notes,
		dto.StartedAt,
		dto.EndedAt,
	)
}
