package ports

import (
	"context"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
)

// RuleRepository defines the persistence contract for area assignment rules.
type RuleRepository interface {
	// Add persists a new rule.
	Add(ctx context.Context, rule *assignment.Rule) error

	// Update persists changes to an existing rule.
	Update(ctx context.Context, rule *assignment.Rule) error

	// Get retrieves a rule by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such rule exists.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Rule, error)

	// GetAllEnabled returns the enabled rules in evaluation order:
	// priority descending, then rule type, then pattern.
	GetAllEnabled(ctx context.Context) ([]*assignment.Rule, error)

	// CountByDriver returns how many rules reference the given driver.
	// Used to protect drivers from deletion while rules point at them.
	CountByDriver(ctx context.Context, driverID kernel.UUID) (int, error)
}

// BatchRepository defines the persistence contract for assignment run
// audit records. Batches are append-only.
type BatchRepository interface {
	// Add persists a completed run record.
	Add(ctx context.Context, batch *assignment.Batch) error

	// List returns run records, newest first, up to limit.
	List(ctx context.Context, limit int) ([]*assignment.Batch, error)
}
