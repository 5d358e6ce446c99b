package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/assignment"
)

// CreateRuleCommandHandler adds area assignment rules. The referenced driver
// must exist; the rule starts enabled.
type CreateRuleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateRuleCommandHandler creates a handler for rule creation.
func NewCreateRuleCommandHandler(uowFactory FleetUoWFactory) CreateRuleCommandHandler {
	return CreateRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the rule after verifying the driver exists.
func (h CreateRuleCommandHandler) Handle(ctx context.Context, cmd CreateRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rule, err := assignment.NewRule(
		cmd.RuleID(), cmd.RuleType(), cmd.Pattern(), cmd.DriverID(), cmd.Priority(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.RuleRepository().Add(ctx, rule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
