package commands

import (
	"context"

	"lastmile/internal/pkg/errs"
)

// DeleteDriverCommandHandler removes drivers from the fleet directory while
// protecting referential integrity: rules keep their driver alive.
type DeleteDriverCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory FleetUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the driver. When any assignment rule, enabled or not, still
// references the driver, the command fails with a ReferentialIntegrityError
// and nothing is removed.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	if _, err := driverRepo.Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	refs, err := uow.RuleRepository().CountByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewReferentialIntegrityError("driver_id", cmd.DriverID().String(), "assignment rules")
	}

	if err = driverRepo.Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
