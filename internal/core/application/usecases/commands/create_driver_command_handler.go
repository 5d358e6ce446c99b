package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers drivers in the fleet directory.
type CreateDriverCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory FleetUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the driver in active status.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseNumber(), time.Now())
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

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
