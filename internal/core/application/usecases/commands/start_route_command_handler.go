package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// StartRouteCommandHandler moves a driver's pending load out for delivery.
// Each package gets one "ofd" event recording the status it left from.
type StartRouteCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewStartRouteCommandHandler creates a handler for route starts.
func NewStartRouteCommandHandler(uowFactory LedgerUoWFactory) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions every startable package assigned to the driver to
// out_for_delivery and returns the count. A driver with nothing to start is
// success with zero.
func (h StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	eventRepo := uow.EventRepository()

	packages, err := packageRepo.GetStartableByDriver(ctx, cmd.DriverID())
	if err != nil {
		return 0, err
	}

	now := time.Now()
	driverID := cmd.DriverID()

	for _, pkg := range packages {
		statusFrom := pkg.Status()

		if err = pkg.StartRoute(now); err != nil {
			return 0, err
		}

		event, err := parcel.NewEvent(
			kernel.NewUUID(), pkg.ID(), parcel.EventOutForDelivery,
			statusFrom, pkg.Status(), now, &driverID, nil, "")
		if err != nil {
			return 0, err
		}

		if err = packageRepo.Update(ctx, pkg); err != nil {
			return 0, err
		}
		if err = eventRepo.Add(ctx, event); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(packages), nil
}
