package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// TransitionPackageStatusCommandHandler applies manual status transitions.
// The package mutation and its history event commit in one transaction.
type TransitionPackageStatusCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewTransitionPackageStatusCommandHandler creates a handler for status transitions.
func NewTransitionPackageStatusCommandHandler(uowFactory LedgerUoWFactory) TransitionPackageStatusCommandHandler {
	return TransitionPackageStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the package, applies the transition through the status machine
// and appends one event. The event type is "updated" except for moves into
// returned, which get their own type for reporting.
func (h TransitionPackageStatusCommandHandler) Handle(ctx context.Context, cmd TransitionPackageStatusCommand) error {
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

	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	now := time.Now()
	statusFrom := pkg.Status()

	if err = pkg.TransitionTo(cmd.Target(), now); err != nil {
		return err
	}

	eventType := parcel.EventUpdated
	if cmd.Target() == parcel.StatusReturned {
		eventType = parcel.EventReturned
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(), pkg.ID(), eventType,
		statusFrom, pkg.Status(), now, nil, nil, cmd.Notes())
	if err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
