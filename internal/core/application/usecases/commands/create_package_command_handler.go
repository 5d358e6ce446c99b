package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// CreatePackageCommandHandler handles the business logic for package intake.
// Creates the package and the first ledger event in one transaction, so a
// package never exists without its "created" history row.
type CreatePackageCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package intake.
// Requires a LedgerUoWFactory for transactional persistence.
func NewCreatePackageCommandHandler(uowFactory LedgerUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command. The package lands in the
// requested status (received when none was given) and exactly one "created"
// event with an empty source status is appended.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	pkg, err := parcel.NewPackage(
		cmd.PackageID(),
		cmd.TrackingNumber(),
		cmd.RecipientName(),
		cmd.Address(),
		cmd.Priority(),
		cmd.Destination(),
		cmd.WarehouseID(),
		cmd.Status(),
		now,
	)
	if err != nil {
		return err
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(), pkg.ID(), parcel.EventCreated,
		"", pkg.Status(), now, nil, nil, "")
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

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
