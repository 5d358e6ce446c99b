package commands

import (
	"context"

	"lastmile/internal/core/domain/model/parcel"
)

// ConfirmDeliveryCommandHandler records a successful delivery. The package
// becomes delivered, the attempt row with its proof-of-delivery photos is
// written, and a "delivered" event carrying the GPS evidence lands in the
// ledger, all in one transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the delivery and returns the attempt number. Only the
// assigned driver, or a caller with the edit privilege, may confirm; a
// package not out for delivery is rejected by the status machine.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	return resolveAttempt(ctx, uow, attemptRequest{
		packageID:        cmd.PackageID(),
		driverID:         cmd.DriverID(),
		hasEditPrivilege: cmd.HasEditPrivilege(),
		result:           parcel.AttemptDelivered,
		location:         cmd.Location(),
		notes:            cmd.Notes(),
		photos:           cmd.Photos(),
	})
}
