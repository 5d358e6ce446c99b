package commands

import (
	"context"

	"lastmile/internal/core/domain/model/parcel"
)

// FailDeliveryCommandHandler records an unsuccessful delivery attempt. The
// package moves to failed_attempt and stays assigned, so the driver can retry
// on a later route; the attempt row and a "failed" event commit with it.
type FailDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewFailDeliveryCommandHandler creates a handler for failed attempts.
func NewFailDeliveryCommandHandler(uowFactory DeliveryUoWFactory) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the failed attempt and returns the attempt number. The same
// authorization as confirmation applies.
func (h FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) (int, error) {
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
		result:           parcel.AttemptFailed,
		reasonCode:       cmd.ReasonCode(),
		location:         cmd.Location(),
		notes:            cmd.Notes(),
		photos:           cmd.Photos(),
	})
}
