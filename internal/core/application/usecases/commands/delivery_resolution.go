package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"
)

// attemptRequest carries the fields confirm and fail handlers have in common.
type attemptRequest struct {
	packageID        kernel.UUID
	driverID         kernel.UUID
	hasEditPrivilege bool
	result           parcel.AttemptResult
	reasonCode       string
	location         kernel.GeoPoint
	notes            string
	photos           []parcel.PodPhoto
}

// resolveAttempt runs the shared resolution flow: verify the acting driver,
// authorize, record the attempt on the aggregate, persist the attempt row
// with its photos, and append the matching ledger event. Everything commits
// or rolls back as one.
func resolveAttempt(ctx context.Context, uow DeliveryUoW, req attemptRequest) (int, error) {
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DriverRepository().Get(ctx, req.driverID); err != nil {
		return 0, err
	}

	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.Get(ctx, req.packageID)
	if err != nil {
		return 0, err
	}

	if !req.hasEditPrivilege && !pkg.IsAssignedTo(req.driverID) {
		return 0, errs.NewPermissionDeniedError("record a delivery attempt", req.driverID.String())
	}

	now := time.Now()
	statusFrom := pkg.Status()

	attemptNo, err := pkg.RecordAttempt(req.result, now)
	if err != nil {
		return 0, err
	}

	attempt, err := parcel.NewDeliveryAttempt(
		kernel.NewUUID(), pkg.ID(), req.driverID, attemptNo,
		req.result, req.reasonCode, req.notes, req.location, req.photos, now)
	if err != nil {
		return 0, err
	}

	eventType := parcel.EventFailed
	if req.result == parcel.AttemptDelivered {
		eventType = parcel.EventDelivered
	}

	location := req.location
	event, err := parcel.NewEvent(
		kernel.NewUUID(), pkg.ID(), eventType,
		statusFrom, pkg.Status(), now, &req.driverID, &location, req.notes)
	if err != nil {
		return 0, err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return 0, err
	}
	if err = uow.AttemptRepository().Add(ctx, attempt); err != nil {
		return 0, err
	}
	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return attemptNo, nil
}
