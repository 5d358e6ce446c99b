package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a driver confirming a successful handoff
// in the field. GPS coordinates are mandatory evidence; proof-of-delivery
// photos are optional.
//
// The acting driver must be the assigned driver, unless the caller holds the
// package-edit privilege (dispatch staff fixing records).
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	packageID        kernel.UUID
	driverID         kernel.UUID
	hasEditPrivilege bool
	location         kernel.GeoPoint
	notes            string
	photos           []parcel.PodPhoto

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a delivery confirmation command.
func NewConfirmDeliveryCommand(
	packageID kernel.UUID,
	driverID kernel.UUID,
	hasEditPrivilege bool,
	location kernel.GeoPoint,
	notes string,
	photos []parcel.PodPhoto,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		hasEditPrivilege: hasEditPrivilege,
		notes:            notes,
		photos:           photos,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packageID.Validate(),
		driverID.Validate(),
		location.Validate(),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	for _, photo := range photos {
		if err := photo.Validate(); err != nil {
			return ConfirmDeliveryCommand{}, err
		}
	}

	cmd.packageID = packageID
	cmd.driverID = driverID
	cmd.location = location

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// PackageID returns the package being confirmed.
func (c ConfirmDeliveryCommand) PackageID() kernel.UUID {
	return c.packageID
}

// DriverID returns the acting driver.
func (c ConfirmDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// HasEditPrivilege reports whether the caller may act on packages assigned
// to other drivers.
func (c ConfirmDeliveryCommand) HasEditPrivilege() bool {
	return c.hasEditPrivilege
}

// Location returns the GPS coordinates captured at the handoff.
func (c ConfirmDeliveryCommand) Location() kernel.GeoPoint {
	return c.location
}

// Notes returns optional field notes.
func (c ConfirmDeliveryCommand) Notes() string {
	return c.notes
}

// Photos returns the attached proof-of-delivery photos.
func (c ConfirmDeliveryCommand) Photos() []parcel.PodPhoto {
	return c.photos
}
