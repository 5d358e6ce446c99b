package commands

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand represents a driver reporting an unsuccessful delivery
// attempt. On top of the evidence a confirmation carries, a failure requires
// a reason code so dispatch can decide what happens next.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	packageID        kernel.UUID
	driverID         kernel.UUID
	hasEditPrivilege bool
	reasonCode       string
	location         kernel.GeoPoint
	notes            string
	photos           []parcel.PodPhoto

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a failed attempt command. The reason code is
// required.
func NewFailDeliveryCommand(
	packageID kernel.UUID,
	driverID kernel.UUID,
	hasEditPrivilege bool,
	reasonCode string,
	location kernel.GeoPoint,
	notes string,
	photos []parcel.PodPhoto,
) (FailDeliveryCommand, error) {
	cmd := FailDeliveryCommand{
		hasEditPrivilege: hasEditPrivilege,
		reasonCode:       strings.TrimSpace(reasonCode),
		notes:            notes,
		photos:           photos,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packageID.Validate(),
		driverID.Validate(),
		location.Validate(),
	); err != nil {
		return FailDeliveryCommand{}, err
	}
	if cmd.reasonCode == "" {
		return FailDeliveryCommand{}, errs.NewValueIsRequiredError("reason_code")
	}
	for _, photo := range photos {
		if err := photo.Validate(); err != nil {
			return FailDeliveryCommand{}, err
		}
	}

	cmd.packageID = packageID
	cmd.driverID = driverID
	cmd.location = location

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// PackageID returns the package the attempt was made on.
func (c FailDeliveryCommand) PackageID() kernel.UUID {
	return c.packageID
}

// DriverID returns the acting driver.
func (c FailDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// HasEditPrivilege reports whether the caller may act on packages assigned
// to other drivers.
func (c FailDeliveryCommand) HasEditPrivilege() bool {
	return c.hasEditPrivilege
}

// ReasonCode returns why the attempt failed.
func (c FailDeliveryCommand) ReasonCode() string {
	return c.reasonCode
}

// Location returns the GPS coordinates captured at the attempt.
func (c FailDeliveryCommand) Location() kernel.GeoPoint {
	return c.location
}

// Notes returns optional field notes.
func (c FailDeliveryCommand) Notes() string {
	return c.notes
}

// Photos returns the attached photos.
func (c FailDeliveryCommand) Photos() []parcel.PodPhoto {
	return c.photos
}
