package commands

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a driver in the fleet
// directory.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a driver registration command. The name is
// required; the license number is optional.
func NewCreateDriverCommand(driverID kernel.UUID, name, licenseNumber string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		name:          strings.TrimSpace(name),
		licenseNumber: strings.TrimSpace(licenseNumber),
		guard:         guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}
	if cmd.name == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}
	cmd.driverID = driverID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// LicenseNumber returns the driver's license number, possibly empty.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}
