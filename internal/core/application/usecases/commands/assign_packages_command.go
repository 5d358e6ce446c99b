package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAssignPackagesCommandIsNotConstructed = errors.New(
	"AssignPackagesCommand must be created via NewAssignPackagesCommand constructor",
)

// AssignPackagesCommand represents a request to hand an explicit set of
// packages to one driver. Dispatchers use it for manual overrides; rule runs
// and area assignment cover the bulk cases.
type AssignPackagesCommand struct { //nolint:recvcheck //using for validation
	driverID   kernel.UUID
	packageIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPackagesCommand creates a command to assign specific packages to a
// driver. The package ID list must be non-empty and every ID must be valid.
func NewAssignPackagesCommand(driverID kernel.UUID, packageIDs []kernel.UUID) (AssignPackagesCommand, error) {
	cmd := AssignPackagesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPackageIDs(packageIDs),
	); err != nil {
		return AssignPackagesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPackagesCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackagesCommandIsNotConstructed)
}

// DriverID returns the driver receiving the packages.
func (c AssignPackagesCommand) DriverID() kernel.UUID {
	return c.driverID
}

// PackageIDs returns the packages to assign.
func (c AssignPackagesCommand) PackageIDs() []kernel.UUID {
	return c.packageIDs
}

func (c *AssignPackagesCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignPackagesCommand) setPackageIDs(packageIDs []kernel.UUID) error {
	if len(packageIDs) == 0 {
		return errs.NewValueIsRequiredError("package_ids")
	}
	for _, id := range packageIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.packageIDs = packageIDs
	return nil
}
