package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents a request to remove a driver from the fleet
// directory. Removal is protected: a driver still referenced by assignment
// rules cannot be deleted.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a driver removal command.
func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	cmd := DeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}
	cmd.driverID = driverID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the driver to remove.
func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
