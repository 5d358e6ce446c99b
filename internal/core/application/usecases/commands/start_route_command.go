package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand represents a driver leaving the warehouse: every package
// assigned to the driver that has not left yet goes out for delivery.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a route start command for the given driver.
func NewStartRouteCommand(driverID kernel.UUID) (StartRouteCommand, error) {
	cmd := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return StartRouteCommand{}, err
	}
	cmd.driverID = driverID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// DriverID returns the driver starting the route.
func (c StartRouteCommand) DriverID() kernel.UUID {
	return c.driverID
}
