package commands

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAssignByAreaCommandIsNotConstructed = errors.New(
	"AssignByAreaCommand must be created via NewAssignByAreaCommand constructor",
)

// AssignByAreaCommand represents a request to assign every unassigned package
// in a delivery area to one driver. The area is a ZIP code, a city, or both;
// at least one must be given.
type AssignByAreaCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	zip      string
	city     string

	guard guard.ConstructorGuard
}

// NewAssignByAreaCommand creates an area assignment command. ZIP matching is
// exact; city matching is case-insensitive.
func NewAssignByAreaCommand(driverID kernel.UUID, zip, city string) (AssignByAreaCommand, error) {
	cmd := AssignByAreaCommand{
		zip:   strings.TrimSpace(zip),
		city:  strings.TrimSpace(city),
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return AssignByAreaCommand{}, err
	}
	if cmd.zip == "" && cmd.city == "" {
		return AssignByAreaCommand{}, errs.NewValueIsRequiredError("zip or city")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignByAreaCommand) Validate() error {
	return c.guard.Validate(ErrAssignByAreaCommandIsNotConstructed)
}

// DriverID returns the driver receiving the area's packages.
func (c AssignByAreaCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Zip returns the ZIP restriction, empty when assigning by city only.
func (c AssignByAreaCommand) Zip() string {
	return c.zip
}

// City returns the city restriction, empty when assigning by ZIP only.
func (c AssignByAreaCommand) City() string {
	return c.city
}

func (c *AssignByAreaCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
