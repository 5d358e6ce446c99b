package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/guard"
)

var ErrTransitionPackageStatusCommandIsNotConstructed = errors.New(
	"TransitionPackageStatusCommand must be created via NewTransitionPackageStatusCommand constructor",
)

// TransitionPackageStatusCommand represents a request to move a package to a
// new lifecycle status. The transition is checked against the status machine;
// a disallowed pair is rejected without touching the package.
type TransitionPackageStatusCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	target    parcel.Status
	notes     string

	guard guard.ConstructorGuard
}

// NewTransitionPackageStatusCommand creates a status transition command.
// The target must be one of the defined statuses; whether the transition is
// allowed from the package's current status is decided in the handler.
func NewTransitionPackageStatusCommand(
	packageID kernel.UUID,
	target parcel.Status,
	notes string,
) (TransitionPackageStatusCommand, error) {
	cmd := TransitionPackageStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionPackageStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionPackageStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPackageStatusCommandIsNotConstructed)
}

// PackageID returns the package to transition.
func (c TransitionPackageStatusCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Target returns the requested status.
func (c TransitionPackageStatusCommand) Target() parcel.Status {
	return c.target
}

// Notes returns optional operator notes recorded on the event.
func (c TransitionPackageStatusCommand) Notes() string {
	return c.notes
}

func (c *TransitionPackageStatusCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *TransitionPackageStatusCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
