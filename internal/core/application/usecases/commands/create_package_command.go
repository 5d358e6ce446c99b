package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to register a package at warehouse
// intake. Carries the tracking number, recipient, destination address and the
// optional intake status, geocode and warehouse reference.
//
// Example:
//
//	addr, _ := kernel.NewAddress("8200 NW 52nd St", "Doral", "FL", "33166")
//	cmd, err := NewCreatePackageCommand(kernel.NewUUID(), "SPX-0001", "Ann Lee", addr, 0, nil, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID      kernel.UUID
	trackingNumber string
	recipientName  string
	address        kernel.Address
	priority       int
	destination    *kernel.GeoPoint
	warehouseID    *kernel.UUID
	status         parcel.Status

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// An empty status means received. Field validation beyond presence checks is
// delegated to the Package constructor in the handler.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	trackingNumber string,
	recipientName string,
	address kernel.Address,
	priority int,
	destination *kernel.GeoPoint,
	warehouseID *kernel.UUID,
	status parcel.Status,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		trackingNumber: trackingNumber,
		recipientName:  recipientName,
		priority:       priority,
		destination:    destination,
		warehouseID:    warehouseID,
		status:         status,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setAddress(address),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePackageCommandIsNotConstructed if validation fails.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the unique identifier for the new package.
func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// TrackingNumber returns the carrier tracking number.
func (c CreatePackageCommand) TrackingNumber() string {
	return c.trackingNumber
}

// RecipientName returns the addressee's display name.
func (c CreatePackageCommand) RecipientName() string {
	return c.recipientName
}

// Address returns the delivery destination address.
func (c CreatePackageCommand) Address() kernel.Address {
	return c.address
}

// Priority returns the urgency level.
func (c CreatePackageCommand) Priority() int {
	return c.priority
}

// Destination returns the optional destination geocode.
func (c CreatePackageCommand) Destination() *kernel.GeoPoint {
	return c.destination
}

// WarehouseID returns the optional originating warehouse reference.
func (c CreatePackageCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// Status returns the requested intake status, empty for received.
func (c CreatePackageCommand) Status() parcel.Status {
	return c.status
}

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *CreatePackageCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
