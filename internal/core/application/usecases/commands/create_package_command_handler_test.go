package commands_test

import (
	"errors"
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreatePackageCommand(t *testing.T, status parcel.Status) commands.CreatePackageCommand {
	t.Helper()
	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(), "SPX-0001", "Ann Lee", testAddress(t), 2, nil, nil, status)
	require.NoError(t, err)
	return cmd
}

func TestNewCreatePackageCommand(t *testing.T) {
	t.Run("rejects invalid package ID", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(
			kernel.UUID{}, "SPX-0001", "Ann Lee", testAddress(t), 0, nil, nil, "")
		require.Error(t, err)
	})

	t.Run("rejects zero-value address", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(
			kernel.NewUUID(), "SPX-0001", "Ann Lee", kernel.Address{}, 0, nil, nil, "")
		require.Error(t, err)
	})
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreatePackageCommand(t, "")

	packageRepo := new(MockPackageRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedPkg := packageRepo.Calls[0].Arguments[1].(*parcel.Package)
	assert.Equal(t, parcel.StatusReceived, addedPkg.Status())

	addedEvent := eventRepo.Calls[0].Arguments[1].(*parcel.Event)
	assert.Equal(t, parcel.EventCreated, addedEvent.Type())
	assert.Equal(t, parcel.Status(""), addedEvent.StatusFrom())
	assert.Equal(t, parcel.StatusReceived, addedEvent.StatusTo())
	assert.True(t, addedEvent.PackageID().IsEqual(addedPkg.ID()))

	packageRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_ExplicitStatus(t *testing.T) {
	ctx := t.Context()
	cmd := newCreatePackageCommand(t, parcel.StatusInWarehouse)

	packageRepo := new(MockPackageRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	addedEvent := eventRepo.Calls[0].Arguments[1].(*parcel.Event)
	assert.Equal(t, parcel.StatusInWarehouse, addedEvent.StatusTo())
}

func TestCreatePackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePackageCommand{} // not constructed properly

	factory := new(MockLedgerUoWFactory)
	handler := commands.NewCreatePackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreatePackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePackageCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreatePackageCommand(t, "")

	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).
			Return(errors.New("duplicate tracking number")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "duplicate tracking number")
	uow.AssertNotCalled(t, "Commit", ctx)
}
