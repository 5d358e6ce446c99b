package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := newTestDriver(t)

	cmd, err := commands.NewDeleteDriverCommand(d.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	ruleRepo := new(MockRuleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("RuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("CountByDriver", ctx, d.ID()).Return(0, nil).Once(),
		driverRepo.On("Delete", ctx, d.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestDeleteDriverCommandHandler_Handle_ProtectedByRules(t *testing.T) {
	ctx := t.Context()
	d := newTestDriver(t)

	cmd, err := commands.NewDeleteDriverCommand(d.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	ruleRepo := new(MockRuleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("RuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("CountByDriver", ctx, d.ID()).Return(2, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrReferentialIntegrity)
	driverRepo.AssertNotCalled(t, "Delete", ctx, d.ID())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteDriverCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	d := newTestDriver(t)

	cmd, err := commands.NewDeleteDriverCommand(d.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, d.ID()).
			Return(nil, errs.NewObjectNotFoundError("driver_id", d.ID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
