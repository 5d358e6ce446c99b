package commands_test

import (
	"testing"
	"time"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRule(t *testing.T, rt assignment.RuleType, pattern string, driverID kernel.UUID, priority int) *assignment.Rule {
	t.Helper()
	rule, err := assignment.NewRule(kernel.NewUUID(), rt, pattern, driverID, priority, time.Now())
	require.NoError(t, err)
	return rule
}

func TestRunAssignmentRulesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverA := kernel.NewUUID()
	driverB := kernel.NewUUID()

	rules := []*assignment.Rule{
		testRule(t, assignment.RuleTypeZip, "33166", driverA, 10),
		testRule(t, assignment.RuleTypeCity, "Doral", driverB, 5),
	}
	candidates := []*parcel.Package{
		testPackageInStatus(t, parcel.StatusReceived),
		testPackageInStatus(t, parcel.StatusReceived),
	}

	cmd, err := commands.NewRunAssignmentRulesCommand("", false, "nightly run")
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	eventRepo := new(MockEventRepository)
	ruleRepo := new(MockRuleRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("GetAllEnabled", ctx).Return(rules, nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetUnassignedMatching", ctx, mock.AnythingOfType("assignment.Filter")).
			Return(candidates, nil).
			Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	// Update and Add interleave per package, so they stay outside the chain.
	packageRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Twice()
	eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Event")).Return(nil).Twice()

	factory := new(MockRuleRunUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunAssignmentRulesCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Assigned)

	// both candidates sit in 33166 Doral, so the higher priority ZIP rule wins
	assert.True(t, candidates[0].IsAssignedTo(driverA))
	assert.True(t, candidates[1].IsAssignedTo(driverA))

	batch := batchRepo.Calls[0].Arguments[1].(*assignment.Batch)
	assert.True(t, result.BatchID.IsEqual(batch.ID()))
	assert.Equal(t, 2, batch.Total())
	assert.Equal(t, 2, batch.Assigned())
	assert.False(t, batch.DryRun())
	assert.Equal(t, "nightly run", batch.Notes())

	uow.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestRunAssignmentRulesCommandHandler_Handle_DryRun(t *testing.T) {
	ctx := t.Context()
	driverA := kernel.NewUUID()

	rules := []*assignment.Rule{
		testRule(t, assignment.RuleTypeZip, "33166", driverA, 0),
	}
	candidates := []*parcel.Package{
		testPackageInStatus(t, parcel.StatusReceived),
	}

	cmd, err := commands.NewRunAssignmentRulesCommand(parcel.StatusReceived, true, "")
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	ruleRepo := new(MockRuleRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("GetAllEnabled", ctx).Return(rules, nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetUnassignedMatching", ctx, mock.AnythingOfType("assignment.Filter")).
			Return(candidates, nil).
			Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRuleRunUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunAssignmentRulesCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Assigned, "dry run reports what would have been assigned")
	assert.False(t, candidates[0].IsAssigned(), "dry run must not assign")
	packageRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)

	batch := batchRepo.Calls[0].Arguments[1].(*assignment.Batch)
	assert.True(t, batch.DryRun())
	assert.Equal(t, 1, batch.Assigned())
	assert.Equal(t, parcel.StatusReceived, batch.Filter().Status())

	uow.AssertExpectations(t)
}

func TestRunAssignmentRulesCommandHandler_Handle_NoRulesStillWritesBatch(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRunAssignmentRulesCommand("", false, "")
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	ruleRepo := new(MockRuleRepository)
	batchRepo := new(MockBatchRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RuleRepository").Return(ruleRepo).Once(),
		ruleRepo.On("GetAllEnabled", ctx).Return([]*assignment.Rule{}, nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetUnassignedMatching", ctx, mock.AnythingOfType("assignment.Filter")).
			Return([]*parcel.Package{testPackageInStatus(t, parcel.StatusReceived)}, nil).
			Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRuleRunUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunAssignmentRulesCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.Assigned)

	batch := batchRepo.Calls[0].Arguments[1].(*assignment.Batch)
	assert.Equal(t, 1, batch.Total())
	assert.Zero(t, batch.Assigned())
}
