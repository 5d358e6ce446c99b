package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/core/domain/services"
)

// RuleRunResult reports what one rule-driven assignment run did: how many
// packages it assigned (or would have) and the audit batch that recorded it.
type RuleRunResult struct {
	Assigned int
	BatchID  kernel.UUID
}

// RunAssignmentRulesCommandHandler orchestrates a rule-driven assignment run.
// It loads the enabled rules and the unassigned candidates, has the
// RuleEngine plan the claims, applies them unless the run is dry, and always
// records one audit batch. Dry runs are recorded too, so the numbers
// operators saw are reconstructable later.
type RunAssignmentRulesCommandHandler struct {
	uowFactory RuleRunUoWFactory
	engine     services.RuleEngine
}

// NewRunAssignmentRulesCommandHandler creates a handler for rule runs.
func NewRunAssignmentRulesCommandHandler(uowFactory RuleRunUoWFactory) RunAssignmentRulesCommandHandler {
	return RunAssignmentRulesCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewRuleEngine(),
	}
}

// Handle runs the rules and returns the run result. Planning happens in
// memory over a snapshot of the candidates, so a dry run reports exactly what
// a real run over the same data would have done.
func (h RunAssignmentRulesCommandHandler) Handle(ctx context.Context, cmd RunAssignmentRulesCommand) (RuleRunResult, error) {
	if err := cmd.Validate(); err != nil {
		return RuleRunResult{}, err
	}

	filter, err := assignment.NewFilter(cmd.Status(), "", "")
	if err != nil {
		return RuleRunResult{}, err
	}

	startedAt := time.Now()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RuleRunResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().GetAllEnabled(ctx)
	if err != nil {
		return RuleRunResult{}, err
	}

	packageRepo := uow.PackageRepository()

	candidates, err := packageRepo.GetUnassignedMatching(ctx, filter)
	if err != nil {
		return RuleRunResult{}, err
	}

	plan, err := h.engine.Plan(rules, candidates)
	if err != nil {
		return RuleRunResult{}, err
	}

	now := time.Now()

	if !cmd.DryRun() {
		eventRepo := uow.EventRepository()

		for _, claim := range plan.Claims {
			driverID := claim.DriverID()

			if err = claim.Package.Assign(driverID, now); err != nil {
				return RuleRunResult{}, err
			}

			event, err := parcel.NewEvent(
				kernel.NewUUID(), claim.Package.ID(), parcel.EventAssigned,
				claim.Package.Status(), claim.Package.Status(), now, &driverID, nil, "")
			if err != nil {
				return RuleRunResult{}, err
			}

			if err = packageRepo.Update(ctx, claim.Package); err != nil {
				return RuleRunResult{}, err
			}
			if err = eventRepo.Add(ctx, event); err != nil {
				return RuleRunResult{}, err
			}
		}
	}

	batch, err := assignment.NewBatch(
		kernel.NewUUID(), filter, plan.Total, plan.Assigned(),
		cmd.DryRun(), cmd.Notes(), startedAt, time.Now())
	if err != nil {
		return RuleRunResult{}, err
	}

	if err = uow.BatchRepository().Add(ctx, batch); err != nil {
		return RuleRunResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RuleRunResult{}, err
	}

	return RuleRunResult{Assigned: plan.Assigned(), BatchID: batch.ID()}, nil
}
