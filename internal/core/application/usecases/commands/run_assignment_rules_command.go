package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/guard"
)

var ErrRunAssignmentRulesCommandIsNotConstructed = errors.New(
	"RunAssignmentRulesCommand must be created via NewRunAssignmentRulesCommand constructor",
)

// RunAssignmentRulesCommand represents a request to run the area assignment
// rules over the unassigned backlog. A dry run computes and records what the
// run would have assigned without touching any package.
type RunAssignmentRulesCommand struct { //nolint:recvcheck //using for validation
	status parcel.Status
	dryRun bool
	notes  string

	guard guard.ConstructorGuard
}

// NewRunAssignmentRulesCommand creates a rule run command. An empty status
// considers all assignable candidates; otherwise candidates are narrowed to
// that status.
func NewRunAssignmentRulesCommand(status parcel.Status, dryRun bool, notes string) (RunAssignmentRulesCommand, error) {
	cmd := RunAssignmentRulesCommand{
		dryRun: dryRun,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if status != "" {
		if err := status.Validate(); err != nil {
			return RunAssignmentRulesCommand{}, err
		}
	}
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RunAssignmentRulesCommand) Validate() error {
	return c.guard.Validate(ErrRunAssignmentRulesCommandIsNotConstructed)
}

// Status returns the candidate status restriction, empty for any assignable.
func (c RunAssignmentRulesCommand) Status() parcel.Status {
	return c.status
}

// DryRun reports whether the run should skip the assignment writes.
func (c RunAssignmentRulesCommand) DryRun() bool {
	return c.dryRun
}

// Notes returns optional operator notes recorded on the batch.
func (c RunAssignmentRulesCommand) Notes() string {
	return c.notes
}
