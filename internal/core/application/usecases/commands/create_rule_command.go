package commands

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrCreateRuleCommandIsNotConstructed = errors.New(
	"CreateRuleCommand must be created via NewCreateRuleCommand constructor",
)

// CreateRuleCommand represents a request to add an area assignment rule
// mapping a ZIP code or city to a driver.
type CreateRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID   kernel.UUID
	ruleType assignment.RuleType
	pattern  string
	driverID kernel.UUID
	priority int

	guard guard.ConstructorGuard
}

// NewCreateRuleCommand creates a rule creation command.
func NewCreateRuleCommand(
	ruleID kernel.UUID,
	ruleType assignment.RuleType,
	pattern string,
	driverID kernel.UUID,
	priority int,
) (CreateRuleCommand, error) {
	cmd := CreateRuleCommand{
		pattern:  strings.TrimSpace(pattern),
		priority: priority,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ruleID.Validate(),
		ruleType.Validate(),
		driverID.Validate(),
	); err != nil {
		return CreateRuleCommand{}, err
	}
	if cmd.pattern == "" {
		return CreateRuleCommand{}, errs.NewValueIsRequiredError("pattern")
	}

	cmd.ruleID = ruleID
	cmd.ruleType = ruleType
	cmd.driverID = driverID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRuleCommandIsNotConstructed)
}

// RuleID returns the unique identifier for the new rule.
func (c CreateRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

// RuleType returns whether the rule matches by ZIP or by city.
func (c CreateRuleCommand) RuleType() assignment.RuleType {
	return c.ruleType
}

// Pattern returns the ZIP code or city name to match.
func (c CreateRuleCommand) Pattern() string {
	return c.pattern
}

// DriverID returns the driver matching packages are assigned to.
func (c CreateRuleCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Priority returns the evaluation priority.
func (c CreateRuleCommand) Priority() int {
	return c.priority
}
