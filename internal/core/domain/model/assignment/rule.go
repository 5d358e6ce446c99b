package assignment

import (
	"errors"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not created
// through NewRule or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")

// RuleType selects which address field a rule matches against.
type RuleType string

const (
	// RuleTypeZip matches the package's ZIP code exactly.
	RuleTypeZip RuleType = "zip"
	// RuleTypeCity matches the package's city case-insensitively.
	RuleTypeCity RuleType = "city"
)

// Validate checks that the RuleType is one of the defined values.
func (rt RuleType) Validate() error {
	if rt != RuleTypeZip && rt != RuleTypeCity {
		return errs.NewValueIsInvalidError("rule_type")
	}
	return nil
}

// Rule maps a delivery area to a driver for automatic assignment. Rules are
// evaluated in descending priority order; the first matching enabled rule
// claims a package, so overlapping areas resolve deterministically.
type Rule struct {
	id       kernel.UUID
	ruleType RuleType
	pattern  string
	driverID kernel.UUID
	priority int
	enabled  bool

	createdAt time.Time

	isConstructed bool
}

// NewRule creates an enabled assignment rule. The pattern is the ZIP code or
// city name to match, depending on ruleType.
func NewRule(
	id kernel.UUID,
	ruleType RuleType,
	pattern string,
	driverID kernel.UUID,
	priority int,
	createdAt time.Time,
) (*Rule, error) {
	return RestoreRule(id, ruleType, pattern, driverID, priority, true, createdAt)
}

// RestoreRule reconstructs a rule from persistence, including its enabled flag.
func RestoreRule(
	id kernel.UUID,
	ruleType RuleType,
	pattern string,
	driverID kernel.UUID,
	priority int,
	enabled bool,
	createdAt time.Time,
) (*Rule, error) {
	pattern = strings.TrimSpace(pattern)

	if err := errors.Join(
		id.Validate(),
		ruleType.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, errs.NewValueIsRequiredError("pattern")
	}

	return &Rule{
		id:            id,
		ruleType:      ruleType,
		pattern:       pattern,
		driverID:      driverID,
		priority:      priority,
		enabled:       enabled,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Rule instance was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// Type returns whether the rule matches by ZIP or by city.
func (r *Rule) Type() RuleType {
	return r.ruleType
}

// Pattern returns the ZIP code or city name the rule matches.
func (r *Rule) Pattern() string {
	return r.pattern
}

// DriverID returns the driver that matching packages are assigned to.
func (r *Rule) DriverID() kernel.UUID {
	return r.driverID
}

// Priority returns the evaluation priority; higher rules are evaluated first.
func (r *Rule) Priority() int {
	return r.priority
}

// Enabled reports whether the rule participates in assignment runs.
func (r *Rule) Enabled() bool {
	return r.enabled
}

// CreatedAt returns when the rule was created.
func (r *Rule) CreatedAt() time.Time {
	return r.createdAt
}

// Enable turns the rule on for future assignment runs.
func (r *Rule) Enable() {
	r.enabled = true
}

// Disable excludes the rule from future assignment runs without deleting it.
func (r *Rule) Disable() {
	r.enabled = false
}

// Matches reports whether the given address falls in the rule's area.
// Disabled rules never match.
func (r *Rule) Matches(address kernel.Address) bool {
	if !r.enabled {
		return false
	}
	switch r.ruleType {
	case RuleTypeZip:
		return address.MatchesZip(r.pattern)
	case RuleTypeCity:
		return address.MatchesCity(r.pattern)
	}
	return false
}

// Less defines the evaluation order for assignment runs: priority descending,
// then rule type, then pattern. The tie-breakers keep runs reproducible when
// priorities collide.
func (r *Rule) Less(other *Rule) bool {
	if r.priority != other.priority {
		return r.priority > other.priority
	}
	if r.ruleType != other.ruleType {
		return r.ruleType < other.ruleType
	}
	return r.pattern < other.pattern
}
