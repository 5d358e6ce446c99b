package services

import (
	"sort"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// MaxClaimsPerRule caps how many packages one rule may claim in a single run,
// so a broad city rule cannot starve the run or flood one driver.
const MaxClaimsPerRule = 5000

// Claim is one planned assignment: a package a rule wants to hand to a driver.
type Claim struct {
	Package *parcel.Package
	Rule    *assignment.Rule
}

// DriverID returns the driver the claim assigns the package to.
func (c Claim) DriverID() kernel.UUID {
	return c.Rule.DriverID()
}

// Plan is the outcome of matching rules against candidate packages. It holds
// the claims in rule evaluation order plus the run totals, without any state
// having been mutated. Callers decide whether to apply it or to report it as
// a dry run; either way the numbers are the same.
type Plan struct {
	Claims []Claim
	Total  int
}

// Assigned returns the number of packages the plan claims.
func (p Plan) Assigned() int {
	return len(p.Claims)
}

// RuleEngine is a domain service that matches area assignment rules against
// unassigned packages.
//
// Evaluation rules:
//   - Rules are evaluated in priority order, highest first; ties break on
//     rule type then pattern, so runs are reproducible
//   - Each package is claimed by at most one rule (the first that matches)
//   - Each rule claims at most MaxClaimsPerRule packages per run
//   - Disabled rules never claim anything
type RuleEngine struct{}

// NewRuleEngine creates a new RuleEngine instance.
func NewRuleEngine() RuleEngine {
	return RuleEngine{}
}

// Plan matches rules against candidates and returns the resulting claims.
// Neither rules nor packages are mutated; applying the claims is the caller's
// job. Invalid entries in either slice abort the run.
func (e RuleEngine) Plan(rules []*assignment.Rule, candidates []*parcel.Package) (Plan, error) {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return Plan{}, err
		}
	}
	for _, pkg := range candidates {
		if err := pkg.Validate(); err != nil {
			return Plan{}, err
		}
	}

	ordered := make([]*assignment.Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	plan := Plan{Total: len(candidates)}
	claimed := make(map[kernel.UUID]bool, len(candidates))

	for _, rule := range ordered {
		claims := 0
		for _, pkg := range candidates {
			if claims >= MaxClaimsPerRule {
				break
			}
			if claimed[pkg.ID()] || pkg.IsAssigned() {
				continue
			}
			if !rule.Matches(pkg.Address()) {
				continue
			}

			claimed[pkg.ID()] = true
			claims++
			plan.Claims = append(plan.Claims, Claim{Package: pkg, Rule: rule})
		}
	}

	return plan, nil
}
