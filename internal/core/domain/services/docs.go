// Package services contains domain services: operations that span multiple
// aggregates and therefore do not belong to any single one. The RuleEngine
// plans rule-driven package assignment without touching storage; use cases
// apply its plans inside a unit of work.
package services
