// Package assignment holds the rule-driven assignment model: area rules that
// map ZIP codes or cities to drivers, and the batch records that audit each
// assignment run. The matching itself is performed by the RuleEngine domain
// service; this package only defines the data and its invariants.
package assignment
