// Package parcel implements the package ledger aggregate: the Package entity
// with its finite-state machine, the append-only Event history, and the
// DeliveryAttempt protocol with proof-of-delivery photos.
//
// Package is the aggregate root. Events, attempts and photos are owned by it
// and share its lifecycle. Status changes must pass the FSM in status.go; the
// allowed-transition table is the single source of truth for which moves are
// legal, and every successful change is mirrored by exactly one Event created
// in the same unit of work.
package parcel
