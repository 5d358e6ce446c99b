package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Each concrete error type in this package unwraps to one of these.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy its constraints.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates a package status change that the
// finite-state machine does not allow. It carries the offending pair and the
// set of statuses that would have been accepted from the current state.
type InvalidTransitionError struct {
	From    string
	To      string
	Allowed []string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
// The allowed slice should already be sorted for stable messages.
func NewInvalidTransitionError(from, to string, allowed []string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Allowed: allowed}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s, allowed: [%s]",
		ErrInvalidTransition, e.From, e.To, strings.Join(e.Allowed, ", ")))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PermissionDeniedError indicates that the acting party lacks the authority
// to perform an operation.
type PermissionDeniedError struct {
	Action string
	Actor  string
}

// NewPermissionDeniedError creates a PermissionDeniedError for the given actor and action.
func NewPermissionDeniedError(action, actor string) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action, Actor: actor}
}

func (e *PermissionDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed to %s", ErrPermissionDenied, e.Actor, e.Action))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// ReferentialIntegrityError indicates an attempted delete of an entity that
// other records still reference. The delete is rejected, never cascaded.
type ReferentialIntegrityError struct {
	ParamName    string
	ID           any
	ReferencedBy string
}

// NewReferentialIntegrityError creates a ReferentialIntegrityError for the given entity.
func NewReferentialIntegrityError(paramName string, id any, referencedBy string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{ParamName: paramName, ID: id, ReferencedBy: referencedBy}
}

func (e *ReferentialIntegrityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v is still referenced by %s",
		ErrReferentialIntegrity, e.ParamName, e.ID, e.ReferencedBy))
}

func (e *ReferentialIntegrityError) Unwrap() error {
	return ErrReferentialIntegrity
}
