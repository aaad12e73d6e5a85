package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	ErrAuthorization     = errors.New("operation is not permitted")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidRider      = errors.New("rider is invalid")
	ErrRiderBusy         = errors.New("rider is busy")
	ErrStaleState        = errors.New("state is stale")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// sanitize flattens multi-line values so error messages stay single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an entity could not be found in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AuthorizationError indicates that a principal attempted an operation their
// role or ownership does not allow. Authorization failures are permanent for
// the given call and must not be retried unmodified.
type AuthorizationError struct {
	PrincipalID string
	Operation   string
	Cause       error
}

// NewAuthorizationError creates an AuthorizationError without an underlying cause.
func NewAuthorizationError(principalID, operation string) *AuthorizationError {
	return &AuthorizationError{PrincipalID: principalID, Operation: operation}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an underlying cause.
func NewAuthorizationErrorWithCause(principalID, operation string, cause error) *AuthorizationError {
	return &AuthorizationError{PrincipalID: principalID, Operation: operation, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	msg := fmt.Sprintf("%s: principal is: %s, operation is: %s",
		ErrAuthorization, sanitize(e.PrincipalID), sanitize(e.Operation))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// InvalidTransitionError indicates that the requested target status is not a
// direct successor of the order's current status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given transition.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidRiderError indicates that an assignee does not resolve to a
// principal with the rider role.
type InvalidRiderError struct {
	RiderID string
	Cause   error
}

// NewInvalidRiderError creates an InvalidRiderError without an underlying cause.
func NewInvalidRiderError(riderID string) *InvalidRiderError {
	return &InvalidRiderError{RiderID: riderID}
}

// NewInvalidRiderErrorWithCause creates an InvalidRiderError wrapping an underlying cause.
func NewInvalidRiderErrorWithCause(riderID string, cause error) *InvalidRiderError {
	return &InvalidRiderError{RiderID: riderID, Cause: cause}
}

func (e *InvalidRiderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidRider, sanitize(e.RiderID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRider, sanitize(e.RiderID))
}

func (e *InvalidRiderError) Unwrap() error {
	return ErrInvalidRider
}

// RiderBusyError indicates that a rider is already bound to another order in
// an active delivery status. A rider may carry at most one order in the
// delivering or picked-up status at a time.
type RiderBusyError struct {
	RiderID       string
	ActiveOrderID string
}

// NewRiderBusyError creates a RiderBusyError naming the conflicting active order.
func NewRiderBusyError(riderID, activeOrderID string) *RiderBusyError {
	return &RiderBusyError{RiderID: riderID, ActiveOrderID: activeOrderID}
}

func (e *RiderBusyError) Error() string {
	return fmt.Sprintf("%s: rider is: %s, active order is: %s",
		ErrRiderBusy, sanitize(e.RiderID), sanitize(e.ActiveOrderID))
}

func (e *RiderBusyError) Unwrap() error {
	return ErrRiderBusy
}

// StaleStateError indicates that an optimistic update lost a race: the stored
// status no longer matched the status the caller read. The caller must
// re-fetch and decide whether to retry; this package never retries.
type StaleStateError struct {
	OrderID        string
	ExpectedStatus string
}

// NewStaleStateError creates a StaleStateError for the given order and expected status.
func NewStaleStateError(orderID, expectedStatus string) *StaleStateError {
	return &StaleStateError{OrderID: orderID, ExpectedStatus: expectedStatus}
}

func (e *StaleStateError) Error() string {
	return fmt.Sprintf("%s: order is: %s, expected status is: %s",
		ErrStaleState, sanitize(e.OrderID), sanitize(e.ExpectedStatus))
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

// StoreUnavailableError indicates an I/O failure talking to a collaborator
// (order store, role directory). This is the only error class eligible for a
// caller-directed retry.
type StoreUnavailableError struct {
	Operation string
	Cause     error
}

// NewStoreUnavailableError creates a StoreUnavailableError wrapping the I/O failure.
func NewStoreUnavailableError(operation string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, sanitize(e.Operation), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, sanitize(e.Operation))
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
