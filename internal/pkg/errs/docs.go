// Package errs provides standardized error types for the food order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of errors live here:
//
// Value errors, raised while validating input and constructing domain
// objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//   - ObjectNotFoundError: an entity cannot be found
//
// Order life-cycle errors, raised while applying operations to an order:
//   - AuthorizationError: the actor lacks the role or ownership for the operation
//   - InvalidTransitionError: the target status is not reachable from the current one
//   - InvalidRiderError: the assignee is not a rider
//   - RiderBusyError: the rider already carries an active order
//   - StaleStateError: an optimistic update lost a race with a concurrent actor
//   - StoreUnavailableError: collaborator I/O failed; the only retryable class
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStaleState)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All failures are surfaced to the caller; nothing in this taxonomy is
// recovered from silently, and no failure is fatal to the process.
package errs
