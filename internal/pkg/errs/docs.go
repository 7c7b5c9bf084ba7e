// Package errs provides standardized error types for the replenishment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic validation errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the workflow error taxonomy of the order lifecycle:
//   - InvalidStateError: transition attempted from a status that doesn't permit it
//   - ItemNotFoundError: quantity payload references an item not on the order
//   - InvalidQuantityError: negative approved quantity
//   - EvidenceRequiredError: stage transition missing a mandatory attachment
//   - NotAuthorizedError: actor role or ownership mismatch
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works
//
// All workflow errors are reported synchronously to the caller and are never
// retried automatically.
package errs
