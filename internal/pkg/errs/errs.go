package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the typed errors below.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	ErrInvalidState     = errors.New("invalid state")
	ErrItemNotFound     = errors.New("order item not found")
	ErrInvalidQuantity  = errors.New("quantity is invalid")
	ErrEvidenceRequired = errors.New("evidence is required")
	ErrNotAuthorized    = errors.New("not authorized")
)

// sanitize strips newlines from values interpolated into error messages
// so a single log line stays a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value failed domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

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

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a mandatory value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

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

// InvalidStateError indicates a workflow transition was attempted from a status
// that does not permit it. Also reported when a conditional update loses a race,
// since the loser observed a status that no longer holds.
type InvalidStateError struct {
	Action        string
	CurrentStatus string
}

func NewInvalidStateError(action, currentStatus string) *InvalidStateError {
	return &InvalidStateError{Action: action, CurrentStatus: currentStatus}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s", ErrInvalidState, e.Action, e.CurrentStatus)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ItemNotFoundError indicates a quantity payload referenced an item
// that is not part of the order.
type ItemNotFoundError struct {
	SKU string
}

func NewItemNotFoundError(sku string) *ItemNotFoundError {
	return &ItemNotFoundError{SKU: sku}
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemNotFound, e.SKU)
}

func (e *ItemNotFoundError) Unwrap() error {
	return ErrItemNotFound
}

// InvalidQuantityError indicates a negative approved quantity.
type InvalidQuantityError struct {
	SKU      string
	Quantity int
}

func NewInvalidQuantityError(sku string, quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{SKU: sku, Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d for item %s", ErrInvalidQuantity, e.Quantity, e.SKU)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// EvidenceRequiredError indicates a stage transition was attempted without
// the mandatory attachment.
type EvidenceRequiredError struct {
	Stage string
}

func NewEvidenceRequiredError(stage string) *EvidenceRequiredError {
	return &EvidenceRequiredError{Stage: stage}
}

func (e *EvidenceRequiredError) Error() string {
	return fmt.Sprintf("%s: transition to %s needs at least one attachment", ErrEvidenceRequired, e.Stage)
}

func (e *EvidenceRequiredError) Unwrap() error {
	return ErrEvidenceRequired
}

// NotAuthorizedError indicates an actor role or ownership mismatch.
type NotAuthorizedError struct {
	ActorID string
	Reason  string
}

func NewNotAuthorizedError(actorID, reason string) *NotAuthorizedError {
	return &NotAuthorizedError{ActorID: actorID, Reason: reason}
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: actor %s: %s", ErrNotAuthorized, e.ActorID, e.Reason)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}
