package errs_test

import (
	"errors"
	"testing"

	"replenish/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("workingHours", 150, 1, 120)

		assert.Equal(t, "workingHours", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, "value is out of range: workingHours is 150, min value is 1, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("branchId")

	assert.Equal(t, "branchId", err.ParamName)
	assert.Equal(t, "value is required: branchId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("approve", "ConfirmPending")

	assert.Equal(t, "approve", err.Action)
	assert.Equal(t, "ConfirmPending", err.CurrentStatus)
	assert.Equal(t, "invalid state: cannot approve an order in status ConfirmPending", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestItemNotFoundError(t *testing.T) {
	err := errs.NewItemNotFoundError("SKU-42")

	assert.Equal(t, "SKU-42", err.SKU)
	assert.Equal(t, "order item not found: SKU-42", err.Error())
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestInvalidQuantityError(t *testing.T) {
	err := errs.NewInvalidQuantityError("SKU-42", -3)

	assert.Equal(t, -3, err.Quantity)
	assert.Equal(t, "quantity is invalid: -3 for item SKU-42", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidQuantity)
}

func TestEvidenceRequiredError(t *testing.T) {
	err := errs.NewEvidenceRequiredError("Arranged")

	assert.Equal(t, "Arranged", err.Stage)
	assert.Equal(t, "evidence is required: transition to Arranged needs at least one attachment", err.Error())
	require.ErrorIs(t, err, errs.ErrEvidenceRequired)
}

func TestNotAuthorizedError(t *testing.T) {
	err := errs.NewNotAuthorizedError("m-1", "manager is not assigned to the order's branch")

	assert.Equal(t, "m-1", err.ActorID)
	assert.Equal(t,
		"not authorized: actor m-1: manager is not assigned to the order's branch",
		err.Error())
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("hours", 150, 0, 120), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("branchId"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewInvalidStateError("close", "InTransit"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewItemNotFoundError("SKU-1"), errs.ErrItemNotFound)
	require.ErrorIs(t, errs.NewInvalidQuantityError("SKU-1", -1), errs.ErrInvalidQuantity)
	require.ErrorIs(t, errs.NewEvidenceRequiredError("InTransit"), errs.ErrEvidenceRequired)
	require.ErrorIs(t, errs.NewNotAuthorizedError("m-1", "wrong branch"), errs.ErrNotAuthorized)
}
