package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

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
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("hour", 25, 0, 23)

		assert.Equal(t, "hour", err.ParamName)
		assert.Equal(t, 25, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 23, err.Max)
		assert.Equal(t, "value is invalid: 25 is hour, min value is 0, max value is 23", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("items")

	assert.Equal(t, "items", err.ParamName)
	assert.Equal(t, "value is required: items", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestAuthorizationError(t *testing.T) {
	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := errs.NewAuthorizationError("user-1", "advance order")

		assert.Equal(t, "user-1", err.PrincipalID)
		assert.Equal(t, "advance order", err.Operation)
		assert.Equal(t,
			"operation is not permitted: principal is: user-1, operation is: advance order",
			err.Error())
		assert.Equal(t, errs.ErrAuthorization, err.Unwrap())
	})

	t.Run("NewAuthorizationErrorWithCause", func(t *testing.T) {
		cause := errors.New("not the restaurant manager")
		err := errs.NewAuthorizationErrorWithCause("user-1", "advance order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: not the restaurant manager)")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("pending", "ready")

	assert.Equal(t, "invalid status transition: pending -> ready", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestInvalidRiderError(t *testing.T) {
	err := errs.NewInvalidRiderError("rider-7")

	assert.Equal(t, "rider is invalid: rider-7", err.Error())
	assert.Equal(t, errs.ErrInvalidRider, err.Unwrap())
}

func TestRiderBusyError(t *testing.T) {
	err := errs.NewRiderBusyError("rider-7", "order-42")

	assert.Equal(t, "rider is busy: rider is: rider-7, active order is: order-42", err.Error())
	assert.Equal(t, errs.ErrRiderBusy, err.Unwrap())
}

func TestStaleStateError(t *testing.T) {
	err := errs.NewStaleStateError("order-42", "ready")

	assert.Equal(t, "state is stale: order is: order-42, expected status is: ready", err.Error())
	assert.Equal(t, errs.ErrStaleState, err.Unwrap())
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStoreUnavailableError("get order", cause)

	assert.Equal(t, "store unavailable: get order (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrStoreUnavailable, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewAuthorizationError("u", "op"), errs.ErrAuthorization)
		require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "ready"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewInvalidRiderError("r"), errs.ErrInvalidRider)
		require.ErrorIs(t, errs.NewRiderBusyError("r", "o"), errs.ErrRiderBusy)
		require.ErrorIs(t, errs.NewStaleStateError("o", "ready"), errs.ErrStaleState)
		require.ErrorIs(t, errs.NewStoreUnavailableError("op", errors.New("x")), errs.ErrStoreUnavailable)
	})

	t.Run("classes do not cross-match", func(t *testing.T) {
		err := errs.NewStaleStateError("o", "ready")
		assert.NotErrorIs(t, err, errs.ErrInvalidTransition)
		assert.NotErrorIs(t, err, errs.ErrAuthorization)
	})
}
