package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventtix/eventtix/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := errors.NewNotFoundError("event", "42")

	assert.Equal(t, "event with ID 42 not found", err.Error())
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, errors.IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("quantity", 0, "must be between 1 and 10")

	assert.Equal(t, "validation failed for field quantity: must be between 1 and 10", err.Error())
	assert.True(t, errors.IsValidationError(err))
}

func TestAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"unauthorized maps to session invalid", 401, errors.ErrSessionInvalid},
		{"forbidden maps to session invalid", 403, errors.ErrSessionInvalid},
		{"not found maps to not found", 404, errors.ErrNotFound},
		{"too many requests maps to rate limited", 429, errors.ErrRateLimited},
		{"server error maps to backend unavailable", 500, errors.ErrBackendUnavailable},
		{"bad gateway maps to backend unavailable", 502, errors.ErrBackendUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := errors.NewAPIError("data", tc.status, "boom")
			assert.True(t, stderrors.Is(err, tc.target))
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := errors.NewAPIError("identity", 500, "internal error")
	assert.Equal(t, "API error from identity (status 500): internal error", err.Error())

	err = &errors.APIError{Service: "data", Message: "connection refused"}
	assert.Equal(t, "API error from data: connection refused", err.Error())
}

func TestAuthenticationError(t *testing.T) {
	cause := stderrors.New("invalid credentials")
	err := errors.NewAuthenticationError("signin", "invalid credentials", cause)

	assert.Equal(t, "authentication error during signin: invalid credentials", err.Error())
	assert.True(t, errors.IsSessionInvalid(err))
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, errors.WrapIO("read", "favorites.json", nil))
	assert.NoError(t, errors.WrapParse("json", "favorites.json", nil))
	assert.NoError(t, errors.WrapResource("fetch", "catalogue", "", nil))

	cause := stderrors.New("permission denied")
	err := errors.WrapIO("write", "favorites.json", cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))

	var ioErr *errors.IOError
	assert.True(t, stderrors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Operation)
}
