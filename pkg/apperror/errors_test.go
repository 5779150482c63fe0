package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LED_001", "Insufficient balance", http.StatusUnprocessableEntity),
			expected: "[LED_001] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("LED_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("get last operation: %w", ErrAccountNotFound())

	assert.True(t, HasCode(ErrAccountNotFound(), CodeAccountNotFound))
	assert.True(t, HasCode(wrapped, CodeAccountNotFound))
	assert.False(t, HasCode(wrapped, CodeInsufficientBalance))
	assert.False(t, HasCode(errors.New("plain"), CodeAccountNotFound))
	assert.False(t, HasCode(nil, CodeAccountNotFound))
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AccountNotFound", ErrAccountNotFound(), "ACC_001", 404},
		{"InsufficientBalance", ErrInsufficientBalance(), "LED_001", 422},
		{"InvalidAmount", ErrInvalidAmount(), "LED_002", 400},
		{"InvalidToken", ErrInvalidToken(), "AUTH_003", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := errors.New("boom")

	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, http.StatusInternalServerError, dbErr.HTTPStatus)
	assert.ErrorIs(t, dbErr, inner)

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, lockErr.HTTPStatus)
	assert.ErrorIs(t, lockErr, inner)

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)

	rl := ErrRateLimitExceeded()
	assert.Equal(t, "SYS_003", rl.Code)
	assert.Equal(t, http.StatusTooManyRequests, rl.HTTPStatus)
}

func TestValidation(t *testing.T) {
	err := Validation("invalid account id")
	assert.Equal(t, "LED_002", err.Code)
	assert.Equal(t, "invalid account id", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}
