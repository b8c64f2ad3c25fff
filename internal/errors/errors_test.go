package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "invoice"}
		assert.Equal(t, "invoice not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "room"}
		err2 := &NotFoundError{Entity: "room"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "room"}
		err2 := &NotFoundError{Entity: "property"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with wrapped predefined errors", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get invoice: %w", ErrInvoiceNotFound)
		assert.True(t, errors.Is(wrapped, ErrInvoiceNotFound))
		assert.False(t, errors.Is(wrapped, ErrPaymentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTenancyNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrRoomNotFound)))
		assert.False(t, IsNotFound(ErrInviteAlreadyAccepted))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "room", Context: "with this number in the property"}
		assert.Equal(t, "room already exists with this number in the property", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "invoice"}
		assert.Equal(t, "invoice already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ErrInviteAlreadyRejected))
		assert.False(t, IsValidation(ErrInvoiceNotFound))
	})
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	assert.False(t, fe.HasErrors())

	fe.Add("lines[1].amount", "must be positive")
	fe.Add("lines[0].item_type", "invalid item type")
	fe.Add("lines[1].amount", "required")

	assert.True(t, fe.HasErrors())
	assert.Equal(t, []string{"must be positive", "required"}, fe["lines[1].amount"])
	assert.Equal(t,
		"validation error: lines[0].item_type: invalid item type, lines[1].amount: must be positive; required",
		fe.Error())

	wrapped := fmt.Errorf("failed to create invoice: %w", fe)
	assert.True(t, IsValidation(wrapped))

	got, ok := AsFieldErrors(wrapped)
	assert.True(t, ok)
	assert.Len(t, got, 2)
}

func TestAsFieldErrorsFromValidationError(t *testing.T) {
	got, ok := AsFieldErrors(ErrInvalidBankAccount)
	assert.True(t, ok)
	assert.Equal(t, []string{"account number must be 6-19 digits"}, got["bank_account_number"])

	_, ok = AsFieldErrors(&ValidationError{Message: "no field"})
	assert.False(t, ok)

	_, ok = AsFieldErrors(ErrRoomNotFound)
	assert.False(t, ok)
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsAuthentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(NewAuthenticationError("token expired")))
		assert.False(t, IsAuthentication(ErrOnlyLandlords))
	})

	t.Run("IsAuthorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrOnlyLandlords))
		assert.True(t, IsAuthorization(fmt.Errorf("qr: %w", ErrInvoiceAccessDenied)))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("IsUnavailable", func(t *testing.T) {
		err := NewUnavailableError("bank list", errors.New("timeout"))
		assert.True(t, IsUnavailable(err))
		assert.Equal(t, "bank list unavailable: timeout", err.Error())
		assert.Equal(t, "bank list unavailable", ErrBanksUnavailable.Error())
		assert.False(t, IsUnavailable(ErrInvalidAmount))
	})

	t.Run("IsConfiguration", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing bucket")))
		assert.False(t, IsConfiguration(ErrInvalidAmount))
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidAmount, http.StatusBadRequest},
		{FieldErrors{"lines[0].amount": {"required"}}, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrNotPropertyOwner, http.StatusForbidden},
		{fmt.Errorf("load: %w", ErrInvoiceNotFound), http.StatusNotFound},
		{ErrInvoiceExists, http.StatusConflict},
		{ErrBanksUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestBody(t *testing.T) {
	body := Body(FieldErrors{"period": {"invalid period"}})
	assert.Equal(t, FieldErrors{"period": {"invalid period"}}, body["details"])

	body = Body(ErrInvoiceNotFound)
	assert.Equal(t, "invoice not found", body["error"])
	assert.NotContains(t, body, "details")

	body = Body(errors.New("pq: connection refused"))
	assert.Equal(t, "internal server error", body["error"])
}
