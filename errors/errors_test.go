package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidStatus, http.StatusBadRequest},
		{ErrCodeUserExists, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidToken, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeDBError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HTTPStatus(tt.code), string(tt.code))
	}
}

func TestGetAppErrorUnwrapsWrappedError(t *testing.T) {
	appErr := NewAppError(ErrCodeNotFound, "Sale not found", ErrSaleNotFound)
	wrapped := fmt.Errorf("list sales: %w", appErr)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	require.Equal(t, ErrCodeNotFound, got.Code)
	require.Equal(t, "Sale not found", got.Message)
}

func TestGetAppErrorPlainError(t *testing.T) {
	require.Nil(t, GetAppError(fmt.Errorf("plain")))
	require.Nil(t, GetAppError(nil))
}
