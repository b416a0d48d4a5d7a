package validator

import (
	"testing"

	"backoffice/dto"
	"backoffice/errors"

	"github.com/stretchr/testify/require"
)

func TestValidateStructRegisterInput(t *testing.T) {
	valid := dto.RegisterInput{Name: "An", Email: "an@example.com", Password: "secret1"}
	require.NoError(t, ValidateStruct(valid))

	tests := []struct {
		name    string
		input   dto.RegisterInput
		message string
	}{
		{
			name:    "missing name",
			input:   dto.RegisterInput{Email: "an@example.com", Password: "secret1"},
			message: "Name is required",
		},
		{
			name:    "bad email",
			input:   dto.RegisterInput{Name: "An", Email: "not-an-email", Password: "secret1"},
			message: "Email must be a valid email",
		},
		{
			name:    "short password",
			input:   dto.RegisterInput{Name: "An", Email: "an@example.com", Password: "abc"},
			message: "Password is too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			require.Equal(t, errors.ErrCodeValidation, appErr.Code)
			require.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("an@example.com"))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail(""))
}
