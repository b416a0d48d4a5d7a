package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 42, Role: "admin"}, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), userID)
	require.Equal(t, "admin", role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	_, _, err := ParseToken("not-a-token")
	require.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "first-secret")
	token, err := GenerateToken(UserInfo{UserID: 7, Role: "employee"}, 60)
	require.NoError(t, err)

	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "another-secret")
	_, _, err = ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 42, Role: "admin"}, -1)
	require.NoError(t, err)

	_, _, err = ParseToken(token)
	require.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hashed)

	require.NoError(t, CheckPassword(hashed, "s3cret-pass"))
	require.Error(t, CheckPassword(hashed, "wrong-pass"))
}
