package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundtrip(t *testing.T) {
	uid := uuid.New()

	tok, err := Issue("secret", uid, true, 1)
	require.NoError(t, err)

	claims, err := ParseAuth("Bearer "+tok, "secret")
	require.NoError(t, err)
	require.Equal(t, uid.String(), claims["sub"])
	require.Equal(t, true, claims["is_admin"])
}

func TestParseAuth_WrongSecret(t *testing.T) {
	tok, err := Issue("secret", uuid.New(), false, 1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+tok, "other-secret")
	require.Error(t, err)
}

func TestParseAuth_MissingHeader(t *testing.T) {
	_, err := ParseAuth("", "secret")
	require.Error(t, err)

	_, err = ParseAuth("Bearer ", "secret")
	require.Error(t, err)
}

func TestParseAuth_Expired(t *testing.T) {
	tok, err := Issue("secret", uuid.New(), false, -1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+tok, "secret")
	require.Error(t, err)
}
