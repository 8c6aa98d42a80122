package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": jwt.NewNumericDate(exp.Add(-time.Hour)),
		"exp": jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	info, err := InspectToken(signedToken(t, "user-42", exp))

	require.NoError(t, err)
	assert.Equal(t, "user-42", info.Subject)
	assert.Equal(t, exp.Unix(), info.ExpiresAt.Unix())
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Minute)))
}

func TestInspectToken_Garbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}
