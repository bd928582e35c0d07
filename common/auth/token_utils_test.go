package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("unit-test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestParseAndValidateToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	claims, err := ParseAndValidateToken(sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"sub": "u-1", "role": "admin", "exp": exp,
	}), secret, "")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	claims, err = ParseAndValidateToken(sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"user_id": "u-2", "exp": exp,
	}), secret, "")
	require.NoError(t, err)
	assert.Equal(t, "u-2", claims.UserID)
}

func TestParseAndValidateToken_Rejects(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	_, err := ParseAndValidateToken(sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u", "exp": exp}), secret, "")
	assert.Error(t, err, "wrong key")

	_, err = ParseAndValidateToken(sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"role": "admin", "exp": exp}), secret, "")
	assert.Error(t, err, "no subject")

	_, err = ParseAndValidateToken(sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "u", "typ": "refresh", "exp": exp}), secret, "access")
	assert.Error(t, err, "wrong type")

	_, err = ParseAndValidateToken("token", nil, "")
	assert.Error(t, err, "no secret")
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc"))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken(""))
}

func TestIssueToken_RoundTrip(t *testing.T) {
	token, expiresAt, err := IssueToken(secret, "admin", "admin", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateToken(token, secret, "access")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, _, err = IssueToken(nil, "admin", "admin", time.Hour)
	assert.Error(t, err)
}
