package services

import (
	"context"
	"testing"
	"time"

	"sportsstore-service/common/auth"
	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var accountSecret = []byte("account-secret")

func adminCreds(t *testing.T) AdminCredentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123$"), bcrypt.MinCost)
	require.NoError(t, err)
	return AdminCredentials{Username: "Admin", PasswordHash: string(hash)}
}

func TestLogin_IssuesAdminToken(t *testing.T) {
	svc := NewAccountService(adminCreds(t), accountSecret, time.Hour, zap.NewNop())

	res, err := svc.Login(context.Background(), models.LoginRequest{Username: "Admin", Password: "Secret123$"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)

	claims, err := auth.ParseAndValidateToken(res.Token, accountSecret, "access")
	require.NoError(t, err)
	assert.Equal(t, "Admin", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc := NewAccountService(adminCreds(t), accountSecret, time.Hour, zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "Admin", Password: "wrong"})
	assert.Equal(t, 401, apperrors.StatusCode(err))

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "admin2", Password: "Secret123$"})
	assert.Equal(t, 401, apperrors.StatusCode(err))
}

func TestLogin_NotConfigured(t *testing.T) {
	svc := NewAccountService(AdminCredentials{Username: "Admin"}, accountSecret, time.Hour, zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "Admin", Password: "x"})
	assert.Equal(t, 503, apperrors.StatusCode(err))
}
