package services

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"sportsstore-service/common/auth"
	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = apperrors.New(http.StatusUnauthorized, "Invalid username or password", nil)

// AdminCredentials is the single configured administrator account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AccountService signs administrators in and issues bearer tokens.
type AccountService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
}

type accountServiceImpl struct {
	creds    AdminCredentials
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAccountService(creds AdminCredentials, secret []byte, tokenTTL time.Duration, logger *zap.Logger) AccountService {
	return &accountServiceImpl{creds: creds, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

func (s *accountServiceImpl) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	if s.creds.PasswordHash == "" || len(s.secret) == 0 {
		return nil, apperrors.Withf(apperrors.ErrServiceUnavailable, "admin login is not configured")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		s.logger.Warn("Admin login rejected", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := auth.IssueToken(s.secret, s.creds.Username, "admin", s.tokenTTL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.logger.Info("Admin logged in", zap.String("username", req.Username))
	return &models.LoginResult{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}
