package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the subset of token claims the storefront reads.
type Claims struct {
	UserID string
	Role   string
}

// ParseAndValidateToken parses an HMAC-signed JWT and returns its identity claims.
// If expectedType is non-empty, the claim "typ" must match it.
func ParseAndValidateToken(tokenStr string, secret []byte, expectedType string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(strings.TrimSpace(tokenStr), func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	if expectedType != "" {
		if typ, ok := mc["typ"].(string); !ok || typ != expectedType {
			return nil, fmt.Errorf("invalid token type")
		}
	}

	claims := &Claims{}
	claims.UserID, _ = mc["sub"].(string)
	if claims.UserID == "" {
		claims.UserID, _ = mc["user_id"].(string)
	}
	claims.Role, _ = mc["role"].(string)
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// IssueToken signs an HS256 access token for userID with the given role.
func IssueToken(secret []byte, userID, role string, ttl time.Duration) (string, time.Time, error) {
	if len(secret) == 0 {
		return "", time.Time{}, fmt.Errorf("JWT secret not configured")
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"typ":  "access",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}
