package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/cropool/backend/internal/pkg/models"
)

// TokenKind distinguishes access tokens from refresh tokens
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// GenerateToken issues a signed HS256 token of the given kind for a user.
// Returns the token string and its expiration as a unix timestamp.
func GenerateToken(userID uuid.UUID, email string, kind TokenKind, cfg *models.Config) (string, int64, error) {
	minutes := cfg.JWT.AccessExpiration
	if kind == KindRefresh {
		minutes = cfg.JWT.RefreshExpiration
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(minutes) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"e_mail":  email,
		"kind":    string(kind),
		"iat":     now.Unix(),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token of the expected kind and returns its claims.
func ValidateToken(tokenString string, secret string, kind TokenKind) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if got, _ := claims["kind"].(string); got != string(kind) {
		return nil, fmt.Errorf("unexpected token kind %q", got)
	}

	return &claims, nil
}

// IssuedAt extracts the iat claim as a time.Time.
func IssuedAt(claims *jwt.MapClaims) (time.Time, error) {
	iat, ok := (*claims)["iat"].(float64)
	if !ok {
		return time.Time{}, fmt.Errorf("missing iat claim")
	}
	return time.Unix(int64(iat), 0), nil
}
