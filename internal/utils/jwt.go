package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/launchperks/deals-service/internal/domain"
)

// JWTManager issues and verifies access and refresh tokens. The two token
// kinds are signed with distinct secrets and carry a type tag, so a refresh
// token can never pass access verification or vice versa.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssuePair generates a new access/refresh token pair for a user. Issuing
// does not persist anything; the caller stores the refresh token on the user
// record, which invalidates any previously stored one.
func (j *JWTManager) IssuePair(userID string) (*domain.TokenPair, error) {
	accessToken, err := j.generate(userID, domain.TokenTypeAccess, j.accessSecret, j.accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := j.generate(userID, domain.TokenTypeRefresh, j.refreshSecret, j.refreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (j *JWTManager) generate(userID, tokenType string, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"exp":     now.Add(expiry).Unix(),
		"iat":     now.Unix(),
		"jti":     uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccess validates an access token and returns the user ID
func (j *JWTManager) VerifyAccess(tokenString string) (string, error) {
	return j.verify(tokenString, domain.TokenTypeAccess, j.accessSecret)
}

// VerifyRefresh validates a refresh token and returns the user ID
func (j *JWTManager) VerifyRefresh(tokenString string) (string, error) {
	return j.verify(tokenString, domain.TokenTypeRefresh, j.refreshSecret)
}

func (j *JWTManager) verify(tokenString, tokenType string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims["type"] != tokenType {
		return "", fmt.Errorf("invalid token type")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid user_id in token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return "", fmt.Errorf("invalid exp in token")
	}

	if time.Now().Unix() > int64(exp) {
		return "", fmt.Errorf("token is expired")
	}

	return userID, nil
}

// AccessExpirySeconds returns the access token lifetime in seconds
func (j *JWTManager) AccessExpirySeconds() int {
	return int(j.accessExpiry.Seconds())
}
