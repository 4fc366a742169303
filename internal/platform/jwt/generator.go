package jwtmw

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any malformed, expired, or badly signed token.
var ErrInvalidToken = errors.New("invalid token")

// Generator defines the interface for session token generation and parsing.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint) (string, error)
	// ParseToken verifies a raw token and returns the user ID, the token ID
	// used for revocation, and the expiry. Any failure yields ErrInvalidToken;
	// callers never see partial claims.
	ParseToken(raw string) (userID uint, tokenID string, expiresAt time.Time, err error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new token generator with the provided secret and
// expiration duration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 token with standard claims plus a
// random token ID.
func (g *generator) GenerateToken(userID uint) (string, error) {
	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(g.expiration).Unix(),
		"iat": time.Now().Unix(),
		"jti": hex.EncodeToString(jti),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of a raw token.
func (g *generator) ParseToken(raw string) (uint, string, time.Time, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; reject tokens from unknown signers.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", time.Time{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", time.Time{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok || sub <= 0 {
		return 0, "", time.Time{}, ErrInvalidToken
	}

	tokenID, _ := claims["jti"].(string)
	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}
	return uint(sub), tokenID, expiresAt, nil
}
