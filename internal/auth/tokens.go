package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionTokenTTL bounds how long a login session stays valid.
	SessionTokenTTL = time.Hour

	// ResetTokenTTL bounds the password-reset window.
	ResetTokenTTL = 5 * time.Minute
)

// ErrInvalidToken covers every verification failure: bad signature, expired,
// malformed. Callers do not need to distinguish.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims binds a user identity to an expiry.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func signToken(key []byte, userID, email string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func parseToken(key []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// NewSessionToken mints a signed session token for a logged-in user.
func NewSessionToken(secret, userID, email string) (string, error) {
	return signToken([]byte(secret), userID, email, SessionTokenTTL)
}

// ParseSessionToken verifies a session token and returns its claims.
func ParseSessionToken(secret, tokenStr string) (*Claims, error) {
	return parseToken([]byte(secret), tokenStr)
}

// resetKey derives the reset-token signing key from the server secret and the
// user's current password hash. A successful reset changes the hash, so every
// token minted before it fails verification afterwards.
func resetKey(secret, passwordHash string) []byte {
	return []byte(secret + passwordHash)
}

// NewResetToken mints a short-lived password-reset token for the user.
func NewResetToken(secret, passwordHash, userID, email string) (string, error) {
	return signToken(resetKey(secret, passwordHash), userID, email, ResetTokenTTL)
}

// ParseResetToken verifies a reset token against the user's current password
// hash.
func ParseResetToken(secret, passwordHash, tokenStr string) (*Claims, error) {
	return parseToken(resetKey(secret, passwordHash), tokenStr)
}
