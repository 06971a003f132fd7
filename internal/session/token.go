// Package session issues and checks the bearer tokens that carry a signed-in
// actor, and remembers which tokens were invalidated before they expired.
package session

import (
	"errors"
	"fmt"
	"time"

	"afyajirani-backend/internal/access"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("session: invalid token")
	ErrExpiredToken = errors.New("session: token expired")
)

// Claims is the JWT payload.
type Claims struct {
	UserID     uint64  `json:"user_id"`
	Role       string  `json:"role"`
	HospitalID *uint64 `json:"hospital_id,omitempty"`
	Email      string  `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Actor turns the claims back into the actor the gate reasons about.
func (c *Claims) Actor() access.Actor {
	a := access.Authenticated(c.UserID, c.Role, c.HospitalID)
	a.Email = c.Email
	return a
}

// TokenID is the unique id a revocation is keyed on.
func (c *Claims) TokenID() string { return c.ID }

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a token for actor with a fresh id.
func (m *Manager) Issue(actor access.Actor) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		UserID:     actor.UserID,
		Role:       actor.Role,
		HospitalID: actor.HospitalID,
		Email:      actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(actor.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Parse verifies a token. An expired but otherwise valid token returns its
// claims together with ErrExpiredToken so the caller can still tell which
// session ended.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return claims, ErrExpiredToken
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}

// Remaining is how long the token would still have been valid.
func (m *Manager) Remaining(c *Claims) time.Duration {
	if c.ExpiresAt == nil {
		return m.ttl
	}
	d := c.ExpiresAt.Time.Sub(m.now())
	if d < 0 {
		return 0
	}
	return d
}
