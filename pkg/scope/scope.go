package scope

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrMissingScope = errors.New("scope: no scope in context")
)

// Payload is the signed identity carried by an access token.
type Payload struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// New creates an HMAC-SHA256 token manager.
func New(secretKey string, ttl time.Duration) Manager {
	return &implManager{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	now := m.now()
	p.Subject = strconv.FormatInt(p.UserID, 10)
	p.IssuedAt = jwt.NewNumericDate(now)
	if m.ttl > 0 {
		p.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, p)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(tokenString string) (Payload, error) {
	var p Payload
	token, err := jwt.ParseWithClaims(tokenString, &p, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}
	if p.UserID <= 0 {
		return Payload{}, ErrInvalidToken
	}
	return p, nil
}

type ctxKey struct{}

// SetPayloadToContext stores p in ctx.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(ctxKey{}).(Payload)
	return p, ok
}
