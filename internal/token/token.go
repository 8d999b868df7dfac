// Package token issues and checks the session tokens handed out on login.
// Tokens are only issued when JWT_SECRET is configured; without it the admin
// routes stay open, which is what the bundled front-end expects in development.
package token

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// ConfigFromEnv reads JWT_SECRET, JWT_TTL (Go duration) and JWT_ISSUER.
func ConfigFromEnv() Config {
	ttl := 12 * time.Hour
	if v, err := time.ParseDuration(os.Getenv("JWT_TTL")); err == nil && v > 0 {
		ttl = v
	}
	iss := os.Getenv("JWT_ISSUER")
	if iss == "" {
		iss = "campus-chaos"
	}
	return Config{Secret: os.Getenv("JWT_SECRET"), TTL: ttl, Issuer: iss}
}

// Claims carried by a session token.
type Claims struct {
	Role string `json:"rol"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens. A nil *Service means tokens are disabled.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// New returns nil when no secret is configured.
func New(cfg Config) *Service {
	if cfg.Secret == "" {
		return nil
	}
	return &Service{secret: []byte(cfg.Secret), ttl: cfg.TTL, issuer: cfg.Issuer, now: time.Now}
}

func (s *Service) Enabled() bool { return s != nil }

// Issue signs a token for the user.
func (s *Service) Issue(userID int64, role string) (string, error) {
	if s == nil {
		return "", errors.New("token service disabled")
	}
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature, issuer and expiry.
func (s *Service) Parse(raw string) (*Claims, error) {
	if s == nil {
		return nil, errors.New("token service disabled")
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

type ctxKey struct{}

// WithClaims stores verified claims on the context.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the claims stored by the admin guard.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}
