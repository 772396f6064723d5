package authn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"campus/contexts/identity-access/access-service/domain/entities"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
)

// Config defines how session tokens are verified.
type Config struct {
	Issuer     string `env:"CAMPUS_SESSION_ISSUER" envDefault:"campus"`
	Audience   string `env:"CAMPUS_SESSION_AUDIENCE" envDefault:"campus-web"`
	HMACSecret string `env:"CAMPUS_SESSION_HMAC_SECRET"`
}

// LoadConfigFromEnv reads session verification configuration.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse session env: %w", err)
	}
	return cfg, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Verifier turns bearer session tokens into principals. It implements the
// access-service IdentityProvider port: an invalid or expired token is an
// anonymous session, not an error.
type Verifier struct {
	issuer   string
	audience string
	key      []byte
	logger   *slog.Logger
}

func NewVerifier(cfg Config, logger *slog.Logger) (*Verifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	secret := strings.TrimSpace(cfg.HMACSecret)
	if secret == "" {
		return nil, errors.New("CAMPUS_SESSION_HMAC_SECRET is required")
	}
	return &Verifier{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		key:      []byte(secret),
		logger:   logger,
	}, nil
}

type tokenContextKey struct{}

// WithSessionToken attaches the raw bearer token to the request context.
// The HTTP layer calls this once per request; the verifier reads it back
// inside CurrentPrincipal.
func WithSessionToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func sessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// CurrentPrincipal verifies the session token carried by ctx. Missing,
// malformed or expired tokens yield an anonymous session.
func (v *Verifier) CurrentPrincipal(ctx context.Context) (entities.Principal, bool, error) {
	raw := sessionTokenFromContext(ctx)
	if raw == "" {
		return entities.Principal{}, false, nil
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(token *jwt.Token) (any, error) { return v.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		v.logger.Debug("session token rejected",
			"event", "authn_token_rejected",
			"module", "internal/platform/authn",
			"layer", "platform",
			"error", err.Error(),
		)
		return entities.Principal{}, false, nil
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return entities.Principal{}, false, nil
	}
	return entities.Principal{
		ID:       subject,
		Email:    claims.Email,
		FullName: claims.Name,
	}, true, nil
}
