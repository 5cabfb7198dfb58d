package supaauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shelter-admin/internal/platform/rest"
	"shelter-admin/internal/ports/auth"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrUnauthorized = errors.New("session token rejected")
)

// Verifier implementa auth.AuthVerifier contra el endpoint de usuario del
// servicio de auth de Supabase (GET /auth/v1/user).
//
// A diferencia del data API, acá sí viaja Authorization: Bearer — es el
// token que estamos verificando. El apikey acompaña igual que siempre.
type Verifier struct {
	rest    *rest.Client
	anonKey string
}

type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

func New(cfg Config) (*Verifier, error) {
	rc, err := rest.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	anonKey := strings.TrimSpace(cfg.AnonKey)
	if anonKey == "" {
		return nil, errors.New("supaauth: anon key required")
	}
	return &Verifier{rest: rc, anonKey: anonKey}, nil
}

// NewWithTransport permite inyectar un Transport (tests).
func NewWithTransport(cfg Config, tr http.RoundTripper) (*Verifier, error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	v.rest.HTTP.Transport = tr
	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	headers := map[string]string{
		"apikey":                     v.anonKey,
		"Authorization":              "Bearer " + token,
		"ngrok-skip-browser-warning": "true",
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	if err := v.rest.DoJSON(ctx, http.MethodGet, "/auth/v1/user", nil, headers, nil, &out); err != nil {
		var he *rest.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("auth verify failed: %w", err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, errors.New("auth response missing user id")
	}

	return auth.Claims{
		UserID: out.ID,
		Email:  strings.TrimSpace(out.Email),
		Role:   strings.TrimSpace(out.Role),
	}, nil
}
