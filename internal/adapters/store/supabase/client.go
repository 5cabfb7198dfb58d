package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shelter-admin/internal/platform/rest"
	"shelter-admin/internal/ports/store"
)

// Client implementa store.Client contra el data API PostgREST de Supabase.
//
// El backend local (detrás de un túnel ngrok) solo acepta el header
// apikey: acá nunca mandamos Authorization: Bearer, y agregamos el header
// que saltea la página de aviso del túnel. Por eso el adapter controla
// exactamente qué headers salen en cada request.
type Client struct {
	rest   *rest.Client
	apiKey string
}

type Config struct {
	BaseURL string
	AnonKey string

	// Timeout HTTP; <= 0 usa el default de rest.
	Timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	rc, err := rest.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	apiKey := strings.TrimSpace(cfg.AnonKey)
	if apiKey == "" {
		return nil, errors.New("supabase: anon key required")
	}
	return &Client{rest: rc, apiKey: apiKey}, nil
}

// NewWithTransport permite inyectar un Transport (tests).
func NewWithTransport(cfg Config, tr http.RoundTripper) (*Client, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.rest.HTTP.Transport = tr
	return c, nil
}

func (c *Client) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	query := url.Values{}
	if len(q.Columns) > 0 {
		query.Set("select", strings.Join(q.Columns, ","))
	}
	if q.Filter != nil {
		query.Set(q.Filter.Column, "eq."+formatValue(q.Filter.Value))
	}
	if q.Order != nil {
		dir := "asc"
		if q.Order.Descending {
			dir = "desc"
		}
		query.Set("order", q.Order.Column+"."+dir)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var out []store.Row
	if err := c.rest.DoJSON(ctx, http.MethodGet, tablePath(table), query, c.headers(nil), nil, &out); err != nil {
		return nil, normalizeError(err)
	}
	return out, nil
}

func (c *Client) Insert(ctx context.Context, table string, record store.Row) ([]store.Row, error) {
	// PostgREST espera un array y devuelve las filas insertadas si se
	// pide return=representation (equivale al insert().select() del
	// cliente JS).
	headers := c.headers(map[string]string{"Prefer": "return=representation"})

	var out []store.Row
	if err := c.rest.DoJSON(ctx, http.MethodPost, tablePath(table), nil, headers, []store.Row{record}, &out); err != nil {
		return nil, normalizeError(err)
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, table string, patch store.Row, f store.Filter) error {
	query := url.Values{}
	query.Set(f.Column, "eq."+formatValue(f.Value))

	if err := c.rest.DoJSON(ctx, http.MethodPatch, tablePath(table), query, c.headers(nil), patch, nil); err != nil {
		return normalizeError(err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, table string, f store.Filter) error {
	query := url.Values{}
	query.Set(f.Column, "eq."+formatValue(f.Value))

	if err := c.rest.DoJSON(ctx, http.MethodDelete, tablePath(table), query, c.headers(nil), nil, nil); err != nil {
		return normalizeError(err)
	}
	return nil
}

func tablePath(table string) string {
	return "/rest/v1/" + table
}

func (c *Client) headers(extra map[string]string) map[string]string {
	h := map[string]string{
		"apikey":                     c.apiKey,
		"ngrok-skip-browser-warning": "true",
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// normalizeError convierte una respuesta no-2xx de PostgREST en un
// *store.Error (el backend manda {message, code, details, hint}).
// Fallos de transporte pasan tal cual: el pipeline los clasifica 500.
func normalizeError(err error) error {
	var he *rest.HTTPError
	if !errors.As(err, &he) {
		return err
	}

	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if jsonErr := json.Unmarshal(he.Body, &body); jsonErr != nil || body.Message == "" {
		body.Message = strings.TrimSpace(string(he.Body))
	}
	if body.Message == "" {
		body.Message = fmt.Sprintf("request failed with status %d", he.StatusCode)
	}

	return &store.Error{Message: body.Message, Code: body.Code, HTTPStatus: he.StatusCode}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
