// Package api implements the HTTP client for the users API. It wraps the
// endpoint set in typed methods and decodes the uniform response envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/usersvc/internal/client/config"
)

// Envelope mirrors the server response wrapper. Data stays raw JSON so the
// caller can render it without knowing the payload shape of each endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// do performs one request and decodes the envelope. Failure envelopes are
// returned to the caller together with the status code, not turned into Go
// errors: an API-level rejection is a normal outcome for the CLI.
func (c *Client) do(ctx context.Context, method, endpoint string, body any) (*Envelope, int, error) {

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("request encode error: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("no se pudo conectar con la API en %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("respuesta inesperada de la API: %w", err)
	}

	return &env, resp.StatusCode, nil
}

// Ping probes the API root endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodGet, "/", nil)
	return err
}

func (c *Client) SystemInfo(ctx context.Context) (*Envelope, int, error) {
	return c.do(ctx, http.MethodGet, "/", nil)
}

func (c *Client) ListUsers(ctx context.Context) (*Envelope, int, error) {
	return c.do(ctx, http.MethodGet, "/usuarios", nil)
}

func (c *Client) GetUser(ctx context.Context, id int) (*Envelope, int, error) {
	return c.do(ctx, http.MethodGet, "/usuarios/"+strconv.Itoa(id), nil)
}

func (c *Client) CreateUser(ctx context.Context, fields map[string]any) (*Envelope, int, error) {
	return c.do(ctx, http.MethodPost, "/usuarios", fields)
}

// ReplaceUser sends a full (PUT) update.
func (c *Client) ReplaceUser(ctx context.Context, id int, fields map[string]any) (*Envelope, int, error) {
	return c.do(ctx, http.MethodPut, "/usuarios/"+strconv.Itoa(id), fields)
}

// MergeUser sends a partial (PATCH) update: only the submitted keys change.
func (c *Client) MergeUser(ctx context.Context, id int, fields map[string]any) (*Envelope, int, error) {
	return c.do(ctx, http.MethodPatch, "/usuarios/"+strconv.Itoa(id), fields)
}

func (c *Client) DeleteUser(ctx context.Context, id int) (*Envelope, int, error) {
	return c.do(ctx, http.MethodDelete, "/usuarios/"+strconv.Itoa(id), nil)
}

func (c *Client) PaginateUsers(ctx context.Context, pagina, limite int) (*Envelope, int, error) {
	endpoint := fmt.Sprintf("/usuarios/paginado?pagina=%d&limite=%d", pagina, limite)
	return c.do(ctx, http.MethodGet, endpoint, nil)
}
