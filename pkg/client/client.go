// Package client is a typed Go consumer for the management API: a shared HTTP
// client with auth headers and 401 handling, a generic per-resource service,
// and a Collection that owns the loaded state for one filtered list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"gestion_xpto/pkg/logger"

	"github.com/rs/zerolog"
)

// ErrUnauthorized is returned when the API answers 401 and no refresh is
// possible (session not remembered, or the refresh itself failed).
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a non-2xx response through to the caller.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// RefreshFunc exchanges the current session for a fresh bearer token.
type RefreshFunc func(ctx context.Context) (string, error)

type Config struct {
	BaseURL string
	APIKey  string
	Token   string

	// Remembered sessions get one token refresh on 401 before giving up.
	Remembered bool
	Refresh    RefreshFunc

	HTTPClient *http.Client
}

// Client attaches the bearer token and API key to every request and
// centralizes 401 handling.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	remembered bool
	refresh    RefreshFunc
	log        zerolog.Logger

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		token:      cfg.Token,
		remembered: cfg.Remembered,
		refresh:    cfg.Refresh,
		httpClient: hc,
		log:        logger.WithComponent("sdk"),
	}
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Do issues one request, decoding the JSON response into out (when non-nil).
// On 401 a remembered session refreshes its token once and retries; anything
// else surfaces as ErrUnauthorized.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		if !c.remembered || c.refresh == nil {
			return ErrUnauthorized
		}
		c.log.Debug().Str("path", path).Msg("401, attempting token refresh")
		token, err := c.refresh(ctx)
		if err != nil {
			return ErrUnauthorized
		}
		c.SetToken(token)

		resp, err = c.send(ctx, method, path, body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			drain(resp)
			return ErrUnauthorized
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("request")
	return c.httpClient.Do(req)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	return apiErr
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
