// Package api implements the gateway ports against the storefront management
// API over plain net/http. Session credentials are a server-managed cookie
// held in the client's in-memory jar; nothing is persisted across runs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/request"
)

const basePath = "/api/v1"

// Config holds client configuration.
type Config struct {
	// BaseURL is the root of the storefront API, without the /api/v1 prefix.
	BaseURL string
	// Timeout bounds a single round trip. Defaults to 30s.
	Timeout time.Duration
}

// Client is the shared HTTP transport behind every gateway. It owns the
// cookie jar, so all gateways created from one Client share one session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client with a fresh in-memory cookie jar.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		log: log.With().Str("component", "api").Logger(),
	}, nil
}

// Ping reports whether the remote API is reachable. Any HTTP response counts
// as reachable — a 401 from an anonymous probe still proves the server is up;
// only a transport failure is an error.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+basePath+"/users/current-user", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// do issues one round trip and maps the response onto the error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if id := request.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorEnvelope matches the API's error body. The server emits {"message":…};
// a bare {"error":…} shape is accepted as a fallback.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var envelope errorEnvelope
	message := ""
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Message != "" {
			message = envelope.Message
		} else if envelope.Error != "" {
			message = envelope.Error
		}
	}

	err := domain.NewStatusError(resp.StatusCode, message)
	c.log.Debug().Int("status", resp.StatusCode).Str("message", err.Message).Msg("request rejected")
	return err
}
