package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/apiconsole/internal/common"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
	"github.com/google/uuid"
)

// Config describes one resource client.
//
// Fields:
//   - BaseAddress: absolute URL every request path is appended to.
//   - Credentials: read on each request; nil means never authenticate.
//   - HTTPClient: transport; http.DefaultClient when nil.
//   - Logger: request log; logging.Nop() when nil.
type Config struct {
	BaseAddress string
	Credentials CredentialSupplier
	HTTPClient  *http.Client
	Logger      logging.Logger
}

type HTTPClient struct {
	cfg  Config
	http *http.Client
	log  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config) *HTTPClient {
	cfg.BaseAddress = strings.TrimRight(cfg.BaseAddress, "/")

	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{cfg: cfg, http: hc, log: log}
}

// NewScoped builds the client for one resource scope below base, e.g.
// NewScoped(base, "suppliers") talks to <base>/suppliers.
func NewScoped(base Config, scope string) *HTTPClient {
	return NewHTTPClient(base).Scoped(scope)
}

// Scoped returns a client for the resource collection below this one,
// sharing transport, credentials and logger.
func (c *HTTPClient) Scoped(scope string) *HTTPClient {
	cfg := c.cfg
	cfg.BaseAddress = c.cfg.BaseAddress + "/" + strings.Trim(scope, "/")
	return &HTTPClient{cfg: cfg, http: c.http, log: c.log.With("scope", scope)}
}

func (c *HTTPClient) BaseAddress() string {
	return c.cfg.BaseAddress
}

func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *HTTPClient) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends one JSON request and decodes a 2xx body into out (skipped when
// out is nil or the body is empty).
func (c *HTTPClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.cfg.BaseAddress + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "error", err)
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) authorize(ctx context.Context, req *http.Request) {
	if c.cfg.Credentials == nil {
		return
	}
	token, err := c.cfg.Credentials(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential lookup failed, sending unauthenticated", "error", err)
		return
	}
	if token == "" {
		return
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
}
