// Package gateway is the single outbound request pipeline to the
// super-admin backend. Every request carries the stored bearer token; every
// 401 response clears the credential store and fires the host's
// auth-invalid hook, whatever endpoint produced it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mydailybill/mdb-admin/internal/domain"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// DefaultTimeout bounds every request when the config does not say
// otherwise.
const DefaultTimeout = 10 * time.Second

// CredentialStore is the slice of the credential store the gateway needs.
type CredentialStore interface {
	Token() string
	Clear()
}

// Config for the gateway.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client issues JSON requests against the configured base URL.
type Client struct {
	base          string
	http          *http.Client
	creds         CredentialStore
	log           *logger.Logger
	onAuthInvalid func()
}

// New builds a gateway client.
func New(cfg Config, creds CredentialStore, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base:  strings.TrimRight(cfg.BaseURL, "/"),
		http:  &http.Client{Timeout: timeout},
		creds: creds,
		log:   log,
	}
}

// OnAuthInvalid binds the host's hard-reset behavior. The hook runs after
// the credential store has been cleared in response to a 401.
func (c *Client) OnAuthInvalid(fn func()) {
	c.onAuthInvalid = fn
}

// Response is the raw backend reply. Non-2xx statuses are not errors at
// this layer; the facades extract the structured message.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode body: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

// PostMultipart uploads a file as multipart/form-data with optional extra
// form fields.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, file io.Reader, extra map[string]string) (*Response, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("gateway: multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("gateway: multipart copy: %w", err)
	}
	for k, v := range extra {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("gateway: multipart field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req)
}

func (c *Client) send(req *http.Request) (*Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).
			Msg("gateway: transport failure")
		return nil, fmt.Errorf("gateway: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Fail-safe against stale or rejected tokens: wipe the session and
		// let the host restart, no matter which call tripped it.
		c.log.Warn().Str("path", req.URL.Path).Msg("gateway: 401, clearing session")
		c.creds.Clear()
		if c.onAuthInvalid != nil {
			c.onAuthInvalid()
		}
		return nil, domain.ErrUnauthorized
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}

func (c *Client) url(path string) string {
	return c.base + "/" + strings.TrimLeft(path, "/")
}
