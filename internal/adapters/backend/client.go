package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"logistichub-console/internal/platform/bearer"
	"logistichub-console/internal/ports"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Responses larger than this are treated as a transport failure.
const maxResponseBytes = 4 << 20

// Client implements ports.LogisticsBackend over the backend's REST API.
//
// Requests are never retried: a failure is reported to the caller, which
// surfaces it and leaves state unchanged. The bearer token, when present on the
// request context, is forwarded on every call.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("backend client: base url is empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("backend client: parse base url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend client: base url %q must be http or https", base)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: base,
	}, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := bearer.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do sends req and returns the raw response body of a 2xx response.
// Non-2xx responses become *ports.APIError and network failures
// *ports.TransportError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	op := req.Method + " " + req.URL.Path

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &ports.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &ports.TransportError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ports.APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(b, resp.StatusCode),
		}
	}

	return bytes.TrimSpace(b), nil
}

// doJSON sends req and decodes a non-empty response body into out.
func (c *Client) doJSON(req *http.Request, out any) error {
	b, err := c.do(req)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// errorMessage picks "message", then "error" from a JSON error body, and falls
// back to the HTTP status text.
func errorMessage(body []byte, status int) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if m := strings.TrimSpace(e.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(e.Error); m != "" {
			return m
		}
	}
	return http.StatusText(status)
}
