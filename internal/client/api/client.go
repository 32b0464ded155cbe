// Package api wraps HTTP calls to the RedHub gateway in a typed client that
// attaches the bearer credential when one is stored and normalizes failures
// into kind-discriminated errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redhub-app/redhub-cli/internal/common"
	"github.com/redhub-app/redhub-cli/internal/logging"
)

// Gateway is the remote-call surface the service layer depends on. One
// operation per verb; out, when non-nil, receives the JSON-decoded response
// body.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, body any) error

	// PostText posts a JSON body and returns the raw response body. Used for
	// /login, whose response is the credential string itself.
	PostText(ctx context.Context, path string, body any) (string, error)
}

// TokenSource supplies the stored credential; Load returning "" means no
// Authorization header is attached. credential.Store satisfies it.
type TokenSource interface {
	Load(ctx context.Context) (string, error)
}

// HTTPClient is the production Gateway over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log.With("component", "gateway"),
	}
}

// SetTimeout caps the total duration of each request, including body read.
func (c *HTTPClient) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, body any) error {
	_, err := c.do(ctx, http.MethodDelete, path, body)
	return err
}

func (c *HTTPClient) PostText(ctx context.Context, path string, body any) (string, error) {
	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// do executes one request. Any failure comes back as *Error: transport
// problems as KindNetwork, non-2xx statuses mapped via KindFromStatus.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Kind:    KindFromStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(data),
		}
		c.log.Debug(ctx, "gateway call failed",
			"method", method, "path", path, "status", resp.StatusCode, "kind", string(apiErr.Kind))
		return nil, apiErr
	}

	return data, nil
}

// decode unmarshals a success body into out. A malformed body is a
// KindParse failure, never success.
func decode(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindParse, Message: err.Error()}
	}
	return nil
}

// errorMessage extracts a short human-readable message from an error body.
// The gateway usually answers {"error": "..."}; anything else is used as-is,
// truncated.
func errorMessage(data []byte) string {
	var wrapped struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Error != "" {
		return wrapped.Error
	}

	msg := strings.TrimSpace(string(data))
	const max = 200
	if len(msg) > max {
		msg = msg[:max]
	}
	return msg
}
