// Package api is the typed facade over the Insightly HTTP API. Each call
// maps to one verb+path+payload shape. There is no retry: a call either
// succeeds or hands its error back unchanged to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource supplies the bearer token for authorized requests. An empty
// string means the request goes out unauthenticated.
type TokenSource func() string

// Client issues requests against one Insightly server.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *zap.SugaredLogger
}

// New builds a client for baseURL. token may be nil for an anonymous client.
// No timeout is configured on the transport: once issued, a request is not
// cancelable except through its context.
func New(baseURL string, token TokenSource, log *zap.SugaredLogger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		token:   token,
		log:     log,
	}
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil and the body is non-empty). Non-2xx statuses come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("api request failed",
			"method", method, "path", path, "request_id", reqID, "err", err)
		return err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	c.log.Debugw("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", reqID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}
