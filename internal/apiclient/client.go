// Package apiclient is the thin REST client used to reach the external
// portal API. It attaches the stored bearer token and normalizes failures
// into NetworkError and RequestError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/rs/zerolog"
)

const maxErrorBody = 1 << 20

// Request describes one outbound call
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

// Client calls the external API on behalf of one client namespace
type Client struct {
	baseURL string
	http    *http.Client
	tokens  kvstore.Store
	log     zerolog.Logger
}

// New creates a client. tokens is the store the bearer token is read from;
// a nil store sends unauthenticated requests.
func New(baseURL string, httpClient *http.Client, tokens kvstore.Store, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if tokens == nil {
		tokens = kvstore.Nop{}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		tokens:  tokens,
		log:     log.With().Str("component", "apiclient").Logger(),
	}
}

// WithTokens returns a copy of c reading its bearer token from tokens
func (c *Client) WithTokens(tokens kvstore.Store) *Client {
	clone := *c
	clone.tokens = tokens
	return &clone
}

// Do performs req and decodes a JSON response into out when out is non-nil.
// A 204 response leaves out untouched.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	token, ok, err := c.tokens.Get(ctx, kvstore.KeyAuthToken)
	if err != nil {
		c.log.Warn().Err(err).Msg("Failed to read auth token, sending request without it")
	} else if ok && token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkError{Method: method, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %s %s: %w", ErrInvalidResponse, method, req.Path, err)
	}
	return nil
}

// errorMessage extracts a message from an error body, falling back to the status line
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("Request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
