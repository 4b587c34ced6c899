// Package solver talks to a remote cube-solving service.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube"
)

// DefaultTimeout bounds a single solve request.
const DefaultTimeout = 5 * time.Second

// Request is the body posted to the solve endpoint.
type Request struct {
	Size     int    `json:"size"`
	Scramble string `json:"scramble"`
}

// Response is the solve endpoint's reply.
type Response struct {
	Solution string `json:"solution"`
	Length   int    `json:"length"`
	Method   string `json:"method"`
}

// Fallback is returned by SolveOrFallback when the service cannot be reached.
var Fallback = Response{
	Solution: "R U R' U' R U R' U'",
	Length:   8,
	Method:   "mock",
}

// Client calls the solve endpoint of a remote service.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is used as
// is; the request timeout is applied through the request context.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout sets the per-request timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Solve posts the request to {baseURL}/solve.
func (c *Client) Solve(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode solve request: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build solve request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("solve request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Response{}, fmt.Errorf("solver returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("failed to decode solve response: %w", err)
	}
	return out, nil
}

// SolveOrFallback calls Solve and returns Fallback on any failure.
func (c *Client) SolveOrFallback(ctx context.Context, req Request) Response {
	resp, err := c.Solve(ctx, req)
	if err != nil {
		c.logger.Warn("solver unavailable, using fallback",
			zap.String("url", c.baseURL),
			zap.Int("size", req.Size),
			zap.Error(err),
		)
		return Fallback
	}
	return resp
}

// Verify applies scramble and then solution to a fresh cube of the given
// size and reports whether it ends solved.
func Verify(size int, scramble, solution string) (bool, error) {
	e, err := nxcube.New(size, nxcube.WithMoveHistory(false))
	if err != nil {
		return false, err
	}
	if err := e.ApplyNotation(scramble); err != nil {
		return false, fmt.Errorf("scramble: %w", err)
	}
	if err := e.ApplyNotation(solution); err != nil {
		return false, fmt.Errorf("solution: %w", err)
	}
	return e.IsSolved(), nil
}
