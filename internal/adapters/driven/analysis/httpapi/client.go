// Package httpapi provides GrammarChecker and AIDetector adapters backed by
// the law-network analysis API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/core/ports/driven"
	"github.com/sagar50802/law-network-client-sub002/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.GrammarChecker = (*Client)(nil)
	_ driven.AIDetector     = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 30 * time.Second

	grammarPath = "/api/grammar/check"
	aiPath      = "/api/ai/detect"

	// maxErrorBody caps how much of an error response is quoted.
	maxErrorBody = 512
)

// Config holds configuration for the analysis client.
type Config struct {
	// BaseURL is the analysis API base URL (default: http://localhost:5000).
	BaseURL string

	// Token is sent as a bearer token when set.
	Token string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond and Burst configure client-side rate limiting.
	RequestsPerSecond float64
	Burst             int
}

// Client calls the analysis API.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	limiter *RateLimiter
}

// textRequest is the body of both analysis endpoints.
type textRequest struct {
	Text string `json:"text"`
}

// grammarResponse is the /api/grammar/check response format.
type grammarResponse struct {
	Errors []domain.GrammarFinding `json:"errors"`
}

// NewClient creates a new analysis client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CheckGrammar returns grammar findings for text.
func (c *Client) CheckGrammar(ctx context.Context, text string) ([]domain.GrammarFinding, error) {
	var resp grammarResponse
	if err := c.post(ctx, grammarPath, text, &resp); err != nil {
		return nil, fmt.Errorf("grammar check: %w", err)
	}
	logger.Debug("grammar check returned %d findings", len(resp.Errors))
	return resp.Errors, nil
}

// DetectAI returns the AI-likelihood report for text.
func (c *Client) DetectAI(ctx context.Context, text string) (*domain.AIReport, error) {
	var report domain.AIReport
	if err := c.post(ctx, aiPath, text, &report); err != nil {
		return nil, fmt.Errorf("ai detect: %w", err)
	}
	logger.Debug("ai detect returned score %v over %d sentences", report.Score, len(report.Sentences))
	return &report, nil
}

// post sends {"text": text} to path and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path, text string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	jsonBody, err := json.Marshal(textRequest{Text: text})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAnalysisUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retry := parseRetryAfter(resp.Header.Get("Retry-After"))
		c.limiter.Backoff(retry)
		logger.Warn("analysis API rate limited; backing off %s", retry)
		return domain.ErrRateLimited
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", domain.ErrAnalysisUnavailable, resp.StatusCode, readErrorBody(resp.Body))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("analysis API error (status %d): %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorBody returns a trimmed prefix of an error response body.
func readErrorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return "failed to read response"
	}
	return strings.TrimSpace(string(data))
}

// parseRetryAfter reads a Retry-After header in seconds or HTTP-date form.
// Zero means the header was absent or unparseable.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return time.Until(at)
	}
	return 0
}
