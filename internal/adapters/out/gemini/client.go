// Package gemini implements the InferenceClient interface over the Gemini
// generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/platelens/platelens/internal/domain"
)

const (
	// DefaultBaseURL is the public Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultModel is the multimodal model used when none is configured.
	DefaultModel = "gemini-1.5-flash"
	// DefaultTimeout bounds a single generateContent call.
	DefaultTimeout = 60 * time.Second

	apiKeyHeader = "x-goog-api-key"
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 8 << 20
	maxDetailLength  = 300
)

// Client implements the InferenceClient interface.
// It is built once at startup and shared across requests.
type Client struct {
	baseURL         string
	apiKey          string
	model           string
	temperature     *float64
	maxOutputTokens int
	timeout         time.Duration
	httpClient      *http.Client
	log             zerowrap.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(c *Client) {
		c.temperature = &temperature
	}
}

// WithMaxOutputTokens caps the response length.
func WithMaxOutputTokens(n int) Option {
	return func(c *Client) {
		c.maxOutputTokens = n
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a Gemini client. It fails with domain.ErrMissingAPIKey when apiKey is empty.
func New(apiKey string, log zerowrap.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		model:   DefaultModel,
		timeout: DefaultTimeout,
		log:     log,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return c, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Infer sends the prompt and image in one generateContent call and returns the
// concatenated text of the first candidate. A response without text yields "".
func (c *Client) Infer(ctx context.Context, req domain.InferenceRequest) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "gemini",
		"model":               c.model,
	})
	log := zerowrap.FromCtx(ctx)

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return "", domain.NewInferenceError(domain.InferenceUnknown, fmt.Sprintf("encode request: %v", err))
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewInferenceError(domain.InferenceUnknown, fmt.Sprintf("create request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		infErr := classifyTransportError(ctx, err)
		log.Warn().Err(err).Str("kind", string(infErr.Kind)).Msg("generateContent request failed")
		return "", infErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}

	log.Debug().
		Int(zerowrap.FieldStatus, resp.StatusCode).
		Dur(zerowrap.FieldDuration, time.Since(start)).
		Int("response_bytes", len(respBody)).
		Msg("generateContent response received")

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, respBody)
	}

	return parseResponse(respBody)
}

func (c *Client) buildRequest(req domain.InferenceRequest) generateRequest {
	r := generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: req.Prompt},
				{InlineData: &inlineData{MimeType: req.Image.MIMEType, Data: req.Image.Payload}},
			},
		}},
	}
	if c.temperature != nil || c.maxOutputTokens > 0 {
		r.GenerationConfig = &generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxOutputTokens,
		}
	}
	return r
}

// parseResponse extracts the first candidate's text.
func parseResponse(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.NewInferenceError(domain.InferenceUnknown, fmt.Sprintf("decode response: %v", err))
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", domain.NewInferenceError(domain.InferenceRejected, "prompt blocked: "+resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", nil
	}

	first := resp.Candidates[0]
	var sb strings.Builder
	for _, p := range first.Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 && blockedFinishReasons[first.FinishReason] {
		return "", domain.NewInferenceError(domain.InferenceRejected, "response blocked: "+first.FinishReason)
	}
	return sb.String(), nil
}

// classifyTransportError maps a failed round trip to an inference error kind.
func classifyTransportError(ctx context.Context, err error) *domain.InferenceError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.NewInferenceError(domain.InferenceTimeout, "request timed out")
	case errors.As(err, &netErr) && netErr.Timeout():
		return domain.NewInferenceError(domain.InferenceTimeout, "request timed out")
	case errors.Is(err, context.Canceled):
		return domain.NewInferenceError(domain.InferenceUnknown, "request canceled")
	default:
		return domain.NewInferenceError(domain.InferenceUnreachable, truncate(err.Error()))
	}
}

// classifyStatus maps a non-200 response to an inference error kind.
func classifyStatus(status int, body []byte) *domain.InferenceError {
	detail := fmt.Sprintf("HTTP %d", status)
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
		detail += ": " + truncate(apiErr.Error.Message)
	}

	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return domain.NewInferenceError(domain.InferenceUnreachable, detail)
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return domain.NewInferenceError(domain.InferenceTimeout, detail)
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound,
		http.StatusRequestEntityTooLarge, http.StatusTooManyRequests:
		return domain.NewInferenceError(domain.InferenceRejected, detail)
	default:
		return domain.NewInferenceError(domain.InferenceUnknown, detail)
	}
}

func truncate(s string) string {
	if len(s) <= maxDetailLength {
		return s
	}
	return s[:maxDetailLength] + "..."
}
