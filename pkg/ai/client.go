package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"resume-builder/pkg/ai/formatters"
)

// ErrNoAPIKey is returned by Complete when the client has no credentials.
var ErrNoAPIKey = errors.New("llm api key is empty")

type Options struct {
	APIKey        string
	BaseURL       string
	Model         string
	MaxTokens     int
	Temperature   float64
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

// Client is a minimal OpenAI-compatible chat completions client.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	http        *http.Client
	limiter     *rate.Limiter
}

func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = "https://api.openai.com/v1"
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	limit := rate.Inf
	if o.RatePerSecond > 0 {
		limit = rate.Limit(o.RatePerSecond)
	}
	if o.Burst < 1 {
		o.Burst = 1
	}
	return &Client{
		apiKey:      o.APIKey,
		baseURL:     strings.TrimRight(o.BaseURL, "/"),
		model:       o.Model,
		maxTokens:   o.MaxTokens,
		temperature: o.Temperature,
		http:        &http.Client{Timeout: o.Timeout},
		limiter:     rate.NewLimiter(limit, o.Burst),
	}
}

// Configured reports whether the client has credentials to call the provider.
func (c *Client) Configured() bool { return c.apiKey != "" }

func (c *Client) NewSummaryFormatter() *formatters.SummaryFormatter {
	return formatters.NewSummaryFormatter(c)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends prompt as a single user message and returns the first
// choice's content, trimmed.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("llm rate limit: %w", err)
	}

	temp := c.temperature
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: &temp,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if jsonErr := json.Unmarshal(raw, &parsed); jsonErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", fmt.Errorf("llm http %d", resp.StatusCode)
		}
		return "", fmt.Errorf("llm response parse: %w", jsonErr)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("llm error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm http %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("llm response missing choices")
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("llm response empty content")
	}
	return content, nil
}
