package vlm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fsun/ski-results/internal/common"
)

// Config for the OpenAI-compatible vision client.
type Config struct {
	BaseURL     string // e.g. the provider's /v1 root
	APIKey      string // if empty, falls back to env VLM_API_KEY
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Client speaks the chat/completions wire format, which every provider we
// care about exposes. Nothing in it is provider-specific.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("VLM_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "qwen3-vl-235b-a22b"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8192
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Invoke sends one image plus the instruction and returns the raw text reply.
func (c *Client) Invoke(ctx context.Context, image []byte, mediaType, instruction string) (string, error) {
	b64 := base64.StdEncoding.EncodeToString(image)
	userContent := []map[string]any{
		{
			"type": "image_url",
			"image_url": map[string]any{
				"url": fmt.Sprintf("data:%s;base64,%s", mediaType, b64),
			},
		},
		{"type": "text", "text": instruction},
	}
	return c.chat(ctx, userContent)
}

// InvokeText sends a text-only instruction (no image part).
func (c *Client) InvokeText(ctx context.Context, instruction string) (string, error) {
	userContent := []map[string]any{
		{"type": "text", "text": instruction},
	}
	return c.chat(ctx, userContent)
}

func (c *Client) chat(ctx context.Context, userContent []map[string]any) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxTokens,
		"messages": []map[string]any{
			{
				"role": "system",
				"content": []map[string]any{
					{"type": "text", "text": SystemPrompt},
				},
			},
			{"role": "user", "content": userContent},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, status, err := sendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		return "", classifyHTTPError(status, err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", &common.ModelInvocationError{Transient: false, Cause: fmt.Errorf("decode response: %w", err)}
	}
	if len(cc.Choices) == 0 {
		return "", &common.ModelInvocationError{Transient: false, Cause: fmt.Errorf("no choices in response")}
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// classifyHTTPError maps transport and HTTP failures onto the transient vs
// permanent taxonomy the retry policy depends on.
func classifyHTTPError(status int, err error) error {
	switch {
	case status == 0:
		// Transport-level failure: timeout, connection reset. Retry-eligible
		// unless the caller's context is already gone.
		transient := !errors.Is(err, context.Canceled)
		return &common.ModelInvocationError{Transient: transient, Status: status, Cause: err}
	case status == http.StatusRequestTimeout,
		status == http.StatusTooManyRequests,
		status >= 500:
		return &common.ModelInvocationError{Transient: true, Status: status, Cause: err}
	case status == http.StatusRequestEntityTooLarge:
		return &common.ModelInvocationError{Transient: true, Status: status, Cause: err}
	default:
		// 400/401/403 and friends: bad input or configuration, no point retrying.
		return &common.ModelInvocationError{Transient: false, Status: status, Cause: err}
	}
}
