// Package llm is the completion API client. It turns a resolved
// configuration into authenticated chat-completion calls with retry on
// transient failures.
package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/winston-cli/winston/internal/config"
)

// Message roles understood by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string
	Content string
}

// Client calls the completion API with the generation parameters from one
// resolved configuration.
type Client struct {
	api *openai.Client
	cfg config.Config
}

// NewClient builds an authenticated client from a resolved configuration.
// The endpoint and request timeout come from the configuration, not from
// package-level state.
func NewClient(cfg config.Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")
	apiCfg.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.Timeout * float64(time.Second)),
	}
	return &Client{
		api: openai.NewClientWithConfig(apiCfg),
		cfg: cfg,
	}
}

// Complete sends a single prompt and returns the generated text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}})
}

// Chat sends a full conversation history and returns the next assistant
// turn. Transient API failures are retried with exponential backoff;
// authentication failures are returned immediately.
func (c *Client) Chat(ctx context.Context, history []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:            c.cfg.Model,
		MaxTokens:        c.cfg.MaxTokens,
		Temperature:      float32(c.cfg.Temperature),
		TopP:             float32(c.cfg.TopP),
		FrequencyPenalty: float32(c.cfg.FrequencyPenalty),
		PresencePenalty:  float32(c.cfg.PresencePenalty),
	}
	if c.cfg.Stop != "" {
		req.Stop = []string{c.cfg.Stop}
	}
	for _, m := range history {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return RetryWithBackoff(ctx, func(ctx context.Context) (string, error) {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", classify(err)
		}
		if len(resp.Choices) == 0 {
			return "", ErrEmptyResponse(c.cfg.Model)
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
}

// classify maps transport-level errors onto the package's error taxonomy
// so the retry loop can tell transient failures from terminal ones.
func classify(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		// Network error without an HTTP status; let the retry loop decide.
		return err
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuthenticationFailed(status, err)
	case status == http.StatusTooManyRequests:
		return ErrRateLimitExceeded(err)
	default:
		return &APIError{StatusCode: status, Msg: "completion request failed", Err: err}
	}
}
