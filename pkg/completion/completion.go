// Package completion sends prompts to an OpenAI-compatible chat completion
// endpoint and turns every failure into a readable reply.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	configpkg "github.com/minhyannv/toolbot-go/pkg/config"
	loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"
	"github.com/minhyannv/toolbot-go/pkg/prompt"
)

// Mode selects the system instruction sent with the prompt.
type Mode int

const (
	ModeStepByStep Mode = iota
	ModeConcise
)

func (m Mode) String() string {
	if m == ModeConcise {
		return "concise"
	}
	return "step-by-step"
}

func (m Mode) systemPrompt() string {
	if m == ModeConcise {
		return prompt.ConciseSystem
	}
	return prompt.StepByStepSystem
}

// Service answers a prompt. Implementations never fail: errors are folded
// into the returned text.
type Service interface {
	Complete(ctx context.Context, prompt string, mode Mode) string
}

// Client is a Service backed by openai-go.
type Client struct {
	client      openai.Client
	model       string
	temperature float64
	serviceName string
	logger      loggerpkg.Logger
}

// New builds a Client from cfg. Retries are disabled; each call is a single
// blocking request without a deadline of its own.
func New(cfg configpkg.Config, logger loggerpkg.Logger, extra ...option.RequestOption) *Client {
	cfg = configpkg.Normalize(cfg)
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
	}
	opts = append(opts, extra...)

	return &Client{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		serviceName: cfg.ServiceName,
		logger:      loggerpkg.OrNop(logger),
	}
}

// Complete implements Service.
func (c *Client) Complete(ctx context.Context, userPrompt string, mode Mode) string {
	if ctx == nil {
		ctx = context.Background()
	}
	c.logger.Debug("completion request", map[string]any{
		"model": c.model,
		"mode":  mode.String(),
		"bytes": len(userPrompt),
	})

	content, err := c.complete(ctx, userPrompt, mode)
	if err != nil {
		c.logger.Warn("completion failed", map[string]any{"error": err.Error()})
		return fmt.Sprintf("Error communicating with %s: %v", c.serviceName, err)
	}
	return content
}

func (c *Client) complete(ctx context.Context, userPrompt string, mode Mode) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, c.newParams(userPrompt, mode))
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (c *Client) newParams(userPrompt string, mode Mode) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(mode.systemPrompt()),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(c.temperature),
	}
}

var _ Service = (*Client)(nil)
