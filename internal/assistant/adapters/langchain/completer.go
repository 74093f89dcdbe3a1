// Package langchain adapts a langchaingo model to the assistant's completer port.
package langchain

import (
	"context"
	"errors"
	"fmt"

	"process-mining-service/internal/assistant/core/ports"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/time/rate"
)

const (
	DefaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 512
	defaultBurst     = 1
	temperature      = 0.3
)

var ErrMissingAPIKey = errors.New("llm api key required")

type Config struct {
	APIKey    string
	Model     string
	BaseURL   string  // "" -> provider default
	RateLimit float64 // requests per second, <= 0 -> unlimited
	MaxTokens int
}

type Completer struct {
	llm       llms.Model
	model     string
	limiter   *rate.Limiter
	maxTokens int
}

var _ ports.CompleterPort = (*Completer)(nil)

// New builds a completer backed by an OpenAI-compatible endpoint.
func New(cfg Config) (*Completer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	c := NewWithModel(llm, model, cfg.RateLimit)
	if cfg.MaxTokens > 0 {
		c.maxTokens = cfg.MaxTokens
	}
	return c, nil
}

// NewWithModel wraps an existing model.
func NewWithModel(llm llms.Model, model string, ratePerSecond float64) *Completer {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	return &Completer{
		llm:       llm,
		model:     model,
		limiter:   rate.NewLimiter(limit, defaultBurst),
		maxTokens: defaultMaxTokens,
	}
}

func (c *Completer) Model() string { return c.model }

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return out, nil
}
