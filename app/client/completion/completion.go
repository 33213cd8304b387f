package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moodbot/app/config"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultTemperature  = 0.7
	maxCompletionTokens = 256
	maxReasonDuration   = 30 * time.Second
)

type Client struct {
	cfg *config.Config
	llm *openai.LLM
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	llm, err := openai.New(
		openai.WithToken(cfg.OpenAI.Token),
		openai.WithBaseURL(cfg.OpenAI.BaseURL),
		openai.WithModel(cfg.OpenAI.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	return &Client{
		cfg: cfg,
		llm: llm,
	}, nil
}

// Complete generates a continuation for the latest user message, grounded on
// the bot's prior replies (oldest first).
func (c *Client) Complete(ctx context.Context, userMessage string, botMessages []string) (string, error) {
	messages := make([]llms.MessageContent, 0, len(botMessages)+1)
	for _, text := range botMessages {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeAI, text))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, userMessage))

	ctx, cancel := context.WithTimeout(ctx, maxReasonDuration)
	defer cancel()

	response, err := c.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxCompletionTokens),
		llms.WithTemperature(defaultTemperature),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
