package analyze

import (
	"context"
	"errors"
	"fmt"
	"os"

	m "tradetalk/internal/model"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

// Client requests a psychological/technical reading of one trading day from a
// chat-completion endpoint. Only choices[0].message.content of the response
// is consumed.
type Client struct {
	c     *openai.Client
	model string
	lg    zerolog.Logger
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

func NewClient(conf Config) (*Client, error) {

	if conf.BaseURL == "" {
		return nil, errors.New("analyzer base url 미존재")
	}
	if conf.APIKey == "" {
		return nil, errors.New("analyzer api key 미존재")
	}

	cc := openai.DefaultConfig(conf.APIKey)
	cc.BaseURL = conf.BaseURL

	model := conf.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		c:     openai.NewClientWithConfig(cc),
		model: model,
		lg:    zerolog.New(os.Stdout).With().Str("Module", "Analyzer").Timestamp().Logger(),
	}, nil
}

// AnalyzeDay sends the day's trades and journal to the completion endpoint
// and returns the raw response text, marker and all. The caller persists the
// raw text; callers and renderers re-split it with Split.
func (c *Client) AnalyzeDay(ctx context.Context, trades []m.Trade, journal *m.JournalEntry) (string, error) {
	c.lg.Info().Int("trades", len(trades)).Bool("journal", journal != nil).Msg("Requesting day analysis")

	userPrompt, err := buildUserPrompt(trades, journal)
	if err != nil {
		return "", err
	}

	resp, err := c.c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		c.lg.Error().Err(err).Msg("Error in AnalyzeDay")
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from completion endpoint")
	}

	return resp.Choices[0].Message.Content, nil
}
