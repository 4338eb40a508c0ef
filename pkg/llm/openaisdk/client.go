// Package openaisdk adapts the official OpenAI Go SDK to llm.ChatModel.
// SDK-level retries are disabled; retry policy belongs to the caller.
package openaisdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/artem13815/pcbuild/pkg/llm"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	openai openai.Client
	model  string
	hasKey bool
}

func New(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		openai: openai.NewClient(opts...),
		model:  model,
		hasKey: cfg.APIKey != "",
	}
}

func (c *Client) Model() string { return c.model }

func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	if !c.hasKey {
		return "", llm.ErrNotConfigured
	}
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.JSONOutput {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &llm.StatusError{StatusCode: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}
