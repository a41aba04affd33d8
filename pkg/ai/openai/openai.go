package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/seriousplay/MegaSpace/pkg/ai"
)

const (
	NAME = "openai"
)

// Driver 基于 openai 兼容接口的补全驱动。通过 proxy 指向兼容端点
// 即可接入 DashScope(千问) 等第三方服务。
type Driver struct {
	client *openai.Client
	model  ai.ModelName
	opts   ai.GenerateOptions
}

func New(token, proxy string, model ai.ModelName, opts ai.GenerateOptions) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		opts:   opts.WithDefaults(),
	}
}

func (s *Driver) Name() string {
	return NAME
}

func (s *Driver) Generate(ctx context.Context, prompt string) (*ai.GenerateResult, error) {
	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	req := openai.ChatCompletionRequest{
		Model: s.model.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices, model %s", s.model.ChatModel)
	}

	return &ai.GenerateResult{
		Received: time.Now(),
		Model:    resp.Model,
		Content:  resp.Choices[0].Message.Content,
		Usage:    &resp.Usage,
	}, nil
}
