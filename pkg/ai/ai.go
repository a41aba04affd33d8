package ai

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ChatDriver 聊天补全驱动。管线把组装好的 prompt 原样交给驱动，
// 驱动返回第一条补全文本。
type ChatDriver interface {
	Name() string
	Generate(ctx context.Context, prompt string) (*GenerateResult, error)
}

type GenerateResult struct {
	Received time.Time
	Model    string
	Content  string
	Usage    *openai.Usage
}

func (r *GenerateResult) Message() string {
	if r == nil {
		return ""
	}
	return r.Content
}

// ModelName 驱动所使用的模型配置
type ModelName struct {
	ChatModel string
}

type GenerateOptions struct {
	MaxTokens   int
	Temperature float32
}

func (o GenerateOptions) WithDefaults() GenerateOptions {
	if o.MaxTokens <= 0 {
		o.MaxTokens = 1000
	}
	if o.Temperature <= 0 {
		o.Temperature = 0.7
	}
	return o
}
