package srv

import (
	"github.com/seriousplay/MegaSpace/pkg/ai"
	"github.com/seriousplay/MegaSpace/pkg/ai/openai"
	"github.com/seriousplay/MegaSpace/pkg/ai/simulate"
)

type AIConfig struct {
	// Driver 可选 openai / simulate，simulate 用于离线部署与测试
	Driver      string  `toml:"driver"`
	Token       string  `toml:"token"`
	Endpoint    string  `toml:"endpoint"` // 兼容 openai 协议的网关地址，可指向 DashScope 等
	ChatModel   string  `toml:"chat_model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
}

// SetupAI 根据配置选择补全驱动
func SetupAI(cfg AIConfig) ai.ChatDriver {
	opts := ai.GenerateOptions{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}.WithDefaults()

	switch cfg.Driver {
	case simulate.NAME:
		return simulate.New()
	default:
		return openai.New(cfg.Token, cfg.Endpoint, ai.ModelName{ChatModel: cfg.ChatModel}, opts)
	}
}

type ApplyFunc func(*Srv)

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = SetupAI(cfg)
	}
}
