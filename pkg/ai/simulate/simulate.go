package simulate

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/seriousplay/MegaSpace/pkg/ai"
)

const (
	NAME = "simulate"

	MODEL = "simulate-v1"
)

var defaultResponses = []string{
	"Based on your question and the provided context, here is a short analysis to get you started.",
	"Good question. Looking at the material, there are a few angles worth considering.",
	"Let me walk through this step by step using the context you provided.",
}

// Driver 确定性的本地补全驱动：同一 prompt 永远得到同一回复。
// 与真实驱动共用 ChatDriver 接口，用于离线部署和测试。
type Driver struct {
	responses []string
	err       error
}

func New() *Driver {
	return &Driver{responses: defaultResponses}
}

// NewWithResponse 固定回复内容，测试用
func NewWithResponse(response string) *Driver {
	return &Driver{responses: []string{response}}
}

// NewWithError 注入失败，测试上游不可用路径
func NewWithError(err error) *Driver {
	return &Driver{err: err}
}

func (s *Driver) Name() string {
	return NAME
}

func (s *Driver) Generate(ctx context.Context, prompt string) (*ai.GenerateResult, error) {
	if s.err != nil {
		return nil, s.err
	}

	h := fnv.New32a()
	h.Write([]byte(prompt))

	return &ai.GenerateResult{
		Received: time.Now(),
		Model:    MODEL,
		Content:  s.responses[int(h.Sum32())%len(s.responses)],
	}, nil
}
