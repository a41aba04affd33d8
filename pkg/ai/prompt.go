package ai

import (
	"fmt"
	"strings"
)

const (
	// MESSAGE_PLACEHOLDER 模板中当前消息的占位符
	MESSAGE_PLACEHOLDER = "{message}"

	DEFAULT_SYSTEM_INSTRUCTIONS = "You are a helpful AI assistant designed for education scenarios."

	SECTION_LABEL_FILES   = "Reference files:"
	SECTION_LABEL_HISTORY = "Conversation history:"
)

// PromptSection 提示词中的一个有序段落
type PromptSection struct {
	Label string
	Lines []string
}

// PromptBuilder 按固定顺序拼装提示词：系统指令必须先于一切上下文，
// 文件内容先于会话历史，当前消息永远在最后。
// 每个段落都可缺省，缺省时直接跳过。
type PromptBuilder struct {
	instructions string
	files        PromptSection
	history      PromptSection
	current      string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		instructions: DEFAULT_SYSTEM_INSTRUCTIONS,
		files:        PromptSection{Label: SECTION_LABEL_FILES},
		history:      PromptSection{Label: SECTION_LABEL_HISTORY},
	}
}

// WithInstructions 为空时保留默认指令
func (b *PromptBuilder) WithInstructions(instructions string) *PromptBuilder {
	if strings.TrimSpace(instructions) != "" {
		b.instructions = instructions
	}
	return b
}

// AddFileContext 附件内容，按添加顺序输出
func (b *PromptBuilder) AddFileContext(filename, extractedText string) *PromptBuilder {
	b.files.Lines = append(b.files.Lines, fmt.Sprintf("File: %s\nContent: %s\n---", filename, extractedText))
	return b
}

// AddHistory 历史轮次，调用方需按时间升序添加
func (b *PromptBuilder) AddHistory(role, content string) *PromptBuilder {
	b.history.Lines = append(b.history.Lines, fmt.Sprintf("%s: %s", role, content))
	return b
}

// WithUserMessage 模板包含 {message} 占位符时做替换，否则消息跟在模板之后
func (b *PromptBuilder) WithUserMessage(template, message string) *PromptBuilder {
	switch {
	case strings.Contains(template, MESSAGE_PLACEHOLDER):
		b.current = strings.ReplaceAll(template, MESSAGE_PLACEHOLDER, message)
	case strings.TrimSpace(template) != "":
		b.current = template + "\n" + message
	default:
		b.current = message
	}
	return b
}

func (s PromptSection) render() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return s.Label + "\n" + strings.Join(s.Lines, "\n")
}

// Build 确定性序列化，相同输入永远得到相同输出
func (b *PromptBuilder) Build() string {
	parts := []string{b.instructions}
	if files := b.files.render(); files != "" {
		parts = append(parts, files)
	}
	if history := b.history.render(); history != "" {
		parts = append(parts, history)
	}
	if b.current != "" {
		parts = append(parts, b.current)
	}
	return strings.Join(parts, "\n\n")
}
