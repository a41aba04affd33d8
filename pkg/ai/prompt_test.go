package ai

import (
	"strings"
	"testing"
)

func TestPromptBuilder_Build(t *testing.T) {
	tests := []struct {
		name  string
		build func() *PromptBuilder
		want  string
	}{
		{
			name: "message only falls back to default instructions",
			build: func() *PromptBuilder {
				return NewPromptBuilder().WithUserMessage("", "What is 2+2?")
			},
			want: DEFAULT_SYSTEM_INSTRUCTIONS + "\n\nWhat is 2+2?",
		},
		{
			name: "template placeholder substitution",
			build: func() *PromptBuilder {
				return NewPromptBuilder().
					WithInstructions("Be terse.").
					WithUserMessage("Answer as a tutor: {message}", "why is the sky blue")
			},
			want: "Be terse.\n\nAnswer as a tutor: why is the sky blue",
		},
		{
			name: "template without placeholder keeps message after template",
			build: func() *PromptBuilder {
				return NewPromptBuilder().
					WithInstructions("Be terse.").
					WithUserMessage("Grade the following homework.", "1+1=3")
			},
			want: "Be terse.\n\nGrade the following homework.\n1+1=3",
		},
		{
			name: "full ordering: instructions, files, history, message",
			build: func() *PromptBuilder {
				return NewPromptBuilder().
					WithInstructions("You are a math tutor.").
					AddFileContext("syllabus.txt", "Alpha").
					AddFileContext("notes.txt", "Beta").
					AddHistory("user", "hi").
					AddHistory("assistant", "hello").
					WithUserMessage("", "next question")
			},
			want: "You are a math tutor.\n\n" +
				"Reference files:\nFile: syllabus.txt\nContent: Alpha\n---\nFile: notes.txt\nContent: Beta\n---\n\n" +
				"Conversation history:\nuser: hi\nassistant: hello\n\n" +
				"next question",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().Build()
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptBuilder_Deterministic(t *testing.T) {
	build := func() string {
		return NewPromptBuilder().
			AddFileContext("a.txt", "A").
			AddHistory("user", "q").
			WithUserMessage("{message}", "m").
			Build()
	}
	if build() != build() {
		t.Fatal("Build() must be deterministic for identical input")
	}
}

func TestPromptBuilder_FilesPrecedeHistory(t *testing.T) {
	got := NewPromptBuilder().
		AddHistory("user", "earlier").
		AddFileContext("f.txt", "doc").
		WithUserMessage("", "now").
		Build()

	fileIdx := strings.Index(got, SECTION_LABEL_FILES)
	histIdx := strings.Index(got, SECTION_LABEL_HISTORY)
	if fileIdx < 0 || histIdx < 0 || fileIdx > histIdx {
		t.Errorf("file context must precede conversation history, got %q", got)
	}
}
