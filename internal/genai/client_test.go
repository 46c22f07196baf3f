package genai

import (
	"strings"
	"testing"
)

func TestStripCodeBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"title":"x"}`, `{"title":"x"}`},
		{"json fence", "```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"fence mid-text stays", "prefix ```json\n{}\n```", "prefix ```json\n{}\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeBlock(tt.in); got != tt.want {
				t.Errorf("StripCodeBlock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildSlidePrompt(t *testing.T) {
	prompt := BuildSlidePrompt("the document body", GenerateOptions{SlideCount: 8})

	if !strings.Contains(prompt, "the document body") {
		t.Error("prompt missing document text")
	}
	if !strings.Contains(prompt, "Generate exactly 8 slides") {
		t.Error("prompt missing slide count")
	}
	if !strings.Contains(prompt, "general overview") {
		t.Error("prompt missing default focus areas")
	}
	if !strings.Contains(prompt, "Tone: executive") {
		t.Error("prompt missing default tone")
	}
}

func TestBuildSlidePromptOptions(t *testing.T) {
	prompt := BuildSlidePrompt("doc", GenerateOptions{
		SlideCount: 5,
		FocusAreas: []string{"risks", "timeline"},
		Tone:       "casual",
	})
	if !strings.Contains(prompt, "risks, timeline") {
		t.Error("prompt missing focus areas")
	}
	if !strings.Contains(prompt, "Tone: casual") {
		t.Error("prompt missing tone")
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
	if got := EstimateTokens("one"); got < 1 {
		t.Errorf("single word = %d, want >= 1", got)
	}
	long := strings.Repeat("word ", 1000)
	if got := EstimateTokens(long); got < 1000 || got > 2000 {
		t.Errorf("1000 words = %d tokens, want within [1000, 2000]", got)
	}
}

func TestTruncateToBudget(t *testing.T) {
	text := "short line one\nshort line two"
	if got := TruncateToBudget(text, 1000); got != text {
		t.Errorf("under-budget text changed: %q", got)
	}

	lines := make([]string, 100)
	for i := range lines {
		lines[i] = strings.Repeat("word ", 20)
	}
	big := strings.Join(lines, "\n")

	got := TruncateToBudget(big, 100)
	if EstimateTokens(got) > 100 {
		t.Errorf("truncated text still %d tokens", EstimateTokens(got))
	}
	// Cuts happen at line boundaries.
	for _, line := range strings.Split(got, "\n") {
		if len(strings.Fields(line)) != 20 {
			t.Errorf("line split mid-way: %q", line)
		}
	}
}
