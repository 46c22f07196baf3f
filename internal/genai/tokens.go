package genai

import "strings"

// MaxInputTokens bounds the combined document text sent with one generation
// request, leaving headroom for the prompt template and the response.
const MaxInputTokens = 100000

// EstimateTokens gives a rough token count from the word count. Exact
// tokenization is not required for budgeting.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	// Roughly 1.33 tokens per English word.
	tokens := int(float64(len(strings.Fields(text))) * 1.33)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// TruncateToBudget trims text to approximately maxTokens, cutting at a line
// boundary so sections stay intact where possible.
func TruncateToBudget(text string, maxTokens int) string {
	if maxTokens <= 0 || EstimateTokens(text) <= maxTokens {
		return text
	}

	var sb strings.Builder
	used := 0
	for _, line := range strings.Split(text, "\n") {
		t := EstimateTokens(line)
		if used+t > maxTokens {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		used += t
	}
	return sb.String()
}
