package genai

import (
	"fmt"
	"strings"
)

const slidePromptTemplate = `You are an expert presentation designer specializing in executive presentations.

Create a professional slide deck based on the following document content:

<document>
%s
</document>

Requirements:
- Generate exactly %d slides
- Use consulting style: clear headlines that state the key takeaway, structured content, data-driven insights
- Each slide title must be an action-oriented statement, not just a topic
- Focus areas: %s
- Tone: %s

Slide types available: title, executive-summary, agenda, section-header, content, two-column, chart, comparison, timeline, key-takeaways, appendix.

Content block types available inside a slide's "content" array:
- {"type":"bullets","data":{"items":[{"text":"...","subItems":["..."]}]}}
- {"type":"numbered-list","data":{"items":[{"text":"..."}]}}
- {"type":"text","data":{"text":"...","style":"normal"}}
- {"type":"table","data":{"headers":["..."],"rows":[["..."]]}}
- {"type":"chart","data":{"chartType":"bar","title":"...","data":[{"label":"...","value":0}]}}

Return ONLY JSON in this exact shape:
{
  "title": "Presentation title",
  "slides": [
    {"id":"slide-1","type":"title","title":"Main title","subtitle":"Tagline","content":[],"notes":"Speaker notes","order":1}
  ]
}

Guidelines:
1. Headlines are complete sentences that state the "so what"
2. Lead with the conclusion, then support it
3. Limit bullets to 3-5 per slide
4. Include specific numbers and data points where available
5. One clear message per slide`

// BuildSlidePrompt renders the slide-generation prompt for a combined
// document text and generation options.
func BuildSlidePrompt(documentText string, opts GenerateOptions) string {
	focus := "general overview"
	if len(opts.FocusAreas) > 0 {
		focus = strings.Join(opts.FocusAreas, ", ")
	}
	tone := opts.Tone
	if tone == "" {
		tone = "executive"
	}
	return fmt.Sprintf(slidePromptTemplate, documentText, opts.SlideCount, focus, tone)
}
