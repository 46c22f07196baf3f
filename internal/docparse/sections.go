package docparse

import (
	"regexp"
	"strings"

	"github.com/deckforge/deckforge/internal/document"
	"github.com/google/uuid"
)

// Heuristic header patterns in precedence order. The tie-break order matters:
// numbered > sub-numbered > all-caps > whitelist.
var (
	numberedRe    = regexp.MustCompile(`^(\d+\.)\s+(.+)$`)
	subNumberedRe = regexp.MustCompile(`^(\d+\.\d+)\s+(.+)$`)
	allCapsRe     = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
	whitelistRe   = regexp.MustCompile(`(?i)^(Executive Summary|Introduction|Background|Methodology|Findings|Recommendations|Conclusion|Appendix)`)
)

const maxHeaderLen = 100

// splitSections applies the line-based header heuristics to plain text and
// returns the resulting section outline. Text preceding the first recognized
// header is collected into a synthetic "Introduction" section.
func splitSections(text string) []document.Section {
	var sections []document.Section
	var current *document.Section
	var content []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		if current.Content != "" {
			sections = append(sections, *current)
		}
		current = nil
		content = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		title, level, isHeader := matchHeader(line)
		if isHeader && len(line) < maxHeaderLen {
			flush()
			current = &document.Section{ID: uuid.NewString(), Title: title, Level: level}
			continue
		}

		if current == nil {
			current = &document.Section{ID: uuid.NewString(), Title: "Introduction", Level: 1}
		}
		content = append(content, line)
	}
	flush()

	// A document whose every line looks like a header still needs one section.
	if len(sections) == 0 && strings.TrimSpace(text) != "" {
		sections = append(sections, document.Section{
			ID:      uuid.NewString(),
			Title:   "Introduction",
			Content: strings.TrimSpace(text),
			Level:   1,
		})
	}

	return sections
}

// matchHeader tests a line against the header patterns in precedence order.
// The level is 2 when the numbering prefix contains a dot, else 1.
func matchHeader(line string) (title string, level int, ok bool) {
	if m := numberedRe.FindStringSubmatch(line); m != nil {
		return m[2], prefixLevel(m[1]), true
	}
	if m := subNumberedRe.FindStringSubmatch(line); m != nil {
		return m[2], prefixLevel(m[1]), true
	}
	if allCapsRe.MatchString(line) {
		return line, 1, true
	}
	if whitelistRe.MatchString(line) {
		return line, 1, true
	}
	return "", 0, false
}

func prefixLevel(prefix string) int {
	if strings.Contains(prefix, ".") {
		return 2
	}
	return 1
}

// firstShortLine returns the first non-empty line shorter than max, for
// title inference when metadata carries none.
func firstShortLine(text string, max int) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < max {
			return line
		}
		return ""
	}
	return ""
}
