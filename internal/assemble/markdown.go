package assemble

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText renders a markdown string down to plain text: emphasis markers,
// inline code, headings and list syntax are dropped, block boundaries become
// newlines. Plain input passes through unchanged apart from trimming.
func PlainText(src string) string {
	if src == "" || !strings.ContainsAny(src, "*_`#[>~") {
		return strings.TrimSpace(src)
	}

	source := []byte(src)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var buf strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte('\n')
				}
			}
			return ast.WalkContinue, nil
		}
		// Separate block-level nodes with newlines on exit.
		if n.Type() == ast.TypeBlock && buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})

	out := strings.TrimSpace(buf.String())
	// Collapse the blank runs left by nested blocks.
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return out
}
