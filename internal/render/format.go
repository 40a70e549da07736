// Package render converts raw answer markdown into the markup shown in the detail view.
package render

import (
	"html"
	"regexp"
	"strings"
)

// EmptyAnswer is rendered when an answer has no text.
const EmptyAnswer = "Answer not available."

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// Applied in order; each pass sees the output of the previous one, so
// nested or overlapping constructs are not handled.
var substitutions = []substitution{
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>$1</strong>"},
	{regexp.MustCompile(`\*(.+?)\*`), "<em>$1</em>"},
	{regexp.MustCompile("`(.+?)`"), "<code>$1</code>"},
	{regexp.MustCompile(`\n\n`), "</p><p>"},
	{regexp.MustCompile(`\n`), "<br>"},
}

// FormatAnswer renders bold, italic, inline code, paragraph breaks and line
// breaks. The text is HTML-escaped before any substitution.
func FormatAnswer(raw string) string {
	if raw == "" {
		return EmptyAnswer
	}

	out := html.EscapeString(raw)
	for _, s := range substitutions {
		out = s.pattern.ReplaceAllString(out, s.replacement)
	}

	var b strings.Builder
	b.Grow(len(out) + 7)
	b.WriteString("<p>")
	b.WriteString(out)
	b.WriteString("</p>")
	return b.String()
}
