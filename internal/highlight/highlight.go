package highlight

import (
	"html"
	"strings"
)

// Marker describes how a matched span is wrapped. Escape, when set, is applied
// to every text segment (matched or not) before markers are inserted.
type Marker struct {
	Open   string
	Close  string
	Escape func(string) string
}

var (
	// HTML wraps matches in <mark> and escapes all text for safe embedding.
	HTML = Marker{
		Open:   `<mark style="background-color: yellow; color: black">`,
		Close:  `</mark>`,
		Escape: html.EscapeString,
	}
	// Brackets wraps matches in square brackets.
	Brackets = Marker{Open: "[", Close: "]"}
	// ANSI paints matches with a yellow background on terminals.
	ANSI = Marker{Open: "\x1b[30;43m", Close: "\x1b[0m"}
)

func (m Marker) escape(s string) string {
	if m.Escape == nil {
		return s
	}
	return m.Escape(s)
}

// Apply wraps each span of text with the marker. Spans must be sorted and
// non-overlapping, as returned by Matcher.Find.
func Apply(text string, spans []Span, m Marker) string {
	if len(spans) == 0 {
		return m.escape(text)
	}
	var sb strings.Builder
	sb.Grow(len(text) + len(spans)*(len(m.Open)+len(m.Close)))
	prev := 0
	for _, s := range spans {
		sb.WriteString(m.escape(text[prev:s.Start]))
		sb.WriteString(m.Open)
		sb.WriteString(m.escape(text[s.Start:s.End]))
		sb.WriteString(m.Close)
		prev = s.End
	}
	sb.WriteString(m.escape(text[prev:]))
	return sb.String()
}

// Highlight marks every whole-word, case-insensitive occurrence of keywords in text.
func Highlight(text string, keywords []string, m Marker) string {
	return Apply(text, Compile(keywords).Find(text), m)
}
