package web

import (
	"strings"
)

// LineKind classifies one line of the instructions text.
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading1
	LineHeading2
)

// Line is one rendered line of the instructions page.
type Line struct {
	Kind LineKind
	Text string
}

func (l Line) IsHeading1() bool { return l.Kind == LineHeading1 }
func (l Line) IsHeading2() bool { return l.Kind == LineHeading2 }

// emptyInstructions is shown when the admin cleared the instructions text.
const emptyInstructions = "Инструкция в процессе подготовки."

// FormatInstructions understands exactly two markers: "# " opens a top heading
// and "## " a section heading. Other non-blank lines become paragraphs.
func FormatInstructions(text string) []Line {
	if strings.TrimSpace(text) == "" {
		text = emptyInstructions
	}

	var out []Line
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "# "):
			out = append(out, Line{Kind: LineHeading1, Text: line[2:]})
		case strings.HasPrefix(line, "## "):
			out = append(out, Line{Kind: LineHeading2, Text: line[3:]})
		case strings.TrimSpace(line) != "":
			out = append(out, Line{Kind: LineParagraph, Text: line})
		}
	}
	return out
}

// AbsoluteURL resolves p against base unless p is already absolute.
func AbsoluteURL(base, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}

// TelegramURL turns "@handle" into a t.me link.
func TelegramURL(handle string) string {
	return "https://t.me/" + strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// CSSValue strips characters that could close the declaration or the style
// element. Colors such as rgba(...) and #hex pass through unchanged.
func CSSValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', ';', '"', '\'', '\\', '\n', '\r':
			return -1
		}
		return r
	}, v)
}

// IsExternal reports whether href leaves the site.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
