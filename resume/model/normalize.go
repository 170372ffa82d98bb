package model

import (
	"iter"
	"strings"

	"github.com/tidwall/gjson"
)

// bulletGlyphs are stripped from the start of description lines.
const bulletGlyphs = "-*•·–—"

// Text renders any JSON value as a display string. Missing and null values
// become "", scalars keep their textual form and lists or objects keep their
// raw JSON.
func Text(value gjson.Result) string {
	if !value.Exists() || value.Type == gjson.Null {
		return ""
	}
	return strings.TrimSpace(value.String())
}

// Flag reports whether a JSON value is truthy (true, "true", non-zero number).
func Flag(value gjson.Result) bool {
	if !value.Exists() {
		return false
	}
	return value.Bool()
}

// SplitSkills accepts a comma-separated string or a list and returns the
// trimmed, non-empty labels in input order.
func SplitSkills(value gjson.Result) []string {
	var raw []string
	if value.IsArray() {
		for _, item := range value.Array() {
			raw = append(raw, Text(item))
		}
	} else {
		raw = strings.Split(Text(value), ",")
	}

	out := make([]string, 0, len(raw))
	for _, label := range raw {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Bullets yields one item per non-blank line of text with any leading bullet
// glyphs removed. The sequence can be ranged over more than once.
func Bullets(text string) iter.Seq[string] {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	return func(yield func(string) bool) {
		rest := normalized
		for rest != "" {
			line, tail, _ := strings.Cut(rest, "\n")
			rest = tail

			item := bulletText(line)
			if item == "" {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

func bulletText(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, bulletGlyphs)
	return strings.TrimSpace(line)
}
