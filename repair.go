package jsonmend

import (
	"fmt"
	"strings"
)

const jsonWhitespace = " \t\r\n"

// cleanAlmostJSON runs the repair stages in order. Each stage takes the
// previous stage's output and returns a new buffer; unmatched patterns pass
// through unchanged, so the pipeline never fails.
func cleanAlmostJSON(raw string) string {
	out := normalizeBraces(raw)
	out = stripTrailingCommas(out)
	out = insertMissingCommas(out)
	out = escapeControlChars(out)
	return out
}

// normalizeBraces rewrites a doubled outer brace wrapper into a single-element
// array: "{{ ... }}" becomes "[{ ... }]". The pattern is matched only at the
// trimmed edges of the whole document, never by substring search, so doubled
// braces inside string values cannot trigger it. A stray comma between the two
// trailing closers ("},}") is dropped as part of the rewrite.
func normalizeBraces(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 4 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return text
	}
	inner := strings.TrimLeft(trimmed[1:len(trimmed)-1], jsonWhitespace)
	if !strings.HasPrefix(inner, "{") {
		return text
	}
	body := strings.TrimRight(inner, jsonWhitespace)
	if strings.HasSuffix(body, ",") {
		body = strings.TrimRight(body[:len(body)-1], jsonWhitespace)
	}
	if !strings.HasSuffix(body, "}") {
		return text
	}
	return "[" + body + "]"
}

// stripTrailingCommas removes comma runs that immediately precede a closing
// brace or bracket, tolerating whitespace and newlines between the commas and
// the closer. The scan tracks string boundaries so commas inside string
// values survive; it operates on raw text, which at this point is usually not
// yet valid JSON.
func stripTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			b.WriteByte(ch)
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		if ch == '"' {
			inString = true
			b.WriteByte(ch)
			continue
		}
		if ch == ',' {
			j := i + 1
			for j < len(text) && (text[j] == ',' || isJSONSpace(text[j])) {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				// Drop the commas, keep the whitespace run.
				for k := i; k < j; k++ {
					if text[k] != ',' {
						b.WriteByte(text[k])
					}
				}
				i = j - 1
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// insertMissingCommas restores the separator between adjacent string elements
// that are split across lines with no comma in between:
//
//	"alpha"
//	"beta"
//
// The comma goes directly after the closing quote; the whitespace run is kept
// as-is. Quotes inside string values are tracked the same way as in the other
// stages and never treated as element boundaries.
func insertMissingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		b.WriteByte(ch)
		if !inString {
			if ch == '"' {
				inString = true
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '"':
			inString = false
			j := i + 1
			sawNewline := false
			for j < len(text) && isJSONSpace(text[j]) {
				if text[j] == '\n' {
					sawNewline = true
				}
				j++
			}
			if sawNewline && j < len(text) && text[j] == '"' {
				b.WriteByte(',')
			}
		}
	}
	return b.String()
}

// escapeControlChars replaces raw control characters inside string values
// with their JSON escapes: newline, carriage return and tab become their
// two-character sequences, any other control rune becomes \u00XX. Characters
// outside strings pass through, quote characters toggle string state only
// when not themselves escaped, and sequences that already carry an escape
// prefix are not escaped again.
func escapeControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inString := false
	escaped := false
	for _, r := range text {
		if !inString {
			if r == '"' {
				inString = true
			}
			b.WriteRune(r)
			continue
		}
		if isControlRune(r) {
			// A raw control character is escaped even when it directly
			// follows a backslash.
			escaped = false
			switch r {
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				fmt.Fprintf(&b, `\u%04x`, r)
			}
			continue
		}
		if escaped {
			escaped = false
			b.WriteRune(r)
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inString = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isJSONSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isControlRune(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}
