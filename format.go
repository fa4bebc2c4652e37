package jsonmend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
)

// DefaultIndent is the indentation width used when the caller does not choose
// one.
const DefaultIndent = 2

// ParseError reports that the cleaned text is still not valid JSON. Line and
// Column are 1-based and refer to the cleaned text handed to the parser;
// Offset is the byte offset reported by the parser.
type ParseError struct {
	Msg    string
	Line   int
	Column int
	Offset int64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func beautify(raw string, indentWidth int) (string, error) {
	if indentWidth < 0 {
		return "", fmt.Errorf("indent width must be >= 0, got %d", indentWidth)
	}
	cleaned := cleanAlmostJSON(raw)
	if err := validateJSON(cleaned); err != nil {
		return "", err
	}
	out := pretty.PrettyOptions([]byte(cleaned), &pretty.Options{
		// Width 0 keeps the output fully expanded regardless of value size;
		// SortKeys stays off so key order follows the input document.
		Indent: strings.Repeat(" ", indentWidth),
	})
	return strings.TrimSuffix(string(out), "\n"), nil
}

// validateJSON delegates to the standard parser. This is the only error
// boundary in the pipeline; parse failures are surfaced with their position,
// never retried.
func validateJSON(text string) error {
	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		return nil
	}
	var offset int64
	if syn, ok := err.(*json.SyntaxError); ok {
		offset = syn.Offset
	}
	line, col := lineColumn(text, offset)
	return &ParseError{Msg: err.Error(), Line: line, Column: col, Offset: offset}
}

// lineColumn maps a byte offset reported by the parser to 1-based line and
// column numbers.
func lineColumn(text string, offset int64) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	prefix := text[:offset]
	line = 1 + strings.Count(prefix, "\n")
	col = len(prefix) - (strings.LastIndexByte(prefix, '\n') + 1)
	if col < 1 {
		col = 1
	}
	return line, col
}
