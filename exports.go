// Package jsonmend repairs "almost-JSON" text, such as copy-pasted API or log
// output with doubled wrapping braces, trailing commas, or raw control
// characters inside string values, and re-emits valid, pretty-printed JSON.
package jsonmend

// Clean applies the repair stages in order and returns the repaired text. It
// is best-effort text surgery: it never fails, and it may return text that
// still does not parse when the defects fall outside the handled classes.
func Clean(raw string) string {
	return cleanAlmostJSON(raw)
}

// Beautify cleans raw text, validates the result as JSON and pretty-prints it
// with indentWidth spaces per level. Key order follows the input document.
// When the cleaned text still is not valid JSON it fails with a *ParseError
// carrying the parser's position.
func Beautify(raw string, indentWidth int) (string, error) {
	return beautify(raw, indentWidth)
}

// NormalizeBraces rewrites a doubled outer brace wrapper ("{{ ... }}") into a
// single-element array ("[{ ... }]"). Input without the wrapper is returned
// unchanged.
func NormalizeBraces(input string) string {
	return normalizeBraces(input)
}

// StripTrailingCommas removes commas that precede a closing brace or bracket,
// tolerating whitespace and newlines in between. Commas inside string values
// are left untouched.
func StripTrailingCommas(input string) string {
	return stripTrailingCommas(input)
}

// InsertMissingCommas restores the separator between adjacent string elements
// that are split across lines with no comma in between.
func InsertMissingCommas(input string) string {
	return insertMissingCommas(input)
}

// EscapeControlChars replaces raw control characters inside string values with
// their JSON escape sequences, leaving everything outside strings untouched.
func EscapeControlChars(input string) string {
	return escapeControlChars(input)
}

// Query cleans raw text, validates it and resolves a gjson path against the
// result, returning the raw JSON of the match.
func Query(raw, path string) (string, error) {
	return queryCleaned(raw, path)
}

// Patch cleans raw text, validates it and sets a gjson path to a new value.
// Values that are valid JSON are spliced in as-is; anything else becomes a
// JSON string.
func Patch(raw, path, value string) (string, error) {
	return patchCleaned(raw, path, value)
}
