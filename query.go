package jsonmend

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// queryCleaned cleans raw text, validates it and resolves a gjson path
// against the result. The returned string is the raw JSON of the match.
func queryCleaned(raw, path string) (string, error) {
	cleaned := cleanAlmostJSON(raw)
	if err := validateJSON(cleaned); err != nil {
		return "", err
	}
	res := gjson.Get(cleaned, path)
	if !res.Exists() {
		return "", fmt.Errorf("path %q not found", path)
	}
	return res.Raw, nil
}

// patchCleaned cleans raw text, validates it and sets path to value. Values
// that are themselves valid JSON are spliced in raw; anything else becomes a
// JSON string.
func patchCleaned(raw, path, value string) (string, error) {
	cleaned := cleanAlmostJSON(raw)
	if err := validateJSON(cleaned); err != nil {
		return "", err
	}
	var out string
	if json.Valid([]byte(value)) {
		res, err := sjson.SetRaw(cleaned, path, value)
		if err != nil {
			return "", fmt.Errorf("set %q: %w", path, err)
		}
		out = res
	} else {
		res, err := sjson.Set(cleaned, path, value)
		if err != nil {
			return "", fmt.Errorf("set %q: %w", path, err)
		}
		out = res
	}
	return out, nil
}
