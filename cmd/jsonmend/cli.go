package main

import (
	"fmt"
	"strings"
)

func usageError() error {
	return fmt.Errorf("usage: jsonmend [--input file] [--output file] [--indent n] [--query path] [--set path=value] [--config config.yaml]")
}

func splitSetArg(raw string) (path, value string, err error) {
	idx := strings.Index(raw, "=")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid --set %q, want path=value", raw)
	}
	path = strings.TrimSpace(raw[:idx])
	if path == "" {
		return "", "", fmt.Errorf("invalid --set %q, want path=value", raw)
	}
	return path, raw[idx+1:], nil
}
