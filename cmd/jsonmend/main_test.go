package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRunBeautifiesFile(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{{ "a": 1, "b": [1,2,], }}`)
	out := filepath.Join(dir, "out.json")

	if err := run([]string{"--input", in, "--output", out}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasSuffix(string(b), "\n") {
		t.Fatalf("output missing trailing newline")
	}
	var v []map[string]any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(v) != 1 || v[0]["a"] != float64(1) {
		t.Fatalf("unexpected structure: %#v", v)
	}
}

func TestRunParseErrorFails(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{"a": }`)

	err := run([]string{"--input", in, "--output", filepath.Join(dir, "out.json")})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunEmptyInputWarnsAndSucceeds(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, "  \n\t\n")
	out := filepath.Join(dir, "out.json")

	if err := run([]string{"--input", in, "--output", out}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output file for empty input")
	}
}

func TestRunRejectsNegativeIndent(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{"a": 1}`)

	if err := run([]string{"--input", in, "--indent", "-3"}); err == nil {
		t.Fatalf("expected error for negative indent")
	}
}

func TestRunRejectsPositionalArgs(t *testing.T) {
	if err := run([]string{"bogus"}); err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestRunQueryFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{"a": {"b": 2,},}`)
	out := filepath.Join(dir, "out.json")

	if err := run([]string{"--input", in, "--output", out, "--query", "a.b"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.TrimSpace(string(b)) != "2" {
		t.Fatalf("unexpected query output: %q", string(b))
	}
}

func TestRunSetFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{"a": 1,}`)
	out := filepath.Join(dir, "out.json")

	if err := run([]string{"--input", in, "--output", out, "--set", "b=true"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if v["b"] != true {
		t.Fatalf("expected b=true, got %#v", v["b"])
	}
}

func TestRunConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{"a": 1}`)
	out := filepath.Join(dir, "out.json")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgBody := "indent: 4\noutput: " + out + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := run([]string{"--input", in, "--config", cfgPath}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(string(b), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "    \"a\"") {
		t.Fatalf("expected 4-space indent from config, got:\n%s", string(b))
	}
}

func TestRunFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeTempInput(t, dir, `{"a": 1}`)
	out := filepath.Join(dir, "out.json")
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("indent: 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := run([]string{"--input", in, "--output", out, "--config", cfgPath, "--indent", "2"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(string(b), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "  \"a\"") {
		t.Fatalf("expected 2-space indent from flag, got:\n%s", string(b))
	}
}

func TestRunVersion(t *testing.T) {
	if err := run([]string{"--version"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestRunMissingInputFile(t *testing.T) {
	if err := run([]string{"--input", filepath.Join(t.TempDir(), "nope.txt")}); err == nil {
		t.Fatalf("expected error for missing input file")
	}
}
