package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Indent *int   `yaml:"indent"`
	Output string `yaml:"output"`
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Indent != nil && *cfg.Indent < 0 {
		return nil, fmt.Errorf("config %q: indent must be >= 0, got %d", path, *cfg.Indent)
	}

	return &cfg, nil
}
