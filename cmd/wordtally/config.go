package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig holds defaults loaded from an optional YAML config file. CLI
// flags that were set explicitly win over file values.
type fileConfig struct {
	Workers   int      `yaml:"workers"`
	Tokenizer string   `yaml:"tokenizer"`
	DropEmpty bool     `yaml:"drop_empty"`
	Stopwords bool     `yaml:"stopwords"`
	Extra     []string `yaml:"extra_stopwords"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
