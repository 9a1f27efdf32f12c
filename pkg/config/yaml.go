package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are
// rejected so typos in a .guardfix.yml surface immediately.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}

// Template returns a starter .guardfix.yml with the defaults spelled
// out and commented.
func Template() []byte {
	return []byte(`# guardfix configuration
# https://github.com/yaklabco/guardfix

# Header extensions to process.
extensions:
  - .h
  - .hpp
  - .hh
  - .hxx
  - .h++

# Glob patterns to skip. Directories match with a trailing /**.
ignore: []
#  - third_party/**
#  - vendor/**

# Keep a <file>.guardfix.bak sidecar before rewriting.
backups:
  enabled: true

# Skip headers whose content classifies as something other than
# C or C++ (for example Objective-C).
detect_language: false

# Parallel workers (0 = one per CPU).
jobs: 0
`)
}
