// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Package config loads the application configuration from a YAML file
// and validates it.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	// File is the document file kept in sync by the mirror.
	File string `yaml:"file" validate:"required"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Indent is the indentation used when the document is rewritten.
	Indent string `yaml:"indent"`
	// ReadOnlyField is the reserved field the editor never overwrites.
	ReadOnlyField string `yaml:"read_only_field" validate:"required"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		File:          "document.json",
		LogLevel:      "info",
		Indent:        "  ",
		ReadOnlyField: "color",
	}
}

// Load reads a YAML configuration file, fills unset fields from the
// defaults, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
