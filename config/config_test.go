// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "document.json", cfg.File)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "  ", cfg.Indent)
	assert.Equal(t, "color", cfg.ReadOnlyField)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
file: notes.json
log_level: debug
indent: "    "
read_only_field: locked
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.json", cfg.File)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, "locked", cfg.ReadOnlyField)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "file: notes.json\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.json", cfg.File)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "color", cfg.ReadOnlyField)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "file: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeConfig(t, `file: ""`)
	_, err := Load(path)
	assert.Error(t, err)
}
