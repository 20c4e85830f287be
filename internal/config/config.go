// Package config loads and validates YAML configuration for document
// generation. Zero values mean "use the built-in default"; the CLI merges
// flags over the loaded file, flags winning.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field bounds mirrored from the library defaults.
const (
	MinMargin        = 0.25
	MaxMargin        = 3.0
	MinColumns       = 1
	MaxColumns       = 4
	MinFontSize      = 6
	MaxFontSize      = 96
	MaxHangingIndent = 1.0
	MaxFontNameLen   = 100
	MaxExtensionLen  = 10
)

// configDirName under os.UserConfigDir for named configs.
const configDirName = "go-idx2docx"

// maxConfigSize caps config file input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Config holds all configuration for document generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Page     PageConfig     `yaml:"page"`
	Text     TextConfig     `yaml:"text"`
	Comments CommentsConfig `yaml:"comments"`
}

// OutputConfig defines output artifact options.
type OutputConfig struct {
	Extension string `yaml:"extension"` // default "docx"
}

// PageConfig defines page geometry options.
type PageConfig struct {
	Margin  float64 `yaml:"margin"`  // inches, all sides (default 0.75)
	Columns int     `yaml:"columns"` // body columns (default 2)
}

// TextConfig defines document style options.
type TextConfig struct {
	BodyFont      string  `yaml:"bodyFont"`      // default "Times New Roman"
	BodySize      int     `yaml:"bodySize"`      // points (default 10)
	HeadingSize   int     `yaml:"headingSize"`   // points (default 32)
	TopicColor    string  `yaml:"topicColor"`    // RRGGBB hex (default 1667FF)
	HangingIndent float64 `yaml:"hangingIndent"` // inches (default 0.1)
}

// CommentsConfig defines comment column handling.
type CommentsConfig struct {
	Markdown bool `yaml:"markdown"` // true = parse inline Markdown (default verbatim)
}

// DefaultConfig returns a configuration with every field unset, meaning
// the library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks set fields against their bounds. Zero values pass.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Output.Extension != "" {
		if len(c.Output.Extension) > MaxExtensionLen {
			return fmt.Errorf("%w: output.extension too long (%d chars, max %d)", ErrInvalidField, len(c.Output.Extension), MaxExtensionLen)
		}
		if strings.ContainsAny(c.Output.Extension, "/\\.\x00") {
			return fmt.Errorf("%w: output.extension %q contains path characters", ErrInvalidField, c.Output.Extension)
		}
	}

	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin %.2f (must be between %.2f and %.2f)", ErrInvalidField, c.Page.Margin, MinMargin, MaxMargin)
	}
	if c.Page.Columns != 0 && (c.Page.Columns < MinColumns || c.Page.Columns > MaxColumns) {
		return fmt.Errorf("%w: page.columns %d (must be between %d and %d)", ErrInvalidField, c.Page.Columns, MinColumns, MaxColumns)
	}

	if len(c.Text.BodyFont) > MaxFontNameLen {
		return fmt.Errorf("%w: text.bodyFont too long (%d chars, max %d)", ErrInvalidField, len(c.Text.BodyFont), MaxFontNameLen)
	}
	if c.Text.BodySize != 0 && (c.Text.BodySize < MinFontSize || c.Text.BodySize > MaxFontSize) {
		return fmt.Errorf("%w: text.bodySize %d (must be between %d and %d)", ErrInvalidField, c.Text.BodySize, MinFontSize, MaxFontSize)
	}
	if c.Text.HeadingSize != 0 && (c.Text.HeadingSize < MinFontSize || c.Text.HeadingSize > MaxFontSize) {
		return fmt.Errorf("%w: text.headingSize %d (must be between %d and %d)", ErrInvalidField, c.Text.HeadingSize, MinFontSize, MaxFontSize)
	}
	if c.Text.TopicColor != "" && !isHexColor(c.Text.TopicColor) {
		return fmt.Errorf("%w: text.topicColor %q (must be RRGGBB hex)", ErrInvalidField, c.Text.TopicColor)
	}
	if c.Text.HangingIndent < 0 || c.Text.HangingIndent > MaxHangingIndent {
		return fmt.Errorf("%w: text.hangingIndent %.2f (must be between 0 and %.2f)", ErrInvalidField, c.Text.HangingIndent, MaxHangingIndent)
	}

	return nil
}

// isHexColor checks for a six-digit RRGGBB hex value without a leading '#'.
func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decodeStrict parses YAML, rejecting unknown fields and oversized input.
func decodeStrict(data []byte, v any) error {
	if len(data) > maxConfigSize {
		return fmt.Errorf("input exceeds %d bytes", maxConfigSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/go-idx2docx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
