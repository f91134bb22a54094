// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
	"github.com/alnah/go-reddit2ebook/internal/assets"
	"github.com/alnah/go-reddit2ebook/internal/fileutil"
)

// AppDir is the directory searched under the user config dir.
const AppDir = "go-reddit2ebook"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Limits.
const (
	MaxPosts           = 1000 // listing endpoints stop serving around this depth
	MaxWorkers         = 32
	MaxPathLength      = 4096
	MaxUserAgentLength = 256
	MaxArgsLength      = 4096
	MaxURLLength       = 2048
)

// Config holds the file-level settings. Zero values mean "not set": the
// command-line defaults apply.
type Config struct {
	Posts     int             `yaml:"posts"`
	Converter ConverterConfig `yaml:"converter"`
	Reddit    RedditConfig    `yaml:"reddit"`
	Render    RenderConfig    `yaml:"render"`
	HTML      HTMLConfig      `yaml:"html"`
}

// ConverterConfig defines the external converter.
type ConverterConfig struct {
	Path    string        `yaml:"path"`
	Args    *string       `yaml:"args"`    // nil = default args, "" = no args
	Timeout time.Duration `yaml:"timeout"` // whole-run timeout, e.g. "5m"
}

// RedditConfig defines how the remote API is reached.
type RedditConfig struct {
	BaseURL        string         `yaml:"baseURL"`
	UserAgent      string         `yaml:"userAgent"`
	RequestTimeout time.Duration  `yaml:"requestTimeout"`
	Delay          *time.Duration `yaml:"delay"` // nil = default, 0 = no delay
}

// RenderConfig defines document rendering.
type RenderConfig struct {
	MaxDepth int `yaml:"maxDepth"` // 0 = unlimited
	Workers  int `yaml:"workers"`
}

// HTMLConfig defines the built-in HTML output.
type HTMLConfig struct {
	Style     string `yaml:"style"`     // embedded or custom style name
	AssetPath string `yaml:"assetPath"` // directory holding styles/*.css
}

// Validate checks ranges, lengths and formats.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if c.Posts < 0 || c.Posts > MaxPosts {
		return fmt.Errorf("%w: posts: must be between 1 and %d, got %d", ErrInvalidConfig, MaxPosts, c.Posts)
	}

	// Converter
	if err := validateFieldLength("converter.path", c.Converter.Path, MaxPathLength); err != nil {
		return err
	}
	if c.Converter.Args != nil {
		if err := validateFieldLength("converter.args", *c.Converter.Args, MaxArgsLength); err != nil {
			return err
		}
		if _, err := reddit2ebook.ParseConverterArgs(*c.Converter.Args); err != nil {
			return fmt.Errorf("%w: converter.args: %w", ErrInvalidConfig, err)
		}
	}
	if c.Converter.Timeout < 0 {
		return fmt.Errorf("%w: converter.timeout: cannot be negative", ErrInvalidConfig)
	}

	// Reddit
	if err := validateFieldLength("reddit.baseURL", c.Reddit.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Reddit.BaseURL != "" {
		u, err := url.Parse(c.Reddit.BaseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: reddit.baseURL: %q is not an http(s) URL", ErrInvalidConfig, c.Reddit.BaseURL)
		}
	}
	if err := validateFieldLength("reddit.userAgent", c.Reddit.UserAgent, MaxUserAgentLength); err != nil {
		return err
	}
	if c.Reddit.RequestTimeout < 0 {
		return fmt.Errorf("%w: reddit.requestTimeout: cannot be negative", ErrInvalidConfig)
	}
	if c.Reddit.Delay != nil && *c.Reddit.Delay < 0 {
		return fmt.Errorf("%w: reddit.delay: cannot be negative", ErrInvalidConfig)
	}

	// Render
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("%w: render.maxDepth: cannot be negative, got %d", ErrInvalidConfig, c.Render.MaxDepth)
	}
	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers: must be between 1 and %d, got %d", ErrInvalidConfig, MaxWorkers, c.Render.Workers)
	}

	// HTML
	if c.HTML.Style != "" {
		if err := assets.ValidateAssetName(c.HTML.Style); err != nil {
			return fmt.Errorf("%w: html.style: %w", ErrInvalidConfig, err)
		}
	}
	if err := validateFieldLength("html.assetPath", c.HTML.AssetPath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %w: %s (%d chars, max %d)", ErrInvalidConfig, ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: every setting falls back to
// the command-line defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
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
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config named name is looked for, in order:
// the current directory, then the user config directory, each with .yaml
// then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
