// Package config loads and validates snipmark configuration files.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-snipmark/internal/pipeline"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxURLLength   = 2048 // Browser limit
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxStyleLength = 50   // Chroma style names are short
	MaxWorkers     = 32
	MaxInputSize   = 1 << 20 // Config files above 1MB are rejected
)

// appDirName is the directory under the user config dir searched by name.
const appDirName = "snipmark"

// Config holds all configuration for rendering.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Documents DocumentsConfig `yaml:"documents"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Render    RenderConfig    `yaml:"render"`
}

// AppConfig describes the site the rendered HTML belongs to.
type AppConfig struct {
	URL string `yaml:"url"` // Base for absolute snippet links (RSS)
}

// DocumentsConfig locates include documents.
type DocumentsConfig struct {
	Root string `yaml:"root"` // Empty = bundled documents only
}

// MarkdownConfig tunes Markdown conversion.
type MarkdownConfig struct {
	Highlight HighlightConfig `yaml:"highlight"`
}

// HighlightConfig controls fenced code highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // Chroma style name (default: "github")
}

// RenderConfig tunes batch rendering.
type RenderConfig struct {
	Workers int `yaml:"workers"` // 0 = auto from GOMAXPROCS
}

// DefaultHighlightStyle is used when highlighting is enabled without a style.
const DefaultHighlightStyle = "github"

// DefaultConfig returns a configuration with relative links only, bundled
// documents and highlighting disabled.
func DefaultConfig() *Config {
	return &Config{
		Markdown: MarkdownConfig{
			Highlight: HighlightConfig{Enabled: false, Style: DefaultHighlightStyle},
		},
	}
}

// BaseURL returns app.url without trailing slashes, ready to prefix
// "/snippet/<id>".
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.App.URL, "/")
}

// HighlightStyle returns the configured style, or DefaultHighlightStyle.
func (c *Config) HighlightStyle() string {
	if c.Markdown.Highlight.Style == "" {
		return DefaultHighlightStyle
	}
	return c.Markdown.Highlight.Style
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand or overlay environment values.
func (c *Config) Validate() error {
	if err := validateFieldLength("app.url", c.App.URL, MaxURLLength); err != nil {
		return err
	}
	if c.App.URL != "" {
		if err := validateBaseURL(c.App.URL); err != nil {
			return err
		}
	}

	if err := validateFieldLength("documents.root", c.Documents.Root, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("markdown.highlight.style", c.Markdown.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if style := c.Markdown.Highlight.Style; style != "" && !pipeline.HasStyle(style) {
		return fmt.Errorf("%w: markdown.highlight.style: unknown style %q", ErrInvalidValue, style)
	}

	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Render.Workers)
	}

	return nil
}

// validateBaseURL requires an absolute http(s) URL with a host and nothing
// after the path, since "/snippet/<id>" is appended to it.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: app.url: %v", ErrInvalidValue, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: app.url: scheme must be http or https, got %q", ErrInvalidValue, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: app.url: missing host in %q", ErrInvalidValue, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" || strings.ContainsAny(raw, "?#") {
		return fmt.Errorf("%w: app.url: query and fragment not allowed in %q", ErrInvalidValue, raw)
	}
	if strings.ContainsAny(raw, "\"<> ") {
		return fmt.Errorf("%w: app.url: contains characters not allowed in an href: %q", ErrInvalidValue, raw)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's a config name searched in the current directory, then in
// the user config directory (~/.config/snipmark/ on Linux).
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
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

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// A relative documents root is relative to the config file, not the cwd
	if cfg.Documents.Root != "" && !filepath.IsAbs(cfg.Documents.Root) {
		cfg.Documents.Root = filepath.Join(filepath.Dir(configPath), cfg.Documents.Root)
	}

	return cfg, nil
}

// Parse decodes YAML configuration, fills unset defaults and validates it.
// Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty config", ErrConfigParse)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxInputSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Markdown.Highlight.Style == "" {
		cfg.Markdown.Highlight.Style = DefaultHighlightStyle
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// .yaml then .yml, in the current directory then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileExists(p) {
			return p, nil
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
