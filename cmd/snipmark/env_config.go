package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-snipmark/internal/config"
)

const envPrefix = "SNIPMARK_"

// envConfig holds configuration from environment variables.
// Provides deployment-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // SNIPMARK_CONFIG: config file name or path
	AppURL         string // SNIPMARK_APP_URL: base URL for absolute links
	DocumentsRoot  string // SNIPMARK_DOCUMENTS_ROOT: include documents directory
	HighlightStyle string // SNIPMARK_HIGHLIGHT_STYLE: chroma style (enables highlighting)
	Workers        int    // SNIPMARK_WORKERS: parallel workers
}

// knownEnvVars lists valid SNIPMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SNIPMARK_CONFIG":          true,
	"SNIPMARK_APP_URL":         true,
	"SNIPMARK_DOCUMENTS_ROOT":  true,
	"SNIPMARK_HIGHLIGHT_STYLE": true,
	"SNIPMARK_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive SNIPMARK_WORKERS values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("SNIPMARK_CONFIG"),
		AppURL:         getenv("SNIPMARK_APP_URL"),
		DocumentsRoot:  getenv("SNIPMARK_DOCUMENTS_ROOT"),
		HighlightStyle: getenv("SNIPMARK_HIGHLIGHT_STYLE"),
	}

	if workers := getenv("SNIPMARK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SNIPMARK_* variables.
// Helps catch typos like SNIPMARK_APPURL instead of SNIPMARK_APP_URL.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}

	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overlays environment values on a loaded config.
// Set variables replace file values; flags are merged afterwards, giving
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AppURL != "" {
		cfg.App.URL = env.AppURL
	}
	if env.DocumentsRoot != "" {
		cfg.Documents.Root = env.DocumentsRoot
	}
	if env.HighlightStyle != "" {
		cfg.Markdown.Highlight.Style = env.HighlightStyle
		cfg.Markdown.Highlight.Enabled = true
	}
	if env.Workers > 0 {
		cfg.Render.Workers = env.Workers
	}
}
