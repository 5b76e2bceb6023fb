package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/config"
	"github.com/alnah/go-snipmark/internal/documents"
	"github.com/alnah/go-snipmark/internal/hints"
)

// loadConfig resolves the configuration for a command: the file named by
// --config (or SNIPMARK_CONFIG) over defaults, then the environment overlay.
// Flag values are merged by the caller, which then calls validateConfig.
func loadConfig(common commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !strings.ContainsAny(name, "/\\") {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
		if common.verbose {
			fmt.Fprintf(env.Stderr, "Config: %s\n", name)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// applyMarkdownFlags merges highlighting flags into cfg.
func applyMarkdownFlags(f markdownFlags, cfg *config.Config) {
	if f.highlight {
		cfg.Markdown.Highlight.Enabled = true
	}
	if f.style != "" {
		cfg.Markdown.Highlight.Style = f.style
		cfg.Markdown.Highlight.Enabled = true
	}
}

// validateConfig validates the merged configuration, adding a style hint
// when the highlight style is unknown.
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidValue) && strings.Contains(err.Error(), "highlight.style") {
			return fmt.Errorf("%w%s", err, hints.ForUnknownStyle(snipmark.HighlightStyles()))
		}
		return err
	}
	return nil
}

// rendererOptions translates configuration into renderer options.
// The document loader is chosen by the caller.
func rendererOptions(cfg *config.Config) []snipmark.Option {
	var opts []snipmark.Option
	if cfg.Markdown.Highlight.Enabled {
		opts = append(opts, snipmark.WithHighlighting(cfg.HighlightStyle()))
	}
	return opts
}

// newRenderer builds a renderer over the configured documents root with
// bundled documents as fallback. The resolver is returned for listing.
func newRenderer(cfg *config.Config) (*snipmark.Renderer, *documents.Resolver, error) {
	resolver, err := documents.NewResolver(cfg.Documents.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w%s", err, hints.ForDocumentsRoot())
	}

	r, err := snipmark.NewRenderer(append(rendererOptions(cfg), snipmark.WithDocumentLoader(resolver))...)
	if err != nil {
		return nil, nil, err
	}
	return r, resolver, nil
}
