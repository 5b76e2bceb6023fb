package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/documents"
	"github.com/alnah/go-snipmark/internal/hints"
)

// runInclude renders one documentation include.
func runInclude(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseIncludeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: include takes exactly one document name, got %d", ErrUsage, len(positional))
	}
	name := positional[0]

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.docsRoot != "" {
		cfg.Documents.Root = flags.docsRoot
	}
	applyMarkdownFlags(flags.markdown, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	r, resolver, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	start := env.Now()
	html, err := r.RenderInclude(ctx, name)
	if err != nil {
		return withDocumentHint(ctx, err, resolver)
	}

	if flags.output == "" {
		fmt.Fprint(env.Stdout, html)
	} else if err := writeOutput(flags.output, html); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stderr, "%s (%v)\n", name, env.Now().Sub(start))
	case flags.output != "":
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

// withDocumentHint appends an actionable hint to include lookup errors.
func withDocumentHint(ctx context.Context, err error, lister documents.Loader) error {
	switch {
	case errors.Is(err, snipmark.ErrDocumentNotFound):
		names, listErr := lister.List(ctx)
		if listErr != nil {
			return err
		}
		return fmt.Errorf("%w%s", err, hints.ForDocumentNotFound(names))
	case errors.Is(err, snipmark.ErrInvalidDocumentName):
		return fmt.Errorf("%w%s", err, hints.ForInvalidDocumentName())
	}
	return err
}

// runDocs lists the documents available to include.
func runDocs(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseDocsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 0 {
		return fmt.Errorf("%w: docs takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.docsRoot != "" {
		cfg.Documents.Root = flags.docsRoot
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	_, resolver, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	names, err := resolver.List(ctx)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		if resolver.HasCustomLoader() {
			fmt.Fprintf(env.Stderr, "Documents root: %s (bundled documents as fallback)\n", cfg.Documents.Root)
		} else {
			fmt.Fprintln(env.Stderr, "Documents root: bundled documents only")
		}
	}
	for _, name := range names {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
