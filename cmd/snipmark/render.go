package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/config"
	"github.com/alnah/go-snipmark/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoBaseURL        = errors.New("no base URL for absolute snippet links")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrOutputCollision  = errors.New("inputs map to the same output file")
)

// stdinName marks standard input among positional arguments.
const stdinName = "-"

// runRender renders snippets for in-app display.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags("render", args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	applyMarkdownFlags(flags.markdown, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	r, _, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	return renderInputs(ctx, positional, flags, cfg, env, r.Render)
}

// runRSS renders snippets for a feed, with absolute snippet links.
func runRSS(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags("rss", args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	applyMarkdownFlags(flags.markdown, cfg)
	if flags.baseURL != "" {
		cfg.App.URL = flags.baseURL
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	baseURL := cfg.BaseURL()
	if baseURL == "" {
		return fmt.Errorf("%w%s", ErrNoBaseURL, hints.ForBaseURL())
	}

	r, _, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	render := func(text string) string {
		out := r.RenderForRSS(text, baseURL)
		if flags.escape {
			out = snipmark.EscapeXML(out)
		}
		return out
	}

	return renderInputs(ctx, positional, flags, cfg, env, render)
}

// renderInputs renders stdin or the positional inputs with render.
func renderInputs(ctx context.Context, positional []string, flags *renderFlags, cfg *config.Config, env *Environment, render renderFunc) error {
	workers, err := resolveWorkers(flags.workers, cfg.Render.Workers)
	if err != nil {
		return err
	}

	if isStdinInput(positional) {
		if flags.output != "" {
			return fmt.Errorf("%w: --output requires file inputs", ErrUsage)
		}
		text, err := readInput(env.Stdin)
		if err != nil {
			return err
		}
		fmt.Fprint(env.Stdout, render(text))
		return nil
	}
	for _, arg := range positional {
		if arg == stdinName {
			return fmt.Errorf("%w: %q cannot be mixed with file inputs", ErrUsage, stdinName)
		}
	}

	jobs, err := discoverInputs(positional, flags.output)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d input(s) with %d worker(s)\n", len(jobs), min(workers, len(jobs)))
	}

	results := renderBatch(ctx, jobs, workers, render, env.Now)
	if failed := printResults(results, flags.common, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d input(s)", ErrRenderFailed, failed, len(results))
	}
	return nil
}

// isStdinInput reports whether the positional args select standard input.
func isStdinInput(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == stdinName)
}

// readInput reads all of r as text.
func readInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// discoverInputs expands files and directories into render jobs.
// Directories are walked for .md and .markdown files. Two inputs writing the
// same output file is an error.
func discoverInputs(args []string, outputDir string) ([]renderJob, error) {
	var jobs []renderJob
	seen := make(map[string]string)

	for _, arg := range args {
		found, err := discoverFiles(arg, outputDir)
		if err != nil {
			return nil, err
		}
		for _, job := range found {
			if job.OutputPath == "" {
				jobs = append(jobs, job)
				continue
			}
			if prev, dup := seen[job.OutputPath]; dup {
				return nil, fmt.Errorf("%w: %s and %s -> %s", ErrOutputCollision, prev, job.InputPath, job.OutputPath)
			}
			seen[job.OutputPath] = job.InputPath
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

// discoverFiles finds all markdown files to render under one input path.
func discoverFiles(inputPath, outputDir string) ([]renderJob, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []renderJob{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, outputDir, "")}}, nil
	}

	var jobs []renderJob
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		jobs = append(jobs, renderJob{InputPath: path, OutputPath: resolveOutputPath(path, outputDir, inputPath)})
		return nil
	})

	return jobs, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// Returns "" (stdout) when outputDir is empty. Directory inputs keep their
// relative layout under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return ""
	}

	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}

// isMarkdownFile reports whether path has a Markdown extension.
func isMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
