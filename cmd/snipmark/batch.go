package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/alnah/go-snipmark/internal/config"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxAutoWorkers caps the GOMAXPROCS-derived worker count.
const maxAutoWorkers = 8

// Sentinel errors for batch operations.
var (
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrRenderFailed       = errors.New("render failed")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// renderFunc converts one snippet's Markdown into HTML.
type renderFunc func(text string) string

// renderJob is a single input to render.
// An empty OutputPath means the HTML is kept for stdout.
type renderJob struct {
	InputPath  string
	OutputPath string
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	HTML       string // Set when OutputPath is empty
	Err        error
	Duration   time.Duration
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > config (including SNIPMARK_WORKERS) > GOMAXPROCS.
func resolveWorkers(flagWorkers, configWorkers int) (int, error) {
	if err := validateWorkers(flagWorkers); err != nil {
		return 0, err
	}
	if flagWorkers > 0 {
		return flagWorkers, nil
	}
	if configWorkers > 0 {
		return configWorkers, nil
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1, nil
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers, nil
	}
	return n, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// renderBatch renders jobs concurrently. Results are in job order.
func renderBatch(ctx context.Context, jobs []renderJob, workers int, render renderFunc, now func() time.Time) []RenderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]RenderResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: jobs[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(jobs[idx], render, now)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// renderFile renders a single input and writes it if it has an output path.
func renderFile(job renderJob, render renderFunc, now func() time.Time) RenderResult {
	start := now()
	result := RenderResult{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}

	content, err := os.ReadFile(job.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		result.Duration = now().Sub(start)
		return result
	}

	html := render(string(content))

	if job.OutputPath == "" {
		result.HTML = html
		result.Duration = now().Sub(start)
		return result
	}

	if err := writeOutput(job.OutputPath, html); err != nil {
		result.Err = err
	}
	result.Duration = now().Sub(start)
	return result
}

// writeOutput writes html to path, creating parent directories.
func writeOutput(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(path, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes rendered HTML to stdout in input order and reports
// progress. Progress goes to stderr when stdout carries HTML.
// Returns the number of failed renders.
func printResults(results []RenderResult, common commonFlags, env *Environment) int {
	summary := countResults(results)

	progress := env.Stdout
	for _, r := range results {
		if r.OutputPath == "" {
			progress = env.Stderr
			break
		}
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if r.OutputPath == "" {
			fmt.Fprint(env.Stdout, r.HTML)
		}

		switch {
		case common.quiet:
		case common.verbose && r.OutputPath == "":
			fmt.Fprintf(progress, "%s (%v)\n", r.InputPath, r.Duration.Round(time.Microsecond))
		case common.verbose:
			fmt.Fprintf(progress, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Microsecond))
		case r.OutputPath != "":
			fmt.Fprintf(progress, "Created %s\n", r.OutputPath)
		}
	}

	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(progress, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
