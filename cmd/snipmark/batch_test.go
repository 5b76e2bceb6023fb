package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := min(max(runtime.GOMAXPROCS(0), 1), maxAutoWorkers)

	tests := []struct {
		name          string
		flagWorkers   int
		configWorkers int
		want          int
		wantErr       bool
	}{
		{"flag wins", 3, 5, 3, false},
		{"config when flag unset", 0, 5, 5, false},
		{"auto when both unset", 0, 0, auto, false},
		{"negative flag", -1, 0, 0, true},
		{"flag above max", 33, 0, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolveWorkers(tt.flagWorkers, tt.configWorkers)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWorkerCount) {
					t.Errorf("error = %v, want ErrInvalidWorkerCount", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flagWorkers, tt.configWorkers, got, tt.want)
			}
		})
	}
}

func TestRenderBatch(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.md": "alpha",
		"b.md": "beta",
		"c.md": "gamma",
	})
	outDir := filepath.Join(t.TempDir(), "out")

	var calls atomic.Int32
	upper := func(s string) string {
		calls.Add(1)
		return strings.ToUpper(s)
	}

	jobs := []renderJob{
		{InputPath: filepath.Join(dir, "a.md")},
		{InputPath: filepath.Join(dir, "missing.md")},
		{InputPath: filepath.Join(dir, "b.md"), OutputPath: filepath.Join(outDir, "b.html")},
		{InputPath: filepath.Join(dir, "c.md")},
	}

	results := renderBatch(context.Background(), jobs, 3, upper, time.Now)

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.InputPath != jobs[i].InputPath {
			t.Errorf("result %d is for %s, want %s (order not preserved)", i, r.InputPath, jobs[i].InputPath)
		}
	}
	if results[0].HTML != "ALPHA" || results[3].HTML != "GAMMA" {
		t.Errorf("stdout results = %q, %q", results[0].HTML, results[3].HTML)
	}
	if !errors.Is(results[1].Err, ErrReadInput) || !errors.Is(results[1].Err, os.ErrNotExist) {
		t.Errorf("missing input error = %v, want ErrReadInput wrapping ErrNotExist", results[1].Err)
	}
	if results[2].Err != nil || results[2].HTML != "" {
		t.Errorf("file result = %+v, want written without HTML", results[2])
	}
	if got := readFile(t, filepath.Join(outDir, "b.html")); got != "BETA" {
		t.Errorf("b.html = %q, want BETA", got)
	}
	if calls.Load() != 3 {
		t.Errorf("render called %d times, want 3", calls.Load())
	}
}

func TestRenderBatch_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := renderBatch(ctx, []renderJob{{InputPath: filepath.Join(dir, "a.md")}}, 1, strings.ToUpper, time.Now)
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", results[0].Err)
	}
}

func TestRenderBatch_Empty(t *testing.T) {
	t.Parallel()

	if results := renderBatch(context.Background(), nil, 4, strings.ToUpper, time.Now); results != nil {
		t.Errorf("renderBatch(nil) = %v, want nil", results)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	t.Run("stdout mode keeps progress on stderr", func(t *testing.T) {
		t.Parallel()
		env, stdout, stderr := newTestEnv("", nil)
		results := []RenderResult{
			{InputPath: "a.md", HTML: "<p>a</p>\n"},
			{InputPath: "b.md", Err: errors.New("boom")},
			{InputPath: "c.md", HTML: "<p>c</p>\n"},
		}

		failed := printResults(results, commonFlags{}, env)

		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if stdout.String() != "<p>a</p>\n<p>c</p>\n" {
			t.Errorf("stdout = %q, want HTML only", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.md: boom") || !strings.Contains(stderr.String(), "2 succeeded, 1 failed") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("file mode reports created files", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := newTestEnv("", nil)
		results := []RenderResult{{InputPath: "a.md", OutputPath: "out/a.html"}}

		printResults(results, commonFlags{}, env)

		if stdout.String() != "Created out/a.html\n" {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		env, stdout, stderr := newTestEnv("", nil)
		results := []RenderResult{
			{InputPath: "a.md", OutputPath: "out/a.html"},
			{InputPath: "b.md", OutputPath: "out/b.html"},
		}

		printResults(results, commonFlags{quiet: true}, env)

		if stdout.Len() != 0 || stderr.Len() != 0 {
			t.Errorf("quiet produced output: %q / %q", stdout.String(), stderr.String())
		}
	})

	t.Run("verbose shows timing", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := newTestEnv("", nil)
		results := []RenderResult{{InputPath: "a.md", OutputPath: "out/a.html", Duration: 1500 * time.Microsecond}}

		printResults(results, commonFlags{verbose: true}, env)

		if !strings.Contains(stdout.String(), "a.md -> out/a.html (1.5ms)") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})
}
