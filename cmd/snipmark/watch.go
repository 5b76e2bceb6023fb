package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/documents"
	"github.com/alnah/go-snipmark/internal/hints"
)

// docWatcher keeps <name>.html files in sync with <name>.md files in a
// documents directory.
type docWatcher struct {
	renderer *snipmark.Renderer
	loader   *documents.FilesystemLoader
	outDir   string
	common   commonFlags
	env      *Environment
}

// runWatch renders every document in a directory, then re-renders documents
// as they change until the context is canceled.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: watch takes exactly one directory, got %d", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	applyMarkdownFlags(flags.markdown, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	loader, err := documents.NewFilesystemLoader(positional[0])
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForDocumentsRoot())
	}
	r, err := snipmark.NewRenderer(append(rendererOptions(cfg), snipmark.WithDocumentLoader(loader))...)
	if err != nil {
		return err
	}

	outDir := flags.output
	if outDir == "" {
		outDir = loader.Root()
	}

	w := &docWatcher{renderer: r, loader: loader, outDir: outDir, common: flags.common, env: env}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fsw.Close()

	// Watch before the initial pass so edits made during it are not missed
	if err := fsw.Add(loader.Root()); err != nil {
		return fmt.Errorf("watching %s: %w", loader.Root(), err)
	}

	if err := w.renderAll(ctx); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Watching %s (Ctrl+C to stop)\n", loader.Root())
	}

	return w.loop(ctx, fsw.Events, fsw.Errors)
}

// renderAll renders every document currently in the directory.
// Individual failures are reported and do not stop the pass.
func (w *docWatcher) renderAll(ctx context.Context) error {
	names, err := w.loader.List(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		w.render(ctx, name)
	}
	return nil
}

// loop handles watcher events until ctx is canceled or a channel closes.
func (w *docWatcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.handle(ctx, ev)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.env.Stderr, "watch error: %v\n", err)
		}
	}
}

// handle reacts to one filesystem event on a document file.
func (w *docWatcher) handle(ctx context.Context, ev fsnotify.Event) {
	name, ok := watchedDocument(ev.Name)
	if !ok {
		return
	}

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		w.remove(name)
	case ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create):
		w.render(ctx, name)
	}
}

// render renders one document to <outDir>/<name>.html.
func (w *docWatcher) render(ctx context.Context, name string) {
	start := w.env.Now()
	html, err := w.renderer.RenderInclude(ctx, name)
	if err != nil {
		// Editors often delete and recreate; a later Create re-renders
		if errors.Is(err, snipmark.ErrDocumentNotFound) {
			return
		}
		fmt.Fprintf(w.env.Stderr, "FAILED %s: %v\n", name, err)
		return
	}

	out := w.outputPath(name)
	if err := writeOutput(out, html); err != nil {
		fmt.Fprintf(w.env.Stderr, "FAILED %s: %v\n", name, err)
		return
	}

	switch {
	case w.common.quiet:
	case w.common.verbose:
		fmt.Fprintf(w.env.Stderr, "[%s] %s -> %s (%v)\n", start.Format(time.TimeOnly), name, out, w.env.Now().Sub(start))
	default:
		fmt.Fprintf(w.env.Stderr, "Rendered %s\n", out)
	}
}

// remove deletes the output of a document that no longer exists.
func (w *docWatcher) remove(name string) {
	// A rename can be half of an atomic save; keep output if the file is back
	if _, err := os.Stat(w.loader.Path(name)); err == nil {
		return
	}

	out := w.outputPath(name)
	if err := os.Remove(out); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(w.env.Stderr, "FAILED removing %s: %v\n", out, err)
		}
		return
	}
	if !w.common.quiet {
		fmt.Fprintf(w.env.Stderr, "Removed %s\n", out)
	}
}

func (w *docWatcher) outputPath(name string) string {
	return filepath.Join(w.outDir, name+".html")
}

// watchedDocument returns the document name for an event path, or false if
// the file is not a document (wrong extension, editor swap file, etc.).
func watchedDocument(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != documents.Extension {
		return "", false
	}
	name := base[:len(base)-len(ext)]
	if documents.ValidateName(name) != nil {
		return "", false
	}
	return name, true
}
