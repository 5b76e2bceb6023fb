package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// markdownFlags holds Markdown conversion flags.
type markdownFlags struct {
	highlight bool
	style     string
}

// renderFlags holds flags for the render and rss commands.
type renderFlags struct {
	common   commonFlags
	markdown markdownFlags
	output   string
	workers  int
	baseURL  string // rss only
	escape   bool   // rss only
}

// includeFlags holds flags for the include command.
type includeFlags struct {
	common   commonFlags
	markdown markdownFlags
	docsRoot string
	output   string
}

// docsFlags holds flags for the docs command.
type docsFlags struct {
	common   commonFlags
	docsRoot string
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	common   commonFlags
	markdown markdownFlags
	output   string
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common commonFlags
	style  string
	list   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addMarkdownFlags adds highlighting flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code blocks")
	fs.StringVar(&f.style, "style", "", "chroma highlight style (implies --highlight)")
}

// newFlagSet creates a FlagSet that reports errors through the returned
// error only and prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and tags parse failures as usage errors.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// defineRenderFlags registers render or rss flags on fs.
func defineRenderFlags(fs *flag.FlagSet, cmd string, f *renderFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)
	if cmd == "rss" {
		fs.StringVar(&f.baseURL, "base-url", "", "base URL for absolute snippet links")
		fs.BoolVar(&f.escape, "escape", false, "escape output as XML character data")
	}
}

// defineIncludeFlags registers include flags on fs.
func defineIncludeFlags(fs *flag.FlagSet, f *includeFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.docsRoot, "docs-root", "", "include documents directory")
	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)
}

// defineDocsFlags registers docs flags on fs.
func defineDocsFlags(fs *flag.FlagSet, f *docsFlags) {
	fs.StringVar(&f.docsRoot, "docs-root", "", "include documents directory")
	addCommonFlags(fs, &f.common)
}

// defineWatchFlags registers watch flags on fs.
func defineWatchFlags(fs *flag.FlagSet, f *watchFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: watched directory)")
	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)
}

// defineCSSFlags registers css flags on fs.
func defineCSSFlags(fs *flag.FlagSet, f *cssFlags) {
	fs.StringVar(&f.style, "style", "", "chroma style (default: config or github)")
	fs.BoolVar(&f.list, "list", false, "list available styles")
	addCommonFlags(fs, &f.common)
}

// parseRenderFlags parses render or rss flags and returns positional args.
func parseRenderFlags(cmd string, args []string, w io.Writer) (*renderFlags, []string, error) {
	usage := printRenderUsage
	if cmd == "rss" {
		usage = printRSSUsage
	}
	fs := newFlagSet(cmd, w, usage)
	f := &renderFlags{}
	defineRenderFlags(fs, cmd, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseIncludeFlags parses include flags and returns positional args.
func parseIncludeFlags(args []string, w io.Writer) (*includeFlags, []string, error) {
	fs := newFlagSet("include", w, printIncludeUsage)
	f := &includeFlags{}
	defineIncludeFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDocsFlags parses docs flags and returns positional args.
func parseDocsFlags(args []string, w io.Writer) (*docsFlags, []string, error) {
	fs := newFlagSet("docs", w, printDocsUsage)
	f := &docsFlags{}
	defineDocsFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch flags and returns positional args.
func parseWatchFlags(args []string, w io.Writer) (*watchFlags, []string, error) {
	fs := newFlagSet("watch", w, printWatchUsage)
	f := &watchFlags{}
	defineWatchFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCSSFlags parses css flags and returns positional args.
func parseCSSFlags(args []string, w io.Writer) (*cssFlags, []string, error) {
	fs := newFlagSet("css", w, printCSSUsage)
	f := &cssFlags{}
	defineCSSFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseEscapeFlags parses escape flags and returns positional args.
func parseEscapeFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	fs := newFlagSet("escape", w, printEscapeUsage)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
