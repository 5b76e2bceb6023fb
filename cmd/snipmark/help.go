package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render snippets for in-app display")
	fmt.Fprintln(w, "  rss        Render snippets for a feed (absolute links)")
	fmt.Fprintln(w, "  include    Render a documentation include")
	fmt.Fprintln(w, "  docs       List available include documents")
	fmt.Fprintln(w, "  escape     Escape text as XML character data")
	fmt.Fprintln(w, "  watch      Re-render a documents directory on change")
	fmt.Fprintln(w, "  css        Print the highlight stylesheet")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snipmark help <command>' for details on a specific command.")
}

// printCommonFlags prints flags shared by every command.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printMarkdownFlags prints highlighting flags.
func printMarkdownFlags(w io.Writer) {
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code blocks")
	fmt.Fprintln(w, "      --style <name>        Chroma style (implies --highlight)")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark render [flags] [file|dir...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown snippets for in-app display. Only em, strong, code,")
	fmt.Fprintln(w, "blockquote, p, br and kbd tags are kept; bare URLs and snippet#<id>")
	fmt.Fprintln(w, "references become links. Reads stdin when no file or \"-\" is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Write <name>.html files (default: stdout)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printMarkdownFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printRSSUsage prints usage for the rss command.
func printRSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark rss [flags] [file|dir...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown snippets for a feed. Same as render, but snippet")
	fmt.Fprintln(w, "references link to <base-url>/snippet/<id>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Feed:")
	fmt.Fprintln(w, "      --base-url <url>      Base URL (default: SNIPMARK_APP_URL or app.url)")
	fmt.Fprintln(w, "      --escape              Escape output as XML character data")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Write <name>.html files (default: stdout)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printMarkdownFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printIncludeUsage prints usage for the include command.
func printIncludeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark include [flags] <name>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the documentation include <name>.md. All tags are kept;")
	fmt.Fprintln(w, "snippet#<id> references become links.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documents:")
	fmt.Fprintln(w, "      --docs-root <dir>     Documents directory (bundled documents as fallback)")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: stdout)")
	fmt.Fprintln(w)
	printMarkdownFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printDocsUsage prints usage for the docs command.
func printDocsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark docs [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List include documents available to 'snipmark include'.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documents:")
	fmt.Fprintln(w, "      --docs-root <dir>     Documents directory (bundled documents as fallback)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printEscapeUsage prints usage for the escape command.
func printEscapeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark escape [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Escape &, < and > as &#x26;, &#x3C; and &#x3E;. Reads stdin when no")
	fmt.Fprintln(w, "file or \"-\" is given.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark watch [flags] <dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every <name>.md in <dir> as an include, then re-render on")
	fmt.Fprintln(w, "change until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: <dir>)")
	fmt.Fprintln(w)
	printMarkdownFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet matching --highlight output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "      --style <name>        Chroma style (default: config or github)")
	fmt.Fprintln(w, "      --list                List available styles")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "rss":
		printRSSUsage(env.Stdout)
	case "include":
		printIncludeUsage(env.Stdout)
	case "docs":
		printDocsUsage(env.Stdout)
	case "escape":
		printEscapeUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: snipmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: snipmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
