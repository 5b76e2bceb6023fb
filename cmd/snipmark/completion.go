package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-snipmark"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// argKind describes what a command's positional arguments complete to.
type argKind int

const (
	argNone     argKind = iota
	argMarkdown         // .md and .markdown files or directories
	argFile             // any file
	argDir              // a directory
	argDocument         // an include document name, listed by "snipmark docs"
	argCommand          // a command name
	argShell            // a shell name
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  argKind
}

// completionMeta holds completion hints for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
// "output" is a file for include and a directory elsewhere; see outputIsFile.
var flagCompletionMeta = map[string]completionMeta{
	"style":     {Values: snipmark.HighlightStyles},
	"config":    {FileGlob: "*.yaml,*.yml"},
	"output":    {IsDir: true},
	"docs-root": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet, outputIsFile bool) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir && f.Name == "output" && outputIsFile:
				fd.Type = flagFile
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the same registration the parsers use.
func getCommands() []commandDef {
	flagsOf := func(define func(fs *flag.FlagSet), outputIsFile bool) []flagDef {
		fs := flag.NewFlagSet("", flag.ContinueOnError)
		define(fs)
		return extractFlagsFromFlagSet(fs, outputIsFile)
	}

	return []commandDef{
		{
			Name:  "render",
			Desc:  "Render snippets for in-app display",
			Flags: flagsOf(func(fs *flag.FlagSet) { defineRenderFlags(fs, "render", &renderFlags{}) }, false),
			Args:  argMarkdown,
		},
		{
			Name:  "rss",
			Desc:  "Render snippets for a feed",
			Flags: flagsOf(func(fs *flag.FlagSet) { defineRenderFlags(fs, "rss", &renderFlags{}) }, false),
			Args:  argMarkdown,
		},
		{
			Name:  "include",
			Desc:  "Render a documentation include",
			Flags: flagsOf(func(fs *flag.FlagSet) { defineIncludeFlags(fs, &includeFlags{}) }, true),
			Args:  argDocument,
		},
		{
			Name:  "docs",
			Desc:  "List available include documents",
			Flags: flagsOf(func(fs *flag.FlagSet) { defineDocsFlags(fs, &docsFlags{}) }, false),
		},
		{
			Name:  "escape",
			Desc:  "Escape text as XML character data",
			Flags: flagsOf(func(fs *flag.FlagSet) { addCommonFlags(fs, &commonFlags{}) }, false),
			Args:  argFile,
		},
		{
			Name:  "watch",
			Desc:  "Re-render a documents directory on change",
			Flags: flagsOf(func(fs *flag.FlagSet) { defineWatchFlags(fs, &watchFlags{}) }, false),
			Args:  argDir,
		},
		{
			Name:  "css",
			Desc:  "Print the highlight stylesheet",
			Flags: flagsOf(func(fs *flag.FlagSet) { defineCSSFlags(fs, &cssFlags{}) }, false),
		},
		{Name: "completion", Desc: "Generate shell completion script", Args: argShell},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: argCommand},
	}
}

// commandNames returns the names of all registered commands.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()

	var b strings.Builder
	switch shell {
	case ShellBash:
		generateBash(&b, cmds)
	case ShellZsh:
		generateZsh(&b, cmds)
	case ShellFish:
		generateFish(&b, cmds)
	case ShellPowerShell:
		generatePowerShell(&b, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell name, got %d", ErrUsage, len(args))
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snipmark completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(snipmark completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(snipmark completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    snipmark completion fish > ~/.config/fish/completions/snipmark.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    snipmark completion powershell | Out-String | Invoke-Expression")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for snipmark\n\n")
	b.WriteString("_snipmark_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)

		var valued, names []string
		for _, f := range c.Flags {
			names = append(names, "--"+f.Long)
			pattern := "--" + f.Long
			if f.Short != "" {
				names = append(names, "-"+f.Short)
				pattern = "-" + f.Short + "|" + pattern
			}
			if reply := bashFlagReply(f); reply != "" {
				valued = append(valued, fmt.Sprintf("            %s) %s; return ;;\n", pattern, reply))
			}
		}
		if len(valued) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, v := range valued {
				b.WriteString(v)
			}
			b.WriteString("        esac\n")
		}
		if len(names) > 0 {
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		if reply := bashArgReply(c.Args, cmds); reply != "" {
			fmt.Fprintf(b, "        %s\n", reply)
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _snipmark_completions snipmark\n")
}

func bashFlagReply(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Values, " "))
	case flagDir:
		return "COMPREPLY=($(compgen -d -- \"$cur\"))"
	case flagFile:
		if f.FileGlob != "" {
			return fmt.Sprintf("COMPREPLY=($(compgen -f -X '!@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))", globAlternation(f.FileGlob))
		}
		return "COMPREPLY=($(compgen -f -- \"$cur\"))"
	case flagString, flagInt:
		return "return"
	}
	return ""
}

func bashArgReply(kind argKind, cmds []commandDef) string {
	switch kind {
	case argMarkdown:
		return "COMPREPLY=($(compgen -f -X '!@(*.md|*.markdown)' -- \"$cur\") $(compgen -d -- \"$cur\"))"
	case argFile:
		return "COMPREPLY=($(compgen -f -- \"$cur\"))"
	case argDir:
		return "COMPREPLY=($(compgen -d -- \"$cur\"))"
	case argDocument:
		return "COMPREPLY=($(compgen -W \"$(snipmark docs 2>/dev/null)\" -- \"$cur\"))"
	case argCommand:
		return fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(commandNames(cmds), " "))
	case argShell:
		return fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(supportedShells, " "))
	}
	return ""
}

// globAlternation turns "*.yaml,*.yml" into "*.yaml|*.yml".
func globAlternation(globs string) string {
	return strings.ReplaceAll(globs, ",", "|")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef snipmark\n\n")
	b.WriteString("_snipmark() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=$words[2]\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)
		b.WriteString("        _arguments")
		for _, f := range c.Flags {
			fmt.Fprintf(b, " \\\n            %s", zshFlagSpec(f))
		}
		if arg := zshArgSpec(c.Args, cmds); arg != "" {
			fmt.Fprintf(b, " \\\n            %s", arg)
		}
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _snipmark snipmark\n")
}

func zshFlagSpec(f flagDef) string {
	action := ""
	switch f.Type {
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagDir:
		action = fmt.Sprintf(":%s:_files -/", f.Long)
	case flagFile:
		if f.FileGlob != "" {
			action = fmt.Sprintf(":%s:_files -g \"%s\"", f.Long, zshGlob(f.FileGlob))
		} else {
			action = fmt.Sprintf(":%s:_files", f.Long)
		}
	case flagString, flagInt:
		action = fmt.Sprintf(":%s: ", f.Long)
	}

	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s%s%s'", f.Long, desc, action)
}

func zshArgSpec(kind argKind, cmds []commandDef) string {
	switch kind {
	case argMarkdown:
		return "'*:file:_files -g \"*.(md|markdown)\"'"
	case argFile:
		return "'1:file:_files'"
	case argDir:
		return "'1:directory:_files -/'"
	case argDocument:
		return "'1:document:($(snipmark docs 2>/dev/null))'"
	case argCommand:
		return fmt.Sprintf("'1:command:(%s)'", strings.Join(commandNames(cmds), " "))
	case argShell:
		return fmt.Sprintf("'1:shell:(%s)'", strings.Join(supportedShells, " "))
	}
	return ""
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(globs string) string {
	var exts []string
	for _, g := range strings.Split(globs, ",") {
		exts = append(exts, strings.TrimPrefix(g, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshEscape escapes text for a single-quoted _arguments description.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for snipmark\n\n")
	b.WriteString("function __fish_snipmark_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_snipmark_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c snipmark -f\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c snipmark -n __fish_snipmark_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_snipmark_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			line := "complete -c snipmark -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagEnum:
				line += " -x -a " + fishQuote(strings.Join(f.Values, " "))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagFile:
				line += " -r -F"
			case flagString, flagInt:
				line += " -x"
			}
			line += " -d " + fishQuote(f.Desc)
			b.WriteString(line + "\n")
		}
		if arg := fishArg(c.Args, cmds); arg != "" {
			fmt.Fprintf(b, "complete -c snipmark -n %s %s\n", cond, arg)
		}
	}
}

func fishArg(kind argKind, cmds []commandDef) string {
	switch kind {
	case argMarkdown, argFile:
		return "-F"
	case argDir:
		return "-x -a '(__fish_complete_directories)'"
	case argDocument:
		return "-x -a '(snipmark docs 2>/dev/null)'"
	case argCommand:
		return "-x -a " + fishQuote(strings.Join(commandNames(cmds), " "))
	case argShell:
		return "-x -a " + fishQuote(strings.Join(supportedShells, " "))
	}
	return ""
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`) + "'"
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# PowerShell completion for snipmark\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName snipmark -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        %s = %s\n", psQuote(c.Name), psQuote(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		var names []string
		for _, f := range c.Flags {
			names = append(names, psQuote("--"+f.Long))
			if f.Short != "" {
				names = append(names, psQuote("-"+f.Short))
			}
		}
		sort.Strings(names)
		fmt.Fprintf(b, "        %s = @(%s)\n", psQuote(c.Name), strings.Join(names, ", "))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($words.Count -lt 2 -or ($words.Count -eq 2 -and $wordToComplete -ne '')) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = $words[1]\n")
	b.WriteString("    if ($wordToComplete -like '-*' -and $flags.ContainsKey($cmd)) {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
