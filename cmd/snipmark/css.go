package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-snipmark"
	"github.com/alnah/go-snipmark/internal/hints"
)

// runCSS prints the stylesheet for a highlight style, or lists styles.
func runCSS(args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 0 {
		return fmt.Errorf("%w: css takes no arguments", ErrUsage)
	}

	if flags.list {
		for _, name := range snipmark.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	style := cfg.HighlightStyle()
	if flags.style != "" {
		style = flags.style
	}

	if err := snipmark.WriteHighlightCSS(env.Stdout, style); err != nil {
		if errors.Is(err, snipmark.ErrUnknownStyle) {
			return fmt.Errorf("%w%s", err, hints.ForUnknownStyle(snipmark.HighlightStyles()))
		}
		return err
	}
	return nil
}
