package main

import (
	"fmt"
	"os"

	"github.com/alnah/go-snipmark"
)

// runEscape writes its input escaped as XML character data.
func runEscape(args []string, env *Environment) error {
	_, positional, err := parseEscapeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: escape takes at most one file", ErrUsage)
	}

	var text string
	if isStdinInput(positional) {
		text, err = readInput(env.Stdin)
		if err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		text = string(data)
	}

	fmt.Fprint(env.Stdout, snipmark.EscapeXML(text))
	return nil
}
