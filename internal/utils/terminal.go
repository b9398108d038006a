package utils

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptHidden prompts on stderr and reads a line from the terminal without echoing it.
// Returns an error if stdin is not a terminal.
func PromptHidden(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot prompt for input: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	input, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	value := strings.TrimSpace(string(input))
	if value == "" {
		return "", fmt.Errorf("no input provided")
	}
	return value, nil
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
