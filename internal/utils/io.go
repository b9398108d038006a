package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// maxTokenSize bounds how much is read when a token is piped in.
const maxTokenSize = 16 * 1024

// ReadTokenFromStdin reads a token piped on stdin, e.g. `gh auth token | ghsecrets publish --token-stdin`.
// Returns an error if stdin is a terminal or carries no data.
func ReadTokenFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat stdin: %w", err)
	}

	// ModeCharDevice means stdin is attached to a terminal, not a pipe.
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("no data provided on stdin (hint: pipe your token to this command)")
	}

	return ReadToken(os.Stdin)
}

// ReadToken reads a token from r and trims surrounding whitespace.
func ReadToken(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxTokenSize))
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token input is empty")
	}
	return token, nil
}
