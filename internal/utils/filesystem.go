package utils

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// FindConfigFile walks up from the working directory looking for the first
// of names, stopping one level above the user's home directory.
// Returns an empty path when nothing is found.
func FindConfigFile(names []string) (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for {
		if currentDir == path.Join(homeDir, "..") {
			return "", nil
		}

		for _, name := range names {
			candidate := filepath.Join(currentDir, name)
			fileInfo, err := os.Stat(candidate)
			if err == nil {
				if !fileInfo.IsDir() {
					return candidate, nil
				}
			} else if !os.IsNotExist(err) {
				return "", fmt.Errorf("error checking for %s: %w", candidate, err)
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
