package configs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no --env-file is given.
const DefaultEnvFile = ".env"

// LoadEnvFiles loads each existing file into the process environment.
// Variables that are already set are never overridden, and missing files
// are skipped. It returns the files that were actually loaded.
func LoadEnvFiles(paths []string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("failed to load env file %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
