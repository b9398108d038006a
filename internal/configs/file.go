package configs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"

	"gopkg.in/yaml.v3"
)

// ConfigFileNames are searched, in order, when no --config path is given.
var ConfigFileNames = []string{".ghsecrets.toml", ".ghsecrets.yaml", ".ghsecrets.yml"}

// FileConfig is the optional project config file.
//
//	secrets = ["ANTHROPIC_API_KEY", "SLACK_BOT_TOKEN"]
//	app = "actions"
//	api_url = "https://github.example.com/api/v3"
//	parallel = 4
//	timeout = "45s"
//
// Repository and token are deliberately not read from the file.
type FileConfig struct {
	Secrets  []string `toml:"secrets" yaml:"secrets"`
	App      string   `toml:"app,omitempty" yaml:"app,omitempty"`
	APIURL   string   `toml:"api_url,omitempty" yaml:"api_url,omitempty"`
	Parallel int      `toml:"parallel,omitempty" yaml:"parallel,omitempty"`
	Timeout  string   `toml:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// UnknownKeysError reports config keys that do not map to FileConfig.
type UnknownKeysError struct {
	Path string
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("%s: unknown keys: %s", e.Path, strings.Join(e.Keys, ", "))
}

// LoadFile reads a TOML or YAML config file, chosen by extension.
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := LoadTOML(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := loadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s (use .toml, .yaml or .yml)", kerrors.ErrUnsupportedConfigFormat, path)
	}

	return cfg, nil
}

func loadYAML(path string, data interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// WriteDefaultFile writes a TOML config listing names. It refuses to
// overwrite an existing file unless force is set.
func WriteDefaultFile(path string, names []string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, os.ErrExist)
		}
	}
	return SaveTOML(path, FileConfig{Secrets: names})
}
