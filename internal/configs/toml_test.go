package configs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteDefaultFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".ghsecrets.toml")

	if err := WriteDefaultFile(path, DefaultSecretNames, false); err != nil {
		t.Fatalf("WriteDefaultFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Config file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Config file permissions = %o, want 600", info.Mode().Perm())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Secrets, DefaultSecretNames) {
		t.Errorf("Secrets = %v, want %v", loaded.Secrets, DefaultSecretNames)
	}
	if loaded.App != "" || loaded.Parallel != 0 || loaded.Timeout != "" {
		t.Errorf("Optional fields should be omitted, got %+v", loaded)
	}
}

func TestWriteDefaultFileRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ghsecrets.toml")
	if err := os.WriteFile(path, []byte(`secrets = ["KEEP"]`), 0600); err != nil {
		t.Fatalf("Failed to seed config: %v", err)
	}

	err := WriteDefaultFile(path, []string{"NEW"}, false)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("Expected ErrExist, got: %v", err)
	}

	if err := WriteDefaultFile(path, []string{"NEW"}, true); err != nil {
		t.Fatalf("WriteDefaultFile with force failed: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Secrets, []string{"NEW"}) {
		t.Errorf("Secrets = %v, want [NEW]", loaded.Secrets)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ghsecrets.yaml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed on empty YAML: %v", err)
	}
	if len(cfg.Secrets) != 0 {
		t.Errorf("Expected no secrets, got %v", cfg.Secrets)
	}
}
