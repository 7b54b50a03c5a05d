package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scbrown/codename/internal/codename"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Num != 0 || cfg.Delimiter != "" || cfg.DictPath != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "config.toml")
	cfg := &Config{
		Num:       4,
		Delimiter: "_",
		DictPath:  "/custom/words",
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadHandWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "num = 3\ndelimiter = \":\"\ndict_path = \"/opt/words\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Num != 3 || cfg.Delimiter != ":" || cfg.DictPath != "/opt/words" {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("num = = 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.HasPrefix(err.Error(), "parsing config:") {
		t.Errorf("error = %q, want parsing config prefix", err)
	}
}

func TestGetSet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"num", "num", "5", "5"},
		{"num unset", "num", "", ""},
		{"delimiter", "delimiter", "|", "|"},
		{"delimiter unset", "delimiter", "", ""},
		{"dict_path", "dict_path", "/tmp/words", "/tmp/words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			if err := cfg.Set(tt.key, tt.value); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSetUnknownKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Set("nonexistent", "value")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  error
	}{
		{"num", "zero", codename.ErrInvalidNumWords},
		{"num", "0", codename.ErrInvalidNumWords},
		{"delimiter", "#", codename.ErrInvalidDelimiter},
	}
	for _, tt := range tests {
		cfg := &Config{}
		err := cfg.Set(tt.key, tt.value)
		if !errors.Is(err, tt.want) {
			t.Errorf("Set(%q, %q) = %v, want %v", tt.key, tt.value, err, tt.want)
		}
	}
}

func TestValidKeys(t *testing.T) {
	keys := ValidKeys()
	if len(keys) != len(validKeys) {
		t.Fatalf("expected %d keys, got %d", len(validKeys), len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}

func TestPath(t *testing.T) {
	p := Path()
	if filepath.Base(p) != "config.toml" {
		t.Errorf("Path() = %q, want basename config.toml", p)
	}
	if filepath.Base(filepath.Dir(p)) != ".codename" {
		t.Errorf("Path() = %q, want parent .codename", p)
	}
}

func TestLoadFromReadError(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFrom(dir)
	if err == nil {
		t.Fatal("expected error when reading directory as file")
	}
}
