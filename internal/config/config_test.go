package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if !cfg.Format.Enabled {
		t.Error("Format.Enabled = false, want true by default")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.List.Path != "" || cfg.Template.Path != "" {
		t.Error("default config should not reference any files")
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "site.yaml", `
input:
  defaultDir: docs
output:
  defaultDir: public
template:
  path: page.html
format:
  enabled: false
list:
  path: public/index.html
  articleDir: public/posts
  open: true
workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Input.DefaultDir != "docs" {
		t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "docs")
	}
	if cfg.Output.DefaultDir != "public" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "public")
	}
	if cfg.Template.Path != "page.html" {
		t.Errorf("Template.Path = %q, want %q", cfg.Template.Path, "page.html")
	}
	if cfg.Format.Enabled {
		t.Error("Format.Enabled = true, want false")
	}
	if cfg.List.Path != "public/index.html" || cfg.List.ArticleDir != "public/posts" || !cfg.List.Open {
		t.Errorf("List = %+v", cfg.List)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "partial.yml", "output:\n  defaultDir: out\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output.DefaultDir != "out" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "out")
	}
	if !cfg.Format.Enabled {
		t.Error("Format.Enabled = false, want default true to survive partial config")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Fatalf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "output: [\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "outputs:\n  defaultDir: out\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigParse for unknown field", err)
		}
	})
}
