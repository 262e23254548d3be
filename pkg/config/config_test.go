package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("csv source with env expansion", func(t *testing.T) {
		t.Setenv("STYLEMATCH_CATALOG", "/data/items.csv")

		path := writeConfig(t, `
catalog:
  source: csv
  path: ${STYLEMATCH_CATALOG}
matching:
  top_n: 5
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Catalog.Path != "/data/items.csv" {
			t.Errorf("env expansion failed: %q", cfg.Catalog.Path)
		}
		if cfg.Matching.TopN != 5 {
			t.Errorf("top_n = %d, want 5", cfg.Matching.TopN)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load("/nonexistent/config.yaml"); err == nil {
			t.Fatal("expected error for missing config")
		}
	})

	t.Run("csv without path", func(t *testing.T) {
		path := writeConfig(t, "catalog:\n  source: csv\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("s3 requires bucket endpoint and key", func(t *testing.T) {
		path := writeConfig(t, `
catalog:
  source: s3
  key: catalogs/items.csv
s3:
  endpoint: s3.example.com
  bucket: stylematch
`)
		if _, err := Load(path); err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		bad := writeConfig(t, "catalog:\n  source: s3\ns3:\n  bucket: b\n")
		if _, err := Load(bad); err == nil {
			t.Fatal("expected validation error for missing endpoint")
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		path := writeConfig(t, "catalog:\n  source: ftp\n  path: x\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected validation error for unknown source")
		}
	})

	t.Run("default vision model must be defined", func(t *testing.T) {
		path := writeConfig(t, `
catalog:
  source: csv
  path: items.csv
models:
  default_vision: missing
`)
		if _, err := Load(path); err == nil {
			t.Fatal("expected validation error for undefined vision model")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		c := CatalogConfig{}
		d := c.GetDefaults()
		if d.Source != "csv" || d.Table != "items" {
			t.Errorf("unexpected defaults: %+v", d)
		}

		m := MatchingConfig{}
		if got := m.GetDefaults().TopN; got != 10 {
			t.Errorf("TopN default = %d, want 10", got)
		}
	})
}
