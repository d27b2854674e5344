package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected default listen addr %q, got %q", DefaultListenAddr, cfg.ListenAddr)
	}
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("listen_addr: \":8080\"\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.ListenAddr != ":8080" {
			t.Errorf("Expected listen addr :8080, got %q", cfg.ListenAddr)
		}
	})

	t.Run("empty file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(""), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.ListenAddr != DefaultListenAddr {
			t.Errorf("Expected default listen addr, got %q", cfg.ListenAddr)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Expected error for missing config file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("listen_addr: [::"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Expected error for malformed yaml")
		}
	})
}
