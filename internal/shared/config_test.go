package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./musicbox.db" {
			t.Errorf("expected database path ./musicbox.db, got %s", config.Database.Path)
		}

		if config.Database.MaxOpenConns != 10 {
			t.Errorf("expected max_open_conns 10, got %d", config.Database.MaxOpenConns)
		}

		if config.Seed.Fresh {
			t.Error("expected seed.fresh to default to false")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("expected error when config file already exists")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[database]
path = "/tmp/test.db"
max_open_conns = 3
max_idle_conns = 1

[seed]
fresh = true
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/tmp/test.db" {
			t.Errorf("expected database path /tmp/test.db, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 3 {
			t.Errorf("expected max_open_conns 3, got %d", config.Database.MaxOpenConns)
		}
		if !config.Seed.Fresh {
			t.Error("expected seed.fresh to be true")
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error when loading missing config file")
		}
	})
}
