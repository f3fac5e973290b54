package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
	"github.com/xiaojl/musicbox/internal/shared"
	tu "github.com/xiaojl/musicbox/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}

			if got := output.String(); got != "{\"key\":\"value\"}\n" {
				t.Errorf("unexpected output: %q", got)
			}
		})

		t.Run("writes pretty JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}

			if !strings.Contains(output.String(), "  \"key\": \"value\"") {
				t.Errorf("expected indented output, got: %q", output.String())
			}
		})

		t.Run("returns error on failed write", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON("data", false); err == nil {
				t.Error("expected error from failing writer")
			}
		})

		t.Run("returns error when newline write fails", func(t *testing.T) {
			// First write (the payload) succeeds, second (the newline) fails.
			output := &bytes.Buffer{}
			limited := tu.NewLimitedWriter(1, 0, output)
			runner := NewRunner(RunnerOpts{Output: &limited})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
				t.Error("expected error from exhausted writer")
			}
			if output.String() != "{\"key\":\"value\"}" {
				t.Errorf("expected payload before failure, got: %q", output.String())
			}
		})

		t.Run("returns error on unmarshalable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(make(chan int), false); err == nil {
				t.Error("expected error for unmarshalable data")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s\n", "world"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if output.String() != "hello world\n" {
			t.Errorf("unexpected output: %q", output.String())
		}

		if err := runner.writePlain("fail"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
	})
}

func TestCommands(t *testing.T) {
	tmp := t.TempDir()
	wd := tu.MustGetwd(t)
	tu.MustChdir(t, tmp)
	defer tu.MustChdir(t, wd)

	config := shared.DefaultConfig()
	config.Database.Path = filepath.Join(tmp, "test.db")

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: shared.NewLogger(io.Discard),
		Output: output,
	})

	run := func(args ...string) error {
		t.Helper()
		app := &cli.Command{Name: "musicbox", Commands: runner.register()}
		return app.Run(context.Background(), append([]string{"musicbox"}, args...))
	}

	t.Run("seed populates the catalog", func(t *testing.T) {
		output.Reset()
		if err := run("seed"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if !strings.Contains(output.String(), "inserted") {
			t.Errorf("expected seed summary, got: %q", output.String())
		}
	})

	t.Run("seed is repeatable", func(t *testing.T) {
		output.Reset()
		if err := run("seed"); err != nil {
			t.Fatalf("second seed failed: %v", err)
		}
		if !strings.Contains(output.String(), "0 inserted") {
			t.Errorf("expected everything skipped, got: %q", output.String())
		}
	})

	t.Run("artists search", func(t *testing.T) {
		output.Reset()
		if err := run("artists", "search", "weeknd"); err != nil {
			t.Fatalf("artists search failed: %v", err)
		}
		if !strings.Contains(output.String(), "The Weeknd") {
			t.Errorf("expected The Weeknd in output, got: %q", output.String())
		}
	})

	t.Run("artists filters", func(t *testing.T) {
		output.Reset()
		if err := run("artists", "filters"); err != nil {
			t.Fatalf("artists filters failed: %v", err)
		}
		if !strings.Contains(output.String(), "加拿大") {
			t.Errorf("expected countries in output, got: %q", output.String())
		}
	})

	t.Run("albums list", func(t *testing.T) {
		output.Reset()
		if err := run("albums", "list"); err != nil {
			t.Fatalf("albums list failed: %v", err)
		}
		if !strings.Contains(output.String(), "After Hours") {
			t.Errorf("expected After Hours in output, got: %q", output.String())
		}
	})

	t.Run("songs search with filters", func(t *testing.T) {
		output.Reset()
		if err := run("songs", "search", "a", "--language", "English"); err != nil {
			t.Fatalf("songs search failed: %v", err)
		}
		out := output.String()
		if !strings.Contains(out, "Save Your Tears") {
			t.Errorf("expected Save Your Tears in output, got: %q", out)
		}
		if strings.Contains(out, "江南") {
			t.Errorf("language filter leaked, got: %q", out)
		}
	})

	t.Run("songs get", func(t *testing.T) {
		output.Reset()
		if err := run("songs", "get", "1"); err != nil {
			t.Fatalf("songs get failed: %v", err)
		}
		if !strings.Contains(output.String(), "Artist:") {
			t.Errorf("expected song detail, got: %q", output.String())
		}

		if err := run("songs", "get", "notanumber"); err == nil {
			t.Error("expected error for non-numeric id")
		}
	})

	t.Run("songs list to CSV", func(t *testing.T) {
		output.Reset()
		csvPath := filepath.Join(tmp, "songs.csv")
		if err := run("songs", "list", "--csv", csvPath); err != nil {
			t.Fatalf("songs list --csv failed: %v", err)
		}
		tu.AssertFileExists(t, csvPath)
		if !strings.Contains(tu.MustReadFile(t, csvPath), "After Hours") {
			t.Error("CSV export missing songs")
		}
	})

	t.Run("users and favorites lifecycle", func(t *testing.T) {
		output.Reset()
		if err := run("users", "register", "xiaojl", "secret", "--email", "x@example.com"); err != nil {
			t.Fatalf("users register failed: %v", err)
		}
		if err := run("users", "login", "xiaojl", "secret"); err != nil {
			t.Fatalf("users login failed: %v", err)
		}
		if err := run("users", "login", "xiaojl", "wrong"); err == nil {
			t.Error("expected login failure with wrong password")
		}

		if err := run("favorites", "add", "xiaojl", "After Hours", "The Weeknd"); err != nil {
			t.Fatalf("favorites add failed: %v", err)
		}

		output.Reset()
		if err := run("favorites", "list", "xiaojl"); err != nil {
			t.Fatalf("favorites list failed: %v", err)
		}
		if !strings.Contains(output.String(), "After Hours") {
			t.Errorf("expected favorite in list, got: %q", output.String())
		}

		output.Reset()
		if err := run("favorites", "remove", "xiaojl", "After Hours"); err != nil {
			t.Fatalf("favorites remove failed: %v", err)
		}
		if !strings.Contains(output.String(), "Removed") {
			t.Errorf("expected removal confirmation, got: %q", output.String())
		}

		output.Reset()
		if err := run("favorites", "remove", "xiaojl", "After Hours"); err != nil {
			t.Fatalf("second favorites remove failed: %v", err)
		}
		if !strings.Contains(output.String(), "Nothing to remove") {
			t.Errorf("expected no-op message, got: %q", output.String())
		}

		if err := run("users", "delete", "xiaojl"); err != nil {
			t.Fatalf("users delete failed: %v", err)
		}
		if err := run("users", "login", "xiaojl", "secret"); err == nil {
			t.Error("expected login failure after delete")
		}
	})

	t.Run("setup fresh resets the catalog", func(t *testing.T) {
		output.Reset()
		if err := run("setup", "--config", filepath.Join(tmp, "config.toml"), "--fresh"); err != nil {
			t.Fatalf("setup --fresh failed: %v", err)
		}
	})
}
