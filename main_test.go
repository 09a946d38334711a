package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/copilot-face/pkg/config"
	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := applyFlags(cfg, "Thinking", "midnight", 60, true); err != nil {
		t.Fatalf("applyFlags() error: %v", err)
	}
	if cfg.General.InitialState != "Thinking" || cfg.Theme.Name != "midnight" {
		t.Errorf("general = %+v, theme = %+v", cfg.General, cfg.Theme)
	}
	if cfg.General.FPS != 60 || cfg.Controls.AutoCycle {
		t.Errorf("fps = %d auto = %v, want 60 false", cfg.General.FPS, cfg.Controls.AutoCycle)
	}
}

func TestApplyFlagsZeroValuesKeepConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	want := *cfg
	if err := applyFlags(cfg, "", "", 0, false); err != nil {
		t.Fatalf("applyFlags() error: %v", err)
	}
	if cfg.General != want.General || cfg.Controls != want.Controls || cfg.Theme != want.Theme {
		t.Error("zero flags changed the config")
	}
}

func TestApplyFlagsRejectsBadValues(t *testing.T) {
	if err := applyFlags(config.DefaultConfig(), "dancing", "", 0, false); err == nil ||
		!strings.Contains(err.Error(), "dancing") {
		t.Errorf("unknown state error = %v", err)
	}
	if err := applyFlags(config.DefaultConfig(), "", "", 500, false); err == nil {
		t.Error("fps 500 accepted")
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    slog.Level
	}{
		{"info", false, slog.LevelInfo},
		{"warn", false, slog.LevelWarn},
		{"error", true, slog.LevelDebug},
		{"bogus", false, slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := logLevel(tt.name, tt.verbose); got != tt.want {
			t.Errorf("logLevel(%q, %v) = %v, want %v", tt.name, tt.verbose, got, tt.want)
		}
	}
}

func TestEnsureLogDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "face.log")
	if err := ensureLogDir(path); err != nil {
		t.Fatalf("ensureLogDir() error: %v", err)
	}
}

func TestPrintStill(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme.NoColor = true
	var buf bytes.Buffer
	printStill(&buf, cfg, 0)
	if lines := strings.Count(buf.String(), "\n"); lines < face.Height {
		t.Errorf("printed %d lines, want at least %d:\n%s", lines, face.Height, buf.String())
	}
}

func TestPrintStillSizesFromWriter(t *testing.T) {
	tests := []struct {
		cols, rows string
		card       bool
	}{
		{"200", "60", true},
		{"40", "60", false},
	}
	for _, tt := range tests {
		t.Run(tt.cols+"x"+tt.rows, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.cols)
			t.Setenv("LINES", tt.rows)
			f, err := os.CreateTemp(t.TempDir(), "still")
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			cfg := config.DefaultConfig()
			cfg.Theme.NoColor = true
			printStill(f, cfg, 0)

			out, err := os.ReadFile(f.Name())
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.Contains(string(out), "╭"); got != tt.card {
				t.Errorf("card border present = %v, want %v:\n%s", got, tt.card, out)
			}
		})
	}
}
