package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatFor picks the format from a file name: ".yaml" and ".yml" are
// YAML, everything else is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/copilot-face/config.toml (then config.yaml)
//  2. ~/.config/copilot-face/config.toml (then config.yaml)
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys absent from
// the input keep their default values.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("config: decode YAML: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: decode TOML: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg in the given format.
func Save(w io.Writer, cfg *Config, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode YAML: %w", err)
		}
		return enc.Close()
	default:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode TOML: %w", err)
		}
		return nil
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logFile := filepath.Join(xdgStateHome(home), "copilot-face", "copilot-face.log")

	return &Config{
		General: GeneralConfig{
			InitialState: "idle",
			FPS:          30,
			LogLevel:     "info",
			LogFile:      logFile,
		},
		Face: FaceConfig{
			PointerRangeX: 18,
			PointerRangeY: 14,
			SaccadeMin:    Duration{220 * time.Millisecond},
			SaccadeMax:    Duration{600 * time.Millisecond},
			SaccadeRangeX: 10,
			SaccadeRangeY: 6,
			BlinkMin:      Duration{2 * time.Second},
			BlinkMax:      Duration{6 * time.Second},
			LidReopen:     Duration{120 * time.Millisecond},
			PartnerBlink:  0.65,
		},
		Controls: ControlsConfig{
			AutoCycle: true,
			Interval:  Duration{2400 * time.Millisecond},
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Hero: HeroConfig{
			Title:    "AI Copilot Animation Showcase",
			Tagline:  "Refined springs, humanized micro-behaviors, and expressive eye dynamics.",
			Badge:    "Live interactive 3D scene",
			SceneURL: DefaultSceneURL,
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COPILOT_FACE_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("COPILOT_FACE_STATE"); v != "" {
		cfg.General.InitialState = v
	}
	if v := os.Getenv("COPILOT_FACE_SCENE_URL"); v != "" {
		cfg.Hero.SceneURL = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Theme.NoColor = true
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{xdgConfigHome(home)}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if dirs[0] != defaultXDG {
		dirs = append(dirs, defaultXDG)
	}

	var paths []string
	for _, d := range dirs {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			paths = append(paths, filepath.Join(d, "copilot-face", name))
		}
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
