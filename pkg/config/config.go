package config

import (
	"fmt"
	"net/url"
	"time"

	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
	"gitlab.com/tinyland/lab/copilot-face/pkg/motion"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// Config is the complete copilot-face configuration.
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Face     FaceConfig     `toml:"face" yaml:"face"`
	Controls ControlsConfig `toml:"controls" yaml:"controls"`
	Theme    ThemeConfig    `toml:"theme" yaml:"theme"`
	Hero     HeroConfig     `toml:"hero" yaml:"hero"`
}

// GeneralConfig holds program-wide settings.
type GeneralConfig struct {
	InitialState string `toml:"initial_state" yaml:"initial_state"`
	FPS          int    `toml:"fps" yaml:"fps"`
	LogLevel     string `toml:"log_level" yaml:"log_level"`
	LogFile      string `toml:"log_file" yaml:"log_file"`
}

// FaceConfig tunes the face controller. Zero values keep the stock tuning.
type FaceConfig struct {
	PointerRangeX float64  `toml:"pointer_range_x" yaml:"pointer_range_x"`
	PointerRangeY float64  `toml:"pointer_range_y" yaml:"pointer_range_y"`
	SaccadeMin    Duration `toml:"saccade_min" yaml:"saccade_min"`
	SaccadeMax    Duration `toml:"saccade_max" yaml:"saccade_max"`
	SaccadeRangeX float64  `toml:"saccade_range_x" yaml:"saccade_range_x"`
	SaccadeRangeY float64  `toml:"saccade_range_y" yaml:"saccade_range_y"`
	BlinkMin      Duration `toml:"blink_min" yaml:"blink_min"`
	BlinkMax      Duration `toml:"blink_max" yaml:"blink_max"`
	LidReopen     Duration `toml:"lid_reopen" yaml:"lid_reopen"`
	PartnerBlink  float64  `toml:"partner_blink" yaml:"partner_blink"`
}

// ControlsConfig configures the control panel.
type ControlsConfig struct {
	AutoCycle bool     `toml:"auto_cycle" yaml:"auto_cycle"`
	Interval  Duration `toml:"interval" yaml:"interval"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name" yaml:"name"`
	// File is an optional TOML theme file registered before Name is
	// looked up.
	File    string `toml:"file" yaml:"file"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
}

// HeroConfig is the text above the face.
type HeroConfig struct {
	Title    string `toml:"title" yaml:"title"`
	Tagline  string `toml:"tagline" yaml:"tagline"`
	Badge    string `toml:"badge" yaml:"badge"`
	SceneURL string `toml:"scene_url" yaml:"scene_url"`
}

// DefaultSceneURL is the interactive 3D scene the hero links to.
const DefaultSceneURL = "https://prod.spline.design/M4yE7MTeWshitQbr/scene.splinecode"

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.General.InitialState != "" && !state.Parse(c.General.InitialState).Valid() {
		return fmt.Errorf("config: unknown initial_state %q", c.General.InitialState)
	}
	if c.General.FPS < 1 || c.General.FPS > 120 {
		return fmt.Errorf("config: fps %d out of range 1-120", c.General.FPS)
	}
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.General.LogLevel)
	}
	f := c.Face
	if f.SaccadeMax.Duration < f.SaccadeMin.Duration {
		return fmt.Errorf("config: face.saccade_max %s below saccade_min %s", f.SaccadeMax, f.SaccadeMin)
	}
	if f.BlinkMax.Duration < f.BlinkMin.Duration {
		return fmt.Errorf("config: face.blink_max %s below blink_min %s", f.BlinkMax, f.BlinkMin)
	}
	if f.PartnerBlink < 0 || f.PartnerBlink > 1 {
		return fmt.Errorf("config: face.partner_blink %v out of range 0-1", f.PartnerBlink)
	}
	if c.Controls.Interval.Duration <= 0 {
		return fmt.Errorf("config: controls.interval must be positive")
	}
	if c.Hero.SceneURL != "" {
		u, err := url.Parse(c.Hero.SceneURL)
		if err != nil {
			return fmt.Errorf("config: hero.scene_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("config: hero.scene_url scheme %q not http(s)", u.Scheme)
		}
	}
	return nil
}

// InitialState returns the parsed initial state, idle when unset.
func (c *Config) InitialState() state.State {
	if c.General.InitialState == "" {
		return state.Idle
	}
	return state.Parse(c.General.InitialState)
}

// FrameInterval returns the time between frames.
func (c *Config) FrameInterval() time.Duration {
	if c.General.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.General.FPS)
}

// FaceOptions overlays the face settings on face.DefaultOptions.
func (c *Config) FaceOptions() face.Options {
	opts := face.DefaultOptions()
	f := c.Face
	if f.PointerRangeX > 0 {
		opts.PointerRange.X = f.PointerRangeX
	}
	if f.PointerRangeY > 0 {
		opts.PointerRange.Y = f.PointerRangeY
	}
	if f.SaccadeMin.Duration > 0 || f.SaccadeMax.Duration > 0 {
		opts.SaccadeDelay = sched.Delay{Min: f.SaccadeMin.Duration, Max: f.SaccadeMax.Duration}
	}
	if f.SaccadeRangeX > 0 || f.SaccadeRangeY > 0 {
		opts.SaccadeRange = motion.Vec2{X: f.SaccadeRangeX, Y: f.SaccadeRangeY}
	}
	if f.BlinkMin.Duration > 0 || f.BlinkMax.Duration > 0 {
		opts.BlinkDelay = sched.Delay{Min: f.BlinkMin.Duration, Max: f.BlinkMax.Duration}
	}
	if f.LidReopen.Duration > 0 {
		opts.LidReopen = f.LidReopen.Duration
	}
	opts.PartnerBlink = f.PartnerBlink
	return opts
}
