// copilot-face is an animated AI copilot face for the terminal.
//
// Two eyes follow the mouse, blink, glance around while thinking and
// change shape across twelve expressive states. A control panel switches
// states by key or click and can cycle through them automatically.
//
// Usage:
//
//	copilot-face [flags]
//
// Flags:
//
//	-config string    Path to configuration file (TOML, or YAML by extension)
//	-state string     Initial expressive state (default: idle)
//	-theme string     Color theme (default, midnight, mono, or a loaded file)
//	-fps int          Frames per second (default: 30)
//	-no-auto          Start with auto cycle disabled
//	-headless         Write JSON frame snapshots to stdout instead of a TUI
//	-print            Print one still frame of the initial state and exit
//	-duration         Stop after this long (0 = until interrupted); with
//	                  -print, how long the face settles before the still
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/copilot-face/pkg/banner"
	"gitlab.com/tinyland/lab/copilot-face/pkg/config"
	"gitlab.com/tinyland/lab/copilot-face/pkg/player"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
	"gitlab.com/tinyland/lab/copilot-face/pkg/terminal"
	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
	"gitlab.com/tinyland/lab/copilot-face/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		initial     = flag.String("state", "", "Initial expressive state")
		themeName   = flag.String("theme", "", "Color theme")
		fps         = flag.Int("fps", 0, "Frames per second (0 = config value)")
		noAuto      = flag.Bool("no-auto", false, "Start with auto cycle disabled")
		headless    = flag.Bool("headless", false, "Write JSON frames to stdout instead of running the TUI")
		still       = flag.Bool("print", false, "Print one still frame and exit")
		duration    = flag.Duration("duration", 0, "Stop after this long (0 = until interrupted)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("copilot-face %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg, *initial, *themeName, *fps, *noAuto); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(1)
	}

	if err := ensureLogDir(cfg.General.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// The TUI owns the terminal, so only headless mode also logs to stderr.
	var logOut io.Writer = logFile
	if *headless {
		logOut = io.MultiWriter(os.Stderr, logFile)
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel(cfg.General.LogLevel, *verbose),
	}))

	if cfg.Theme.File != "" {
		if _, err := theme.LoadFile(cfg.Theme.File); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
			os.Exit(1)
		}
	}
	if _, ok := theme.Lookup(cfg.Theme.Name); !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme.Name)
	}

	if *still {
		printStill(os.Stdout, cfg, *duration)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if *headless {
		err = runHeadless(ctx, cfg, logger)
	} else {
		err = runTUI(ctx, cfg, logger)
	}
	if err != nil {
		logger.Error("exit", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runHeadless(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	p := player.New(cfg, os.Stdout, nil, logger.With("component", "player"))
	return p.Run(ctx)
}

// printStill writes one settled frame of the initial state, sized to the
// terminal w is attached to.
func printStill(w io.Writer, cfg *config.Config, settle time.Duration) {
	if settle <= 0 {
		settle = banner.DefaultSettle
	}
	size := terminal.GetSize()
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		size = terminal.GetSizeFromFd(f.Fd())
	}
	preset := banner.SelectPreset(size.Cols, size.Rows)
	f := banner.Still(cfg.FaceOptions(), cfg.InitialState(), time.Now(), settle, nil)
	profile := theme.DetectProfile(cfg.Theme.NoColor)
	th := theme.Adapt(theme.Get(cfg.Theme.Name), profile)
	fmt.Fprintln(w, banner.Render(f, cfg.InitialState(), th, profile, preset))
}

func runTUI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	caps := terminal.DetectCapabilities()
	if !caps.TTY {
		return errors.New("stdout is not a terminal; use -headless to stream frames")
	}
	logger.Info("terminal", "term", caps.Term, "size", fmt.Sprintf("%dx%d", caps.Size.Cols, caps.Size.Rows),
		"truecolor", caps.TrueColor, "hyperlinks", caps.Links(), "ssh", caps.SSH, "mux", caps.Mux)
	if caps.CoarsePointer() {
		logger.Warn("pointer tracking may be coarse", "term", caps.Term, "mouse_sgr", caps.MouseSGR, "mux", caps.Mux)
	}

	zones := zone.New()
	defer zones.Close()

	model := tui.New(tui.Options{
		Config:     cfg,
		Profile:    theme.DetectProfile(cfg.Theme.NoColor),
		Hyperlinks: caps.Links(),
		Logger:     logger.With("component", "tui"),
		Zones:      zones,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Stop()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Interrupted or -duration elapsed.
		return nil
	}
	return err
}

// loadConfig reads the file named by -config, or searches the standard
// locations when it is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromFile(path)
}

// applyFlags lays non-zero command-line overrides on top of cfg.
func applyFlags(cfg *config.Config, initial, themeName string, fps int, noAuto bool) error {
	if initial != "" {
		if !state.Parse(initial).Valid() {
			return fmt.Errorf("unknown state %q", initial)
		}
		cfg.General.InitialState = initial
	}
	if themeName != "" {
		cfg.Theme.Name = themeName
	}
	if fps != 0 {
		cfg.General.FPS = fps
	}
	if noAuto {
		cfg.Controls.AutoCycle = false
	}
	return cfg.Validate()
}

func logLevel(name string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0o755)
}

