// Package tui is the root bubbletea model. It owns the current expressive
// state and drives the face, the control panel and the frame loop.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/copilot-face/pkg/app"
	"gitlab.com/tinyland/lab/copilot-face/pkg/config"
	"gitlab.com/tinyland/lab/copilot-face/pkg/controls"
	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
	"gitlab.com/tinyland/lab/copilot-face/pkg/hero"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
	"gitlab.com/tinyland/lab/copilot-face/pkg/theme"
)

// Options wires a Model. Only Config is required.
type Options struct {
	Config  *config.Config
	Profile termenv.Profile
	// Hyperlinks enables OSC 8 links in the hero.
	Hyperlinks bool
	Logger     *slog.Logger
	Zones      *zone.Manager
	// Rand drives the face's randomized behaviors; nil uses the default
	// source.
	Rand sched.RandFunc
	// Now is the clock used for input events; nil uses time.Now.
	Now func() time.Time
}

// Model is the root model.
type Model struct {
	cfg     *config.Config
	logger  *slog.Logger
	zones   *zone.Manager
	now     func() time.Time
	profile termenv.Profile

	keys  app.KeyMap
	help  help.Model
	face  *face.Controller
	panel *controls.Panel
	hero  hero.Hero
	th    theme.Theme

	current state.State
	gen     uint64
	frame   time.Duration
	stopped bool

	width, height int
	ready         bool
	showHelp      bool
}

// New builds the root model. The face and the panel start in Init.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	keys := app.DefaultKeyMap()

	m := Model{
		cfg:     cfg,
		logger:  logger,
		zones:   opts.Zones,
		now:     now,
		profile: opts.Profile,
		keys:    keys,
		help:    help.New(),
		face:    face.New(cfg.FaceOptions(), opts.Rand, logger.With("component", "face")),
		panel:   controls.New(opts.Zones, keys, cfg.Controls.Interval.Duration, logger.With("component", "controls")),
		hero: hero.Hero{
			Title:      cfg.Hero.Title,
			Tagline:    cfg.Hero.Tagline,
			Badge:      cfg.Hero.Badge,
			SceneURL:   cfg.Hero.SceneURL,
			Hyperlinks: opts.Hyperlinks,
		},
		current: cfg.InitialState(),
		frame:   cfg.FrameInterval(),
		gen:     1,
	}
	m.setTheme(theme.Get(cfg.Theme.Name))
	return m
}

// Init starts the face, the panel and the frame loop.
func (m Model) Init() tea.Cmd {
	now := m.now()
	m.face.SetState(m.current, now)
	m.face.Start(now)
	m.panel.SetCurrent(m.current)
	m.panel.Start(now, m.cfg.Controls.AutoCycle)
	m.logger.Info("face started", "state", m.current, "auto", m.cfg.Controls.AutoCycle, "fps", m.cfg.General.FPS)
	return app.FrameCmd(m.gen, m.frame)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case app.FrameEvent:
		if m.stopped || msg.Gen != m.gen {
			return m, nil
		}
		if ev, ok := m.panel.Advance(msg.Time); ok {
			m.setState(ev, msg.Time)
		}
		m.face.Advance(msg.Time)
		return m, app.FrameCmd(m.gen, m.frame)

	case app.StateChangeEvent:
		m.setState(msg, m.now())
		return m, nil

	case app.ThemeChangeEvent:
		m.setTheme(theme.Get(msg.Theme))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.face.SetPointer(face.PointerFromCell(msg.X, msg.Y, m.width, m.height))
		}
		if ev, ok := m.panel.Update(msg, m.now()); ok {
			m.setState(ev, m.now())
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m, app.ThemeCmd(nextTheme(m.th.Name))
	}
	if ev, ok := m.panel.Update(msg, m.now()); ok {
		m.setState(ev, m.now())
	}
	return m, nil
}

// setState is the single writer of the current state.
func (m *Model) setState(ev app.StateChangeEvent, now time.Time) {
	if ev.State == m.current {
		return
	}
	m.logger.Debug("state change", "from", m.current, "to", ev.State, "source", ev.Source)
	m.current = ev.State
	m.face.SetState(ev.State, now)
	m.panel.SetCurrent(ev.State)
}

func (m *Model) setTheme(th theme.Theme) {
	m.th = theme.Adapt(th, m.profile)
	m.help.Styles = helpStyles(m.th)
	m.logger.Debug("theme", "name", th.Name)
}

// Stop cancels every face and panel timer and retires the current frame
// generation, so ticks already in flight are ignored. It is safe to call
// more than once.
func (m *Model) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.gen++
	m.face.Stop()
	m.panel.Stop()
	m.logger.Info("face stopped", "frames", m.face.Frames())
}

// State returns the current expressive state.
func (m Model) State() state.State { return m.current }

// Face returns the face controller.
func (m Model) Face() *face.Controller { return m.face }

// Panel returns the control panel.
func (m Model) Panel() *controls.Panel { return m.panel }

// Theme returns the active, profile-adapted theme.
func (m Model) Theme() theme.Theme { return m.th }

// Generation returns the current frame generation.
func (m Model) Generation() uint64 { return m.gen }

// Stopped reports whether Stop has run.
func (m Model) Stopped() bool { return m.stopped }

// nextTheme returns the theme after name in sorted order, wrapping.
func nextTheme(name string) string {
	names := theme.Names()
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return names[(i+1)%len(names)]
		}
	}
	return "default"
}
