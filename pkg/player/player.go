// Package player runs the face without a terminal and writes one JSON
// frame snapshot per tick, for piping into other tools and for recording
// reference runs.
package player

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/tinyland/lab/copilot-face/pkg/config"
	"gitlab.com/tinyland/lab/copilot-face/pkg/controls"
	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
	"gitlab.com/tinyland/lab/copilot-face/pkg/sched"
	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// frameBuffer is how many frames may wait for a slow writer before the
// ticker side blocks.
const frameBuffer = 8

// Player drives one face controller from a ticker.
type Player struct {
	face     *face.Controller
	cycle    *controls.AutoCycle
	initial  state.State
	auto     bool
	interval time.Duration
	w        io.Writer
	logger   *slog.Logger

	current state.State
	frames  int
}

// New returns a player configured from cfg that writes to w.
func New(cfg *config.Config, w io.Writer, rnd sched.RandFunc, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		face:     face.New(cfg.FaceOptions(), rnd, logger.With("component", "face")),
		cycle:    controls.NewAutoCycle(cfg.Controls.Interval.Duration),
		initial:  cfg.InitialState(),
		auto:     cfg.Controls.AutoCycle,
		interval: cfg.FrameInterval(),
		w:        w,
		logger:   logger,
	}
}

// Start mounts the face at now.
func (p *Player) Start(now time.Time) {
	p.current = p.initial
	p.face.SetState(p.initial, now)
	p.face.Start(now)
	if p.auto {
		p.cycle.Enable(now)
	}
}

// Stop unmounts the face and disables the auto cycle.
func (p *Player) Stop() {
	p.cycle.Disable()
	p.face.Stop()
}

// Face returns the controller.
func (p *Player) Face() *face.Controller { return p.face }

// Frames returns how many frames Step has produced.
func (p *Player) Frames() int { return p.frames }

// Step advances to now and returns the frame.
func (p *Player) Step(now time.Time) face.Frame {
	if s, ok := p.cycle.Advance(now); ok && s != p.current {
		p.logger.Debug("auto cycle", "from", p.current, "to", s)
		p.current = s
		p.face.SetState(s, now)
	}
	p.face.Advance(now)
	p.frames++
	return p.face.Snapshot()
}

// Run ticks until ctx is done and writes each frame as one JSON line. It
// returns nil on cancellation and an error when writing fails. Both of
// its goroutines have exited when Run returns.
func (p *Player) Run(ctx context.Context) error {
	p.Start(time.Now())
	defer p.Stop()

	out := make(chan face.Frame, frameBuffer)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(out)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				f := p.Step(now)
				select {
				case out <- f:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		enc := json.NewEncoder(p.w)
		for f := range out {
			if err := enc.Encode(f); err != nil {
				return fmt.Errorf("player: write frame: %w", err)
			}
		}
		return nil
	})

	err := g.Wait()
	p.logger.Info("player stopped", "frames", p.frames, "err", err)
	return err
}
