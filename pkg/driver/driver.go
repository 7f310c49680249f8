package driver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gulbrand/rusty-the-snake/pkg/game"
	"github.com/gulbrand/rusty-the-snake/pkg/input"
)

// ErrNotStarted is returned when commands or ticks arrive before Start.
var ErrNotStarted = errors.New("driver not started")

// Renderer consumes game snapshots
type Renderer interface {
	Render(game.GameState) error
}

// Factory builds a fresh game for the first round and every restart
type Factory func() (*game.Game, error)

// Loop owns one game at a time. All calls into the game happen on the goroutine
// running Run, so input producers only ever talk to it through the command channel.
type Loop struct {
	newGame  Factory
	renderer Renderer
	logger   *log.Logger

	game   *game.Game
	paused bool
	rounds int
}

func New(factory Factory, renderer Renderer, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		newGame:  factory,
		renderer: renderer,
		logger:   logger,
	}
}

// Start builds a new game and renders its first frame.
func (l *Loop) Start() error {
	g, err := l.newGame()
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	l.game = g
	l.paused = false
	l.rounds++
	board := g.Board()
	l.logger.Printf("Round %d started on %dx%d board", l.rounds, board.Width, board.Height)
	return l.render()
}

// Snapshot returns the current game state with the pause flag filled in.
func (l *Loop) Snapshot() game.GameState {
	s := l.game.Snapshot()
	s.Paused = l.paused
	return s
}

// Running reports whether the next timer fire should tick the game.
func (l *Loop) Running() bool {
	return l.game != nil && !l.paused && !l.game.IsGameOver()
}

// Handle applies one command. It returns true when the loop should stop.
func (l *Loop) Handle(cmd input.Command) (bool, error) {
	if l.game == nil {
		return false, ErrNotStarted
	}

	switch cmd.Action {
	case input.ActionTurn:
		if l.Running() {
			l.game.Turn(cmd.Dir)
		}
	case input.ActionPause:
		if l.game.IsGameOver() {
			return false, nil
		}
		l.paused = !l.paused
		return false, l.render()
	case input.ActionRestart:
		if !l.game.IsGameOver() {
			return false, nil
		}
		return false, l.Start()
	case input.ActionQuit:
		return true, nil
	}
	return false, nil
}

// Step advances the game by one tick and renders the result. It does nothing
// while paused or after the game has ended.
func (l *Loop) Step() error {
	if l.game == nil {
		return ErrNotStarted
	}
	if !l.Running() {
		return nil
	}

	l.game.Tick()
	if err := l.render(); err != nil {
		return err
	}
	if l.game.IsGameOver() {
		s := l.game.Snapshot()
		l.logger.Printf("Round %d over: %s at %v, score %d, length %d",
			l.rounds, s.DeathCause, s.CrashPoint, s.Score, len(s.Snake))
	}
	return nil
}

// Run starts a game and drives it until ctx is cancelled, a quit command
// arrives or commands is closed. Ticks are scheduled from the game's current
// TickInterval so the snake speeds up as it grows.
func (l *Loop) Run(ctx context.Context, commands <-chan input.Command) error {
	if err := l.Start(); err != nil {
		return err
	}

	timer := time.NewTimer(l.game.TickInterval())
	defer timer.Stop()
	tick := l.arm(timer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			quit, err := l.Handle(cmd)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			if cmd.Action == input.ActionPause || cmd.Action == input.ActionRestart {
				tick = l.arm(timer)
			}

		case <-tick:
			if err := l.Step(); err != nil {
				return err
			}
			tick = l.arm(timer)
		}
	}
}

// arm resets the timer for the next tick, or returns nil when no tick is due.
func (l *Loop) arm(timer *time.Timer) <-chan time.Time {
	timer.Stop()
	if !l.Running() {
		return nil
	}
	timer.Reset(l.game.TickInterval())
	return timer.C
}

func (l *Loop) render() error {
	if err := l.renderer.Render(l.Snapshot()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
