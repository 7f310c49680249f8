package driver

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/gulbrand/rusty-the-snake/pkg/config"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
	"github.com/gulbrand/rusty-the-snake/pkg/input"
)

// recordingRenderer keeps every frame and signals on each one
type recordingRenderer struct {
	mu     sync.Mutex
	frames []game.GameState
	notify chan game.GameState
	err    error
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{notify: make(chan game.GameState, 256)}
}

func (r *recordingRenderer) Render(s game.GameState) error {
	r.mu.Lock()
	r.frames = append(r.frames, s)
	r.mu.Unlock()
	select {
	case r.notify <- s:
	default:
	}
	return r.err
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *recordingRenderer) last() game.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

// fastFactory builds 12x12 games without random fruit and with millisecond ticks
func fastFactory() (*game.Game, error) {
	rules := config.DefaultRules()
	rules.SpawnChance = -1
	rules.BaseTickInterval = 5 * time.Millisecond
	rules.PerSegmentDecrement = 0
	rules.MinTickInterval = time.Millisecond
	return game.NewGameWithRules(12, 12, rules, rand.New(rand.NewSource(1)))
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestStepBeforeStart(t *testing.T) {
	l := New(fastFactory, newRecordingRenderer(), quietLogger())
	if err := l.Step(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Step before Start = %v, want ErrNotStarted", err)
	}
	if _, err := l.Handle(input.Command{Action: input.ActionPause}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Handle before Start = %v, want ErrNotStarted", err)
	}
}

func TestStartRendersFirstFrame(t *testing.T) {
	r := newRecordingRenderer()
	l := New(fastFactory, r, quietLogger())
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if r.count() != 1 {
		t.Fatalf("expected 1 frame, got %d", r.count())
	}
	if s := r.last(); s.Ticks != 0 || len(s.Snake) != config.InitialLength {
		t.Errorf("unexpected first frame %+v", s)
	}
}

func TestStepTicksAndRenders(t *testing.T) {
	r := newRecordingRenderer()
	l := New(fastFactory, r, quietLogger())
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := l.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	s := r.last()
	if s.Ticks != 1 {
		t.Errorf("ticks = %d, want 1", s.Ticks)
	}
	if head, _ := s.Head(); head != (game.Point{X: 11, Y: 6}) {
		t.Errorf("head = %v, want (11,6)", head)
	}
}

func TestTurnIsAppliedOnNextStep(t *testing.T) {
	r := newRecordingRenderer()
	l := New(fastFactory, r, quietLogger())
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := l.Handle(input.Turn(game.Up)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if err := l.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := r.last().Direction; got != game.Up {
		t.Errorf("direction = %v, want up", got)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	r := newRecordingRenderer()
	l := New(fastFactory, r, quietLogger())
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := l.Handle(input.Command{Action: input.ActionPause}); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !r.last().Paused {
		t.Fatal("pause did not render a paused frame")
	}
	if l.Running() {
		t.Fatal("paused loop reports running")
	}

	frames := r.count()
	if err := l.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if r.count() != frames {
		t.Error("Step rendered while paused")
	}

	// Turns are dropped while paused
	l.Handle(input.Turn(game.Up))
	if _, ok := l.game.Pending(); ok {
		t.Error("turn queued while paused")
	}

	l.Handle(input.Command{Action: input.ActionPause})
	if r.last().Paused {
		t.Error("second pause did not resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	r := newRecordingRenderer()
	l := New(fastFactory, r, quietLogger())
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Restart is ignored while the game is running
	l.Handle(input.Command{Action: input.ActionRestart})
	if l.rounds != 1 {
		t.Fatalf("restart during play started round %d", l.rounds)
	}

	// Head starts at x=10 on a 12 wide board: two ticks reach the wall
	for i := 0; i < 2; i++ {
		if err := l.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	s := r.last()
	if !s.GameOver || s.DeathCause != game.DeathCauseWallCollision {
		t.Fatalf("expected wall collision, got %+v", s)
	}
	if l.Running() {
		t.Fatal("finished game still running")
	}

	// Pause is ignored after game over
	l.Handle(input.Command{Action: input.ActionPause})
	if r.last().Paused {
		t.Error("paused a finished game")
	}

	if _, err := l.Handle(input.Command{Action: input.ActionRestart}); err != nil {
		t.Fatalf("restart: %v", err)
	}
	s = r.last()
	if s.GameOver || s.Ticks != 0 || l.rounds != 2 {
		t.Errorf("restart did not build a fresh game: %+v", s)
	}
}

func TestQuit(t *testing.T) {
	l := New(fastFactory, newRecordingRenderer(), quietLogger())
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	quit, err := l.Handle(input.Command{Action: input.ActionQuit})
	if err != nil || !quit {
		t.Fatalf("quit = %v, %v; want true, nil", quit, err)
	}
}

func TestRunTicksUntilGameOver(t *testing.T) {
	r := newRecordingRenderer()
	l := New(fastFactory, r, quietLogger())
	commands := make(chan input.Command)

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background(), commands) }()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-r.notify:
			if !s.GameOver {
				continue
			}
			if s.Ticks != 2 {
				t.Errorf("game ended after %d ticks, want 2", s.Ticks)
			}
			commands <- input.Command{Action: input.ActionQuit}
			if err := <-done; err != nil {
				t.Fatalf("Run returned %v", err)
			}
			return
		case <-deadline:
			t.Fatal("game never ended")
		}
	}
}

func TestRunStopsOnClosedChannel(t *testing.T) {
	commands := make(chan input.Command)
	close(commands)
	l := New(fastFactory, newRecordingRenderer(), quietLogger())
	if err := l.Run(context.Background(), commands); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := New(fastFactory, newRecordingRenderer(), quietLogger())
	if err := l.Run(ctx, make(chan input.Command)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	r := newRecordingRenderer()
	r.err = errors.New("broken pipe")
	l := New(fastFactory, r, quietLogger())
	err := l.Run(context.Background(), make(chan input.Command))
	if !errors.Is(err, r.err) {
		t.Fatalf("Run = %v, want wrapped render error", err)
	}
}

func TestRunReturnsFactoryError(t *testing.T) {
	factory := func() (*game.Game, error) { return game.NewGame(3, 3) }
	l := New(factory, newRecordingRenderer(), quietLogger())
	err := l.Run(context.Background(), make(chan input.Command))
	if !errors.Is(err, game.ErrBoardTooSmall) {
		t.Fatalf("Run = %v, want ErrBoardTooSmall", err)
	}
}
