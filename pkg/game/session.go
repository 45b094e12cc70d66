package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trytobebee/snake_classic/pkg/config"
)

// CommandKind identifies a request delivered to a Session
type CommandKind int

const (
	CmdStart     CommandKind = iota // Start a fresh game
	CmdDirection                    // Steer; starts a fresh game instead
	CmdReset                        // Back to NotStarted from any phase
	CmdRestart                      // Play again: reset after game over, start when fresh
	CmdPause                        // Toggle pause while running
	CmdAutoPlay                     // Toggle the autopilot controller
)

func (k CommandKind) String() string {
	switch k {
	case CmdStart:
		return "start"
	case CmdDirection:
		return "direction"
	case CmdReset:
		return "reset"
	case CmdRestart:
		return "restart"
	case CmdPause:
		return "pause"
	case CmdAutoPlay:
		return "autoplay"
	default:
		return "unknown"
	}
}

// Command is an input event for a Session
type Command struct {
	Kind CommandKind
	Dir  Direction // Only for CmdDirection
}

// Steer builds a direction command
func Steer(d Direction) Command {
	return Command{Kind: CmdDirection, Dir: d}
}

// Observer receives a snapshot after every completed mutation. It runs on the
// session goroutine and must not block.
type Observer func(event string, state GameState)

// SessionOption customizes a new session
type SessionOption func(*Session)

// WithClock replaces the default ticker clock
func WithClock(c Clock) SessionOption {
	return func(s *Session) {
		s.clock = c
	}
}

// WithObserver registers a snapshot observer
func WithObserver(o Observer) SessionOption {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// WithRecorder records every published snapshot
func WithRecorder(r *GameRecorder) SessionOption {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithController enables autopilot through the given controller
func WithController(c Controller) SessionOption {
	return func(s *Session) {
		s.controller = c
	}
}

// WithLogger sets the session logger
func WithLogger(l *zap.SugaredLogger) SessionOption {
	return func(s *Session) {
		s.log = l
	}
}

// WithSessionID overrides the generated session id
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.ID = id
	}
}

// Session owns a Game and is the only goroutine that touches it. Inputs and
// clock ticks are processed one at a time by Run.
type Session struct {
	ID string

	game       *Game
	clock      Clock
	commands   chan Command
	observers  []Observer
	recorder   *GameRecorder
	controller Controller
	log        *zap.SugaredLogger

	paused   bool
	autoPlay bool
	seq      int
}

// NewSession wraps g. The clock defaults to config.TickInterval.
func NewSession(g *Game, opts ...SessionOption) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		game:     g,
		commands: make(chan Command, config.CommandQueue),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewTickerClock(config.TickInterval)
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}
	s.log = s.log.With("session", s.ID)
	return s
}

// Send queues a command without blocking. It reports false when the queue
// is full and the command was dropped.
func (s *Session) Send(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		s.log.Warnw("command dropped, queue full", "command", cmd.Kind.String())
		return false
	}
}

// Run processes commands and ticks until ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	defer s.clock.Stop()

	s.log.Infow("session started", "size", s.game.Size)
	s.publish("init")
	s.syncClock()

	for {
		select {
		case <-ctx.Done():
			s.log.Infow("session stopped", "score", s.game.Score(), "phase", s.game.Phase().String())
			return ctx.Err()
		case cmd := <-s.commands:
			s.handle(cmd)
		case <-s.clock.C():
			// Inputs already queued take effect before this tick
			s.drain()
			s.step()
		}
	}
}

// Snapshot returns the current state including session flags. Only safe
// from the Run goroutine or before Run starts.
func (s *Session) Snapshot() GameState {
	state := s.game.Snapshot()
	state.Paused = s.paused
	state.AutoPlay = s.autoPlay
	return state
}

// Config returns the board settings of the wrapped game
func (s *Session) Config() GameConfig {
	return s.game.Config()
}

func (s *Session) drain() {
	for {
		select {
		case cmd := <-s.commands:
			s.handle(cmd)
		default:
			return
		}
	}
}

func (s *Session) handle(cmd Command) {
	before := s.game.Phase()
	event := cmd.Kind.String()
	changed := false

	switch cmd.Kind {
	case CmdStart:
		changed = s.game.Start()
	case CmdDirection:
		if before == NotStarted {
			// The first key press only starts the game
			changed = s.game.Start()
			event = CmdStart.String()
		} else {
			changed = s.game.SetDirection(cmd.Dir)
		}
	case CmdReset:
		s.game.Reset()
		s.paused = false
		changed = true
	case CmdRestart:
		switch before {
		case GameOver:
			s.game.Reset()
			s.paused = false
			changed = true
		case NotStarted:
			changed = s.game.Start()
		}
	case CmdPause:
		if before == Running {
			s.paused = !s.paused
			changed = true
		}
	case CmdAutoPlay:
		if s.controller != nil {
			s.autoPlay = !s.autoPlay
			changed = true
		}
	}

	if !changed {
		return
	}
	s.logTransition(before, event)
	s.syncClock()
	s.publish(event)
}

func (s *Session) step() {
	if s.game.Phase() != Running || s.paused {
		return
	}
	before := s.game.Phase()

	if s.autoPlay && s.controller != nil {
		if dir, ok := s.controller.NextDirection(s.game.Snapshot(), s.game.Size); ok {
			s.game.SetDirection(dir)
		}
	}

	s.game.Update()
	s.logTransition(before, "tick")
	s.syncClock()
	s.publish("tick")
}

// syncClock runs the clock exactly while the game is running and unpaused
func (s *Session) syncClock() {
	if s.game.Phase() == Running && !s.paused {
		s.clock.Start()
		return
	}
	s.clock.Stop()
}

func (s *Session) logTransition(before Phase, event string) {
	after := s.game.Phase()
	if before == after {
		s.log.Debugw("event", "event", event, "phase", after.String())
		return
	}

	state := s.game.Snapshot()
	fields := []interface{}{
		"event", event,
		"from", before.String(),
		"to", after.String(),
		"score", state.Score,
		"length", state.Length,
	}
	if after == GameOver {
		fields = append(fields, "cleared", state.Cleared)
		if state.CrashPoint != nil {
			fields = append(fields, "crash_x", state.CrashPoint.X, "crash_y", state.CrashPoint.Y)
		}
	}
	s.log.Infow("phase changed", fields...)
}

func (s *Session) publish(event string) {
	state := s.Snapshot()
	s.seq++
	for _, o := range s.observers {
		o(event, state)
	}
	if s.recorder != nil {
		s.recorder.RecordStep(StepRecord{
			Seq:   s.seq,
			Time:  time.Now(),
			Event: event,
			State: state,
		})
	}
}
