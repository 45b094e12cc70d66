package game

import (
	"math/rand"

	"github.com/trytobebee/snake_classic/pkg/config"
)

// Option customizes a new game
type Option func(*Game)

// WithSize overrides the board size
func WithSize(size int) Option {
	return func(g *Game) {
		if size > 0 {
			g.Size = size
		}
	}
}

// WithSeed fixes the food RNG seed. Every Reset reseeds with it.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithStart overrides the initial snake cell
func WithStart(p Point) Option {
	return func(g *Game) {
		g.start = p
	}
}

// NewGame creates a new game instance in the NotStarted phase
func NewGame(opts ...Option) *Game {
	g := &Game{
		Size:  config.GridSize,
		start: Point{X: config.InitialX, Y: config.InitialY},
		seed:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.inBounds(g.start) {
		g.start = Point{X: g.Size / 2, Y: g.Size / 2}
	}
	g.Reset()
	return g
}

// Reset restores the initial configuration from any phase. The RNG is
// reseeded, so consecutive resets produce identical games.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.snake = []Point{g.start}
	g.direction = Right
	g.score = 0
	g.phase = NotStarted
	g.cleared = false
	g.crashed = false
	g.crashPoint = Point{}
	g.ticks = 0
	g.food, g.hasFood = g.placeFood()
}

// Start moves a fresh game into the Running phase. It reports whether the
// phase changed; a finished game must be Reset first.
func (g *Game) Start() bool {
	if g.phase != NotStarted {
		return false
	}
	g.phase = Running
	return true
}

// SetDirection requests the direction used by the next Update and reports
// whether the pending direction changed. Requests outside the Running phase
// and exact reversals are ignored. The last request before a tick wins.
func (g *Game) SetDirection(d Direction) bool {
	if g.phase != Running || d < Up || d > Right {
		return false
	}
	// Reversal is checked against the pending direction, not the last
	// executed move.
	if d == g.direction.Opposite() {
		return false
	}
	if d == g.direction {
		return false
	}
	g.direction = d
	return true
}

// Update advances the game by one tick
func (g *Game) Update() {
	if g.phase != Running {
		return
	}

	newHead := g.snake[0].Add(g.direction)

	if !g.inBounds(newHead) {
		g.crash(newHead)
		return
	}

	eats := g.hasFood && newHead == g.food
	if g.hitsBody(newHead, eats) {
		g.crash(newHead)
		return
	}

	g.ticks++
	g.snake = append([]Point{newHead}, g.snake...)
	if !eats {
		g.snake = g.snake[:len(g.snake)-1]
		return
	}

	g.score++
	g.food, g.hasFood = g.placeFood()
	if !g.hasFood {
		g.cleared = true
		g.phase = GameOver
	}
}

// Snapshot returns a copy of the current state for serialization
func (g *Game) Snapshot() GameState {
	snake := make([]Point, len(g.snake))
	copy(snake, g.snake)

	state := GameState{
		Snake:     snake,
		Food:      g.food,
		HasFood:   g.hasFood,
		Direction: g.direction,
		Score:     g.score,
		Phase:     g.phase,
		Cleared:   g.cleared,
		Ticks:     g.ticks,
		Length:    len(snake),
	}
	if g.crashed {
		crash := g.crashPoint
		state.CrashPoint = &crash
	}
	return state
}

// Phase returns the current lifecycle phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Direction returns the direction the next tick will use
func (g *Game) Direction() Direction {
	return g.direction
}

// Score returns the number of foods eaten
func (g *Game) Score() int {
	return g.score
}

// Config returns the settings clients need to lay out the board
func (g *Game) Config() GameConfig {
	return GameConfig{
		Width:        g.Size,
		Height:       g.Size,
		TickInterval: int(config.TickInterval.Milliseconds()),
	}
}

func (g *Game) crash(at Point) {
	g.phase = GameOver
	g.crashed = true
	g.crashPoint = at
}

// hitsBody reports whether p collides with the body as it will be after the
// move: the tail is vacated this tick unless the snake is growing.
func (g *Game) hitsBody(p Point, growing bool) bool {
	body := g.snake
	if !growing {
		body = body[:len(body)-1]
	}
	for _, s := range body {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}
