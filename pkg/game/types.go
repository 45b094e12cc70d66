package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// Point represents a cell on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by one step in direction d
func (p Point) Add(d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Direction is one of the four moves a snake can make
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit step for the direction. Y grows downward.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = parsed
	return nil
}

// ParseDirection maps a name such as "up" or "LEFT" to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}

// Phase is the top-level lifecycle state of a game
type Phase int

const (
	NotStarted Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_started":
		*p = NotStarted
	case "running":
		*p = Running
	case "game_over":
		*p = GameOver
	default:
		return fmt.Errorf("unknown phase %q", text)
	}
	return nil
}

// Game holds the state of a single game. It is not safe for concurrent use;
// a Session owns it and serializes every call.
type Game struct {
	Size int // Board width and height

	snake      []Point
	food       Point
	hasFood    bool
	direction  Direction
	score      int
	phase      Phase
	cleared    bool  // Board filled completely
	crashed    bool  // Lost by wall or self collision
	crashPoint Point // Cell the head tried to enter
	ticks      int

	start Point
	seed  int64
	rng   *rand.Rand
}

// GameState is a read-only snapshot of a game for renderers and clients
type GameState struct {
	Snake      []Point   `json:"snake"`
	Food       Point     `json:"food"`
	HasFood    bool      `json:"hasFood"`
	Direction  Direction `json:"direction"`
	Score      int       `json:"score"`
	Phase      Phase     `json:"phase"`
	Cleared    bool      `json:"cleared"`
	CrashPoint *Point    `json:"crashPoint,omitempty"`
	Ticks      int       `json:"ticks"`
	Length     int       `json:"length"`

	// Filled in by Session, never by the engine
	Paused   bool `json:"paused"`
	AutoPlay bool `json:"autoPlay"`
}

// Head returns the head cell of the snapshot
func (s GameState) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// GameConfig is a DTO for game settings sent to client on connect
type GameConfig struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	TickInterval int `json:"tickInterval"` // milliseconds
}
