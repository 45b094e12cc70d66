package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	size   int
	board  [][]int
	buffer strings.Builder
	out    io.Writer
	clear  bool
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a new terminal renderer drawing to stdout
func NewTerminalRenderer(size int) *TerminalRenderer {
	return NewWriterRenderer(size, os.Stdout, true)
}

// NewWriterRenderer creates a renderer drawing to out. clear controls
// whether each frame starts with an ANSI clear-screen sequence.
func NewWriterRenderer(size int, out io.Writer, clear bool) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}

	return &TerminalRenderer{
		size:  size,
		board: board,
		out:   out,
		clear: clear,
	}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Render draws one snapshot
func (r *TerminalRenderer) Render(state game.GameState) error {
	r.buffer.Reset()
	if r.clear {
		r.buffer.WriteString("\033[H\033[2J\033[3J")
	}

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	if state.HasFood {
		r.set(state.Food, cellFood)
	}
	for i := len(state.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.set(state.Snake[i], cellHead)
		} else {
			r.set(state.Snake[i], cellBody)
		}
	}
	if state.CrashPoint != nil {
		r.set(*state.CrashPoint, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Length: %d  |  Heading: %s", state.Score, state.Length, state.Direction))
	if state.AutoPlay {
		r.buffer.WriteString("  |  🤖 AUTO")
	}
	r.buffer.WriteString("\n\n")

	wall := strings.Repeat(config.CharWall, r.size+2)
	r.buffer.WriteString("  " + wall + "\n")
	for _, row := range r.board {
		r.buffer.WriteString("  " + config.CharWall)
		for _, cell := range row {
			switch cell {
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			default:
				r.buffer.WriteString(config.CharEmpty)
			}
		}
		r.buffer.WriteString(config.CharWall + "\n")
	}
	r.buffer.WriteString("  " + wall + "\n")

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move, O for autopilot\n")
	r.buffer.WriteString("  P to pause, R to reset, Q to quit\n")

	switch {
	case state.Phase == game.NotStarted:
		r.buffer.WriteString("\n  Press any direction key or Space to start\n")
	case state.Phase == game.GameOver && state.Cleared:
		r.buffer.WriteString(fmt.Sprintf("\n  🏆 BOARD CLEARED! Final score: %d. Press Space to play again\n", state.Score))
	case state.Phase == game.GameOver:
		r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER! Final score: %d. Press Space to play again or Q to quit\n", state.Score))
	case state.Paused:
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}

// set marks a cell, ignoring points outside the board such as a crash into
// the wall
func (r *TerminalRenderer) set(p game.Point, cell int) {
	if p.X < 0 || p.X >= r.size || p.Y < 0 || p.Y >= r.size {
		return
	}
	r.board[p.Y][p.X] = cell
}
