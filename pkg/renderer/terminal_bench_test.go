package renderer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
)

func TestRenderDrawsSnakeAndFood(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterRenderer(5, &buf, false)

	state := game.GameState{
		Snake:     []game.Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:      game.Point{X: 4, Y: 0},
		HasFood:   true,
		Direction: game.Right,
		Score:     3,
		Phase:     game.Running,
		Length:    2,
	}
	if err := r.Render(state); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if strings.Count(out, config.CharHead) != 1 {
		t.Errorf("expected exactly one head, got output:\n%s", out)
	}
	if strings.Count(out, config.CharBody) != 1 {
		t.Errorf("expected exactly one body cell, got output:\n%s", out)
	}
	if strings.Count(out, config.CharFood) != 1 {
		t.Errorf("expected exactly one food, got output:\n%s", out)
	}
	if !strings.Contains(out, "Score: 3") {
		t.Errorf("missing score line in output:\n%s", out)
	}
	if strings.Contains(out, "\033[2J") {
		t.Error("clear sequence written although disabled")
	}

	// Row 2 holds body then head: wall, empty, body, head, empty, empty, wall
	want := "  " + config.CharWall + config.CharEmpty + config.CharBody + config.CharHead +
		config.CharEmpty + config.CharEmpty + config.CharWall
	if !strings.Contains(out, want+"\n") {
		t.Errorf("row 2 not drawn as expected, want %q in:\n%s", want, out)
	}
}

func TestRenderPhaseBanners(t *testing.T) {
	tests := []struct {
		name  string
		state game.GameState
		want  string
	}{
		{"not started", game.GameState{Phase: game.NotStarted}, "to start"},
		{"paused", game.GameState{Phase: game.Running, Paused: true}, "PAUSED"},
		{"game over", game.GameState{Phase: game.GameOver, Score: 7}, "GAME OVER! Final score: 7"},
		{"cleared", game.GameState{Phase: game.GameOver, Cleared: true, Score: 24}, "BOARD CLEARED! Final score: 24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.state.Snake = []game.Point{{X: 0, Y: 0}}
			if err := NewWriterRenderer(5, &buf, false).Render(tt.state); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestRenderCrashPoint(t *testing.T) {
	var buf bytes.Buffer
	crash := game.Point{X: 1, Y: 1}
	state := game.GameState{
		Snake:      []game.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		Phase:      game.GameOver,
		CrashPoint: &crash,
	}
	if err := NewWriterRenderer(5, &buf, false).Render(state); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), config.CharCrash) {
		t.Errorf("crash marker not drawn:\n%s", buf.String())
	}

	// A wall crash lies outside the board and must not panic
	buf.Reset()
	outside := game.Point{X: 5, Y: 1}
	state.CrashPoint = &outside
	if err := NewWriterRenderer(5, &buf, false).Render(state); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

// BenchmarkStringBuilderRender benchmarks buffered rendering of a full board
func BenchmarkStringBuilderRender(b *testing.B) {
	g := game.NewGame()
	g.Start()
	state := g.Snapshot()
	renderer := NewWriterRenderer(config.GridSize, io.Discard, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := renderer.Render(state); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNaiveRender benchmarks rendering with one write per cell
func BenchmarkNaiveRender(b *testing.B) {
	g := game.NewGame()
	state := g.Snapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		naiveRender(io.Discard, state, config.GridSize)
	}
}

// naiveRender simulates the unbuffered approach with many small writes
func naiveRender(w io.Writer, state game.GameState, size int) {
	occupied := make(map[game.Point]string)
	for i, p := range state.Snake {
		if i == 0 {
			occupied[p] = config.CharHead
		} else {
			occupied[p] = config.CharBody
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if c, ok := occupied[game.Point{X: x, Y: y}]; ok {
				io.WriteString(w, c)
			} else {
				io.WriteString(w, config.CharEmpty)
			}
		}
		io.WriteString(w, "\n")
	}
}
