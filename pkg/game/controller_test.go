package game

import "testing"

func TestHeuristicMovesTowardFood(t *testing.T) {
	ctrl := &HeuristicController{}
	state := GameState{
		Snake:     []Point{{X: 10, Y: 10}},
		Direction: Right,
		Food:      Point{X: 10, Y: 5},
		HasFood:   true,
	}
	dir, ok := ctrl.NextDirection(state, 20)
	if !ok || dir != Up {
		t.Errorf("NextDirection = %v,%v; want up", dir, ok)
	}
}

func TestHeuristicAvoidsWall(t *testing.T) {
	ctrl := &HeuristicController{}
	// Food lies behind the wall direction; going Right is fatal
	state := GameState{
		Snake:     []Point{{X: 19, Y: 10}, {X: 18, Y: 10}},
		Direction: Right,
		Food:      Point{X: 19, Y: 19},
		HasFood:   true,
	}
	dir, ok := ctrl.NextDirection(state, 20)
	if !ok {
		t.Fatal("controller gave up with free moves left")
	}
	if dir == Right || dir == Left {
		t.Errorf("NextDirection = %v, want up or down", dir)
	}
	if dir != Down {
		t.Errorf("NextDirection = %v, want down toward food", dir)
	}
}

func TestHeuristicPrefersRoom(t *testing.T) {
	ctrl := &HeuristicController{}
	// The food sits in a one-cell cup above the head; Left stays open
	state := GameState{
		Snake: []Point{
			{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 6, Y: 3},
			{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 3, Y: 3},
		},
		Direction: Up,
		Food:      Point{X: 5, Y: 4},
		HasFood:   true,
	}
	dir, ok := ctrl.NextDirection(state, 10)
	if !ok {
		t.Fatal("no move found")
	}
	if dir != Left {
		t.Errorf("NextDirection = %v, want left away from the pocket", dir)
	}
}

func TestHeuristicTrapped(t *testing.T) {
	ctrl := &HeuristicController{}
	// Head in the corner, body on both open sides
	state := GameState{
		Snake:     []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 2}},
		Direction: Left,
		Food:      Point{X: 5, Y: 5},
		HasFood:   true,
	}
	if dir, ok := ctrl.NextDirection(state, 10); ok {
		t.Errorf("NextDirection = %v, want no safe move", dir)
	}
}

func TestFloodFill(t *testing.T) {
	state := GameState{Snake: []Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}}
	// Column x=1 is blocked except the tail at (1,2), which frees up
	if got := floodFill(state, 3, Point{X: 0, Y: 0}); got != 7 {
		t.Errorf("floodFill = %d, want 7", got)
	}
}
