package game

import "testing"

// fillAllBut covers every cell of a size x size board except free with a
// snake. The body order does not matter for food placement.
func fillAllBut(size int, free Point) []Point {
	var snake []Point
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if p := (Point{X: x, Y: y}); p != free {
				snake = append(snake, p)
			}
		}
	}
	return snake
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	free := Point{X: 2, Y: 1}
	for seed := int64(1); seed <= 10; seed++ {
		g := NewGame(WithSize(3), WithSeed(seed))
		g.snake = fillAllBut(3, free)

		pos, ok := g.placeFood()
		if !ok {
			t.Fatalf("seed %d: no food placed with one free cell", seed)
		}
		if pos != free {
			t.Errorf("seed %d: food at %v, want %v", seed, pos, free)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	g := NewGame(WithSize(3))
	g.snake = fillAllBut(3, Point{X: -1, Y: -1})
	if _, ok := g.placeFood(); ok {
		t.Error("food placed on a full board")
	}
	if g.FreeCells() != 0 {
		t.Errorf("FreeCells = %d, want 0", g.FreeCells())
	}
}

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	// Sparse board exercises sampling, dense board the enumeration path
	cases := []struct {
		name  string
		size  int
		snake []Point
	}{
		{"sparse", 20, []Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}},
		{"dense", 4, fillAllBut(4, Point{X: 0, Y: 0})[:12]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(WithSize(tc.size), WithSeed(3))
			g.snake = tc.snake
			occupied := g.occupied()

			seen := make(map[Point]bool)
			for i := 0; i < 500; i++ {
				pos, ok := g.placeFood()
				if !ok {
					t.Fatal("no food placed on a board with free cells")
				}
				if occupied[pos] {
					t.Fatalf("food placed on the snake at %v", pos)
				}
				if !g.inBounds(pos) {
					t.Fatalf("food out of bounds at %v", pos)
				}
				seen[pos] = true
			}
			if tc.name == "dense" && len(seen) != g.FreeCells() {
				t.Errorf("dense board reached %d of %d free cells", len(seen), g.FreeCells())
			}
		})
	}
}

func TestPlaceFoodDeterministicPerSeed(t *testing.T) {
	a := NewGame(WithSeed(99))
	b := NewGame(WithSeed(99))
	for i := 0; i < 10; i++ {
		pa, _ := a.placeFood()
		pb, _ := b.placeFood()
		if pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}
