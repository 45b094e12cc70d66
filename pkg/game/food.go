package game

import "github.com/trytobebee/snake_classic/pkg/config"

// placeFood picks a cell not covered by the snake, uniformly at random.
// It returns false when the snake fills the whole board.
func (g *Game) placeFood() (Point, bool) {
	cells := g.Size * g.Size
	free := cells - len(g.snake)
	if free <= 0 {
		return Point{}, false
	}

	occupied := g.occupied()

	// Sparse boards: sampling almost always succeeds on the first tries
	if float64(len(g.snake)) < float64(cells)*config.DenseBoardRatio {
		for attempts := 0; attempts < config.FoodSampleAttempts; attempts++ {
			pos := Point{X: g.rng.Intn(g.Size), Y: g.rng.Intn(g.Size)}
			if !occupied[pos] {
				return pos, true
			}
		}
	}

	return g.pickFreeCell(occupied)
}

// pickFreeCell enumerates every free cell in row order and picks one.
// A single free cell is always chosen without consuming randomness.
func (g *Game) pickFreeCell(occupied map[Point]bool) (Point, bool) {
	freeCells := make([]Point, 0, g.Size*g.Size-len(occupied))
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				freeCells = append(freeCells, p)
			}
		}
	}

	switch len(freeCells) {
	case 0:
		return Point{}, false
	case 1:
		return freeCells[0], true
	default:
		return freeCells[g.rng.Intn(len(freeCells))], true
	}
}

func (g *Game) occupied() map[Point]bool {
	occupied := make(map[Point]bool, len(g.snake))
	for _, p := range g.snake {
		occupied[p] = true
	}
	return occupied
}

// FreeCells returns the number of board cells not covered by the snake
func (g *Game) FreeCells() int {
	return g.Size*g.Size - len(g.snake)
}
