package game

// Controller defines the brain driving a snake when the player hands over
// control. It only reads snapshots; the Session applies its choice through
// SetDirection like any other input.
type Controller interface {
	NextDirection(state GameState, size int) (Direction, bool)
}

// --- Implementation: Heuristic Controller ---

// HeuristicController steers greedily toward the food, avoiding moves that
// die immediately or that lead into a pocket smaller than the snake.
type HeuristicController struct{}

type candidate struct {
	dir       Direction
	reachable int
	distance  int
}

// NextDirection returns the best move, or false when every move is fatal
func (c *HeuristicController) NextDirection(state GameState, size int) (Direction, bool) {
	if len(state.Snake) == 0 {
		return 0, false
	}
	head := state.Head()

	var best *candidate
	for _, d := range []Direction{state.Direction, Up, Right, Down, Left} {
		if d == state.Direction.Opposite() {
			continue
		}
		next := head.Add(d)
		if !isSafe(state, size, next) {
			continue
		}

		cand := candidate{
			dir:       d,
			reachable: floodFill(state, size, next),
			distance:  manhattan(next, state.Food),
		}
		if best == nil || cand.better(*best, len(state.Snake)) {
			picked := cand
			best = &picked
		}
	}

	if best == nil {
		return 0, false
	}
	return best.dir, true
}

// better prefers moves with enough room for the whole body, then the
// shortest distance to food. Ties keep the earlier candidate.
func (c candidate) better(other candidate, length int) bool {
	roomy, otherRoomy := c.reachable >= length, other.reachable >= length
	if roomy != otherRoomy {
		return roomy
	}
	if !roomy && c.reachable != other.reachable {
		return c.reachable > other.reachable
	}
	return c.distance < other.distance
}

// isSafe checks wall and body collisions for a head moving to p next tick
func isSafe(state GameState, size int, p Point) bool {
	if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
		return false
	}
	body := state.Snake
	if !(state.HasFood && p == state.Food) {
		body = body[:len(body)-1]
	}
	for _, s := range body {
		if s == p {
			return false
		}
	}
	return true
}

// floodFill counts cells reachable from start without crossing the body
func floodFill(state GameState, size int, start Point) int {
	blocked := make(map[Point]bool, len(state.Snake))
	for _, s := range state.Snake[:len(state.Snake)-1] {
		blocked[s] = true
	}

	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{Up, Down, Left, Right} {
			n := p.Add(d)
			if n.X < 0 || n.X >= size || n.Y < 0 || n.Y >= size {
				continue
			}
			if blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
