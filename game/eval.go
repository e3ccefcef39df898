package game

import "golang.org/x/exp/rand"

// Lose caps any reachable path sum. A distance of Lose means the connection
// is blocked, and an evaluation at or beyond Lose means the position is
// already decided. It must stay below the search engine's infinity.
const Lose = 1000

// Evaluate scores a board from color's perspective; larger is better.
type Evaluate func(b *Board, color Color) int

// EvaluateDistance scores the position as the opponent's remaining
// connection distance minus color's own.
func EvaluateDistance(b *Board, color Color) int {
	return DistanceScore(b, color.Opponent()) - DistanceScore(b, color)
}

// RandomEvaluator returns an evaluation that ignores the position and draws
// a score from rng. Useful as a search baseline.
func RandomEvaluator(rng *rand.Rand) Evaluate {
	return func(b *Board, color Color) int {
		return rng.Intn(b.Size() * 2)
	}
}

// DistanceScore estimates the number of moves color still needs to connect
// its two edges: the minimum of the relaxed cost field over color's goal
// edge.
func DistanceScore(b *Board, color Color) int {
	scores := DistanceField(b, color)
	best := Lose
	for i := 0; i < b.Size(); i++ {
		c := goalEdgeCoord(b, color, i)
		if scores[b.index(c)] < best {
			best = scores[b.index(c)]
		}
	}
	return best
}

// DistanceField computes color's path cost to every cell from its start
// edge, row-major: own cells cost 0 to enter, empty cells 1, opponent cells
// Lose. The field is computed by flood relaxation rather than a
// priority-queue Dijkstra; with 0/1 step costs repeated passes settle
// quickly.
func DistanceField(b *Board, color Color) []int {
	n := b.Size()
	scores := make([]int, n*n)
	pending := make([]bool, n*n)
	for i := range scores {
		scores[i] = Lose
	}

	// Seed the start edge with each cell's own entry cost.
	for i := 0; i < n; i++ {
		c := b.StartEdge(color, i)
		scores[b.index(c)] = enterCost(b, color, c)
		pending[b.index(c)] = true
	}

	for updating := true; updating; {
		updating = false
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				c := Coord{X: x, Y: y}
				if !pending[b.index(c)] {
					continue
				}
				for _, nb := range b.Neighbors(c) {
					relaxed := scores[b.index(c)] + enterCost(b, color, nb)
					if relaxed < scores[b.index(nb)] {
						scores[b.index(nb)] = relaxed
						pending[b.index(nb)] = true
						updating = true
					}
				}
			}
		}
	}
	return scores
}

func enterCost(b *Board, color Color, c Coord) int {
	switch {
	case b.IsEmpty(c):
		return 1
	case b.IsColor(c, color):
		return 0
	default:
		return Lose
	}
}

func goalEdgeCoord(b *Board, color Color, i int) Coord {
	if color == Blue {
		return Coord{X: b.Size() - 1, Y: i}
	}
	return Coord{X: i, Y: b.Size() - 1}
}
