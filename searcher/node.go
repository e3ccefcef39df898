package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"hexai/game"
)

// node is one position in the UCT tree. Every node owns a private board
// clone, so sibling branches never alias state. The parent link is a
// non-owning back reference used only by backpropagation.
type node struct {
	board       *game.Board
	move        game.Coord // move that produced this position; unset at the root
	parent      *node
	toMove      game.Color
	perspective game.Color // the color the whole tree is evaluated for
	children    []*node
	untried     []game.Coord
	visits      int
	wins        int
}

func newNode(board *game.Board, move game.Coord, parent *node, toMove, perspective game.Color) *node {
	return &node{
		board:       board,
		move:        move,
		parent:      parent,
		toMove:      toMove,
		perspective: perspective,
		untried:     board.EmptyCells(),
	}
}

// terminal reports whether the player who just moved here already owns a
// winning connection.
func (n *node) terminal() bool {
	return n.board.CheckWin(n.toMove.Opponent())
}

// expand pops the last untried move and appends the resulting child, which
// has the opposite color to move and the same perspective.
func (n *node) expand() *node {
	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	board := n.board.Clone()
	if !board.Place(move, n.toMove) {
		panic("untried move is not legal")
	}

	child := newNode(board, move, n, n.toMove.Opponent(), n.perspective)
	n.children = append(n.children, child)
	return child
}

// bestChild returns the child maximizing UCT for the given exploration
// constant. Ties resolve to the earliest child. With exploration 0 this is
// the raw win-rate pick used for the final move.
func (n *node) bestChild(exploration float64) *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := uct(child.wins, child.visits, n.visits, exploration)
		if score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// uct computes wins/visits + exploration * sqrt(ln(parentVisits) / visits).
func uct(wins, visits, parentVisits int, exploration float64) float64 {
	if visits == 0 {
		panic("cannot compute UCT: 0 visits")
	}
	exploit := float64(wins) / float64(visits)
	explore := math.Sqrt(math.Log(float64(parentVisits)) / float64(visits))
	return exploit + exploration*explore
}

// rollout plays uniformly random moves on a fresh clone, alternating colors
// from this node's side to move, until the board is full. It reports whether
// the perspective color ends up with the winning connection.
func (n *node) rollout(rng *rand.Rand) bool {
	board := n.board.Clone()
	moves := board.EmptyCells()
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	color := n.toMove
	for _, move := range moves {
		board.Place(move, color)
		color = color.Opponent()
	}
	return board.CheckWin(n.perspective)
}

// backpropagate bumps the visit count from this node up to the root, and the
// win count wherever the perspective color won.
func (n *node) backpropagate(won bool) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		if won {
			cur.wins++
		}
	}
}
