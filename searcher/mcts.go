package searcher

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"hexai/game"
)

// DefaultExploration is the UCT exploration constant, roughly sqrt(2).
const DefaultExploration = 1.41

type MCTSOption func(m *MCTS)

// WithDuration caps the wall clock time per FindMove.
func WithDuration(d time.Duration) MCTSOption {
	return func(m *MCTS) {
		if d > 0 {
			m.maxTime = d
		}
	}
}

// WithIterations caps the number of rollouts per FindMove. With the time cap
// disabled this makes the search reproducible for a fixed seed.
func WithIterations(iterations int) MCTSOption {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithExploration overrides the UCT exploration constant.
func WithExploration(c float64) MCTSOption {
	return func(m *MCTS) {
		m.exploration = c
	}
}

// WithoutTimeLimit disables the wall clock cap, leaving only the iteration
// cap. Used by experiments that need reproducible trees.
func WithoutTimeLimit() MCTSOption {
	return func(m *MCTS) {
		m.maxTime = 0
	}
}

// MCTS is a single-threaded UCT search. Each turn it grows a fresh tree of
// board clones from the live position and discards it after picking a move;
// the live board is never touched.
type MCTS struct {
	maxTime     time.Duration
	iterations  int
	exploration float64
	rng         *rand.Rand

	root  *node
	stats Stats
}

// NewMCTS builds a searcher. All rollout randomness flows from rng; nil
// seeds one from the clock. Configuration problems surface here, never
// mid-game.
func NewMCTS(rng *rand.Rand, options ...MCTSOption) (*MCTS, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m := &MCTS{
		maxTime:     2 * time.Second,
		iterations:  100000,
		exploration: DefaultExploration,
		rng:         rng,
	}
	for _, option := range options {
		option(m)
	}

	if m.exploration < 0 {
		return nil, fmt.Errorf("exploration constant %f is negative", m.exploration)
	}
	if m.maxTime <= 0 && m.iterations <= 0 {
		return nil, fmt.Errorf("need a time or iteration budget")
	}
	return m, nil
}

// Reset drops the previous search tree.
func (m *MCTS) Reset() {
	m.root = nil
}

// Stats returns the counters of the most recent FindMove.
func (m *MCTS) Stats() Stats {
	return m.stats
}

// FindMove runs select/expand/rollout/backpropagate iterations until the
// time or iteration budget is exhausted, then returns the root child with
// the best raw win rate. b itself is never mutated.
func (m *MCTS) FindMove(b *game.Board, color game.Color) game.Coord {
	m.stats = Stats{}
	m.root = newNode(b.Clone(), game.Coord{}, nil, color, color)

	var deadline time.Time
	if m.maxTime > 0 {
		deadline = time.Now().Add(m.maxTime)
	}

	// The budget is checked between iterations, never during one, and the
	// first iteration always runs so a move exists even on a spent budget.
	for i := 0; i < m.iterations; i++ {
		if i > 0 && !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		n := m.selectNode()
		won := n.rollout(m.rng)
		n.backpropagate(won)
		m.stats.Rollouts++
	}

	return m.root.bestChild(0).move
}

// selectNode descends from the root by UCT until it reaches a terminal node
// or can expand. A freshly expanded child is returned immediately so it is
// never scored by UCT with zero visits.
func (m *MCTS) selectNode() *node {
	cur := m.root
	for !cur.terminal() {
		if len(cur.untried) > 0 {
			return cur.expand()
		}
		cur = cur.bestChild(m.exploration)
	}
	return cur
}
