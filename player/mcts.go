package player

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexai/searcher"
)

// MCTS plays with the Monte Carlo tree searcher. The live board is only
// cloned, never mutated, until the chosen move is applied.
type MCTS struct {
	base
	search *searcher.MCTS
}

// NewMCTS builds an MCTS player. All rollout randomness flows from the
// player-owned source seeded here, so a fixed seed and iteration cap replay
// identical games.
func NewMCTS(name string, seed uint64, options ...searcher.MCTSOption) (*MCTS, error) {
	rng := rand.New(rand.NewSource(seed))
	search, err := searcher.NewMCTS(rng, options...)
	if err != nil {
		return nil, err
	}
	return &MCTS{
		base:   base{name: name},
		search: search,
	}, nil
}

// Reset discards the previous game's tree.
func (p *MCTS) Reset() {
	p.search.Reset()
}

// Stats exposes the searcher counters of the latest turn.
func (p *MCTS) Stats() searcher.Stats {
	return p.search.Stats()
}

func (p *MCTS) DoTurn(verbosity int) {
	p.requireGame()
	start := time.Now()

	move := p.search.FindMove(p.board, p.color)
	if !p.board.Place(move, p.color) {
		panic("mcts produced an illegal move")
	}

	elapsed := time.Since(start)
	p.turns++
	p.turnTime += elapsed

	if verbosity > 0 {
		log.Info().
			Str("player", p.name).
			Stringer("color", p.color).
			Stringer("move", move).
			Dur("took", elapsed).
			Int("rollouts", p.search.Stats().Rollouts).
			Msg("mcts move")
	}
}

var _ Player = (*MCTS)(nil)
var _ Player = (*AlphaBeta)(nil)
