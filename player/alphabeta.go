package player

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexai/searcher"
)

// AlphaBeta plays with the pruning negamax searcher. The searcher mutates
// the live board during recursion and restores it; the chosen move is then
// applied for real.
type AlphaBeta struct {
	base
	search *searcher.AlphaBeta
}

// NewAlphaBeta builds an alpha-beta player. seed feeds the player-owned
// random source used by the random evaluation.
func NewAlphaBeta(name string, seed uint64, options ...searcher.AlphaBetaOption) (*AlphaBeta, error) {
	rng := rand.New(rand.NewSource(seed))
	search, err := searcher.NewAlphaBeta(rng, options...)
	if err != nil {
		return nil, err
	}
	return &AlphaBeta{
		base:   base{name: name},
		search: search,
	}, nil
}

// Reset clears the transposition cache for a fresh game.
func (p *AlphaBeta) Reset() {
	p.search.Reset()
}

// Stats exposes the searcher counters of the latest turn.
func (p *AlphaBeta) Stats() searcher.Stats {
	return p.search.Stats()
}

func (p *AlphaBeta) DoTurn(verbosity int) {
	p.requireGame()
	start := time.Now()

	move, score := p.search.FindMove(p.board, p.color)
	if !p.board.Place(move, p.color) {
		panic("alpha-beta produced an illegal move")
	}

	elapsed := time.Since(start)
	p.turns++
	p.turnTime += elapsed

	if verbosity > 0 {
		stats := p.search.Stats()
		log.Info().
			Str("player", p.name).
			Stringer("color", p.color).
			Stringer("move", move).
			Int("score", score).
			Dur("took", elapsed).
			Int("nodes", stats.Nodes).
			Int("cuts", stats.Cuts).
			Int("tt_exact", stats.TTExactHits).
			Int("tt_partial", stats.TTPartialHits).
			Msg("alpha-beta move")
	}
}
