package searcher

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexai/game"
)

// Inf bounds every search score. game.Lose stays strictly below it so a
// decided position is still an ordinary score.
const Inf = 9999

// Evaluation selectors accepted by WithEvaluation.
const (
	EvalDistance = "distance"
	EvalRandom   = "random"
)

// noMove marks "no move": aborted searches and leaf results carry it.
var noMove = game.Coord{X: -1, Y: -1}

// errDeadline is the abort sentinel for an expired turn deadline. Every
// frame on the stack undoes its own move and passes it up unchanged.
var errDeadline = errors.New("turn deadline exceeded")

type AlphaBetaOption func(s *AlphaBeta)

// WithMaxDepth sets the fixed search depth used without iterative deepening.
func WithMaxDepth(depth int) AlphaBetaOption {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithMaxTime sets the per-turn wall clock budget for iterative deepening.
func WithMaxTime(d time.Duration) AlphaBetaOption {
	return func(s *AlphaBeta) {
		if d > 0 {
			s.maxTime = d
		}
	}
}

// WithIterativeDeepening repeats the search at increasing depths until the
// turn budget runs out, keeping the deepest completed result.
func WithIterativeDeepening() AlphaBetaOption {
	return func(s *AlphaBeta) {
		s.useID = true
	}
}

// WithTable enables the transposition cache.
func WithTable() AlphaBetaOption {
	return func(s *AlphaBeta) {
		s.table = NewTable()
	}
}

// WithEvaluation selects the leaf evaluation by name, EvalDistance or
// EvalRandom. Unknown names fail at construction.
func WithEvaluation(name string) AlphaBetaOption {
	return func(s *AlphaBeta) {
		s.evaluation = name
	}
}

// AlphaBeta is a depth-bounded negamax search with alpha-beta pruning,
// optional iterative deepening and an optional transposition cache. It
// searches by mutating the live board in place with strict place/undo
// pairing; the board is restored on every exit path.
type AlphaBeta struct {
	maxDepth   int
	maxTime    time.Duration
	useID      bool
	table      *Table
	evaluation string
	evaluate   game.Evaluate
	rng        *rand.Rand

	board    *game.Board
	deadline time.Time
	stats    Stats
}

// NewAlphaBeta builds a searcher. rng feeds the random evaluation and may be
// nil when EvalDistance is used. Configuration problems surface here, never
// mid-game.
func NewAlphaBeta(rng *rand.Rand, options ...AlphaBetaOption) (*AlphaBeta, error) {
	s := &AlphaBeta{
		maxDepth:   3,
		maxTime:    500 * time.Millisecond,
		evaluation: EvalDistance,
		rng:        rng,
	}
	for _, option := range options {
		option(s)
	}

	switch s.evaluation {
	case EvalDistance:
		s.evaluate = game.EvaluateDistance
	case EvalRandom:
		if s.rng == nil {
			s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		}
		s.evaluate = game.RandomEvaluator(s.rng)
	default:
		return nil, fmt.Errorf("unknown evaluation %q", s.evaluation)
	}
	return s, nil
}

// Reset clears per-game state: the transposition cache.
func (s *AlphaBeta) Reset() {
	if s.table != nil {
		s.table.Reset()
	}
}

// Stats returns the counters of the most recent FindMove.
func (s *AlphaBeta) Stats() Stats {
	return s.stats
}

// Table returns the transposition cache, nil when disabled.
func (s *AlphaBeta) Table() *Table {
	return s.table
}

// FindMove returns the best move for color on b together with its score.
// The board is mutated during the search and restored before returning.
func (s *AlphaBeta) FindMove(b *game.Board, color game.Color) (game.Coord, int) {
	s.board = b
	s.stats = Stats{}

	if s.useID {
		return s.deepen(color)
	}

	score, move, err := s.negamax(color, -Inf, Inf, s.maxDepth)
	if err != nil {
		panic("fixed-depth search has no deadline to exceed")
	}
	if move == noMove {
		panic("search returned no move on an undecided board")
	}
	return move, score
}

// deepen runs negamax at depth 1, 2, 3, ... under the turn budget and keeps
// the result of the last depth that completed. The fallback move is seeded
// before the first depth so an immediately expired budget still yields a
// legal move.
func (s *AlphaBeta) deepen(color game.Color) (game.Coord, int) {
	empty := s.board.EmptyCells()
	if len(empty) == 0 {
		panic("no empty cells and no winner: hex admits no draws")
	}
	bestMove := empty[0]
	bestScore := -Inf

	s.deadline = time.Now().Add(s.maxTime)
	defer func() { s.deadline = time.Time{} }()

	for depth := 1; depth <= len(empty); depth++ {
		score, move, err := s.negamax(color, -Inf, Inf, depth)
		if err != nil {
			// Discard the aborted depth entirely.
			log.Debug().Msgf("depth %d aborted, keeping depth %d result", depth, depth-1)
			break
		}
		bestMove, bestScore = move, score

		// A proven win or loss cannot get more decisive.
		if bestScore >= game.Lose || bestScore <= -game.Lose {
			break
		}
	}
	return bestMove, bestScore
}

// negamax searches the position for color within the (alpha, beta) window.
// Child scores are negated before comparison. It returns errDeadline when
// the turn budget expires; the board is restored in that case too.
func (s *AlphaBeta) negamax(color game.Color, alpha, beta, depth int) (int, game.Coord, error) {
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return 0, noMove, errDeadline
	}

	hint := noMove
	if s.table != nil {
		hit, move, score := s.table.Lookup(depth, s.board.Encode())
		switch hit {
		case ExactHit:
			s.stats.TTExactHits++
			return score, move, nil
		case PartialHit:
			s.stats.TTPartialHits++
			hint = move
		}
	}

	// Leaf: depth exhausted or the side that just moved has connected.
	if depth <= 0 || s.board.CheckWin(color.Opponent()) {
		s.stats.Evals++
		return s.evaluate(s.board, color), noMove, nil
	}

	s.stats.Nodes++
	moves := s.board.EmptyCells()
	if len(moves) == 0 {
		panic("no empty cells and no winner: hex admits no draws")
	}
	if hint != noMove {
		moves = frontload(moves, hint)
	}

	bestScore := -Inf
	bestMove := noMove
	for _, move := range moves {
		score, err := s.searchMove(move, color, alpha, beta, depth)
		if err != nil {
			// Abort: partial work at this node is discarded.
			return 0, noMove, err
		}
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			s.stats.Cuts++
			break
		}
	}
	if bestMove == noMove {
		panic("search returned no move on an undecided board")
	}

	if s.table != nil {
		s.table.Store(depth, s.board.Encode(), bestMove, bestScore)
	}
	return bestScore, bestMove, nil
}

// searchMove plays move for color, recurses for the opponent, and undoes the
// move on every exit path, abort included.
func (s *AlphaBeta) searchMove(move game.Coord, color game.Color, alpha, beta, depth int) (int, error) {
	if !s.board.Place(move, color) {
		panic(fmt.Sprintf("enumerated move %v is not legal", move))
	}
	defer s.board.Remove(move)

	score, _, err := s.negamax(color.Opponent(), -beta, -alpha, depth-1)
	if err != nil {
		return 0, err
	}
	return -score, nil
}

// frontload moves hint to the front of moves, keeping the rest in order.
func frontload(moves []game.Coord, hint game.Coord) []game.Coord {
	for i, move := range moves {
		if move != hint {
			continue
		}
		ordered := make([]game.Coord, 0, len(moves))
		ordered = append(ordered, hint)
		ordered = append(ordered, moves[:i]...)
		return append(ordered, moves[i+1:]...)
	}
	return moves
}
