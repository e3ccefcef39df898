package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hexai/game"
)

// forcedWinBoard returns a 3x3 position where Blue completes a left-right
// connection by playing (2,0) or (2,1), with Blue to move.
func forcedWinBoard(t *testing.T) *game.Board {
	t.Helper()
	b, err := game.NewBoard(3)
	require.NoError(t, err)
	require.True(t, b.Place(game.Coord{X: 0, Y: 1}, game.Blue))
	require.True(t, b.Place(game.Coord{X: 1, Y: 1}, game.Blue))
	require.True(t, b.Place(game.Coord{X: 1, Y: 0}, game.Red))
	require.True(t, b.Place(game.Coord{X: 2, Y: 2}, game.Red))
	return b
}

func TestNewAlphaBeta(t *testing.T) {
	t.Run("rejects an unknown evaluation", func(t *testing.T) {
		_, err := NewAlphaBeta(nil, WithEvaluation("tarot"))
		require.Error(t, err)
	})

	t.Run("accepts the known evaluations", func(t *testing.T) {
		for _, name := range []string{EvalDistance, EvalRandom} {
			_, err := NewAlphaBeta(nil, WithEvaluation(name))
			require.NoError(t, err)
		}
	})
}

func TestFindMoveForcedWin(t *testing.T) {
	b := forcedWinBoard(t)

	for _, depth := range []int{1, 2, 3} {
		s, err := NewAlphaBeta(nil, WithMaxDepth(depth))
		require.NoError(t, err)

		move, score := s.FindMove(b, game.Blue)
		require.GreaterOrEqual(t, score, game.Lose,
			"depth %d should prove the win", depth)

		require.True(t, b.Place(move, game.Blue))
		require.True(t, b.CheckWin(game.Blue), "move %v should realize the win", move)
		b.Remove(move)
	}
}

func TestFindMoveRestoresBoard(t *testing.T) {
	t.Run("fixed depth", func(t *testing.T) {
		b := forcedWinBoard(t)
		before := b.Encode()
		s, err := NewAlphaBeta(nil, WithMaxDepth(3), WithTable())
		require.NoError(t, err)

		s.FindMove(b, game.Blue)
		require.Equal(t, before, b.Encode())
	})

	t.Run("iterative deepening with an expiring budget", func(t *testing.T) {
		b := forcedWinBoard(t)
		before := b.Encode()
		s, err := NewAlphaBeta(nil,
			WithIterativeDeepening(), WithMaxTime(2*time.Millisecond))
		require.NoError(t, err)

		s.FindMove(b, game.Blue)
		require.Equal(t, before, b.Encode())
	})
}

func TestDeepenFallbackMove(t *testing.T) {
	// A budget that is already spent at entry must still yield a legal move:
	// the first empty cell.
	b := forcedWinBoard(t)
	s, err := NewAlphaBeta(nil,
		WithIterativeDeepening(), WithMaxTime(time.Nanosecond))
	require.NoError(t, err)

	move, _ := s.FindMove(b, game.Blue)
	require.Equal(t, b.EmptyCells()[0], move)
	require.True(t, b.IsEmpty(move))
}

func TestDeepenStopsOnDecidedScore(t *testing.T) {
	b := forcedWinBoard(t)
	s, err := NewAlphaBeta(nil,
		WithIterativeDeepening(), WithMaxTime(time.Minute))
	require.NoError(t, err)

	start := time.Now()
	move, score := s.FindMove(b, game.Blue)
	require.GreaterOrEqual(t, score, game.Lose)
	require.True(t, b.Place(move, game.Blue))
	require.True(t, b.CheckWin(game.Blue))
	b.Remove(move)
	require.Less(t, time.Since(start), 30*time.Second,
		"a proven win should stop deepening long before the budget")
}

// referenceNegamax is a plain full-window negamax without pruning, cache, or
// deadline. Move ordering matches the searcher's row-major enumeration.
func referenceNegamax(b *game.Board, color game.Color, depth int) (int, game.Coord) {
	if depth <= 0 || b.CheckWin(color.Opponent()) {
		return game.EvaluateDistance(b, color), noMove
	}
	bestScore := -Inf
	bestMove := noMove
	for _, move := range b.EmptyCells() {
		b.Place(move, color)
		score, _ := referenceNegamax(b, color.Opponent(), depth-1)
		b.Remove(move)
		if -score > bestScore {
			bestScore = -score
			bestMove = move
		}
	}
	return bestScore, bestMove
}

func TestPrunedSearchMatchesExhaustive(t *testing.T) {
	// Every position reachable in at most two plies on a 3x3 board, searched
	// at depth 3 with and without pruning, must agree on (move, score).
	const depth = 3

	positions := []*game.Board{}
	empty, _ := game.NewBoard(3)
	positions = append(positions, empty)
	for _, first := range empty.EmptyCells() {
		b1 := empty.Clone()
		b1.Place(first, game.Blue)
		positions = append(positions, b1)
		for _, second := range b1.EmptyCells() {
			b2 := b1.Clone()
			b2.Place(second, game.Red)
			positions = append(positions, b2)
		}
	}

	for _, b := range positions {
		toMove := game.Blue // Blue opened, so Red is to move after odd plies
		if (9-len(b.EmptyCells()))%2 == 1 {
			toMove = game.Red
		}

		s, err := NewAlphaBeta(nil, WithMaxDepth(depth))
		require.NoError(t, err)
		gotMove, gotScore := s.FindMove(b, toMove)

		wantScore, wantMove := referenceNegamax(b, toMove, depth)
		require.Equal(t, wantMove, gotMove, "position %q", b.Encode())
		require.Equal(t, wantScore, gotScore, "position %q", b.Encode())
	}
}

func TestTableShortCircuitsSearch(t *testing.T) {
	// An exact-depth hit is authoritative: the search must return the cached
	// pair without recursing.
	b := forcedWinBoard(t)
	s, err := NewAlphaBeta(nil, WithMaxDepth(2), WithTable())
	require.NoError(t, err)

	planted := game.Coord{X: 0, Y: 2}
	s.Table().Store(2, b.Encode(), planted, 777)

	move, score := s.FindMove(b, game.Blue)
	require.Equal(t, planted, move)
	require.Equal(t, 777, score)
	require.Equal(t, 1, s.Stats().TTExactHits)
	require.Zero(t, s.Stats().Nodes, "exact hit should not expand anything")
}

func TestTableHintDoesNotReplaceSearch(t *testing.T) {
	// A shallower entry only reorders moves; the search must still find the
	// true best move even when the hint is bad.
	b := forcedWinBoard(t)
	s, err := NewAlphaBeta(nil, WithMaxDepth(1), WithTable())
	require.NoError(t, err)

	badHint := game.Coord{X: 0, Y: 0}
	s.Table().Store(3, b.Encode(), badHint, 777)

	move, score := s.FindMove(b, game.Blue)
	require.GreaterOrEqual(t, score, game.Lose)
	require.True(t, b.Place(move, game.Blue))
	require.True(t, b.CheckWin(game.Blue))
	b.Remove(move)
	require.Equal(t, 1, s.Stats().TTPartialHits)
}

func TestTableEquivalence(t *testing.T) {
	// At depth 2 a fresh search stores leaf-free entries only, so the cached
	// run must reproduce the uncached result exactly, visiting no more nodes.
	b := forcedWinBoard(t)

	plain, err := NewAlphaBeta(nil, WithMaxDepth(2))
	require.NoError(t, err)
	cached, err := NewAlphaBeta(nil, WithMaxDepth(2), WithTable())
	require.NoError(t, err)

	wantMove, wantScore := plain.FindMove(b, game.Blue)
	gotMove, gotScore := cached.FindMove(b, game.Blue)

	require.Equal(t, wantMove, gotMove)
	require.Equal(t, wantScore, gotScore)
	require.LessOrEqual(t, cached.Stats().Nodes, plain.Stats().Nodes)
}

func TestTableCarriesAcrossSearches(t *testing.T) {
	// The table survives between FindMove calls, so repeating a search on the
	// same position answers from the stored root entry without expanding
	// anything. Within a game this is what makes later turns cheaper.
	b := forcedWinBoard(t)
	s, err := NewAlphaBeta(nil, WithMaxDepth(2), WithTable())
	require.NoError(t, err)

	wantMove, wantScore := s.FindMove(b, game.Blue)
	require.Positive(t, s.Table().Len())

	gotMove, gotScore := s.FindMove(b, game.Blue)
	require.Equal(t, wantMove, gotMove)
	require.Equal(t, wantScore, gotScore)
	require.Equal(t, 1, s.Stats().TTExactHits)
	require.Zero(t, s.Stats().Nodes, "the repeat search should be answered from the table")
}

func TestResetClearsTable(t *testing.T) {
	b := forcedWinBoard(t)
	s, err := NewAlphaBeta(nil, WithMaxDepth(2), WithTable())
	require.NoError(t, err)

	s.FindMove(b, game.Blue)
	require.Positive(t, s.Table().Len())

	s.Reset()
	require.Zero(t, s.Table().Len())
}
