package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexai/game"
	"hexai/player"
	"hexai/searcher"
)

func newAlphaBeta(t *testing.T, name string, depth int, options ...searcher.AlphaBetaOption) *player.AlphaBeta {
	t.Helper()
	options = append(options, searcher.WithMaxDepth(depth))
	p, err := player.NewAlphaBeta(name, 1, options...)
	require.NoError(t, err)
	return p
}

func TestLocal(t *testing.T) {
	t.Run("validates board size at construction", func(t *testing.T) {
		p1 := newAlphaBeta(t, "a", 1)
		p2 := newAlphaBeta(t, "b", 1)
		_, err := Local(1, p1, p2)
		require.Error(t, err)
		_, err = Local(26, p1, p2)
		require.Error(t, err)
	})
}

func TestPrepare(t *testing.T) {
	p1 := newAlphaBeta(t, "a", 1)
	p2 := newAlphaBeta(t, "b", 1)
	e, err := Local(4, p1, p2)
	require.NoError(t, err)

	t.Run("the starting player takes blue", func(t *testing.T) {
		e.Prepare(0, nil)
		require.Equal(t, game.Blue, p1.Color())
		require.Equal(t, game.Red, p2.Color())

		e.Prepare(1, nil)
		require.Equal(t, game.Red, p1.Color())
		require.Equal(t, game.Blue, p2.Color())
	})

	t.Run("an opening stone is placed for red", func(t *testing.T) {
		opening := game.Coord{X: 2, Y: 2}
		e.Prepare(0, &opening)
		require.True(t, e.Board.IsColor(opening, game.Red))
		require.Len(t, e.Board.EmptyCells(), 15)
	})
}

func TestPlayProducesAWinner(t *testing.T) {
	p1 := newAlphaBeta(t, "a", 2)
	p2 := newAlphaBeta(t, "b", 1)
	e, err := Local(3, p1, p2)
	require.NoError(t, err)

	winner := e.Play(0, nil, 0)
	require.Contains(t, []int{0, 1}, winner)
	require.True(t, e.Board.CheckWin(e.Players[winner].Color()))
	require.False(t, e.Board.CheckWin(e.Players[winner].Color().Opponent()))
}

func TestPlayMCTSVersusAlphaBeta(t *testing.T) {
	mc, err := player.NewMCTS("mc", 11,
		searcher.WithoutTimeLimit(), searcher.WithIterations(200))
	require.NoError(t, err)
	ab := newAlphaBeta(t, "ab", 2)
	e, err := Local(4, mc, ab)
	require.NoError(t, err)

	winner := e.Play(0, nil, 0)
	require.True(t, e.Board.CheckWin(e.Players[winner].Color()))
}

func TestDeeperSearchWinsMajority(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end strength comparison in short mode")
	}

	deep := newAlphaBeta(t, "deep", 4)
	shallow := newAlphaBeta(t, "shallow", 1)
	e, err := Local(5, deep, shallow)
	require.NoError(t, err)

	deepWins := 0
	for trial := 0; trial < 5; trial++ {
		start := trial % 2 // deep starts trials 0, 2, 4
		if winner := e.Play(start, nil, 0); winner == 0 {
			deepWins++
		}
	}
	require.GreaterOrEqual(t, deepWins, 3,
		"depth 4 should beat depth 1 in a majority of trials")
}
