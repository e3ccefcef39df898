// Package engine runs complete games between two players on a shared live
// board.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"hexai/display"
	"hexai/game"
	"hexai/player"
)

// Engine owns one live board and two players. The same engine can run many
// games; Prepare rebuilds the board and rebinds the players each time.
type Engine struct {
	Board   *game.Board
	Players [2]player.Player
	size    int
}

// Local builds an engine for a size x size board. Board size is validated
// here, before any game starts.
func Local(size int, p1, p2 player.Player) (*Engine, error) {
	board, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Board:   board,
		Players: [2]player.Player{p1, p2},
		size:    size,
	}, nil
}

// Prepare starts a fresh game: new board, player reset, color assignment.
// The starting player takes Blue. An optional opening stone is placed for
// Red before play begins; experiments use it to vary starting positions.
func (e *Engine) Prepare(start int, opening *game.Coord) {
	board, err := game.NewBoard(e.size)
	if err != nil {
		panic(err)
	}
	e.Board = board

	if opening != nil {
		if !board.Place(*opening, game.Red) {
			panic(fmt.Sprintf("opening stone %v is not legal", *opening))
		}
	}

	for i, p := range e.Players {
		p.Reset()
		color := game.Red
		if i == start {
			color = game.Blue
		}
		p.SetBoardAndColor(board, color)
	}
}

// Play prepares and runs one game, returning the index of the winner.
func (e *Engine) Play(start int, opening *game.Coord, verbosity int) int {
	e.Prepare(start, opening)
	return e.run(start, verbosity)
}

// run alternates turns until the side that just moved owns a winning
// connection.
func (e *Engine) run(start int, verbosity int) int {
	current := start
	for turn := 1; ; turn++ {
		if verbosity >= 2 {
			fmt.Printf("----- turn %d -----\n%s\n", turn, display.Render(e.Board))
		}

		p := e.Players[current]
		p.DoTurn(verbosity)

		if e.Board.CheckWin(p.Color()) {
			log.Info().
				Str("winner", p.Name()).
				Stringer("color", p.Color()).
				Int("turns", turn).
				Msg("game over")
			if verbosity >= 1 {
				fmt.Printf("%s\n%s (%s) wins after %d turns\n",
					display.Render(e.Board), p.Name(), p.Color(), turn)
			}
			return current
		}
		if e.Board.IsFull() {
			panic("full board with no winner: hex admits no draws")
		}

		current = 1 - current
	}
}
