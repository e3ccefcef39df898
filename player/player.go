// Package player implements the turn-taking contract consumed by the game
// engine: AI players wrapping the search engines and a terminal-driven
// human player.
package player

import (
	"time"

	"hexai/game"
)

// Player is the contract the game loop drives. A call to DoTurn selects and
// applies exactly one legal move for the assigned color to the live board.
type Player interface {
	Name() string
	// Reset clears per-game state before a new game starts.
	Reset()
	// SetBoardAndColor binds the live board and the assigned color.
	SetBoardAndColor(b *game.Board, color game.Color)
	// DoTurn plays one move. Verbosity 0 is silent; higher values log
	// per-turn diagnostics.
	DoTurn(verbosity int)
	Color() game.Color
}

// base holds what every player shares: identity, the live game binding, and
// lifetime counters.
type base struct {
	name     string
	board    *game.Board
	color    game.Color
	turns    int
	turnTime time.Duration
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Color() game.Color {
	return b.color
}

func (b *base) SetBoardAndColor(board *game.Board, color game.Color) {
	b.board = board
	b.color = color
}

func (b *base) requireGame() {
	if b.board == nil || b.color == game.Empty {
		panic("player is not bound to a game")
	}
}

// Turns returns how many moves this player has made across all games.
func (b *base) Turns() int {
	return b.turns
}

// TurnTime returns the total time spent deciding across all games.
func (b *base) TurnTime() time.Duration {
	return b.turnTime
}
