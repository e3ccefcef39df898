package player

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"hexai/game"
)

// Human reads moves from a terminal-style input stream. Unparsable or
// illegal moves leave the board untouched and trigger a re-prompt.
type Human struct {
	base
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		base: base{name: name},
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (p *Human) Reset() {}

func (p *Human) DoTurn(verbosity int) {
	p.requireGame()
	start := time.Now()

	for {
		fmt.Fprintf(p.out, "%s (%s), enter your move as \"x y\": ", p.name, p.color)
		if !p.in.Scan() {
			panic("input closed before a legal move was entered")
		}

		var move game.Coord
		if _, err := fmt.Sscanf(p.in.Text(), "%d %d", &move.X, &move.Y); err != nil {
			fmt.Fprintln(p.out, "could not read that, use two numbers like: 1 2")
			continue
		}
		if !p.board.Place(move, p.color) {
			fmt.Fprintln(p.out, "that cell is occupied or off the board, try again")
			continue
		}

		p.turns++
		p.turnTime += time.Since(start)
		return
	}
}

var _ Player = (*Human)(nil)
