// Package display renders boards for a terminal. It is a consumer of the
// game core, not part of it.
package display

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"hexai/game"
)

var profile = termenv.ColorProfile()

func blue(s string) string {
	return termenv.String(s).Foreground(profile.Color("4")).String()
}

func red(s string) string {
	return termenv.String(s).Foreground(profile.Color("1")).String()
}

// Render draws the board as a rhombus: each row shifts right by one so the
// hexagonal adjacency reads correctly. Blue owns the slashed side borders,
// Red the dashed top and bottom.
func Render(b *game.Board) string {
	n := b.Size()
	var sb strings.Builder

	sb.WriteString("   ")
	for x := 0; x < n; x++ {
		sb.WriteString(fmt.Sprintf("%c ", 'a'+x))
	}
	sb.WriteString("\n  " + red(strings.Repeat("-", n*2+2)) + "\n")

	for y := 0; y < n; y++ {
		sb.WriteString(strings.Repeat(" ", y))
		sb.WriteString(fmt.Sprintf("%d %s", y, blue("\\ ")))
		for x := 0; x < n; x++ {
			switch b.At(game.Coord{X: x, Y: y}) {
			case game.Blue:
				sb.WriteString(blue("B "))
			case game.Red:
				sb.WriteString(red("R "))
			default:
				sb.WriteString("- ")
			}
		}
		sb.WriteString(blue("\\ ") + fmt.Sprintf("%d\n", y))
	}

	sb.WriteString(strings.Repeat(" ", n+2))
	sb.WriteString(red(strings.Repeat("-", n*2+2)) + "\n")
	sb.WriteString(strings.Repeat(" ", n+4))
	for x := 0; x < n; x++ {
		sb.WriteString(fmt.Sprintf("%c ", 'a'+x))
	}
	sb.WriteString("\n")
	return sb.String()
}

// RenderDistances overlays color's relaxed path-cost field on the board
// layout. Unreachable cells print as x. Debugging aid for the evaluator.
func RenderDistances(b *game.Board, color game.Color) string {
	n := b.Size()
	field := game.DistanceField(b, color)
	var sb strings.Builder

	for y := 0; y < n; y++ {
		sb.WriteString(strings.Repeat(" ", y))
		for x := 0; x < n; x++ {
			c := game.Coord{X: x, Y: y}
			cell := "x "
			if score := field[y*n+x]; score < game.Lose {
				cell = fmt.Sprintf("%d ", score)
			}
			switch b.At(c) {
			case game.Blue:
				sb.WriteString(blue(cell))
			case game.Red:
				sb.WriteString(red(cell))
			default:
				sb.WriteString(cell)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
