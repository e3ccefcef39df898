package game

import "fmt"

// MinBoardSize and MaxBoardSize bound the playable board sizes.
const (
	MinBoardSize = 2
	MaxBoardSize = 25
)

type Color uint8

const (
	Empty Color = iota
	Blue        // connects the left and right edges
	Red         // connects the top and bottom edges
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return "Empty"
	}
}

// Opponent returns the other player color.
func (c Color) Opponent() Color {
	if c == Blue {
		return Red
	}
	return Blue
}

// Coord is a cell position with 0 <= X,Y < board size.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move pairs a cell with the color placed there.
type Move struct {
	Cell  Coord
	Color Color
}

// Board is an N x N hex grid of cell occupancy. It holds no move history:
// two boards with the same cells are the same position.
type Board struct {
	size  int
	cells []Color
}

// NewBoard returns an all-empty board. Size outside [MinBoardSize,
// MaxBoardSize] is a configuration error.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("board size %d outside [%d,%d]", size, MinBoardSize, MaxBoardSize)
	}
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) index(c Coord) int {
	return c.Y*b.size + c.X
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// At returns the occupant of c.
func (b *Board) At(c Coord) Color {
	return b.cells[b.index(c)]
}

func (b *Board) IsEmpty(c Coord) bool {
	return b.cells[b.index(c)] == Empty
}

func (b *Board) IsColor(c Coord, color Color) bool {
	return b.cells[b.index(c)] == color
}

// Place puts a piece of the given color on c. It fails without mutating
// state if c is out of bounds or occupied.
func (b *Board) Place(c Coord, color Color) bool {
	if !b.InBounds(c) || b.cells[b.index(c)] != Empty {
		return false
	}
	b.cells[b.index(c)] = color
	return true
}

// Remove empties c unconditionally. Used to undo a Place during search.
func (b *Board) Remove(c Coord) {
	b.cells[b.index(c)] = Empty
}

// Neighbors returns the in-bounds hexagonal neighbors of c: between 2 at a
// corner and 6 in the interior.
func (b *Board) Neighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 6)
	for _, d := range [6]Coord{
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 1, Y: -1},
		{X: 0, Y: 1}, {X: 0, Y: -1},
	} {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if b.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// StartEdge returns the i-th cell of color's starting edge: the left column
// for Blue, the top row for Red.
func (b *Board) StartEdge(color Color, i int) Coord {
	if color == Blue {
		return Coord{X: 0, Y: i}
	}
	return Coord{X: i, Y: 0}
}

// OnGoalEdge reports whether c lies on color's connection target edge: the
// right column for Blue, the bottom row for Red.
func (b *Board) OnGoalEdge(color Color, c Coord) bool {
	if color == Blue {
		return c.X == b.size-1
	}
	return c.Y == b.size-1
}

// CheckWin reports whether color owns an unbroken chain between its two
// edges. Traversal state is local to one call: the board mutates between
// calls, so nothing is cached.
func (b *Board) CheckWin(color Color) bool {
	visited := make([]bool, len(b.cells))
	for i := 0; i < b.size; i++ {
		if b.traverse(color, b.StartEdge(color, i), visited) {
			return true
		}
	}
	return false
}

// traverse walks same-colored cells depth-first from c until color's goal
// edge is reached or the chain is exhausted.
func (b *Board) traverse(color Color, c Coord, visited []bool) bool {
	if !b.IsColor(c, color) || visited[b.index(c)] {
		return false
	}
	if b.OnGoalEdge(color, c) {
		return true
	}
	visited[b.index(c)] = true
	for _, n := range b.Neighbors(c) {
		if b.traverse(color, n, visited) {
			return true
		}
	}
	return false
}

// EmptyCells returns the empty coordinates in row-major order.
func (b *Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, len(b.cells))
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c := Coord{X: x, Y: y}
			if b.IsEmpty(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Encode serializes the cell contents, row-major, one byte per cell. Equal
// positions encode equal and distinct positions never collide; the encoding
// carries no history and is the transposition key.
func (b *Board) Encode() string {
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte('0' + c)
	}
	return string(buf)
}
