package searcher

import "hexai/game"

// Hit classifies a transposition table lookup.
type Hit int

const (
	// Miss means the position has never been stored.
	Miss Hit = iota
	// PartialHit means the position is known, but not at the requested
	// depth. The returned move is a move-ordering hint; the score is not
	// authoritative.
	PartialHit
	// ExactHit means the position is stored at exactly the requested depth.
	ExactHit
)

type tableEntry struct {
	move  game.Coord
	score int
}

// Table caches the best move and score per position encoding and search
// depth. Several depths coexist per position and entries are never evicted;
// Reset clears everything at the start of a new game.
//
// The table grows without bound over one game. Acceptable for the board
// sizes in play, but it is a latent resource risk on long games.
type Table struct {
	moves map[string]map[int]tableEntry
}

func NewTable() *Table {
	return &Table{moves: make(map[string]map[int]tableEntry)}
}

// Store inserts or overwrites the entry for (key, depth). Entries at other
// depths for the same key are kept.
func (t *Table) Store(depth int, key string, move game.Coord, score int) {
	byDepth, ok := t.moves[key]
	if !ok {
		byDepth = make(map[int]tableEntry)
		t.moves[key] = byDepth
	}
	byDepth[depth] = tableEntry{move: move, score: score}
}

// Lookup returns the entry for (key, depth). On a PartialHit the entry
// stored at the deepest available depth is returned instead.
func (t *Table) Lookup(depth int, key string) (Hit, game.Coord, int) {
	byDepth, ok := t.moves[key]
	if !ok || len(byDepth) == 0 {
		return Miss, game.Coord{}, 0
	}

	if entry, ok := byDepth[depth]; ok {
		return ExactHit, entry.move, entry.score
	}

	deepest := -1
	for d := range byDepth {
		if d > deepest {
			deepest = d
		}
	}
	entry := byDepth[deepest]
	return PartialHit, entry.move, entry.score
}

// Reset drops all entries.
func (t *Table) Reset() {
	t.moves = make(map[string]map[int]tableEntry)
}

// Len returns the number of distinct positions stored.
func (t *Table) Len() int {
	return len(t.moves)
}
