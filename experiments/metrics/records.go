// Package metrics defines the experiment record types and their CSV output.
package metrics

import "time"

// GameRecord summarizes one finished match.
type GameRecord struct {
	ID       int
	Size     int
	Starter  string
	Opening  string // empty when no fixed opening stone was used
	Winner   string
	Moves    int
	Duration time.Duration
}

// MoveRecord captures one turn's search effort.
type MoveRecord struct {
	Game          int
	Step          int
	Player        string
	Color         string
	Duration      time.Duration
	Nodes         int
	Cuts          int
	TTExactHits   int
	TTPartialHits int
	Rollouts      int
}
