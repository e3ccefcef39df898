// Package experiments runs scripted competitions between players and records
// the results for offline analysis.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"hexai/engine"
	"hexai/experiments/metrics"
	"hexai/game"
	"hexai/player"
	"hexai/searcher"
)

// statsReporter is satisfied by the AI players; human players simply yield no
// per-move search counters.
type statsReporter interface {
	Stats() searcher.Stats
}

// Competition describes one head-to-head series.
type Competition struct {
	Size  int
	Games int
	// Openings is cycled across games; when non-empty, game i starts with
	// Openings[i % len] placed for Red. Leave nil to start from empty boards.
	Openings []game.Coord
}

// Run plays the full series. Starters alternate so neither player keeps the
// first-move advantage. Both the per-game outcomes and the per-move search
// effort are returned for the caller to persist.
func Run(c Competition, p1, p2 player.Player) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	e, err := engine.Local(c.Size, p1, p2)
	if err != nil {
		return nil, nil, err
	}

	games := make([]metrics.GameRecord, 0, c.Games)
	moves := []metrics.MoveRecord{}

	for id := 0; id < c.Games; id++ {
		start := id % 2
		var opening *game.Coord
		openingLabel := ""
		if len(c.Openings) > 0 {
			o := c.Openings[id%len(c.Openings)]
			opening = &o
			openingLabel = o.String()
		}

		record, moveRecords := playGame(e, c.Size, id, start, opening)
		record.Opening = openingLabel
		games = append(games, record)
		moves = append(moves, moveRecords...)

		log.Info().
			Int("game", id).
			Str("starter", e.Players[start].Name()).
			Str("winner", record.Winner).
			Int("moves", record.Moves).
			Dur("took", record.Duration).
			Msg("game finished")
	}
	return games, moves, nil
}

// playGame runs one game turn by turn so search counters can be captured
// after every move, which engine.Play does not expose.
func playGame(e *engine.Engine, size, id, start int, opening *game.Coord) (metrics.GameRecord, []metrics.MoveRecord) {
	e.Prepare(start, opening)

	var moves []metrics.MoveRecord
	gameStart := time.Now()
	current := start
	for step := 1; ; step++ {
		p := e.Players[current]

		turnStart := time.Now()
		p.DoTurn(0)
		elapsed := time.Since(turnStart)

		move := metrics.MoveRecord{
			Game:     id,
			Step:     step,
			Player:   p.Name(),
			Color:    p.Color().String(),
			Duration: elapsed,
		}
		if reporter, ok := p.(statsReporter); ok {
			stats := reporter.Stats()
			move.Nodes = stats.Nodes
			move.Cuts = stats.Cuts
			move.TTExactHits = stats.TTExactHits
			move.TTPartialHits = stats.TTPartialHits
			move.Rollouts = stats.Rollouts
		}
		moves = append(moves, move)

		if e.Board.CheckWin(p.Color()) {
			return metrics.GameRecord{
				ID:       id,
				Size:     size,
				Starter:  e.Players[start].Name(),
				Winner:   p.Name(),
				Moves:    step,
				Duration: time.Since(gameStart),
			}, moves
		}
		current = 1 - current
	}
}
