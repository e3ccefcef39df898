package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hexai/engine"
	"hexai/player"
	"hexai/searcher"
)

func main() {
	p1 := flag.String("p1", "human", "first player: human, alphabeta or mcts")
	p2 := flag.String("p2", "alphabeta", "second player: human, alphabeta or mcts")
	size := flag.Int("size", 11, "board size")
	begin := flag.Int("begin", 1, "which player starts (1 or 2); the starter takes blue")
	depth := flag.Int("depth", 3, "alpha-beta search depth")
	budget := flag.Duration("time", 500*time.Millisecond, "per-move time budget")
	deepen := flag.Bool("deepen", false, "alpha-beta: iterative deepening within the time budget")
	table := flag.Bool("tt", false, "alpha-beta: cache searched positions in a transposition table")
	evaluation := flag.String("eval", searcher.EvalDistance, "alpha-beta board evaluation: distance or random")
	iterations := flag.Int("iterations", 100000, "mcts: maximum rollouts per move")
	seed := flag.Uint64("seed", 42, "seed for all randomized play")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *begin != 1 && *begin != 2 {
		fmt.Fprintln(os.Stderr, "-begin must be 1 or 2")
		os.Exit(2)
	}

	cfg := playerConfig{
		depth:      *depth,
		budget:     *budget,
		deepen:     *deepen,
		table:      *table,
		evaluation: *evaluation,
		iterations: *iterations,
	}
	first, err := buildPlayer(*p1, "player1", *seed, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	second, err := buildPlayer(*p2, "player2", *seed+1, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	e, err := engine.Local(*size, first, second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	verbosity := 2
	if *debug {
		verbosity = 3
	}
	e.Play(*begin-1, nil, verbosity)
}

type playerConfig struct {
	depth      int
	budget     time.Duration
	deepen     bool
	table      bool
	evaluation string
	iterations int
}

func buildPlayer(kind, name string, seed uint64, cfg playerConfig) (player.Player, error) {
	switch kind {
	case "human":
		return player.NewHuman(name, os.Stdin, os.Stdout), nil
	case "alphabeta":
		options := []searcher.AlphaBetaOption{
			searcher.WithMaxDepth(cfg.depth),
			searcher.WithMaxTime(cfg.budget),
			searcher.WithEvaluation(cfg.evaluation),
		}
		if cfg.deepen {
			options = append(options, searcher.WithIterativeDeepening())
		}
		if cfg.table {
			options = append(options, searcher.WithTable())
		}
		return player.NewAlphaBeta(name, seed, options...)
	case "mcts":
		return player.NewMCTS(name, seed,
			searcher.WithDuration(cfg.budget),
			searcher.WithIterations(cfg.iterations))
	default:
		return nil, fmt.Errorf("unknown player type %q: want human, alphabeta or mcts", kind)
	}
}
