package searcher

// Stats counts the work done by the most recent FindMove call.
type Stats struct {
	Nodes         int // interior nodes expanded by alpha-beta
	Evals         int // leaf evaluations
	Cuts          int // beta cutoffs
	TTExactHits   int // table hits at the requested depth
	TTPartialHits int // table hits at another depth (hint only)
	Rollouts      int // MCTS playouts
}
