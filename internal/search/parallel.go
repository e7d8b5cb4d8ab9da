package search

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Progress reports one finished root move.
type Progress struct {
	Move      engine.Move
	Score     int
	Nodes     uint64
	Completed int
	Total     int
}

// Result is the outcome of SearchContext.
type Result struct {
	Move      engine.Move
	Score     int
	Depth     int
	Nodes     uint64
	Completed int  // root moves fully searched
	Total     int  // root moves accepted by MakeMove
	Complete  bool // every root move was searched
}

type options struct {
	depth    int
	workers  int
	progress func(Progress)
}

// Option configures SearchContext.
type Option func(*options)

// WithDepth sets the search depth in plies. Values below 1 are treated as 1.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

// WithWorkers sets how many root moves are searched concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithProgress registers a callback invoked once per finished root move.
// It runs on the caller's goroutine.
func WithProgress(fn func(Progress)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// SearchContext scores root moves on a worker pool and returns the same
// choice Search would make. When ctx is cancelled the best move among the
// roots searched so far is returned with Complete set to false; if none
// finished, the first root move is returned.
func SearchContext(ctx context.Context, board *engine.Board, opts ...Option) (Result, error) {
	o := options{depth: DefaultDepth, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	o.depth = maxOf(o.depth, 1)

	roots := rootTransitions(board)
	if len(roots) == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoLegalMove, "%s to move", board.CurrentPlayer().Alliance())
	}

	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		s := &searcher{ctx: ctx}
		value, err := s.minValue(item.Board, o.depth-1, negInf, posInf)
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Score: value + captureBonus(item.Move),
			Nodes: s.nodes,
			Error: err,
		}
	}, worker.WithWorkers(o.workers), worker.WithBufferSize(len(roots)))
	pool.Start()

	for i, transition := range roots {
		pool.Submit(worker.WorkItem{Move: transition.Move, Board: transition.Board, Index: i})
	}
	go pool.Close()

	results := make([]worker.ProcessResult, len(roots))
	finished := make([]bool, len(roots))
	result := Result{Depth: o.depth, Total: len(roots)}
	for res := range pool.Results() {
		result.Nodes += res.Nodes
		if res.Error != nil {
			pool.Stop()
			continue
		}
		results[res.Index] = res
		finished[res.Index] = true
		result.Completed++
		if o.progress != nil {
			o.progress(Progress{
				Move:      res.Move,
				Score:     res.Score,
				Nodes:     res.Nodes,
				Completed: result.Completed,
				Total:     result.Total,
			})
		}
	}

	found := false
	for i, res := range results {
		if !finished[i] {
			continue
		}
		if !found || res.Score > result.Score {
			result.Move = res.Move
			result.Score = res.Score
			found = true
		}
	}
	if !found {
		result.Move = roots[0].Move
	}
	result.Complete = result.Completed == result.Total
	return result, nil
}

// rootTransitions returns the boards reached by every root move that
// MakeMove accepts, in legal-move order.
func rootTransitions(board *engine.Board) []engine.MoveTransition {
	player := board.CurrentPlayer()
	var roots []engine.MoveTransition
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if transition.Status.IsDone() {
			roots = append(roots, transition)
		}
	}
	return roots
}
