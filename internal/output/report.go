// Package output renders positions and engine results as text, JSON, SVG
// or FEN.
package output

import (
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Report is everything the front end knows about one position.
type Report struct {
	Board *engine.Board

	// Moves are the side to move's playable moves, when listed.
	Moves []engine.Move

	// Engine is the search result, when a search was run.
	Engine *search.Result
}

// NewReport creates a report for board. With listMoves set, the moves the
// side to move can actually play are collected in legal-move order.
func NewReport(board *engine.Board, listMoves bool) *Report {
	r := &Report{Board: board}
	if listMoves {
		r.Moves = PlayableMoves(board)
	}
	return r
}

// WithEngine attaches a search result to the report.
func (r *Report) WithEngine(result search.Result) *Report {
	r.Engine = &result
	return r
}

// PlayableMoves returns the side to move's legal moves that MakeMove
// accepts.
func PlayableMoves(board *engine.Board) []engine.Move {
	player := board.CurrentPlayer()
	var moves []engine.Move
	for _, move := range player.LegalMoves() {
		if player.MakeMove(move).Status.IsDone() {
			moves = append(moves, move)
		}
	}
	return moves
}

// statusLine describes the position from the side to move's perspective.
func statusLine(board *engine.Board) string {
	if board.CurrentPlayer().IsInStaleMate() {
		return "Stalemate"
	}
	return board.GameStatusMessage()
}
