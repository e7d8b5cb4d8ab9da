// Package search selects moves with a depth-limited minimax search using
// alpha-beta pruning and a static material/mobility evaluator.
package search

import (
	"context"
	"math"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// DefaultDepth is the search depth, in plies, used when none is given.
const DefaultDepth = 3

// Score bounds. They stay well inside int so that adding a capture bonus
// can never overflow.
const (
	negInf = math.MinInt32
	posInf = math.MaxInt32
)

// searcher walks the game tree. A nil-error context never interrupts it.
type searcher struct {
	ctx   context.Context
	nodes uint64
}

// Search returns the best move for the side to move, searching depth plies.
// Each root move is scored as the minimising reply value plus a capture
// bonus, and the highest score wins; ties keep the first move found. ok is
// false only when the side to move has no move that MakeMove accepts.
// Depths below 1 are treated as 1.
func Search(board *engine.Board, depth int) (move engine.Move, ok bool) {
	depth = maxOf(depth, 1)
	s := &searcher{ctx: context.Background()}

	player := board.CurrentPlayer()
	highest := negInf
	for _, candidate := range player.LegalMoves() {
		transition := player.MakeMove(candidate)
		if !transition.Status.IsDone() {
			continue
		}
		value, _ := s.minValue(transition.Board, depth-1, negInf, posInf)
		value += captureBonus(candidate)
		if !ok || value > highest {
			highest = value
			move = candidate
			ok = true
		}
	}
	return move, ok
}

func (s *searcher) maxValue(board *engine.Board, depth, alpha, beta int) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	s.nodes++
	if depth == 0 || isEndGame(board) {
		return Evaluate(board), nil
	}

	player := board.CurrentPlayer()
	highest := negInf
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		value, err := s.minValue(transition.Board, depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		highest = maxOf(highest, value)
		alpha = maxOf(alpha, highest)
		if beta <= alpha {
			break
		}
	}
	return highest, nil
}

func (s *searcher) minValue(board *engine.Board, depth, alpha, beta int) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	s.nodes++
	if depth == 0 || isEndGame(board) {
		return Evaluate(board), nil
	}

	player := board.CurrentPlayer()
	lowest := posInf
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		value, err := s.maxValue(transition.Board, depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		lowest = minOf(lowest, value)
		beta = minOf(beta, lowest)
		if beta <= alpha {
			break
		}
	}
	return lowest, nil
}

// isEndGame reports checkmate or stalemate for the side to move.
func isEndGame(board *engine.Board) bool {
	player := board.CurrentPlayer()
	return player.IsInCheckMate() || player.IsInStaleMate()
}
