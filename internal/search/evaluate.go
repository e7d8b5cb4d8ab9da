package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Evaluation weights.
const (
	MobilityWeight   = 5
	CheckPenalty     = 50
	CheckMatePenalty = 10000
)

// PieceValue returns the search's material value for a piece type. These
// values are tuned for the evaluator and intentionally differ from
// chess.PieceType.Value.
func PieceValue(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 320
	case chess.Bishop:
		return 330
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	case chess.King:
		return 20000
	default:
		return 0
	}
}

// Evaluate returns the static score of board from White's point of view.
func Evaluate(board *engine.Board) int {
	return scorePlayer(board.WhitePlayer()) - scorePlayer(board.BlackPlayer())
}

func scorePlayer(player *engine.Player) int {
	score := 0
	for _, piece := range player.ActivePieces() {
		score += PieceValue(piece.Type())
	}
	score += len(player.LegalMoves()) * MobilityWeight
	if player.IsInCheck() {
		score -= CheckPenalty
	}
	if player.IsInCheckMate() {
		score -= CheckMatePenalty
	}
	return score
}

// captureBonus rewards a capture with half the captured piece's value.
func captureBonus(move engine.Move) int {
	if captured, ok := move.AttackedPiece(); ok {
		return PieceValue(captured.Type()) / 2
	}
	return 0
}
