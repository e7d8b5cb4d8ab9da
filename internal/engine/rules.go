package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// HasInsufficientMaterial checks if neither side can possibly checkmate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
//
// It is reported alongside the game status; it does not end the game.
func HasInsufficientMaterial(board *Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, piece := range board.Pieces(chess.White) {
		switch piece.Type() {
		case chess.King:
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		default:
			whitePieces = append(whitePieces, piece.Type())
			if piece.Type() == chess.Bishop {
				whiteBishopOnLight = isLightSquare(piece.Position())
			}
		}
	}
	for _, piece := range board.Pieces(chess.Black) {
		switch piece.Type() {
		case chess.King:
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		default:
			blackPieces = append(blackPieces, piece.Type())
			if piece.Type() == chess.Bishop {
				blackBishopOnLight = isLightSquare(piece.Position())
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare reports whether coordinate is a light square. a8 is light.
func isLightSquare(coordinate int) bool {
	return (chess.Row(coordinate)+chess.Column(coordinate))%2 == 0
}
