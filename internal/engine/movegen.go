package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Candidate offsets and direction vectors, in coordinate units.
var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopVectors = []int{-9, -7, 7, 9}
	rookVectors   = []int{-8, -1, 1, 8}
	queenVectors  = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// CalculateLegalMoves returns the pseudo-legal moves of piece on board:
// moves consistent with the piece's movement pattern and the board
// occupancy, without checking that the mover's king stays safe. Castles
// are added by the Player, not here.
func CalculateLegalMoves(board *Board, piece chess.Piece) []Move {
	switch piece.Type() {
	case chess.Pawn:
		return pawnMoves(board, piece)
	case chess.Knight:
		return jumpMoves(board, piece, knightOffsets, isKnightExclusion)
	case chess.Bishop:
		return slideMoves(board, piece, bishopVectors)
	case chess.Rook:
		return slideMoves(board, piece, rookVectors)
	case chess.Queen:
		return slideMoves(board, piece, queenVectors)
	case chess.King:
		return jumpMoves(board, piece, kingOffsets, isKingExclusion)
	default:
		return nil
	}
}

// jumpMoves generates single-step moves for knights and kings.
func jumpMoves(board *Board, piece chess.Piece, offsets []int, excluded func(int, int) bool) []Move {
	var moves []Move
	from := piece.Position()
	for _, offset := range offsets {
		dest := from + offset
		if !chess.IsValidCoordinate(dest) || excluded(from, offset) {
			continue
		}
		if move, ok := stepTo(board, piece, dest); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// slideMoves walks each ray until the first occupied tile.
func slideMoves(board *Board, piece chess.Piece, vectors []int) []Move {
	var moves []Move
	for _, vector := range vectors {
		at := piece.Position()
		for {
			if isSlideExclusion(at, vector) {
				break
			}
			at += vector
			if !chess.IsValidCoordinate(at) {
				break
			}
			move, ok := stepTo(board, piece, at)
			if ok {
				moves = append(moves, move)
			}
			if board.Tile(at).IsOccupied() {
				break
			}
		}
	}
	return moves
}

// stepTo returns a quiet move onto an empty tile or a capture of an enemy
// piece; ok is false when a friendly piece occupies dest.
func stepTo(board *Board, piece chess.Piece, dest int) (Move, bool) {
	tile := board.Tile(dest)
	if !tile.IsOccupied() {
		return newMove(MajorMove, board, piece, dest), true
	}
	target := tile.Piece()
	if target.Alliance() == piece.Alliance() {
		return Move{}, false
	}
	return newAttack(AttackMove, board, piece, dest, target), true
}

func isKingExclusion(from, offset int) bool {
	return (chess.FirstColumn[from] && (offset == -9 || offset == -1 || offset == 7)) ||
		(chess.EighthColumn[from] && (offset == -7 || offset == 1 || offset == 9))
}

func isKnightExclusion(from, offset int) bool {
	return (chess.FirstColumn[from] && (offset == -17 || offset == -10 || offset == 6 || offset == 15)) ||
		(chess.SecondColumn[from] && (offset == -10 || offset == 6)) ||
		(chess.SeventhColumn[from] && (offset == -6 || offset == 10)) ||
		(chess.EighthColumn[from] && (offset == -15 || offset == -6 || offset == 10 || offset == 17))
}

func isSlideExclusion(from, vector int) bool {
	return (chess.FirstColumn[from] && (vector == -9 || vector == -1 || vector == 7)) ||
		(chess.EighthColumn[from] && (vector == -7 || vector == 1 || vector == 9))
}
