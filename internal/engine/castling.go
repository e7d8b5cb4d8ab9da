package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castleCandidates returns the castles allowed by the static rules alone:
// the king has never moved, an unmoved rook of the same alliance stands at
// the fixed offset on the king's row, and every tile between them is empty.
// Square safety is checked by the Player.
func castleCandidates(board *Board, king chess.Piece) []Move {
	if !king.IsFirstMove() {
		return nil
	}
	var castles []Move
	pos := king.Position()

	if rook, ok := castleRook(board, king, pos+3); ok && tilesEmpty(board, pos+1, pos+2) {
		castles = append(castles, newCastle(KingSideCastle, board, king, pos+2, rook, pos+1))
	}
	if rook, ok := castleRook(board, king, pos-4); ok && tilesEmpty(board, pos-3, pos-1) {
		castles = append(castles, newCastle(QueenSideCastle, board, king, pos-2, rook, pos-1))
	}
	return castles
}

// castleRook returns the unmoved friendly rook at coordinate, if any.
func castleRook(board *Board, king chess.Piece, coordinate int) (chess.Piece, bool) {
	if !chess.IsValidCoordinate(coordinate) || chess.Row(coordinate) != chess.Row(king.Position()) {
		return chess.Piece{}, false
	}
	tile := board.Tile(coordinate)
	if !tile.IsOccupied() {
		return chess.Piece{}, false
	}
	rook := tile.Piece()
	if !rook.Type().IsRook() || rook.Alliance() != king.Alliance() || !rook.IsFirstMove() {
		return chess.Piece{}, false
	}
	return rook, true
}

func tilesEmpty(board *Board, from, to int) bool {
	for c := from; c <= to; c++ {
		if board.Tile(c).IsOccupied() {
			return false
		}
	}
	return true
}
