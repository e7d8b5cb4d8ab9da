package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnMoves generates pawn pushes, jumps, captures and en-passant captures.
// Any move landing on the farthest row is wrapped in a promotion.
func pawnMoves(board *Board, pawn chess.Piece) []Move {
	var moves []Move
	alliance := pawn.Alliance()
	from := pawn.Position()
	dir := alliance.Direction()

	forward := from + dir*chess.NumTilesPerRow
	if chess.IsValidCoordinate(forward) && !board.Tile(forward).IsOccupied() {
		moves = append(moves, promoteIfLastRow(newMove(PawnMove, board, pawn, forward)))

		jump := from + 2*dir*chess.NumTilesPerRow
		if pawn.IsFirstMove() && chess.Row(from) == alliance.PawnStartRow() &&
			chess.IsValidCoordinate(jump) && !board.Tile(jump).IsOccupied() {
			moves = append(moves, newMove(PawnJump, board, pawn, jump))
		}
	}

	for _, offset := range []int{7, 9} {
		if isPawnAttackExclusion(from, offset, alliance) {
			continue
		}
		dest := from + dir*offset
		if !chess.IsValidCoordinate(dest) {
			continue
		}
		tile := board.Tile(dest)
		if tile.IsOccupied() {
			if target := tile.Piece(); target.Alliance() != alliance {
				moves = append(moves, promoteIfLastRow(newAttack(PawnAttackMove, board, pawn, dest, target)))
			}
			continue
		}
		if move, ok := enPassantCapture(board, pawn, dest); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// enPassantCapture returns the capture onto the empty tile dest when the
// board's en-passant pawn stands directly beside pawn on dest's file.
func enPassantCapture(board *Board, pawn chess.Piece, dest int) (Move, bool) {
	target, ok := board.EnPassantPawn()
	if !ok || target.Alliance() == pawn.Alliance() {
		return Move{}, false
	}
	beside := dest + pawn.Alliance().OppositeDirection()*chess.NumTilesPerRow
	if target.Position() != beside {
		return Move{}, false
	}
	return newAttack(PawnEnPassantAttack, board, pawn, dest, target), true
}

// isPawnAttackExclusion rejects diagonal offsets that would wrap around the
// board edge. For White (moving up) offset 7 goes one column right and 9
// one column left; for Black it is the other way round.
func isPawnAttackExclusion(from, offset int, alliance chess.Alliance) bool {
	towardsEighth := (offset == 7) == alliance.IsWhite()
	if towardsEighth {
		return chess.EighthColumn[from]
	}
	return chess.FirstColumn[from]
}

func promoteIfLastRow(move Move) Move {
	if chess.Row(move.destination) == move.movedPiece.Alliance().PromotionRow() {
		return newPromotion(move)
	}
	return move
}
