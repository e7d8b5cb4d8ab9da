// Package engine provides board snapshots, move generation, move execution
// and legality resolution.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board is an immutable position snapshot. It is only created through a
// Builder (or NewStandardBoard / NewBoardFromFEN) and never changes once
// built; making a move always yields a new Board.
type Board struct {
	tiles         [chess.NumTiles]chess.Tile
	whitePieces   []chess.Piece
	blackPieces   []chess.Piece
	whitePlayer   *Player
	blackPlayer   *Player
	nextMoveMaker chess.Alliance
	enPassantPawn chess.Piece
}

// Builder collects piece placements, the side to move and an optional
// en-passant pawn, then freezes them into a Board.
type Builder struct {
	config        map[int]chess.Piece
	nextMoveMaker chess.Alliance
	enPassantPawn chess.Piece
}

// NewBuilder returns an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{
		config:        make(map[int]chess.Piece, chess.NumTiles),
		nextMoveMaker: chess.White,
	}
}

// SetPiece places piece on its own position, replacing any piece there.
// It panics if the piece position is not a valid coordinate.
func (b *Builder) SetPiece(piece chess.Piece) *Builder {
	if !chess.IsValidCoordinate(piece.Position()) {
		panic(errors.Wrapf(errors.ErrInvalidCoordinate, "set piece %s at %d", piece, piece.Position()))
	}
	b.config[piece.Position()] = piece
	return b
}

// SetMoveMaker sets the side to move.
func (b *Builder) SetMoveMaker(alliance chess.Alliance) *Builder {
	b.nextMoveMaker = alliance
	return b
}

// SetEnPassantPawn records the pawn that may be captured en passant on the
// next ply.
func (b *Builder) SetEnPassantPawn(pawn chess.Piece) *Builder {
	b.enPassantPawn = pawn
	return b
}

// Build freezes the builder into a Board. Both players are constructed as
// the final step, once the tiles and piece sets are fixed.
// It panics if either alliance has no king.
func (b *Builder) Build() *Board {
	board := &Board{
		nextMoveMaker: b.nextMoveMaker,
		enPassantPawn: b.enPassantPawn,
	}
	for i := range board.tiles {
		board.tiles[i] = chess.NewTile(i, b.config[i])
	}
	board.whitePieces = activePieces(&board.tiles, chess.White)
	board.blackPieces = activePieces(&board.tiles, chess.Black)

	whiteMoves := board.calculateLegalMoves(board.whitePieces)
	blackMoves := board.calculateLegalMoves(board.blackPieces)

	board.whitePlayer = newPlayer(board, chess.White, whiteMoves, blackMoves)
	board.blackPlayer = newPlayer(board, chess.Black, blackMoves, whiteMoves)
	return board
}

// activePieces scans the tiles for pieces of the given alliance.
func activePieces(tiles *[chess.NumTiles]chess.Tile, alliance chess.Alliance) []chess.Piece {
	pieces := make([]chess.Piece, 0, 16)
	for _, tile := range tiles {
		if tile.IsOccupied() && tile.Piece().Alliance() == alliance {
			pieces = append(pieces, tile.Piece())
		}
	}
	return pieces
}

func (b *Board) calculateLegalMoves(pieces []chess.Piece) []Move {
	moves := make([]Move, 0, 4*len(pieces))
	for _, piece := range pieces {
		moves = append(moves, CalculateLegalMoves(b, piece)...)
	}
	return moves
}

// NewStandardBoard returns the standard 32-piece starting position with
// White to move.
func NewStandardBoard() *Board {
	builder := NewBuilder()
	backRank := []chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for col, kind := range backRank {
		builder.SetPiece(chess.NewPiece(kind, chess.Black, chess.Coordinate(0, col)))
		builder.SetPiece(chess.NewPiece(chess.Pawn, chess.Black, chess.Coordinate(1, col)))
		builder.SetPiece(chess.NewPiece(chess.Pawn, chess.White, chess.Coordinate(6, col)))
		builder.SetPiece(chess.NewPiece(kind, chess.White, chess.Coordinate(7, col)))
	}
	builder.SetMoveMaker(chess.White)
	return builder.Build()
}

// Tile returns the tile at coordinate. It panics on an out-of-range
// coordinate; callers validate with chess.IsValidCoordinate.
func (b *Board) Tile(coordinate int) chess.Tile {
	return b.tiles[coordinate]
}

// WhitePieces returns White's active pieces.
func (b *Board) WhitePieces() []chess.Piece {
	return append([]chess.Piece(nil), b.whitePieces...)
}

// BlackPieces returns Black's active pieces.
func (b *Board) BlackPieces() []chess.Piece {
	return append([]chess.Piece(nil), b.blackPieces...)
}

// Pieces returns the active pieces of alliance.
func (b *Board) Pieces(alliance chess.Alliance) []chess.Piece {
	if alliance == chess.White {
		return b.WhitePieces()
	}
	return b.BlackPieces()
}

func (b *Board) pieces(alliance chess.Alliance) []chess.Piece {
	if alliance == chess.White {
		return b.whitePieces
	}
	return b.blackPieces
}

// WhitePlayer returns the White player of this board.
func (b *Board) WhitePlayer() *Player { return b.whitePlayer }

// BlackPlayer returns the Black player of this board.
func (b *Board) BlackPlayer() *Player { return b.blackPlayer }

// Player returns the player of alliance.
func (b *Board) Player(alliance chess.Alliance) *Player {
	if alliance == chess.White {
		return b.whitePlayer
	}
	return b.blackPlayer
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player {
	return b.Player(b.nextMoveMaker)
}

// EnPassantPawn returns the pawn that may be captured en passant this ply.
func (b *Board) EnPassantPawn() (chess.Piece, bool) {
	return b.enPassantPawn, !b.enPassantPawn.IsZero()
}

// AllLegalMoves returns the union of both players' legal-move lists.
func (b *Board) AllLegalMoves() []Move {
	moves := make([]Move, 0, len(b.whitePlayer.legalMoves)+len(b.blackPlayer.legalMoves))
	moves = append(moves, b.whitePlayer.legalMoves...)
	return append(moves, b.blackPlayer.legalMoves...)
}

// IsKingInCheck reports whether any move of the opponent's legal-move list
// lands on alliance's king.
func (b *Board) IsKingInCheck(alliance chess.Alliance) bool {
	player := b.Player(alliance)
	return isAttacked(player.king.Position(), player.Opponent().legalMoves)
}

// IsCheckMate reports whether alliance is in check and every one of its
// legal moves, once executed, still leaves its king in check. One child
// board is built per candidate move.
func (b *Board) IsCheckMate(alliance chess.Alliance) bool {
	player := b.Player(alliance)
	if !player.IsInCheck() {
		return false
	}
	for _, move := range player.legalMoves {
		if !move.Execute().IsKingInCheck(alliance) {
			return false
		}
	}
	return true
}

// GameStatusMessage describes the position from the side to move's
// perspective: "OK", "Check!" or "Checkmate! Winner: <alliance>".
func (b *Board) GameStatusMessage() string {
	current := b.nextMoveMaker
	if b.IsCheckMate(current) {
		return fmt.Sprintf("Checkmate! Winner: %s", current.Opposite())
	}
	if b.IsKingInCheck(current) {
		return "Check!"
	}
	return "OK"
}

// String renders the board as eight rows of tile letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for i, tile := range b.tiles {
		sb.WriteString(tile.String())
		if (i+1)%chess.NumTilesPerRow == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
