package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Standard king and rook squares used to map castling rights onto the
// pieces' first-move flags.
var (
	whiteKingHome  = chess.MustParseSquare("e1")
	blackKingHome  = chess.MustParseSquare("e8")
	castleRookHome = map[rune]int{
		'K': chess.MustParseSquare("h1"),
		'Q': chess.MustParseSquare("a1"),
		'k': chess.MustParseSquare("h8"),
		'q': chess.MustParseSquare("a8"),
	}
)

// NewBoardFromFEN creates a board from a FEN string. Castling rights are
// carried by the first-move flags of the king and rooks; the en-passant
// target square becomes the board's en-passant pawn. The halfmove clock and
// fullmove number are accepted but not tracked.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	placement, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	if err := parseCastlingRights(placement, parts); err != nil {
		return nil, err
	}

	builder := NewBuilder().SetMoveMaker(toMove)
	kings := map[chess.Alliance]int{}
	for _, piece := range placement {
		if piece.Type() == chess.King {
			kings[piece.Alliance()]++
		}
		builder.SetPiece(piece)
	}
	for _, alliance := range []chess.Alliance{chess.White, chess.Black} {
		if kings[alliance] != 1 {
			return nil, fmt.Errorf("%d %s kings: %w", kings[alliance], alliance, errors.ErrInvalidFEN)
		}
	}

	if pawn, ok := parseEnPassant(placement, toMove, parts); ok {
		builder.SetEnPassantPawn(pawn)
	}
	return builder.Build(), nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns on their starting row and all kings, knights, bishops and queens
// are marked unmoved; rooks are marked unmoved only by castling rights.
func parsePiecePositions(positions string) (map[int]chess.Piece, error) {
	placement := make(map[int]chess.Piece, 32)
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.NumTilesPerRow {
				return nil, fmt.Errorf("row %d has %d columns: %w", row+1, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			if c > unicode.MaxASCII {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			kind := chess.PieceTypeFromLetter(byte(c))
			if kind == chess.NoPiece {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.NumTilesPerRow || row >= chess.NumTilesPerRow {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			alliance := chess.White
			if unicode.IsLower(c) {
				alliance = chess.Black
			}

			coord := chess.Coordinate(row, col)
			switch {
			case kind == chess.Rook:
				placement[coord] = chess.NewMovedPiece(kind, alliance, coord)
			case kind == chess.Pawn && row != alliance.PawnStartRow():
				placement[coord] = chess.NewMovedPiece(kind, alliance, coord)
			default:
				placement[coord] = chess.NewPiece(kind, alliance, coord)
			}
			col++
		}
		if col > chess.NumTilesPerRow {
			return nil, fmt.Errorf("row %d overflows: %w", row+1, errors.ErrInvalidFEN)
		}
	}
	if row != chess.NumTilesPerRow-1 || col != chess.NumTilesPerRow {
		return nil, fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	return placement, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Alliance, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights applies the castling availability field: a right
// keeps the king and the matching corner rook unmoved. Kings without any
// right are marked as moved.
func parseCastlingRights(placement map[int]chess.Piece, parts []string) error {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	kingRights := map[chess.Alliance]bool{}
	if rights != "-" {
		for _, c := range rights {
			rookHome, ok := castleRookHome[c]
			if !ok {
				return fmt.Errorf("invalid castling right %c: %w", c, errors.ErrInvalidFEN)
			}
			alliance := chess.White
			kingHome := whiteKingHome
			if unicode.IsLower(c) {
				alliance = chess.Black
				kingHome = blackKingHome
			}
			king, hasKing := placement[kingHome]
			rook, hasRook := placement[rookHome]
			if !hasKing || king != chess.NewPiece(chess.King, alliance, kingHome) ||
				!hasRook || rook.Type() != chess.Rook || rook.Alliance() != alliance {
				continue
			}
			placement[rookHome] = chess.NewPiece(chess.Rook, alliance, rookHome)
			kingRights[alliance] = true
		}
	}

	for coord, piece := range placement {
		if piece.Type() == chess.King && !kingRights[piece.Alliance()] {
			placement[coord] = piece.MovedTo(coord)
		}
	}
	return nil
}

// parseEnPassant maps the en passant target square to the pawn that just
// jumped over it. Squares with no such pawn are ignored.
func parseEnPassant(placement map[int]chess.Piece, toMove chess.Alliance, parts []string) (chess.Piece, bool) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.Piece{}, false
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.Piece{}, false
	}
	jumper := toMove.Opposite()
	pawnAt := target + jumper.Direction()*chess.NumTilesPerRow
	pawn, ok := placement[pawnAt]
	if !ok || pawn.Type() != chess.Pawn || pawn.Alliance() != jumper {
		return chess.Piece{}, false
	}
	return pawn, true
}

// BoardToFEN converts a board to a FEN string. The clocks are always
// written as "0 1".
func BoardToFEN(board *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *Board) {
	for row := 0; row < chess.NumTilesPerRow; row++ {
		emptyCount := 0
		for col := 0; col < chess.NumTilesPerRow; col++ {
			tile := board.Tile(chess.Coordinate(row, col))
			if !tile.IsOccupied() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(tile.Piece().Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.NumTilesPerRow-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *Board) {
	if board.nextMoveMaker == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability derived from the
// static castle candidates of both kings.
func writeCastlingRights(sb *strings.Builder, board *Board) {
	hasCastling := false
	for _, c := range "KQkq" {
		alliance := chess.White
		kingHome := whiteKingHome
		if unicode.IsLower(c) {
			alliance = chess.Black
			kingHome = blackKingHome
		}
		king := board.Tile(kingHome).Piece()
		rook := board.Tile(castleRookHome[c]).Piece()
		if king == chess.NewPiece(chess.King, alliance, kingHome) &&
			rook == chess.NewPiece(chess.Rook, alliance, castleRookHome[c]) {
			sb.WriteRune(c)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *Board) {
	pawn, ok := board.EnPassantPawn()
	if !ok {
		sb.WriteByte('-')
		return
	}
	target := pawn.Position() + pawn.Alliance().OppositeDirection()*chess.NumTilesPerRow
	sb.WriteString(chess.SquareName(target))
}
