// Package chess provides the value types shared by the engine: alliances,
// piece types, pieces, tiles and board coordinates.
package chess

// Alliance represents one of the two sides.
type Alliance int

const (
	Black Alliance = iota
	White
)

// String returns the string representation of an alliance.
func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing alliance.
func (a Alliance) Opposite() Alliance {
	if a == White {
		return Black
	}
	return White
}

// IsWhite reports whether a is White.
func (a Alliance) IsWhite() bool { return a == White }

// IsBlack reports whether a is Black.
func (a Alliance) IsBlack() bool { return a == Black }

// Direction returns the row delta of a forward pawn step: White moves
// towards row 0, Black towards row 7.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

// OppositeDirection returns the row delta of a backward step.
func (a Alliance) OppositeDirection() int {
	return -a.Direction()
}

// PawnStartRow returns the row the alliance's pawns start on.
func (a Alliance) PawnStartRow() int {
	if a == White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row for the alliance's pawns.
func (a Alliance) PromotionRow() int {
	if a == White {
		return 0
	}
	return NumTilesPerRow - 1
}

// PieceType is the closed set of chess piece kinds.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the single letter used for the piece type (uppercase).
func (t PieceType) String() string {
	return string(t.Letter())
}

// Name returns the full name of the piece type.
func (t PieceType) Name() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsKing reports whether t is King.
func (t PieceType) IsKing() bool { return t == King }

// IsRook reports whether t is Rook.
func (t PieceType) IsRook() bool { return t == Rook }

// Value returns the intrinsic material value of the piece type.
// The search package keeps its own, separately tuned table.
func (t PieceType) Value() int {
	switch t {
	case Pawn:
		return 100
	case Knight, Bishop:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 10000
	default:
		return 0
	}
}

// PieceTypeFromLetter converts a letter (either case) to a piece type.
// It returns NoPiece for unknown letters.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}
