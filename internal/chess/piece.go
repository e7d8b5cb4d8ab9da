package chess

// Piece is an immutable piece value. Two pieces with the same type,
// alliance, position and first-move flag are interchangeable, so pieces
// are compared with ==.
type Piece struct {
	kind      PieceType
	position  int
	alliance  Alliance
	firstMove bool
}

// NewPiece returns a piece that has not moved yet.
func NewPiece(kind PieceType, alliance Alliance, position int) Piece {
	return Piece{kind: kind, position: position, alliance: alliance, firstMove: true}
}

// NewMovedPiece returns a piece whose first-move flag is already cleared.
func NewMovedPiece(kind PieceType, alliance Alliance, position int) Piece {
	return Piece{kind: kind, position: position, alliance: alliance}
}

// Type returns the piece type.
func (p Piece) Type() PieceType { return p.kind }

// Position returns the tile coordinate the piece stands on.
func (p Piece) Position() int { return p.position }

// Alliance returns the side the piece belongs to.
func (p Piece) Alliance() Alliance { return p.alliance }

// IsFirstMove reports whether the piece has never moved.
func (p Piece) IsFirstMove() bool { return p.firstMove }

// IsZero reports whether p is the zero value (no piece).
func (p Piece) IsZero() bool { return p.kind == NoPiece }

// Value returns the intrinsic material value of the piece.
func (p Piece) Value() int { return p.kind.Value() }

// MovedTo returns the piece standing on destination after a move.
func (p Piece) MovedTo(destination int) Piece {
	return NewMovedPiece(p.kind, p.alliance, destination)
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	c := p.kind.Letter()
	if p.alliance == Black && c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// String returns the FEN letter of the piece.
func (p Piece) String() string {
	return string(p.Letter())
}
