package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MoveKind is the closed set of move variants.
type MoveKind int

const (
	NullMove MoveKind = iota
	MajorMove
	AttackMove
	PawnMove
	PawnAttackMove
	PawnJump
	PawnEnPassantAttack
	PawnPromotion
	KingSideCastle
	QueenSideCastle
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{
		"NullMove", "MajorMove", "AttackMove", "PawnMove", "PawnAttackMove",
		"PawnJump", "PawnEnPassantAttack", "PawnPromotion",
		"KingSideCastle", "QueenSideCastle",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move describes one state transition of a board. The zero Move is the
// null move: it has no board context and executing it panics.
type Move struct {
	kind        MoveKind
	board       *Board
	movedPiece  chess.Piece
	destination int

	// Captures only.
	attackedPiece chess.Piece

	// Castles only.
	castleRook            chess.Piece
	castleRookStart       int
	castleRookDestination int

	// Promotions only: the pawn move being decorated.
	decorated *Move
}

func newMove(kind MoveKind, board *Board, piece chess.Piece, destination int) Move {
	return Move{kind: kind, board: board, movedPiece: piece, destination: destination}
}

func newAttack(kind MoveKind, board *Board, piece chess.Piece, destination int, attacked chess.Piece) Move {
	m := newMove(kind, board, piece, destination)
	m.attackedPiece = attacked
	return m
}

func newPromotion(inner Move) Move {
	m := newMove(PawnPromotion, inner.board, inner.movedPiece, inner.destination)
	m.decorated = &inner
	return m
}

func newCastle(kind MoveKind, board *Board, king chess.Piece, destination int, rook chess.Piece, rookDestination int) Move {
	m := newMove(kind, board, king, destination)
	m.castleRook = rook
	m.castleRookStart = rook.Position()
	m.castleRookDestination = rookDestination
	return m
}

// Kind returns the move variant.
func (m Move) Kind() MoveKind { return m.kind }

// Board returns the board the move was generated on.
func (m Move) Board() *Board { return m.board }

// MovedPiece returns the piece being moved, as it stands before the move.
func (m Move) MovedPiece() chess.Piece { return m.movedPiece }

// CurrentCoordinate returns the coordinate the moved piece starts on,
// or -1 for the null move.
func (m Move) CurrentCoordinate() int {
	if m.kind == NullMove {
		return -1
	}
	return m.movedPiece.Position()
}

// DestinationCoordinate returns the coordinate the moved piece lands on,
// or -1 for the null move.
func (m Move) DestinationCoordinate() int {
	if m.kind == NullMove {
		return -1
	}
	return m.destination
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m.kind == NullMove }

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool {
	switch m.kind {
	case AttackMove, PawnAttackMove, PawnEnPassantAttack:
		return true
	case PawnPromotion:
		return m.decorated.IsAttack()
	default:
		return false
	}
}

// AttackedPiece returns the captured piece, if any.
func (m Move) AttackedPiece() (chess.Piece, bool) {
	if m.kind == PawnPromotion {
		return m.decorated.AttackedPiece()
	}
	if !m.IsAttack() {
		return chess.Piece{}, false
	}
	return m.attackedPiece, true
}

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool {
	return m.kind == KingSideCastle || m.kind == QueenSideCastle
}

// CastleRook returns the castling rook and its start and destination
// coordinates. ok is false for non-castling moves.
func (m Move) CastleRook() (rook chess.Piece, start, destination int, ok bool) {
	if !m.IsCastle() {
		return chess.Piece{}, -1, -1, false
	}
	return m.castleRook, m.castleRookStart, m.castleRookDestination, true
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.kind == PawnPromotion }

// Decorated returns the pawn move wrapped by a promotion.
func (m Move) Decorated() (Move, bool) {
	if m.kind != PawnPromotion {
		return Move{}, false
	}
	return *m.decorated, true
}

// Equal reports whether m and o are the same move generated on the same
// board.
func (m Move) Equal(o Move) bool {
	if m.kind != o.kind || m.board != o.board || m.movedPiece != o.movedPiece ||
		m.destination != o.destination || m.attackedPiece != o.attackedPiece ||
		m.castleRook != o.castleRook || m.castleRookStart != o.castleRookStart ||
		m.castleRookDestination != o.castleRookDestination {
		return false
	}
	if m.decorated == nil || o.decorated == nil {
		return m.decorated == o.decorated
	}
	return m.decorated.Equal(*o.decorated)
}

// String returns the move in long algebraic notation, e.g. "e2e4",
// "e1g1" for a castle and "a7a8q" for a promotion. The null move is "0000".
func (m Move) String() string {
	if m.kind == NullMove {
		return "0000"
	}
	s := chess.SquareName(m.CurrentCoordinate()) + chess.SquareName(m.destination)
	if m.kind == PawnPromotion {
		s += "q"
	}
	return s
}

// MovePiece returns the moved piece as it stands after m: on the
// destination with its first-move flag cleared.
func MovePiece(m Move) chess.Piece {
	return m.movedPiece.MovedTo(m.destination)
}

// Execute returns the board that results from playing m. The move's own
// board is left untouched. Executing the null move panics.
func (m Move) Execute() *Board {
	switch m.kind {
	case NullMove:
		panic(errors.ErrNullMove)
	case MajorMove, PawnMove:
		return m.executeStandard(false)
	case AttackMove, PawnAttackMove, PawnEnPassantAttack:
		return m.executeStandard(true)
	case PawnJump:
		return m.executeJump()
	case PawnPromotion:
		return m.executePromotion()
	case KingSideCastle, QueenSideCastle:
		return m.executeCastle()
	default:
		panic(errors.Wrapf(errors.ErrIllegalMove, "unknown move kind %d", int(m.kind)))
	}
}

// retain copies every active piece of both sides into a fresh builder,
// skipping the mover, the castling rook and the captured piece as
// appropriate.
func (m Move) retain(capture bool) *Builder {
	mover := m.movedPiece.Alliance()
	builder := NewBuilder()
	for _, piece := range m.board.pieces(mover) {
		if piece == m.movedPiece || (m.IsCastle() && piece == m.castleRook) {
			continue
		}
		builder.SetPiece(piece)
	}
	for _, piece := range m.board.pieces(mover.Opposite()) {
		if capture && piece == m.attackedPiece {
			continue
		}
		builder.SetPiece(piece)
	}
	return builder.SetMoveMaker(mover.Opposite())
}

func (m Move) executeStandard(capture bool) *Board {
	return m.retain(capture).SetPiece(MovePiece(m)).Build()
}

func (m Move) executeJump() *Board {
	moved := MovePiece(m)
	return m.retain(false).SetPiece(moved).SetEnPassantPawn(moved).Build()
}

func (m Move) executeCastle() *Board {
	rook := m.castleRook.MovedTo(m.castleRookDestination)
	return m.retain(false).SetPiece(MovePiece(m)).SetPiece(rook).Build()
}

func (m Move) executePromotion() *Board {
	pawnMoved := m.decorated.Execute()
	mover := m.movedPiece.Alliance()

	builder := NewBuilder()
	for _, piece := range pawnMoved.pieces(mover.Opposite()) {
		builder.SetPiece(piece)
	}
	for _, piece := range pawnMoved.pieces(mover) {
		if piece.Position() == m.destination {
			continue
		}
		builder.SetPiece(piece)
	}
	builder.SetPiece(chess.NewMovedPiece(chess.Queen, mover, m.destination))
	return builder.SetMoveMaker(mover.Opposite()).Build()
}
