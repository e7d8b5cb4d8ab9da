package engine

import "github.com/lgbarn/chess-engine-go/internal/errors"

// MoveStatus is the outcome of Player.MakeMove.
type MoveStatus int

const (
	MoveDone MoveStatus = iota
	MoveIllegal
	MoveLeavesPlayerInCheck
)

// String returns the string representation of a move status.
func (s MoveStatus) String() string {
	switch s {
	case MoveDone:
		return "DONE"
	case MoveIllegal:
		return "ILLEGAL_MOVE"
	case MoveLeavesPlayerInCheck:
		return "LEAVES_PLAYER_IN_CHECK"
	default:
		return "UNKNOWN"
	}
}

// IsDone reports whether the move was played.
func (s MoveStatus) IsDone() bool { return s == MoveDone }

// MoveTransition is the result of asking a player to make a move. Board is
// the new board when Status is MoveDone and the unchanged original board
// otherwise.
type MoveTransition struct {
	Board  *Board
	Move   Move
	Status MoveStatus
}

// Err maps a rejected transition to its sentinel error; nil when the move
// was played.
func (t MoveTransition) Err() error {
	switch t.Status {
	case MoveDone:
		return nil
	case MoveIllegal:
		return errors.ErrIllegalMove
	case MoveLeavesPlayerInCheck:
		return errors.ErrLeavesKingInCheck
	default:
		return errors.Wrapf(errors.ErrIllegalMove, "status %d", int(t.Status))
	}
}
