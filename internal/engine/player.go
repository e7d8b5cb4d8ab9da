package engine

import (
	"slices"
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Player aggregates one side of a Board: its king, its legal-move list and
// its check status. A Player lives exactly as long as its Board.
//
// The legal-move list is pseudo-legal: it may hold moves that leave the
// player's own king in check. MakeMove rejects those at execution time.
type Player struct {
	board      *Board
	alliance   chess.Alliance
	king       chess.Piece
	legalMoves []Move
	inCheck    bool

	escapeOnce sync.Once
	hasEscape  bool
}

// newPlayer builds the player for alliance from the board's own piece
// sets. opponentMoves is the opponent's pseudo-legal list without castles;
// it serves as the attack oracle for check and castling safety.
func newPlayer(board *Board, alliance chess.Alliance, playerMoves, opponentMoves []Move) *Player {
	p := &Player{
		board:    board,
		alliance: alliance,
		king:     establishKing(board, alliance),
	}
	p.inCheck = isAttacked(p.king.Position(), opponentMoves)

	moves := make([]Move, 0, len(playerMoves)+2)
	moves = append(moves, playerMoves...)
	p.legalMoves = append(moves, p.calculateKingCastles(opponentMoves)...)
	return p
}

func establishKing(board *Board, alliance chess.Alliance) chess.Piece {
	for _, piece := range board.pieces(alliance) {
		if piece.Type().IsKing() {
			return piece
		}
	}
	panic(errors.Wrapf(errors.ErrMissingKing, "alliance %s", alliance))
}

// calculateKingCastles keeps the static castle candidates whose transit and
// landing squares are not the destination of any opponent pseudo-legal
// move. The king's own square is not examined, so a king in check still
// castles when both squares are clear.
func (p *Player) calculateKingCastles(opponentMoves []Move) []Move {
	var castles []Move
	for _, castle := range castleCandidates(p.board, p.king) {
		if isAttacked(castle.castleRookDestination, opponentMoves) ||
			isAttacked(castle.destination, opponentMoves) {
			continue
		}
		castles = append(castles, castle)
	}
	return castles
}

// attacksOnTile returns the moves in moves that land on coordinate.
func attacksOnTile(coordinate int, moves []Move) []Move {
	var attacks []Move
	for _, move := range moves {
		if move.destination == coordinate {
			attacks = append(attacks, move)
		}
	}
	return attacks
}

func isAttacked(coordinate int, moves []Move) bool {
	for _, move := range moves {
		if move.destination == coordinate {
			return true
		}
	}
	return false
}

// Alliance returns the side this player controls.
func (p *Player) Alliance() chess.Alliance { return p.alliance }

// Board returns the board this player belongs to.
func (p *Player) Board() *Board { return p.board }

// King returns the player's king.
func (p *Player) King() chess.Piece { return p.king }

// ActivePieces returns the player's pieces on the board.
func (p *Player) ActivePieces() []chess.Piece { return p.board.Pieces(p.alliance) }

// Opponent returns the other player of the same board.
func (p *Player) Opponent() *Player { return p.board.Player(p.alliance.Opposite()) }

// LegalMoves returns the player's pseudo-legal moves plus safe castles.
func (p *Player) LegalMoves() []Move { return slices.Clone(p.legalMoves) }

// IsMoveLegal reports whether move is in the player's legal-move list.
func (p *Player) IsMoveLegal(move Move) bool {
	for _, m := range p.legalMoves {
		if m.Equal(move) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether an opponent pseudo-legal move lands on the king.
func (p *Player) IsInCheck() bool { return p.inCheck }

// IsInCheckMate reports whether the player is in check with no escape.
func (p *Player) IsInCheckMate() bool { return p.inCheck && !p.HasEscapeMoves() }

// IsInStaleMate reports whether the player is not in check yet has no move
// that MakeMove accepts.
func (p *Player) IsInStaleMate() bool { return !p.inCheck && !p.HasEscapeMoves() }

// IsCastled always reports false; castling is not tracked after the fact.
func (p *Player) IsCastled() bool { return false }

// HasEscapeMoves reports whether at least one legal move is accepted by
// MakeMove. Each candidate is executed in full; the answer is computed once
// per player.
func (p *Player) HasEscapeMoves() bool {
	p.escapeOnce.Do(func() {
		for _, move := range p.legalMoves {
			if p.MakeMove(move).Status.IsDone() {
				p.hasEscape = true
				return
			}
		}
	})
	return p.hasEscape
}

// MakeMove executes move if it is in the legal-move list and does not leave
// the player's king attacked by any of the opponent's legal moves on the
// resulting board. Rejected moves return the original board.
func (p *Player) MakeMove(move Move) MoveTransition {
	if !p.IsMoveLegal(move) {
		return MoveTransition{Board: p.board, Move: move, Status: MoveIllegal}
	}
	next := move.Execute()
	mover := next.Player(p.alliance)
	if len(attacksOnTile(mover.king.Position(), mover.Opponent().legalMoves)) > 0 {
		return MoveTransition{Board: p.board, Move: move, Status: MoveLeavesPlayerInCheck}
	}
	return MoveTransition{Board: next, Move: move, Status: MoveDone}
}
