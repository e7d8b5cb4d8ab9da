package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestNullMove(t *testing.T) {
	var null engine.Move

	testutil.AssertTrue(t, null.IsNull())
	testutil.AssertEqual(t, null.Kind(), engine.NullMove)
	testutil.AssertEqual(t, null.CurrentCoordinate(), -1)
	testutil.AssertEqual(t, null.DestinationCoordinate(), -1)
	testutil.AssertEqual(t, null.String(), "0000")
	testutil.AssertFalse(t, null.IsAttack())
	testutil.AssertFalse(t, null.IsCastle())

	expectPanic(t, errors.ErrNullMove, func() { null.Execute() })
}

func TestMoveKinds(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		kind  engine.MoveKind
		taken chess.PieceType
	}{
		{"knight move", engine.InitialFEN, "g1f3", engine.MajorMove, chess.NoPiece},
		{"pawn push", engine.InitialFEN, "e2e3", engine.PawnMove, chess.NoPiece},
		{"pawn jump", engine.InitialFEN, "e2e4", engine.PawnJump, chess.NoPiece},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", engine.PawnAttackMove, chess.Pawn},
		{"piece capture", "4k3/8/8/3r4/8/8/8/3QK3 w - - 0 1", "d1d5", engine.AttackMove, chess.Rook},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", engine.PawnEnPassantAttack, chess.Pawn},
		{"promotion", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8", engine.PawnPromotion, chess.NoPiece},
		{"capture promotion", "1r5k/P7/8/8/8/8/8/K7 w - - 0 1", "a7b8", engine.PawnPromotion, chess.Rook},
		{"king side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", engine.KingSideCastle, chess.NoPiece},
		{"queen side castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", engine.QueenSideCastle, chess.NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			move := testutil.MustMove(t, board, tt.move)

			testutil.AssertEqual(t, move.Kind(), tt.kind)
			testutil.AssertTrue(t, move.Board() == board, "move keeps its board")

			captured, ok := move.AttackedPiece()
			testutil.AssertEqual(t, ok, tt.taken != chess.NoPiece)
			testutil.AssertEqual(t, move.IsAttack(), tt.taken != chess.NoPiece)
			testutil.AssertEqual(t, captured.Type(), tt.taken)
		})
	}
}

func TestMoveString(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	testutil.AssertEqual(t, testutil.MustMove(t, board, "a7a8").String(), "a7a8q")
	testutil.AssertEqual(t, testutil.MustMove(t, board, "a1b1").String(), "a1b1")
}

func TestMoveEqual(t *testing.T) {
	board := engine.NewStandardBoard()
	a := testutil.MustMove(t, board, "e2e4")
	b := testutil.MustMove(t, board, "e2e4")
	other := testutil.MustMove(t, engine.NewStandardBoard(), "e2e4")

	testutil.AssertTrue(t, a.Equal(b))
	testutil.AssertFalse(t, a.Equal(other), "moves from different boards differ")
	testutil.AssertFalse(t, a.Equal(testutil.MustMove(t, board, "e2e3")))
	testutil.AssertFalse(t, a.Equal(engine.Move{}))
	testutil.AssertTrue(t, engine.Move{}.Equal(engine.Move{}))
}

func TestCreateMove(t *testing.T) {
	board := engine.NewStandardBoard()

	move, ok := engine.CreateMove(board, chess.MustParseSquare("e2"), chess.MustParseSquare("e4"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, move.CurrentCoordinate(), chess.MustParseSquare("e2"))
	testutil.AssertEqual(t, move.DestinationCoordinate(), chess.MustParseSquare("e4"))
	testutil.AssertEqual(t, move.MovedPiece().Type(), chess.Pawn)

	move, ok = engine.CreateMove(board, chess.MustParseSquare("e2"), chess.MustParseSquare("e5"))
	testutil.AssertFalse(t, ok)
	testutil.AssertTrue(t, move.IsNull())

	// Black's moves are not the current player's.
	_, ok = engine.CreateMove(board, chess.MustParseSquare("e7"), chess.MustParseSquare("e5"))
	testutil.AssertFalse(t, ok)
}

func TestParseMove(t *testing.T) {
	promo := testutil.MustBoardFromFEN(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")

	tests := []struct {
		name    string
		board   *engine.Board
		text    string
		want    string
		wantErr error
	}{
		{"simple", engine.NewStandardBoard(), "e2e4", "e2e4", nil},
		{"surrounding space", engine.NewStandardBoard(), " g1f3 ", "g1f3", nil},
		{"promotion without suffix", promo, "a7a8", "a7a8q", nil},
		{"promotion with queen", promo, "a7a8q", "a7a8q", nil},
		{"under-promotion", promo, "a7a8n", "", errors.ErrInvalidMoveText},
		{"suffix on non-promotion", engine.NewStandardBoard(), "e2e4q", "", errors.ErrInvalidMoveText},
		{"too short", engine.NewStandardBoard(), "e2", "", errors.ErrInvalidMoveText},
		{"bad square", engine.NewStandardBoard(), "z9e4", "", errors.ErrInvalidMoveText},
		{"not legal", engine.NewStandardBoard(), "e2e5", "", errors.ErrNoLegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, err := engine.ParseMove(tt.board, tt.text)
			if tt.wantErr != nil {
				if !stderrors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMove(%q) error = %v; want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.String(), tt.want)
		})
	}
}

func TestExecuteStandardMove(t *testing.T) {
	board := engine.NewStandardBoard()
	next := testutil.MustMove(t, board, "g1f3").Execute()

	f3 := next.Tile(chess.MustParseSquare("f3"))
	testutil.AssertTrue(t, f3.IsOccupied())
	testutil.AssertEqual(t, f3.Piece().Type(), chess.Knight)
	testutil.AssertFalse(t, f3.Piece().IsFirstMove(), "moved piece loses first-move flag")
	testutil.AssertFalse(t, next.Tile(chess.MustParseSquare("g1")).IsOccupied())
	testutil.AssertEqual(t, next.CurrentPlayer().Alliance(), chess.Black)

	_, ok := next.EnPassantPawn()
	testutil.AssertFalse(t, ok)
}

func TestMovePiece(t *testing.T) {
	move := testutil.MustMove(t, engine.NewStandardBoard(), "b1c3")
	moved := engine.MovePiece(move)
	testutil.AssertTrue(t, moved == chess.NewMovedPiece(chess.Knight, chess.White, chess.MustParseSquare("c3")))
}

func TestExecutePawnJump(t *testing.T) {
	next := testutil.MustPlay(t, engine.NewStandardBoard(), "e2e4")

	pawn, ok := next.EnPassantPawn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, pawn.Position(), chess.MustParseSquare("e4"))
	testutil.AssertEqual(t, pawn.Alliance(), chess.White)

	// The en passant pawn only lives for one ply.
	after := testutil.MustPlay(t, next, "g8f6")
	_, ok = after.EnPassantPawn()
	testutil.AssertFalse(t, ok)
}

func TestExecuteCapture(t *testing.T) {
	board := testutil.MustPlay(t, engine.NewStandardBoard(), "e2e4", "d7d5", "e4d5")

	testutil.AssertEqual(t, len(board.BlackPieces()), 15)
	testutil.AssertEqual(t, len(board.WhitePieces()), 16)
	testutil.AssertEqual(t, board.Tile(chess.MustParseSquare("d5")).Piece().Alliance(), chess.White)
}

func TestExecuteEnPassant(t *testing.T) {
	board := testutil.MustPlay(t, engine.NewStandardBoard(), "e2e4", "a7a6", "e4e5", "d7d5")

	move := testutil.MustMove(t, board, "e5d6")
	testutil.AssertEqual(t, move.Kind(), engine.PawnEnPassantAttack)
	captured, _ := move.AttackedPiece()
	testutil.AssertEqual(t, captured.Position(), chess.MustParseSquare("d5"))

	next := testutil.MustPlay(t, board, "e5d6")
	testutil.AssertEqual(t, engine.BoardToFEN(next), "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
}

func TestEnPassantExpires(t *testing.T) {
	board := testutil.MustPlay(t, engine.NewStandardBoard(), "e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "a6a5")

	_, err := engine.ParseMove(board, "e5d6")
	if !stderrors.Is(err, errors.ErrNoLegalMove) {
		t.Errorf("ParseMove(e5d6) error = %v; want ErrNoLegalMove", err)
	}
}

func TestExecutePromotion(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
		inCheck bool
	}{
		{"white push", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8", "Q7/7k/8/8/8/8/8/K7 b - - 0 1", false},
		{"white capture", "1r5k/P7/8/8/8/8/8/K7 w - - 0 1", "a7b8", "1Q5k/8/8/8/8/8/8/K7 b - - 0 1", true},
		{"black push", "k7/8/8/8/8/8/p6K/8 b - - 0 1", "a2a1", "k7/8/8/8/8/8/7K/q7 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			next := testutil.MustPlay(t, board, tt.move)

			testutil.AssertEqual(t, engine.BoardToFEN(next), tt.wantFEN)
			testutil.AssertEqual(t, next.CurrentPlayer().Alliance(), board.CurrentPlayer().Alliance().Opposite())
			testutil.AssertEqual(t, next.CurrentPlayer().IsInCheck(), tt.inCheck)

			queen := next.Tile(chess.MustParseSquare(tt.move[2:4])).Piece()
			testutil.AssertEqual(t, queen.Type(), chess.Queen)
			testutil.AssertFalse(t, queen.IsFirstMove())
		})
	}
}

func TestPromotionDecoratesPawnMove(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "1r5k/P7/8/8/8/8/8/K7 w - - 0 1")
	promotion := testutil.MustMove(t, board, "a7b8")

	inner, ok := promotion.Decorated()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, inner.Kind(), engine.PawnAttackMove)
	testutil.AssertEqual(t, inner.DestinationCoordinate(), promotion.DestinationCoordinate())

	_, ok = testutil.MustMove(t, board, "a1a2").Decorated()
	testutil.AssertFalse(t, ok)
}

func TestExecuteCastle(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		wantFEN  string
		rookFrom string
		rookTo   string
	}{
		{"white king side", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1", "h1", "f1"},
		{"white queen side", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1", "a1", "d1"},
		{"black king side", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1", "h8", "f8"},
		{"black queen side", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1", "a8", "d8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			move := testutil.MustMove(t, board, tt.move)

			rook, start, dest, ok := move.CastleRook()
			testutil.AssertTrue(t, ok)
			testutil.AssertEqual(t, rook.Type(), chess.Rook)
			testutil.AssertEqual(t, start, chess.MustParseSquare(tt.rookFrom))
			testutil.AssertEqual(t, dest, chess.MustParseSquare(tt.rookTo))

			next := testutil.MustPlay(t, board, tt.move)
			testutil.AssertEqual(t, engine.BoardToFEN(next), tt.wantFEN)

			moved := next.Tile(chess.MustParseSquare(tt.rookTo)).Piece()
			testutil.AssertFalse(t, moved.IsFirstMove(), "castled rook loses first-move flag")
			testutil.AssertFalse(t, next.Player(move.MovedPiece().Alliance()).IsCastled())
		})
	}
}

func TestCastleRookOnNonCastle(t *testing.T) {
	_, start, dest, ok := testutil.MustMove(t, engine.NewStandardBoard(), "e2e4").CastleRook()
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, start, -1)
	testutil.AssertEqual(t, dest, -1)
}

// TestExecuteFlipsSideAndKeepsMaterial executes every generated move,
// including pseudo-legal ones that leave the mover in check, and checks the
// board that comes back.
func TestExecuteFlipsSideAndKeepsMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial", engine.InitialFEN},
		{"kiwipete", kiwipeteFEN},
		{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 1"},
		{"promotion", promotionFEN},
		{"capture promotion", "1r5k/P7/8/8/8/8/8/K7 w - - 0 1"},
		{"castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
		{"black castling", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			mover := board.CurrentPlayer().Alliance()
			opponent := mover.Opposite()
			moverCount := len(board.Pieces(mover))
			opponentCount := len(board.Pieces(opponent))

			for _, move := range board.CurrentPlayer().LegalMoves() {
				next := move.Execute()
				testutil.AssertEqual(t, next.CurrentPlayer().Alliance(), opponent, "side to move after %s", move)
				testutil.AssertEqual(t, len(next.Pieces(mover)), moverCount, "mover pieces after %s", move)

				wantOpponent := opponentCount
				if move.IsAttack() {
					wantOpponent--
				}
				testutil.AssertEqual(t, len(next.Pieces(opponent)), wantOpponent, "opponent pieces after %s", move)
				testutil.AssertTrue(t, len(next.WhitePieces()) <= len(board.WhitePieces()), "white grew after %s", move)
				testutil.AssertTrue(t, len(next.BlackPieces()) <= len(board.BlackPieces()), "black grew after %s", move)
			}
		})
	}
}

func TestMoveKindString(t *testing.T) {
	testutil.AssertEqual(t, engine.PawnEnPassantAttack.String(), "PawnEnPassantAttack")
	testutil.AssertEqual(t, engine.QueenSideCastle.String(), "QueenSideCastle")
	testutil.AssertEqual(t, engine.MoveKind(99).String(), "Unknown")
}
