package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestStandardBoardFEN(t *testing.T) {
	testutil.AssertEqual(t, engine.BoardToFEN(engine.NewStandardBoard()), engine.InitialFEN)
}

func TestFENRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial", engine.InitialFEN},
		{"en passant target", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 1"},
		{"black en passant target", "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1"},
		{"partial castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1"},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
		{"black to move", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			testutil.AssertEqual(t, engine.BoardToFEN(board), tt.fen)
		})
	}
}

func TestFENNormalisation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"clocks reset", "4k3/8/8/8/8/8/8/4K3 w - - 12 40", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"placement only", "4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"rights without rooks dropped", "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"en passant without pawn dropped", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad en passant square dropped", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoardFromFEN(t, tt.fen)
			testutil.AssertEqual(t, engine.BoardToFEN(board), tt.want)
		})
	}
}

func TestInvalidFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"short placement", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"},
		{"bad digit", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		// U+0152 and U+0142 truncate to 'R' and 'B'.
		{"non-ASCII rook lookalike", "4k3/8/8/8/8/8/8/Œ3K3 w - - 0 1"},
		{"non-ASCII bishop lookalike", "4k3/8/8/8/8/8/8/ł3K3 w - - 0 1"},
		{"row overflow", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"short row", "4k2/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "r3k2r/8/8/8/8/8/8/R3K2R w KX - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := engine.NewBoardFromFEN(tt.fen)
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Fatalf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
			testutil.AssertNil(t, board)
		})
	}
}

func TestMustBoardFromFENPanics(t *testing.T) {
	expectPanic(t, errors.ErrInvalidFEN, func() { engine.MustBoardFromFEN("not a fen") })
}

func TestFENFirstMoveFlags(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "r3k2r/pppppppp/8/8/4P3/8/PPPP1PPP/R3K2R w Kq - 0 1")

	tests := []struct {
		square    string
		firstMove bool
	}{
		{"e1", true},  // king keeps a right
		{"h1", true},  // K
		{"a1", false}, // no Q
		{"a8", true},  // q
		{"h8", false}, // no k
		{"d2", true},  // pawn on its start row
		{"e4", false}, // pawn off its start row
		{"a7", true},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			piece := board.Tile(chess.MustParseSquare(tt.square)).Piece()
			testutil.AssertEqual(t, piece.IsFirstMove(), tt.firstMove)
		})
	}

	// Without any right the king counts as moved.
	bare := testutil.MustBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	testutil.AssertFalse(t, bare.Tile(chess.MustParseSquare("e1")).Piece().IsFirstMove())
}

func TestFENPawnOffStartRowCannotJump(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")

	var pawnMoves []engine.Move
	for _, move := range board.CurrentPlayer().LegalMoves() {
		if move.MovedPiece().Type() == chess.Pawn {
			pawnMoves = append(pawnMoves, move)
		}
	}
	testutil.AssertMoves(t, []string{"e3e4"}, pawnMoves)
}

func TestFENEnPassantCapture(t *testing.T) {
	board := testutil.MustBoardFromFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 1")

	pawn, ok := board.EnPassantPawn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, pawn.Position(), chess.MustParseSquare("f5"))

	move := testutil.MustMove(t, board, "e5f6")
	testutil.AssertEqual(t, move.Kind(), engine.PawnEnPassantAttack)

	// d5 jumped earlier, so e5d6 is not available.
	_, err := engine.ParseMove(board, "e5d6")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrNoLegalMove))
}
