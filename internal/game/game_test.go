package game

import (
	stderrors "errors"
	"testing"

	"github.com/castlebay/chesskit/internal/chess"
	"github.com/castlebay/chesskit/internal/engine"
	"github.com/castlebay/chesskit/internal/errors"
	"github.com/castlebay/chesskit/internal/testutil"
)

// playMoves applies coordinate move pairs, failing the test on the first
// rejection.
func playMoves(t *testing.T, g *Game, moves ...[2]string) {
	t.Helper()
	for _, m := range moves {
		if g.Move(m[0], m[1], chess.NoPiece) == nil {
			t.Fatalf("move %s%s rejected in position %s", m[0], m[1], g.FEN())
		}
	}
}

func TestNewGame(t *testing.T) {
	g := New()
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN, "initial FEN")
	testutil.AssertEqual(t, g.Turn(), chess.White, "side to move")
	testutil.AssertEqual(t, g.PlyCount(), 0, "ply count")
	testutil.AssertFalse(t, g.GameOver(), "game over at start")
	testutil.AssertEqual(t, g.Result(), Undecided, "result at start")
}

func TestNewFromFEN(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/R3K3 b Q - 4 20"
	g, err := NewFromFEN(fen)
	testutil.AssertNoError(t, err, "NewFromFEN")
	testutil.AssertEqual(t, g.FEN(), fen, "FEN")
	testutil.AssertEqual(t, g.Turn(), chess.Black, "side to move")

	_, err = NewFromFEN("not a fen")
	testutil.AssertError(t, err, "malformed FEN")
	if !stderrors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("error %v does not wrap ErrInvalidFEN", err)
	}
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		promo chess.PieceKind
	}{
		{name: "malformed source", from: "z9", to: "e4"},
		{name: "malformed destination", from: "e2", to: ""},
		{name: "empty source square", from: "e4", to: "e5"},
		{name: "not the mover's turn", from: "e7", to: "e5"},
		{name: "destination not reachable", from: "e2", to: "e5"},
		{name: "spurious promotion piece", from: "e2", to: "e4", promo: chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			if m := g.Move(tt.from, tt.to, tt.promo); m != nil {
				t.Errorf("Move(%s, %s) accepted, want rejection", tt.from, tt.to)
			}
			testutil.AssertEqual(t, g.FEN(), engine.InitialFEN, "position after rejection")
			testutil.AssertEqual(t, g.PlyCount(), 0, "history after rejection")
		})
	}
}

func TestMoveRecordsFacts(t *testing.T) {
	g := New()
	playMoves(t, g, [2]string{"e2", "e4"}, [2]string{"d7", "d5"})

	m := g.Move("e4", "d5", chess.NoPiece)
	if m == nil {
		t.Fatal("capture rejected")
	}
	testutil.AssertTrue(t, m.IsCapture(), "IsCapture")
	testutil.AssertEqual(t, m.SAN, "exd5", "SAN")
	testutil.AssertEqual(t, m.Coord(), "e4d5", "Coord")
	testutil.AssertEqual(t, m.FENBefore,
		"rnbqkbnr/ppp1pppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d5 0 2",
		"FENBefore")
	testutil.AssertEqual(t, g.PlyCount(), 3, "ply count")
}

func TestPromotionRequiresPiece(t *testing.T) {
	g, err := NewFromFEN("8/P7/8/8/8/8/k7/7K w - - 0 1")
	testutil.AssertNoError(t, err, "NewFromFEN")

	// A promotion push without a promotion piece is not a legal candidate.
	if m := g.Move("a7", "a8", chess.NoPiece); m != nil {
		t.Fatal("promotion accepted without a piece choice")
	}

	m := g.Move("a7", "a8", chess.Knight)
	if m == nil {
		t.Fatal("underpromotion rejected")
	}
	testutil.AssertTrue(t, m.IsPromotion(), "IsPromotion")
	testutil.AssertEqual(t, m.Coord(), "a7a8n", "Coord")
	testutil.AssertEqual(t, m.SAN, "a8=N", "SAN")
}

func TestFoolsMate(t *testing.T) {
	g := New()
	playMoves(t, g,
		[2]string{"f2", "f3"},
		[2]string{"e7", "e5"},
		[2]string{"g2", "g4"},
		[2]string{"d8", "h4"},
	)

	status := g.Status()
	testutil.AssertTrue(t, status.Checkmate, "checkmate flag")
	testutil.AssertTrue(t, status.Check, "check flag")
	testutil.AssertTrue(t, g.GameOver(), "game over")
	testutil.AssertEqual(t, g.Result(), BlackWins, "result")
	testutil.AssertEqual(t, g.History()[3].SAN, "Qh4#", "mating SAN")

	// Terminal states are absorbing.
	if m := g.Move("e2", "e3", chess.NoPiece); m != nil {
		t.Error("move accepted after checkmate")
	}
}

func TestStalemateDraw(t *testing.T) {
	g, err := NewFromFEN("7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err, "NewFromFEN")

	status := g.Status()
	testutil.AssertTrue(t, status.Stalemate, "stalemate flag")
	testutil.AssertTrue(t, status.Draw, "draw flag")
	testutil.AssertEqual(t, g.Result(), Drawn, "result")
	testutil.AssertTrue(t, g.GameOver(), "game over")
}

func TestFiftyMoveDraw(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	testutil.AssertNoError(t, err, "NewFromFEN")
	testutil.AssertFalse(t, g.GameOver(), "game over at clock 99")

	playMoves(t, g, [2]string{"a1", "a2"})
	testutil.AssertTrue(t, g.Status().Draw, "draw at clock 100")
	testutil.AssertEqual(t, g.Result(), Drawn, "result")
}

func TestInsufficientMaterialDraw(t *testing.T) {
	// Capturing the last pawn leaves king and bishop versus king.
	g, err := NewFromFEN("4k3/8/8/3p4/8/8/6B1/4K3 w - - 0 1")
	testutil.AssertNoError(t, err, "NewFromFEN")
	testutil.AssertFalse(t, g.GameOver(), "game over with the pawn on")

	playMoves(t, g, [2]string{"g2", "d5"})
	testutil.AssertTrue(t, g.Status().Draw, "draw after the capture")
	testutil.AssertEqual(t, g.Result(), Drawn, "result")
	testutil.AssertTrue(t, g.GameOver(), "game over")
}

func TestThreefoldRepetitionDraw(t *testing.T) {
	g := New()

	// Knight shuffles revisit the starting placement; counting the initial
	// occurrence, the third visit arrives after the second full shuffle.
	shuffle := [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}
	playMoves(t, g, shuffle...)
	testutil.AssertFalse(t, g.Status().Draw, "draw after one shuffle")

	playMoves(t, g, shuffle...)
	testutil.AssertTrue(t, g.Status().Draw, "draw after two shuffles")
	testutil.AssertEqual(t, g.Result(), Drawn, "result")
}

func TestUndo(t *testing.T) {
	g := New()
	testutil.AssertTrue(t, g.Undo() == nil, "undo on empty history")

	playMoves(t, g, [2]string{"e2", "e4"}, [2]string{"e7", "e5"})
	fenAfterE4 := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

	undone := g.Undo()
	if undone == nil {
		t.Fatal("undo returned nil with history present")
	}
	testutil.AssertEqual(t, undone.Coord(), "e7e5", "undone move")
	testutil.AssertEqual(t, g.FEN(), fenAfterE4, "position after undo")
	testutil.AssertEqual(t, g.Turn(), chess.Black, "turn after undo")
	testutil.AssertEqual(t, g.PlyCount(), 1, "ply count after undo")

	g.Undo()
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN, "position after full unwind")
	testutil.AssertTrue(t, g.Undo() == nil, "undo past the initial position")
}

func TestUndoReopensTerminalGame(t *testing.T) {
	g := New()
	playMoves(t, g,
		[2]string{"f2", "f3"},
		[2]string{"e7", "e5"},
		[2]string{"g2", "g4"},
		[2]string{"d8", "h4"},
	)
	testutil.AssertTrue(t, g.GameOver(), "game over after mate")

	g.Undo()
	testutil.AssertFalse(t, g.GameOver(), "game over after undoing the mate")
	testutil.AssertEqual(t, g.Result(), Undecided, "result after undo")

	// A different move is accepted now.
	if g.Move("g8", "f6", chess.NoPiece) == nil {
		t.Error("move rejected after reopening the game")
	}
}

func TestUndoRestoresRepetitionCount(t *testing.T) {
	g := New()
	shuffle := [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}
	playMoves(t, g, shuffle...)
	playMoves(t, g, shuffle...)
	testutil.AssertTrue(t, g.Status().Draw, "threefold draw")

	// Undoing the repetition-completing move lifts the draw.
	g.Undo()
	testutil.AssertFalse(t, g.Status().Draw, "draw after undo")

	// Replaying it restores the draw.
	playMoves(t, g, [2]string{"f6", "g8"})
	testutil.AssertTrue(t, g.Status().Draw, "draw after replay")
}

func TestPositionAfter(t *testing.T) {
	g := New()
	playMoves(t, g,
		[2]string{"e2", "e4"},
		[2]string{"c7", "c5"},
		[2]string{"g1", "f3"},
	)
	currentFEN := g.FEN()

	tests := []struct {
		ply  int
		want string
	}{
		{ply: -1, want: engine.InitialFEN},
		{ply: 0, want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{ply: 1, want: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"},
		{ply: 2, want: currentFEN},
	}
	for _, tt := range tests {
		pos, err := g.PositionAfter(tt.ply)
		testutil.AssertNoError(t, err, "PositionAfter(%d)", tt.ply)
		testutil.AssertEqual(t, pos.FEN(), tt.want, "ply %d", tt.ply)
	}

	// Navigation must not disturb the live game.
	testutil.AssertEqual(t, g.FEN(), currentFEN, "live position after browsing")

	for _, ply := range []int{-2, 3, 100} {
		_, err := g.PositionAfter(ply)
		testutil.AssertError(t, err, "out-of-range ply %d", ply)
		if !stderrors.Is(err, errors.ErrPlyOutOfRange) {
			t.Errorf("error %v does not wrap ErrPlyOutOfRange", err)
		}
	}
}

func TestPositionAfterReplaysSpecialMoves(t *testing.T) {
	g, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err, "NewFromFEN")
	playMoves(t, g, [2]string{"e1", "g1"}, [2]string{"e8", "c8"})

	pos, err := g.PositionAfter(1)
	testutil.AssertNoError(t, err, "PositionAfter")
	testutil.AssertEqual(t, pos.FEN(), g.FEN(), "replayed castling position")
}

func TestTags(t *testing.T) {
	g := New()
	testutil.AssertEqual(t, g.GetTag("White"), "", "unset tag")
	g.SetTag("White", "Steinitz")
	testutil.AssertEqual(t, g.GetTag("White"), "Steinitz", "tag round trip")
}
