package engine

import (
	"testing"

	"github.com/castlebay/chesskit/internal/chess"
)

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{
			name: "back-rank mate",
			fen:  "R3k3/8/4K3/8/8/8/8/8 b - - 0 1",
			want: true,
		},
		{
			name: "fool's mate",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: true,
		},
		{
			name: "check with an escape is not mate",
			fen:  "4k3/8/8/8/8/8/8/4R2K b - - 0 1",
			want: false,
		},
		{
			name: "stalemate is not mate",
			fen:  "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1",
			want: false,
		},
		{name: "initial position", fen: InitialFEN, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := IsCheckmate(&pos); got != tt.want {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{
			name: "cornered king with no moves",
			fen:  "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1",
			want: true,
		},
		{
			name: "checkmate is not stalemate",
			fen:  "R3k3/8/4K3/8/8/8/8/8 b - - 0 1",
			want: false,
		},
		{name: "initial position", fen: InitialFEN, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := IsStalemate(&pos); got != tt.want {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFiftyMoveDraw(t *testing.T) {
	at99 := mustPosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	if IsFiftyMoveDraw(&at99) {
		t.Error("draw claimed at halfmove clock 99")
	}

	// One more quiet move crosses the threshold.
	next, _ := applyCoord(t, at99, "a1", "a2", chess.NoPiece)
	if !IsFiftyMoveDraw(&next) {
		t.Errorf("no draw at halfmove clock %d", next.HalfmoveClock)
	}
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{name: "two bare kings", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", want: true},
		{name: "king and bishop vs king", fen: "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", want: true},
		{name: "king and knight vs king", fen: "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", want: true},
		{name: "king and rook vs king", fen: "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", want: false},
		{name: "king and queen vs king", fen: "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", want: false},
		{name: "king and pawn vs king", fen: "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", want: false},
		{name: "two minors remain playable", fen: "4k3/8/8/8/8/8/8/1NB1K3 w - - 0 1", want: false},
		{name: "initial position", fen: InitialFEN, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := HasInsufficientMaterial(&pos); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}
