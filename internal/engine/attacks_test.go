package engine

import (
	"testing"

	"github.com/castlebay/chesskit/internal/chess"
)

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		by     chess.Color
		want   bool
	}{
		{
			name:   "white pawn attacks diagonally",
			fen:    "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			square: "d5",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "white pawn does not attack its push square",
			fen:    "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			square: "e5",
			by:     chess.White,
			want:   false,
		},
		{
			name:   "black pawn attacks downward",
			fen:    "4k3/8/4p3/8/8/8/8/4K3 w - - 0 1",
			square: "d5",
			by:     chess.Black,
			want:   true,
		},
		{
			name:   "knight attack",
			fen:    "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1",
			square: "e6",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "rook attack down an open file",
			fen:    "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			square: "a8",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "rook attack blocked by a piece in between",
			fen:    "4k3/8/8/p7/8/8/8/R3K3 w - - 0 1",
			square: "a8",
			by:     chess.White,
			want:   false,
		},
		{
			name:   "bishop attack along a diagonal",
			fen:    "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1",
			square: "h6",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "queen attacks like a rook",
			fen:    "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1",
			square: "a8",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "queen attacks like a bishop",
			fen:    "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1",
			square: "h8",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "king adjacency",
			fen:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			square: "d7",
			by:     chess.Black,
			want:   true,
		},
		{
			name:   "no attacker of the asked colour",
			fen:    "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			square: "a8",
			by:     chess.Black,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			got := IsSquareAttacked(&pos, mustSquare(t, tt.square), tt.by)
			if got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color chess.Color
		want  bool
	}{
		{
			name:  "rook gives check",
			fen:   "4k3/8/8/8/8/8/8/4R2K b - - 0 1",
			color: chess.Black,
			want:  true,
		},
		{
			name:  "blocked rook gives no check",
			fen:   "4k3/4p3/8/8/8/8/8/4R2K b - - 0 1",
			color: chess.Black,
			want:  false,
		},
		{
			name:  "initial position is quiet",
			fen:   InitialFEN,
			color: chess.White,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := InCheck(&pos, tt.color); got != tt.want {
				t.Errorf("InCheck(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
