// Package engine implements the chess rules: move generation, legality
// checking, position transitions, status evaluation, and the FEN/SAN codecs.
//
// Position is a plain value type. Every transition produces a new value and
// legality testing simulates moves on copies, so no code path ever needs to
// roll back a half-applied board.
package engine

import (
	"github.com/castlebay/chesskit/internal/chess"
)

// Position is a complete chess position: piece placement, side to move,
// castling rights, en-passant target, and the two clocks.
//
// Board is indexed [row][col] with row 0 = rank 8 (the index row increases
// as the rank decreases). The zero Piece value is an empty square.
type Position struct {
	Board          [8][8]chess.Piece
	Turn           chess.Color
	Castling       chess.CastlingRights
	EPTarget       chess.Square // NoSquare when no en-passant capture is available
	HalfmoveClock  int
	FullmoveNumber int
}

// PieceAt returns the piece on the given square.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.Board[sq.Row()][sq.Col()]
}

// put places a piece on a square.
func (p *Position) put(sq chess.Square, piece chess.Piece) {
	p.Board[sq.Row()][sq.Col()] = piece
}

// clear empties a square.
func (p *Position) clear(sq chess.Square) {
	p.Board[sq.Row()][sq.Col()] = chess.Piece{}
}

// KingSquare returns the square of the given colour's king, or NoSquare if
// the board holds no such king. Positions without exactly one king per
// colour are a caller error; the engine does not defend against them.
func (p *Position) KingSquare(c chess.Color) chess.Square {
	want := chess.Piece{Kind: chess.King, Color: c}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p.Board[row][col] == want {
				return chess.MakeSquare(row, col)
			}
		}
	}
	return chess.NoSquare
}

// PieceCount returns the total number of pieces on the board.
func (p *Position) PieceCount() int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if !p.Board[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// squaresOf calls fn for every square occupied by the given colour and
// stops early when fn returns true. It reports whether fn stopped the scan.
func (p *Position) squaresOf(c chess.Color, fn func(sq chess.Square, piece chess.Piece) bool) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.Board[row][col]
			if piece.IsEmpty() || piece.Color != c {
				continue
			}
			if fn(chess.MakeSquare(row, col), piece) {
				return true
			}
		}
	}
	return false
}
