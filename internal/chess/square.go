package chess

import "github.com/castlebay/chesskit/internal/errors"

// Square identifies a board square as a row-major index with row 0 = rank 8,
// so a8 is 0 and h1 is 63. NoSquare marks the absence of a square (for
// example an empty en-passant target).
type Square int

// NoSquare is the sentinel for "no square".
const NoSquare Square = -1

// MakeSquare builds a square from board indices. Row 0 is rank 8; row index
// increases as the rank decreases.
func MakeSquare(row, col int) Square {
	return Square(row*8 + col)
}

// OnBoard reports whether the given indices lie on the board.
func OnBoard(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Row returns the board row index (0 = rank 8).
func (s Square) Row() int {
	return int(s) / 8
}

// Col returns the board column index (0 = file a).
func (s Square) Col() int {
	return int(s) % 8
}

// File returns the algebraic file character, 'a'..'h'.
func (s Square) File() byte {
	return byte('a' + s.Col())
}

// Rank returns the algebraic rank character, '1'..'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row())
}

// String returns the algebraic coordinate, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic coordinate ("a1".."h8") to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	return MakeSquare(int('8'-rank), int(file-'a')), nil
}
