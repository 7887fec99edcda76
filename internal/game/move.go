package game

import (
	"time"

	"github.com/castlebay/chesskit/internal/chess"
)

// Move is the immutable record of one executed move. It stores the position
// as it was before the move was applied (FENBefore), which is what undo and
// history navigation replay from.
type Move struct {
	From      chess.Square
	To        chess.Square
	Piece     chess.Piece
	Captured  chess.Piece // zero value when nothing was captured
	Promotion chess.PieceKind
	Castling  chess.CastlingSide
	EnPassant bool
	SAN       string
	FENBefore string
	Timestamp time.Time
}

// IsCapture reports whether the move captured a piece (including en passant).
func (m *Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion reports whether the move promoted a pawn.
func (m *Move) IsPromotion() bool {
	return m.Promotion != chess.NoPiece
}

// IsCastle reports whether the move was a castling move.
func (m *Move) IsCastle() bool {
	return m.Castling != chess.NoCastle
}

// Coord returns the move in coordinate notation ("e2e4", "e7e8q").
func (m *Move) Coord() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPiece {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
