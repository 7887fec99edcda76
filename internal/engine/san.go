package engine

import (
	"strings"

	"github.com/castlebay/chesskit/internal/chess"
)

// SAN builds the Standard Algebraic Notation for a move executed from
// `before`, yielding `after`. The check ("+") and checkmate ("#") suffixes
// are derived from the resulting position.
//
// When two identical pieces can legally reach the destination the origin is
// disambiguated by file, then rank, then both, per standard SAN.
func SAN(before *Position, from chess.Square, cand Candidate, after *Position) string {
	if cand.Castling != chess.NoCastle {
		return cand.Castling.String() + checkSuffix(after)
	}

	piece := before.PieceAt(from)
	capture := !before.PieceAt(cand.To).IsEmpty() || cand.EnPassant

	var sb strings.Builder

	if piece.Kind == chess.Pawn {
		if capture {
			sb.WriteByte(from.File())
		}
	} else {
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(before, piece, from, cand.To))
	}

	if capture {
		sb.WriteByte('x')
	}

	sb.WriteString(cand.To.String())

	if cand.Promotion != chess.NoPiece {
		sb.WriteByte('=')
		sb.WriteByte(cand.Promotion.Letter())
	}

	sb.WriteString(checkSuffix(after))
	return sb.String()
}

// checkSuffix returns "#" if the position is checkmate for the side to
// move, "+" if it is check, and "" otherwise.
func checkSuffix(after *Position) string {
	if !InCheck(after, after.Turn) {
		return ""
	}
	if !HasLegalMoves(after, after.Turn) {
		return "#"
	}
	return "+"
}

// disambiguation returns the origin-square fragment needed to distinguish
// the moving piece from other identical pieces that can legally reach the
// same destination: nothing, the file, the rank, or the full square.
func disambiguation(p *Position, piece chess.Piece, from, to chess.Square) string {
	var sameFile, sameRank, ambiguous bool

	p.squaresOf(piece.Color, func(sq chess.Square, other chess.Piece) bool {
		if sq == from || other.Kind != piece.Kind {
			return false
		}
		for _, cand := range LegalMoves(p, sq) {
			if cand.To != to {
				continue
			}
			ambiguous = true
			if sq.Col() == from.Col() {
				sameFile = true
			}
			if sq.Row() == from.Row() {
				sameRank = true
			}
			break
		}
		return false
	})

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(from.File())
	case !sameRank:
		return string(from.Rank())
	default:
		return from.String()
	}
}
