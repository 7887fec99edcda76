package engine

import "github.com/castlebay/chesskit/internal/chess"

// wouldExposeKing applies the candidate to a value copy of the position and
// reports whether the mover's king ends up attacked. The authoritative
// position is never mutated; there is no rollback to get wrong.
func wouldExposeKing(p *Position, from chess.Square, cand Candidate) bool {
	mover := p.PieceAt(from).Color
	next, _ := Apply(*p, from, cand)
	return InCheck(&next, mover)
}

// LegalMoves returns the pseudo-legal moves from the given square filtered
// by king safety. The moves are legal for the colour of the occupying
// piece; whether it is actually that colour's turn is the caller's concern.
func LegalMoves(p *Position, from chess.Square) []Candidate {
	pseudo := PseudoLegalMoves(p, from)
	if pseudo == nil {
		return nil
	}
	legal := pseudo[:0]
	for _, cand := range pseudo {
		if !wouldExposeKing(p, from, cand) {
			legal = append(legal, cand)
		}
	}
	if len(legal) == 0 {
		return nil
	}
	return legal
}

// HasLegalMoves reports whether any piece of the given colour has at least
// one legal move, short-circuiting on the first found.
func HasLegalMoves(p *Position, c chess.Color) bool {
	return p.squaresOf(c, func(sq chess.Square, _ chess.Piece) bool {
		for _, cand := range PseudoLegalMoves(p, sq) {
			if !wouldExposeKing(p, sq, cand) {
				return true
			}
		}
		return false
	})
}
