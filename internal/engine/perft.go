package engine

import "github.com/castlebay/chesskit/internal/chess"

// RootMove pairs an origin square with one legal candidate from it.
type RootMove struct {
	From chess.Square
	Cand Candidate
}

// AllLegalMoves returns every legal move for the side to move.
func AllLegalMoves(p *Position) []RootMove {
	var moves []RootMove
	p.squaresOf(p.Turn, func(sq chess.Square, _ chess.Piece) bool {
		for _, cand := range LegalMoves(p, sq) {
			moves = append(moves, RootMove{From: sq, Cand: cand})
		}
		return false
	})
	return moves
}

// Perft counts the leaf positions reachable in `depth` plies. It is the
// correctness oracle for the move generator: from the starting position the
// counts at depths 1, 2, 3 are 20, 400, 8902.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(&p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, _ := Apply(p, m.From, m.Cand)
		nodes += Perft(next, depth-1)
	}
	return nodes
}
