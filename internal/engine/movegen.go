package engine

import "github.com/castlebay/chesskit/internal/chess"

// Candidate is a destination a piece can move to, ignoring king safety.
// Promotion is set on each of the four promotion variants of a pawn move to
// the farthest rank; Castling and EnPassant mark the special moves so that
// applying the candidate needs no rediscovery.
type Candidate struct {
	To        chess.Square
	Promotion chess.PieceKind
	Castling  chess.CastlingSide
	EnPassant bool
}

// promotionKinds are the four pieces a pawn may promote to.
var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegalMoves returns every destination reachable from the given
// square by the occupying piece's movement rule, without testing whether
// the mover's own king would be left attacked. An empty square yields nil.
func PseudoLegalMoves(p *Position, from chess.Square) []Candidate {
	piece := p.PieceAt(from)
	if piece.IsEmpty() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(p, from, piece.Color)
	case chess.Knight:
		return offsetMoves(p, from, piece.Color, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(p, from, piece.Color, diagonalDirs[:])
	case chess.Rook:
		return slidingMoves(p, from, piece.Color, straightDirs[:])
	case chess.Queen:
		moves := slidingMoves(p, from, piece.Color, diagonalDirs[:])
		return append(moves, slidingMoves(p, from, piece.Color, straightDirs[:])...)
	case chess.King:
		moves := offsetMoves(p, from, piece.Color, kingOffsets[:])
		return append(moves, castlingMoves(p, piece.Color)...)
	}
	return nil
}

// pawnMoves generates pushes, captures, en-passant captures, and promotion
// variants for a pawn of the given colour.
func pawnMoves(p *Position, from chess.Square, c chess.Color) []Candidate {
	var moves []Candidate
	row, col := from.Row(), from.Col()
	dir := pawnRowDelta(c)

	startRow, lastRow := 6, 0 // White: rank 2 start, rank 8 promotion
	if c == chess.Black {
		startRow, lastRow = 1, 7
	}

	appendTarget := func(to chess.Square, enPassant bool) {
		if to.Row() == lastRow {
			for _, kind := range promotionKinds {
				moves = append(moves, Candidate{To: to, Promotion: kind})
			}
			return
		}
		moves = append(moves, Candidate{To: to, EnPassant: enPassant})
	}

	// Single push onto an empty square, and the double push from the
	// starting rank when both intervening squares are empty.
	if chess.OnBoard(row+dir, col) && p.Board[row+dir][col].IsEmpty() {
		appendTarget(chess.MakeSquare(row+dir, col), false)
		if row == startRow && p.Board[row+2*dir][col].IsEmpty() {
			appendTarget(chess.MakeSquare(row+2*dir, col), false)
		}
	}

	// Diagonal captures, including the current en-passant target.
	for _, dc := range [2]int{-1, 1} {
		r, cc := row+dir, col+dc
		if !chess.OnBoard(r, cc) {
			continue
		}
		to := chess.MakeSquare(r, cc)
		target := p.Board[r][cc]
		if !target.IsEmpty() && target.Color != c {
			appendTarget(to, false)
		} else if to == p.EPTarget {
			appendTarget(to, true)
		}
	}

	return moves
}

// offsetMoves generates moves from a fixed offset set (knight, king),
// filtered to board bounds and non-friendly occupancy.
func offsetMoves(p *Position, from chess.Square, c chess.Color, offsets [][2]int) []Candidate {
	var moves []Candidate
	row, col := from.Row(), from.Col()
	for _, d := range offsets {
		r, cc := row+d[0], col+d[1]
		if !chess.OnBoard(r, cc) {
			continue
		}
		target := p.Board[r][cc]
		if target.IsEmpty() || target.Color != c {
			moves = append(moves, Candidate{To: chess.MakeSquare(r, cc)})
		}
	}
	return moves
}

// slidingMoves ray-casts in the given directions until blocked, including
// the blocking square only when it holds an enemy piece.
func slidingMoves(p *Position, from chess.Square, c chess.Color, dirs [][2]int) []Candidate {
	var moves []Candidate
	row, col := from.Row(), from.Col()
	for _, d := range dirs {
		r, cc := row+d[0], col+d[1]
		for chess.OnBoard(r, cc) {
			target := p.Board[r][cc]
			if target.IsEmpty() {
				moves = append(moves, Candidate{To: chess.MakeSquare(r, cc)})
				r += d[0]
				cc += d[1]
				continue
			}
			if target.Color != c {
				moves = append(moves, Candidate{To: chess.MakeSquare(r, cc)})
			}
			break
		}
	}
	return moves
}

// castlingMoves yields the king's castling destinations when the relevant
// right is still held, every square between king and rook is empty, the
// king is not currently attacked, and no square the king transits
// (destination included) is attacked by the opponent.
func castlingMoves(p *Position, c chess.Color) []Candidate {
	var moves []Candidate
	row := 7 // rank 1
	if c == chess.Black {
		row = 0 // rank 8
	}

	kingFrom := chess.MakeSquare(row, 4)
	if p.PieceAt(kingFrom) != (chess.Piece{Kind: chess.King, Color: c}) {
		return nil
	}

	enemy := c.Opposite()
	if IsSquareAttacked(p, kingFrom, enemy) {
		return nil
	}

	// Kingside: f and g files empty, f and g not attacked.
	if p.Castling.Has(c, chess.Kingside) &&
		p.Board[row][5].IsEmpty() && p.Board[row][6].IsEmpty() &&
		!IsSquareAttacked(p, chess.MakeSquare(row, 5), enemy) &&
		!IsSquareAttacked(p, chess.MakeSquare(row, 6), enemy) {
		moves = append(moves, Candidate{To: chess.MakeSquare(row, 6), Castling: chess.Kingside})
	}

	// Queenside: b, c and d files empty, c and d not attacked. The rook
	// passes over b1/b8 but the king does not, so b is not attack-tested.
	if p.Castling.Has(c, chess.Queenside) &&
		p.Board[row][1].IsEmpty() && p.Board[row][2].IsEmpty() && p.Board[row][3].IsEmpty() &&
		!IsSquareAttacked(p, chess.MakeSquare(row, 2), enemy) &&
		!IsSquareAttacked(p, chess.MakeSquare(row, 3), enemy) {
		moves = append(moves, Candidate{To: chess.MakeSquare(row, 2), Castling: chess.Queenside})
	}

	return moves
}
