package engine

import "github.com/castlebay/chesskit/internal/chess"

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(p *Position) bool {
	return InCheck(p, p.Turn) && !HasLegalMoves(p, p.Turn)
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func IsStalemate(p *Position) bool {
	return !InCheck(p, p.Turn) && !HasLegalMoves(p, p.Turn)
}

// IsFiftyMoveDraw reports whether 100 halfmoves have passed without a pawn
// move or capture.
func IsFiftyMoveDraw(p *Position) bool {
	return p.HalfmoveClock >= 100
}

// HasInsufficientMaterial reports whether the position is a dead draw by
// material. The rule set is intentionally narrow: two bare kings, or two
// kings plus a single minor piece. Other drawn material configurations
// (such as same-coloured bishops) are not detected.
func HasInsufficientMaterial(p *Position) bool {
	count := 0
	minorOnly := true
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.Board[row][col]
			if piece.IsEmpty() {
				continue
			}
			count++
			if count > 3 {
				return false
			}
			switch piece.Kind {
			case chess.King, chess.Bishop, chess.Knight:
			default:
				minorOnly = false
			}
		}
	}
	if count == 2 {
		return true
	}
	return count == 3 && minorOnly
}
