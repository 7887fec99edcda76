package engine

import "github.com/castlebay/chesskit/internal/chess"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// pawnRowDelta returns the row delta of a forward pawn step for the given
// colour. Row 0 is rank 8, so White pawns move toward smaller row indices.
func pawnRowDelta(c chess.Color) int {
	if c == chess.White {
		return -1
	}
	return 1
}

// IsSquareAttacked reports whether the square is attacked by any piece of
// the given colour. Pawns are tested in their capture directions only,
// sliding pieces require a clear path, and knights and kings use their
// fixed offset sets.
func IsSquareAttacked(p *Position, sq chess.Square, by chess.Color) bool {
	row, col := sq.Row(), sq.Col()

	// Pawn attacks: a pawn of colour `by` on an adjacent file one step
	// behind (from its own point of view) attacks this square.
	pawnRow := row - pawnRowDelta(by)
	for _, dc := range [2]int{-1, 1} {
		if chess.OnBoard(pawnRow, col+dc) {
			if p.Board[pawnRow][col+dc] == (chess.Piece{Kind: chess.Pawn, Color: by}) {
				return true
			}
		}
	}

	// Knight attacks.
	knight := chess.Piece{Kind: chess.Knight, Color: by}
	for _, d := range knightOffsets {
		r, c := row+d[0], col+d[1]
		if chess.OnBoard(r, c) && p.Board[r][c] == knight {
			return true
		}
	}

	// King adjacency.
	king := chess.Piece{Kind: chess.King, Color: by}
	for _, d := range kingOffsets {
		r, c := row+d[0], col+d[1]
		if chess.OnBoard(r, c) && p.Board[r][c] == king {
			return true
		}
	}

	// Sliding attacks along diagonals: bishop or queen.
	if slidingAttack(p, row, col, by, diagonalDirs, chess.Bishop) {
		return true
	}

	// Sliding attacks along ranks and files: rook or queen.
	return slidingAttack(p, row, col, by, straightDirs, chess.Rook)
}

// slidingAttack ray-casts from (row, col) in the given directions and
// reports whether the first piece met is an enemy slider of the given kind
// or a queen.
func slidingAttack(p *Position, row, col int, by chess.Color, dirs [4][2]int, kind chess.PieceKind) bool {
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		for chess.OnBoard(r, c) {
			piece := p.Board[r][c]
			if !piece.IsEmpty() {
				if piece.Color == by && (piece.Kind == kind || piece.Kind == chess.Queen) {
					return true
				}
				break // blocked
			}
			r += d[0]
			c += d[1]
		}
	}
	return false
}

// InCheck reports whether the given colour's king is attacked.
func InCheck(p *Position, c chess.Color) bool {
	king := p.KingSquare(c)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(p, king, c.Opposite())
}
