package engine

import "github.com/castlebay/chesskit/internal/chess"

// MoveFacts records what a transition did to the board: the piece that
// moved, what it captured (if anything), and which special-move rule fired.
type MoveFacts struct {
	Piece     chess.Piece
	Captured  chess.Piece // zero value when nothing was captured
	Promotion chess.PieceKind
	Castling  chess.CastlingSide
	EnPassant bool
}

// Apply executes a candidate move on a copy of the position and returns the
// resulting position together with the facts of the move. It is a pure
// transition: the receiver-by-value argument is never shared with the
// caller's authoritative state.
//
// Apply assumes the candidate came from PseudoLegalMoves for the side to
// move; it updates castling rights, the en-passant window, both clocks, and
// the turn.
func Apply(p Position, from chess.Square, cand Candidate) (Position, MoveFacts) {
	piece := p.PieceAt(from)
	facts := MoveFacts{
		Piece:     piece,
		Promotion: cand.Promotion,
		Castling:  cand.Castling,
		EnPassant: cand.EnPassant,
	}

	captured := p.PieceAt(cand.To)
	if cand.EnPassant {
		// The captured pawn sits beside the destination, not on it.
		capSq := chess.MakeSquare(from.Row(), cand.To.Col())
		captured = p.PieceAt(capSq)
		p.clear(capSq)
	}
	facts.Captured = captured

	p.clear(from)
	if cand.Promotion != chess.NoPiece {
		p.put(cand.To, chess.Piece{Kind: cand.Promotion, Color: piece.Color})
	} else {
		p.put(cand.To, piece)
	}

	if cand.Castling != chess.NoCastle {
		moveCastlingRook(&p, piece.Color, cand.Castling)
	}

	updateCastlingRights(&p, piece, from, cand.To, captured)

	// The en-passant window lasts exactly one move: clear it, then reopen
	// it only on a fresh double pawn push.
	p.EPTarget = chess.NoSquare
	if piece.Kind == chess.Pawn && abs(cand.To.Row()-from.Row()) == 2 {
		p.EPTarget = chess.MakeSquare((from.Row()+cand.To.Row())/2, from.Col())
	}

	if piece.Kind == chess.Pawn || !captured.IsEmpty() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if piece.Color == chess.Black {
		p.FullmoveNumber++
	}
	p.Turn = piece.Color.Opposite()

	return p, facts
}

// moveCastlingRook relocates the rook half of a castling move.
func moveCastlingRook(p *Position, c chess.Color, side chess.CastlingSide) {
	row := 7
	if c == chess.Black {
		row = 0
	}
	var fromCol, toCol int
	if side == chess.Kingside {
		fromCol, toCol = 7, 5
	} else {
		fromCol, toCol = 0, 3
	}
	rook := p.Board[row][fromCol]
	p.clear(chess.MakeSquare(row, fromCol))
	p.put(chess.MakeSquare(row, toCol), rook)
}

// updateCastlingRights revokes rights when a king or rook leaves its origin
// square, or when a rook is captured on its origin square.
func updateCastlingRights(p *Position, piece chess.Piece, from, to chess.Square, captured chess.Piece) {
	if piece.Kind == chess.King {
		p.Castling.ClearAll(piece.Color)
	}
	if piece.Kind == chess.Rook {
		clearRightForRookSquare(p, piece.Color, from)
	}
	if captured.Kind == chess.Rook {
		clearRightForRookSquare(p, captured.Color, to)
	}
}

// clearRightForRookSquare revokes the castling right associated with a rook
// origin square, if sq is one.
func clearRightForRookSquare(p *Position, c chess.Color, sq chess.Square) {
	homeRow := 7
	if c == chess.Black {
		homeRow = 0
	}
	if sq.Row() != homeRow {
		return
	}
	switch sq.Col() {
	case 0:
		p.Castling.Clear(c, chess.Queenside)
	case 7:
		p.Castling.Clear(c, chess.Kingside)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
