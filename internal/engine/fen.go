package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/castlebay/chesskit/internal/chess"
	"github.com/castlebay/chesskit/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a 6-field FEN string into a Position. A malformed string
// yields a *errors.ParseError wrapping errors.ErrInvalidFEN; the returned
// position is never partially initialized.
func ParseFEN(fen string) (Position, error) {
	var pos Position
	pos.EPTarget = chess.NoSquare

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Expected: "6 space-separated fields",
			Got:      fmt.Sprintf("%d", len(fields)),
		}
	}

	if err := parsePlacement(&pos, fen, fields[0]); err != nil {
		return Position{}, err
	}
	if err := parseActiveColor(&pos, fen, fields[1]); err != nil {
		return Position{}, err
	}
	if err := parseCastling(&pos, fen, fields[2]); err != nil {
		return Position{}, err
	}
	if err := parseEPTarget(&pos, fen, fields[3]); err != nil {
		return Position{}, err
	}
	if err := parseClocks(&pos, fen, fields[4], fields[5]); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// parsePlacement parses the piece placement field. It requires exactly
// 8 ranks of exactly 8 files each.
func parsePlacement(pos *Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "placement",
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFENChar(c)
			if !ok {
				return &errors.ParseError{
					Err:   errors.ErrInvalidFEN,
					Input: fen,
					Field: "placement",
					Got:   fmt.Sprintf("character %q", c),
				}
			}
			if col > 7 {
				return &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Input:    fen,
					Field:    "placement",
					Expected: "8 files per rank",
					Got:      fmt.Sprintf("more in rank %d", 8-row),
				}
			}
			pos.Board[row][col] = piece
			col++
		}
		if col != 8 {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    fen,
				Field:    "placement",
				Expected: "8 files per rank",
				Got:      fmt.Sprintf("%d in rank %d", col, 8-row),
			}
		}
	}
	return nil
}

// parseActiveColor parses the side-to-move field.
func parseActiveColor(pos *Position, fen, field string) error {
	switch field {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "active color",
			Expected: `"w" or "b"`,
			Got:      fmt.Sprintf("%q", field),
		}
	}
	return nil
}

// parseCastling parses the castling availability field.
func parseCastling(pos *Position, fen, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return &errors.ParseError{
				Err:   errors.ErrInvalidFEN,
				Input: fen,
				Field: "castling",
				Got:   fmt.Sprintf("character %q", field[i]),
			}
		}
	}
	return nil
}

// parseEPTarget parses the en-passant target square field.
func parseEPTarget(pos *Position, fen, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "en passant",
			Expected: "square or -",
			Got:      fmt.Sprintf("%q", field),
		}
	}
	pos.EPTarget = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, fen, halfmove, fullmove string) error {
	hm, err := strconv.Atoi(halfmove)
	if err != nil || hm < 0 {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "halfmove clock",
			Expected: "non-negative integer",
			Got:      fmt.Sprintf("%q", halfmove),
		}
	}
	fm, err := strconv.Atoi(fullmove)
	if err != nil || fm < 1 {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "fullmove number",
			Expected: "positive integer",
			Got:      fmt.Sprintf("%q", fullmove),
		}
	}
	pos.HalfmoveClock = hm
	pos.FullmoveNumber = fm
	return nil
}

// FEN serializes the position back to a 6-field FEN string. For any
// well-formed input x, ParseFEN(x) followed by FEN() reproduces x exactly.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePlacement(&sb, p)
	sb.WriteByte(' ')
	if p.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, p)
	sb.WriteByte(' ')
	sb.WriteString(p.EPTarget.String())
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement field to the builder.
func writePlacement(sb *strings.Builder, p *Position) {
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := p.Board[row][col]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
}

// writeCastling writes the castling availability field to the builder.
func writeCastling(sb *strings.Builder, p *Position) {
	if p.Castling.None() {
		sb.WriteByte('-')
		return
	}
	if p.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if p.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if p.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if p.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	pos, _ := ParseFEN(InitialFEN)
	return pos
}
