// Package chess provides the core chess types: colours, piece kinds,
// coordinates, and castling state.
package chess

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type. The zero value means no piece.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase letter of a piece kind as used in FEN
// placement and SAN (pawns carry no letter in SAN but are 'P' in FEN).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is an optional coloured piece occupying a square. The zero value
// (Kind == NoPiece) is an empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// IsEmpty reports whether p denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// FENChar returns the FEN placement character for the piece: uppercase for
// White, lowercase for Black. Empty pieces return 0.
func (p Piece) FENChar() byte {
	if p.IsEmpty() {
		return 0
	}
	c := p.Kind.Letter()
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

// PieceFromFENChar converts a FEN placement character to a piece.
// The second return value is false if the character is not a piece letter.
func PieceFromFENChar(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	var kind PieceKind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: color}, true
}

// CastlingSide distinguishes the two castling directions. The zero value
// means a move is not a castling move.
type CastlingSide int

const (
	NoCastle CastlingSide = iota
	Kingside
	Queenside
)

// String returns the SAN representation of a castling side.
func (s CastlingSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// CastlingRights holds the four independent castling permissions. A right
// only ever turns false, once the king or the relevant rook has moved or
// the rook has been captured on its origin square.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights of the standard starting position.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Has reports whether the given colour may still castle on the given side.
func (r CastlingRights) Has(c Color, side CastlingSide) bool {
	if c == White {
		if side == Kingside {
			return r.WhiteKingside
		}
		return r.WhiteQueenside
	}
	if side == Kingside {
		return r.BlackKingside
	}
	return r.BlackQueenside
}

// Clear revokes the right for the given colour and side.
func (r *CastlingRights) Clear(c Color, side CastlingSide) {
	if c == White {
		if side == Kingside {
			r.WhiteKingside = false
		} else {
			r.WhiteQueenside = false
		}
		return
	}
	if side == Kingside {
		r.BlackKingside = false
	} else {
		r.BlackQueenside = false
	}
}

// ClearAll revokes both rights for the given colour.
func (r *CastlingRights) ClearAll(c Color) {
	r.Clear(c, Kingside)
	r.Clear(c, Queenside)
}

// None reports whether no castling right remains for either colour.
func (r CastlingRights) None() bool {
	return !r.WhiteKingside && !r.WhiteQueenside && !r.BlackKingside && !r.BlackQueenside
}
