// Package game manages a single chess game session: the authoritative
// position, the ordered move history with per-move position snapshots, and
// the derived status flags. One Game serves one session; the engine below
// it is purely functional, so every mutation happens here.
package game

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/castlebay/chesskit/internal/chess"
	"github.com/castlebay/chesskit/internal/engine"
	"github.com/castlebay/chesskit/internal/errors"
	"github.com/castlebay/chesskit/internal/hashing"
)

// Status holds the derived flags refreshed after every move, relative to
// the player now to move.
type Status struct {
	Check     bool
	Checkmate bool
	Stalemate bool
	Draw      bool
}

// Result is the outcome of a game.
type Result int

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the PGN result token.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Game is a chess game session.
type Game struct {
	initialFEN string
	pos        engine.Position
	history    []*Move
	status     Status

	// Position keys of the initial position and every position reached
	// since, for threefold repetition counting.
	posKeys   []uint64
	keyCounts map[uint64]int

	tags map[string]string
}

// New creates a game from the standard starting position.
func New() *Game {
	g, _ := NewFromFEN(engine.InitialFEN)
	return g
}

// NewFromFEN creates a game from the given position. Construction is the
// only operation that can fail: a malformed FEN yields a parse error and no
// game.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		initialFEN: fen,
		pos:        pos,
		keyCounts:  make(map[uint64]int),
		tags:       make(map[string]string),
	}
	g.pushKey()
	g.refreshStatus()
	return g, nil
}

// Move executes a move given algebraic coordinates and an optional
// promotion piece. It returns nil, never an error, when the request is
// illegal: malformed coordinates, no piece on the source square, not the
// mover's turn, a destination outside the legal candidates, a missing or
// wrong promotion piece, or a game already over.
func (g *Game) Move(from, to string, promotion chess.PieceKind) *Move {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return nil
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return nil
	}
	return g.MoveSquares(fromSq, toSq, promotion)
}

// MoveSquares is Move with parsed squares.
func (g *Game) MoveSquares(from, to chess.Square, promotion chess.PieceKind) *Move {
	if g.GameOver() {
		return nil
	}
	piece := g.pos.PieceAt(from)
	if piece.IsEmpty() || piece.Color != g.pos.Turn {
		return nil
	}

	candidates := engine.LegalMoves(&g.pos, from)
	i := slices.IndexFunc(candidates, func(c engine.Candidate) bool {
		return c.To == to && c.Promotion == promotion
	})
	if i < 0 {
		return nil
	}
	cand := candidates[i]

	before := g.pos
	next, facts := engine.Apply(before, from, cand)

	move := &Move{
		From:      from,
		To:        to,
		Piece:     facts.Piece,
		Captured:  facts.Captured,
		Promotion: facts.Promotion,
		Castling:  facts.Castling,
		EnPassant: facts.EnPassant,
		SAN:       engine.SAN(&before, from, cand, &next),
		FENBefore: before.FEN(),
		Timestamp: time.Now(),
	}

	g.pos = next
	g.history = append(g.history, move)
	g.pushKey()
	g.refreshStatus()
	return move
}

// Undo pops the last move and restores the position stored on it. The side
// to move afterwards is the colour that made the undone move. Returns the
// undone move, or nil when there is nothing to undo.
func (g *Game) Undo() *Move {
	n := len(g.history)
	if n == 0 {
		return nil
	}
	move := g.history[n-1]

	// FENBefore was produced by our own serializer, so it always parses;
	// nothing in the core may be fatal, so a failure aborts the undo.
	pos, err := engine.ParseFEN(move.FENBefore)
	if err != nil {
		return nil
	}
	g.history = g.history[:n-1]
	g.pos = pos
	g.popKey()
	g.refreshStatus()
	return move
}

// PositionAfter rebuilds the position after the move at the given ply by
// replaying the stored move metadata from the initial position. Ply -1
// yields the initial position. The authoritative game state is untouched;
// this is a read-only projection for history browsing.
func (g *Game) PositionAfter(ply int) (engine.Position, error) {
	if ply < -1 || ply >= len(g.history) {
		return engine.Position{}, errors.Wrapf(errors.ErrPlyOutOfRange, "ply %d of %d", ply, len(g.history))
	}
	pos, err := engine.ParseFEN(g.initialFEN)
	if err != nil {
		return engine.Position{}, err
	}
	for i := 0; i <= ply; i++ {
		m := g.history[i]
		cand := engine.Candidate{
			To:        m.To,
			Promotion: m.Promotion,
			Castling:  m.Castling,
			EnPassant: m.EnPassant,
		}
		pos, _ = engine.Apply(pos, m.From, cand)
	}
	return pos, nil
}

// LegalMoves returns the legal candidates for the piece on the given
// square, or nil for a malformed coordinate or an empty square.
func (g *Game) LegalMoves(square string) []engine.Candidate {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return nil
	}
	return engine.LegalMoves(&g.pos, sq)
}

// InCheck reports whether the given colour's king is attacked.
func (g *Game) InCheck(c chess.Color) bool {
	return engine.InCheck(&g.pos, c)
}

// GameOver reports whether the game has reached a terminal state. Terminal
// states are absorbing: no further move is accepted.
func (g *Game) GameOver() bool {
	return g.status.Checkmate || g.status.Stalemate || g.status.Draw
}

// Result returns the game outcome.
func (g *Game) Result() Result {
	switch {
	case g.status.Checkmate:
		if g.pos.Turn == chess.White {
			return BlackWins
		}
		return WhiteWins
	case g.status.Stalemate || g.status.Draw:
		return Drawn
	default:
		return Undecided
	}
}

// Status returns the derived status flags for the player to move.
func (g *Game) Status() Status {
	return g.status
}

// FEN returns the current position's FEN string.
func (g *Game) FEN() string {
	return g.pos.FEN()
}

// InitialFEN returns the FEN the game was constructed from.
func (g *Game) InitialFEN() string {
	return g.initialFEN
}

// Position returns a copy of the current position.
func (g *Game) Position() engine.Position {
	return g.pos
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Color {
	return g.pos.Turn
}

// History returns the move list. The slice is shared; callers must not
// modify it.
func (g *Game) History() []*Move {
	return g.history
}

// PlyCount returns the number of halfmoves played.
func (g *Game) PlyCount() int {
	return len(g.history)
}

// SetTag sets a PGN tag for export.
func (g *Game) SetTag(name, value string) {
	g.tags[name] = value
}

// GetTag returns a PGN tag value, or "" if unset.
func (g *Game) GetTag(name string) string {
	return g.tags[name]
}

// pushKey records the current position's repetition key.
func (g *Game) pushKey() {
	key := hashing.PositionKey(&g.pos)
	g.posKeys = append(g.posKeys, key)
	g.keyCounts[key]++
}

// popKey removes the most recent repetition key.
func (g *Game) popKey() {
	n := len(g.posKeys)
	key := g.posKeys[n-1]
	g.posKeys = g.posKeys[:n-1]
	g.keyCounts[key]--
	if g.keyCounts[key] == 0 {
		delete(g.keyCounts, key)
	}
}

// hasThreefoldRepetition reports whether any position has occurred three
// or more times over the game, the current position included.
func (g *Game) hasThreefoldRepetition() bool {
	for _, count := range g.keyCounts {
		if count >= 3 {
			return true
		}
	}
	return false
}

// refreshStatus recomputes the derived flags relative to the side to move.
func (g *Game) refreshStatus() {
	check := engine.InCheck(&g.pos, g.pos.Turn)
	hasMoves := engine.HasLegalMoves(&g.pos, g.pos.Turn)

	g.status = Status{
		Check:     check,
		Checkmate: check && !hasMoves,
		Stalemate: !check && !hasMoves,
	}
	g.status.Draw = g.status.Stalemate ||
		engine.IsFiftyMoveDraw(&g.pos) ||
		engine.HasInsufficientMaterial(&g.pos) ||
		g.hasThreefoldRepetition()
}
