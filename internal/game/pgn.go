package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/castlebay/chesskit/internal/chess"
	"github.com/castlebay/chesskit/internal/engine"
)

// SevenTagRoster lists the mandatory PGN tags in their required order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// tagDefault returns the placeholder value for an unset roster tag.
func tagDefault(name string) string {
	if name == "Date" {
		return "????.??.??"
	}
	return "?"
}

// pgnWriter emits space-separated movetext tokens, breaking lines so that
// no line exceeds the maximum length.
type pgnWriter struct {
	w          io.Writer
	lineLength int
	maxLine    int
	needsSpace bool
}

func newPGNWriter(w io.Writer, maxLine int) *pgnWriter {
	if maxLine <= 0 {
		maxLine = 80
	}
	return &pgnWriter{w: w, maxLine: maxLine}
}

// token writes one movetext token, preceded by a space or newline.
func (o *pgnWriter) token(s string) {
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLine {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

func (o *pgnWriter) newLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WritePGN writes the game as PGN: the seven-tag roster (plus SetUp/FEN
// tags for games from a custom position), a blank line, and the
// move-number-grouped SAN movetext terminated by the result token.
func (g *Game) WritePGN(w io.Writer) {
	for _, name := range SevenTagRoster {
		value := g.GetTag(name)
		if value == "" {
			if name == "Result" {
				value = g.Result().String()
			} else {
				value = tagDefault(name)
			}
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
	}
	if g.initialFEN != engine.InitialFEN {
		fmt.Fprintf(w, "[SetUp \"1\"]\n[FEN \"%s\"]\n", g.initialFEN)
	}
	fmt.Fprintln(w)

	out := newPGNWriter(w, 80)
	start, err := engine.ParseFEN(g.initialFEN)
	if err != nil {
		return
	}
	number := start.FullmoveNumber
	turn := start.Turn

	for i, move := range g.history {
		if turn == chess.White {
			out.token(fmt.Sprintf("%d.", number))
		} else if i == 0 {
			// A game recorded from a Black-to-move position opens with
			// an ellipsis move number.
			out.token(fmt.Sprintf("%d...", number))
		}
		out.token(move.SAN)
		if turn == chess.Black {
			number++
		}
		turn = turn.Opposite()
	}

	out.token(g.Result().String())
	out.newLine()
}

// PGN returns the game as a PGN string.
func (g *Game) PGN() string {
	var sb strings.Builder
	g.WritePGN(&sb)
	return sb.String()
}

// SANLine returns the plain SAN move list grouped by move number on one
// line, without tags or result.
func (g *Game) SANLine() string {
	var sb strings.Builder
	start, err := engine.ParseFEN(g.initialFEN)
	if err != nil {
		return ""
	}
	number := start.FullmoveNumber
	turn := start.Turn
	for i, move := range g.history {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if turn == chess.White {
			fmt.Fprintf(&sb, "%d. ", number)
		} else if i == 0 {
			fmt.Fprintf(&sb, "%d... ", number)
		}
		sb.WriteString(move.SAN)
		if turn == chess.Black {
			number++
		}
		turn = turn.Opposite()
	}
	return sb.String()
}

// escapeTagValue escapes backslashes and quotes in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
