// chesskit is a driver for the chess rules engine: it plays out coordinate
// move lists, reports position and game status, exports PGN, and saves and
// loads games.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/castlebay/chesskit/internal/chess"
	"github.com/castlebay/chesskit/internal/engine"
	"github.com/castlebay/chesskit/internal/game"
	"github.com/castlebay/chesskit/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chesskit version %s\n", programVersion)
		os.Exit(0)
	}

	if *listIDs || *deleteID != "" {
		runStoreAdmin()
		return
	}

	g := buildGame()
	applyMoves(g, *moveList)
	applyTags(g)
	report(g)

	if *saveID != "" {
		s := openStore()
		defer s.Close()
		if err := s.SaveGame(*saveID, g); err != nil {
			fatalf("save game %q: %v", *saveID, err)
		}
		fmt.Printf("saved game %q (%d plies)\n", *saveID, g.PlyCount())
	}
}

// buildGame constructs the game from -load, -fen, or the standard start.
func buildGame() *game.Game {
	if *loadID != "" {
		s := openStore()
		defer s.Close()
		g, err := s.LoadGame(*loadID)
		if err != nil {
			fatalf("load game %q: %v", *loadID, err)
		}
		return g
	}
	if *startFEN != "" {
		g, err := game.NewFromFEN(*startFEN)
		if err != nil {
			fatalf("parse FEN: %v", err)
		}
		return g
	}
	return game.New()
}

// applyMoves plays a space-separated coordinate move list onto the game.
func applyMoves(g *game.Game, list string) {
	for i, text := range strings.Fields(list) {
		from, to, promotion, err := parseCoordMove(text)
		if err != nil {
			fatalf("move %d: %v", i+1, err)
		}
		if g.Move(from, to, promotion) == nil {
			fatalf("move %d (%s): illegal in position %s", i+1, text, g.FEN())
		}
	}
}

// parseCoordMove splits coordinate notation ("e2e4", "e7e8q") into its
// parts.
func parseCoordMove(text string) (from, to string, promotion chess.PieceKind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return "", "", chess.NoPiece, fmt.Errorf("malformed move %q", text)
	}
	from, to = text[:2], text[2:4]
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promotion = chess.Queen
		case 'r':
			promotion = chess.Rook
		case 'b':
			promotion = chess.Bishop
		case 'n':
			promotion = chess.Knight
		default:
			return "", "", chess.NoPiece, fmt.Errorf("unknown promotion piece %q", text[4])
		}
	}
	return from, to, promotion, nil
}

func applyTags(g *game.Game) {
	if *whiteTag != "" {
		g.SetTag("White", *whiteTag)
	}
	if *blackTag != "" {
		g.SetTag("Black", *blackTag)
	}
	if *eventTag != "" {
		g.SetTag("Event", *eventTag)
	}
}

func report(g *game.Game) {
	if *showBoard {
		printBoard(g.Position())
	}
	if *showLegal != "" {
		for _, cand := range g.LegalMoves(*showLegal) {
			if cand.Promotion != chess.NoPiece {
				fmt.Printf("%s%s=%c\n", *showLegal, cand.To, cand.Promotion.Letter())
			} else {
				fmt.Printf("%s%s\n", *showLegal, cand.To)
			}
		}
	}
	if *showSAN {
		fmt.Println(g.SANLine())
	}
	if *showPGN {
		g.WritePGN(os.Stdout)
	}
	if !*showPGN && !*showSAN {
		fmt.Println(g.FEN())
		status := g.Status()
		switch {
		case status.Checkmate:
			fmt.Printf("checkmate, %s\n", g.Result())
		case status.Stalemate:
			fmt.Println("stalemate, 1/2-1/2")
		case status.Draw:
			fmt.Println("draw, 1/2-1/2")
		case status.Check:
			fmt.Printf("%s to move, in check\n", g.Turn())
		default:
			fmt.Printf("%s to move\n", g.Turn())
		}
	}
}

// printBoard writes an ASCII diagram, rank 8 at the top.
func printBoard(pos engine.Position) {
	for row := 0; row < 8; row++ {
		fmt.Printf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			piece := pos.Board[row][col]
			if piece.IsEmpty() {
				fmt.Print(" .")
			} else {
				fmt.Printf(" %c", piece.FENChar())
			}
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
}

func runStoreAdmin() {
	s := openStore()
	defer s.Close()

	if *deleteID != "" {
		if err := s.DeleteGame(*deleteID); err != nil {
			fatalf("delete game %q: %v", *deleteID, err)
		}
		fmt.Printf("deleted game %q\n", *deleteID)
	}
	if *listIDs {
		records, err := s.ListGames()
		if err != nil {
			fatalf("list games: %v", err)
		}
		for _, r := range records {
			fmt.Printf("%s\t%d plies\t%s\t%s\n", r.ID, len(r.Moves), r.Result, r.SavedAt.Format("2006-01-02 15:04"))
		}
	}
}

func openStore() *store.Store {
	var s *store.Store
	var err error
	if *dbDir != "" {
		s, err = store.Open(*dbDir)
	} else {
		s, err = store.OpenDefault()
	}
	if err != nil {
		fatalf("open store: %v", err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
