// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Game construction
	startFEN = flag.String("fen", "", "Starting position FEN (default: standard start)")
	moveList = flag.String("moves", "", "Space-separated coordinate moves to play (e.g. \"e2e4 e7e5 g1f3\")")

	// Output options
	showPGN   = flag.Bool("pgn", false, "Print the game as PGN")
	showSAN   = flag.Bool("san", false, "Print the SAN move list")
	showBoard = flag.Bool("board", false, "Print an ASCII board diagram")
	showLegal = flag.String("legal", "", "Print the legal moves from this square")

	// PGN tags
	whiteTag = flag.String("white", "", "White player name for PGN export")
	blackTag = flag.String("black", "", "Black player name for PGN export")
	eventTag = flag.String("event", "", "Event name for PGN export")

	// Persistence
	saveID   = flag.String("save", "", "Save the game under this id")
	loadID   = flag.String("load", "", "Load the game with this id before applying moves")
	deleteID = flag.String("delete", "", "Delete the saved game with this id")
	listIDs  = flag.Bool("list", false, "List saved games")
	dbDir    = flag.String("db", "", "Database directory (default: platform data dir)")

	version = flag.Bool("version", false, "Print version and exit")
)
