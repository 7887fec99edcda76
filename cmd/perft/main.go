// perft counts leaf positions reachable from a FEN, as a move-generator
// correctness oracle.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/castlebay/chesskit/internal/engine"
	"github.com/castlebay/chesskit/internal/worker"
)

func main() {
	fen := flag.String("fen", engine.InitialFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := engine.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse FEN: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	total, results := worker.ParallelPerft(pos, *depth, *workers)
	elapsed := time.Since(start)

	if *divide {
		// Sort moves for stable output.
		sort.Slice(results, func(i, j int) bool {
			a := results[i].Move.From.String() + results[i].Move.Cand.To.String()
			b := results[j].Move.From.String() + results[j].Move.Cand.To.String()
			return a < b
		})
		for _, r := range results {
			fmt.Printf("%s%s: %d\n", r.Move.From, r.Move.Cand.To, r.Nodes)
		}
	}

	nps := float64(total) / elapsed.Seconds()
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, total, elapsed, nps)
}
