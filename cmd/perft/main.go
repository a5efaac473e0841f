// Command perft counts and splits leaf nodes from a position, the
// standard way to test and benchmark move generation (spec.md §7's
// example is exactly this tool's default report). Grounded on the
// teacher's perft/perft.go CLI shape (FEN flag, min/max depth, named
// known positions, a depth/counters table); the --split flag farms
// each root move's subtree out to golang.org/x/sync/errgroup instead
// of walking them on one goroutine, since each subtree is independent
// once the root move has been made on its own position.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/YashwantBhosale/chessplay/engine"
	"github.com/YashwantBhosale/chessplay/internal/perft"
	"github.com/YashwantBhosale/chessplay/notation"
)

var (
	fenFlag  = flag.String("fen", "startpos", "position to search, or one of the named positions below")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non-zero, searches only this depth")
	split    = flag.Bool("split", false, "break each depth down by root move, computed concurrently")
)

var knownPositions = map[string]string{
	"startpos": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	fen := *fenFlag
	if known, ok := knownPositions[fen]; ok {
		fen = known
	}
	if *depth != 0 {
		*minDepth, *maxDepth = *depth, *depth
	}

	fmt.Printf("Searching FEN %q\n", fen)
	fmt.Printf("depth        nodes   captures enpassant castles   promotions   elapsed\n")
	fmt.Printf("-----+------------+----------+---------+---------+----------+---------\n")

	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()

		var c perft.Counters
		var err error
		if *split {
			c, err = splitCount(fen, d)
		} else {
			var pos *engine.Position
			pos, err = notation.ParseFEN(fen)
			if err == nil {
				c = perft.Count(pos, d)
			}
		}
		if err != nil {
			log.Fatalln("cannot parse --fen:", err)
		}

		elapsed := time.Since(start)
		fmt.Printf("%6d %12d %10d %9d %9d %11d %9s\n",
			d, c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, elapsed)
	}
}

// splitCount computes depth's node count by farming each root move's
// subtree out to its own goroutine over an independently parsed
// position, so no mutable Position state is shared across goroutines.
func splitCount(fen string, depth int) (perft.Counters, error) {
	root, err := notation.ParseFEN(fen)
	if err != nil {
		return perft.Counters{}, err
	}
	legal := root.FilterLegalMoves(root.SideToMove)

	totals := make([]perft.Counters, len(legal))
	g, _ := errgroup.WithContext(context.Background())
	for i, sm := range legal {
		i, sm := i, sm
		g.Go(func() error {
			pos, err := notation.ParseFEN(fen)
			if err != nil {
				return err
			}
			pos.Make(sm.Move)
			totals[i] = perft.Count(pos, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return perft.Counters{}, err
	}

	// At depth 1 the root move IS the leaf move, so its own kind
	// (capture/en-passant/castle/promotion) is what perft.Count would
	// have tallied had it been given this move at depth==1 internally;
	// every deeper depth already folds that tally into totals[i].
	var total perft.Counters
	for i, sm := range legal {
		fmt.Printf("  %s: %d\n", sm.Move.UCI(), totals[i].Nodes)
		c := totals[i]
		if depth == 1 {
			if sm.Move.IsCapture() {
				c.Captures++
			}
			if sm.Move.Flag() == engine.EnPassantFlag {
				c.EnPassant++
			}
			if sm.Move.Flag() == engine.CastleFlag {
				c.Castles++
			}
			if sm.Move.IsPromotion() {
				c.Promotions++
			}
		}
		total.Add(c)
	}
	return total, nil
}
