// Package perft counts leaf nodes reachable from a position, the
// standard move-generator correctness and performance check. Count is
// used by cmd/perft (the driver) and by this package's own tests; the
// engine package's perft test has its own leaf counter. Grounded on the
// teacher's perft/perft.go.
package perft

import "github.com/YashwantBhosale/chessplay/engine"

// Counters tallies leaf-level move-kind breakdowns alongside the raw
// node count, matching the teacher's perft counters struct.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates ot into co.
func (co *Counters) Add(ot Counters) {
	co.Nodes += ot.Nodes
	co.Captures += ot.Captures
	co.EnPassant += ot.EnPassant
	co.Castles += ot.Castles
	co.Promotions += ot.Promotions
}

// Count walks every legal move to depth plies below pos and returns
// the aggregate counters, restoring pos to its original state.
func Count(pos *engine.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var r Counters
	for _, sm := range pos.FilterLegalMoves(pos.SideToMove) {
		move := sm.Move
		if depth == 1 {
			if move.IsCapture() {
				r.Captures++
			}
			if move.Flag() == engine.EnPassantFlag {
				r.EnPassant++
			}
			if move.Flag() == engine.CastleFlag {
				r.Castles++
			}
			if move.IsPromotion() {
				r.Promotions++
			}
		}
		pos.Make(move)
		r.Add(Count(pos, depth-1))
		pos.Unmake()
	}
	return r
}

// Split breaks the node count for depth down by the root's immediate
// legal moves, returning one Counters per move in generation order
// alongside the move that produced it. This is perft's usual
// divide-and-conquer debugging aid.
func Split(pos *engine.Position, depth int) ([]engine.Move, []Counters) {
	legal := pos.FilterLegalMoves(pos.SideToMove)
	moves := make([]engine.Move, len(legal))
	counts := make([]Counters, len(legal))
	for i, sm := range legal {
		moves[i] = sm.Move
		pos.Make(sm.Move)
		counts[i] = Count(pos, depth-1)
		pos.Unmake()
	}
	return moves, counts
}
