// legal.go filters pseudo-legal moves down to legal ones (§4.5) and
// attaches the move-ordering heuristic of §4.7 to each survivor. The
// scoring is structurally grounded on the teacher's move_ordering.go
// mvvlva() idea (cheap additive terms computed once, used only to
// sort candidates) but follows spec.md's flat, non-MVV/LVA formula.

package engine

// isCentral reports whether sq lies in the D-F x 4-5 "central square"
// box §4.7 rewards knight/bishop moves into.
func isCentral(sq Square) bool {
	f, r := sq.File(), sq.Rank()
	return f >= 3 && f <= 5 && (r == 3 || r == 4)
}

// isPawnCentral reports whether sq is exactly D4/E4/D5/E5.
func isPawnCentral(sq Square) bool {
	f, r := sq.File(), sq.Rank()
	return (f == 3 || f == 4) && (r == 3 || r == 4)
}

// scoreMove computes the §4.7 additive ordering heuristic for a move
// that has already been verified legal; pos must be the
// already-made, post-move position so "gives check" can be read off
// directly.
func scoreMove(pos *Position, mover Color, move Move) int {
	score := 0
	if move.IsCapture() {
		score += 10
	}
	if pos.InCheck(mover.Opposite()) {
		score += 20
	}
	if move.IsPromotion() {
		score += 15
	}
	if move.Flag() == CastleFlag {
		score += 10
	}
	fig := move.Moved()
	to := move.To()
	if (fig == Knight || fig == Bishop) && isCentral(to) {
		score += 5
	}
	if fig == Pawn && isPawnCentral(to) {
		score += 2
	}
	return score
}

// FilterLegalMoves narrows pseudo-legal moves for color down to those
// that do not leave color's own king in check, preserving generation
// order, and attaches each survivor's ordering score.
func (pos *Position) FilterLegalMoves(color Color) []ScoredMove {
	pseudo, _ := pos.GeneratePseudoLegalMoves(color)
	legal := make([]ScoredMove, 0, len(pseudo))
	for _, m := range pseudo {
		pos.Make(m)
		if !pos.InCheck(color) {
			legal = append(legal, ScoredMove{Move: m, Score: scoreMove(pos, color, m)})
		}
		pos.Unmake()
	}
	return legal
}
