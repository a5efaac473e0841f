// domove.go implements O(1), fully reversible Make/Unmake over the
// move-history stack. The push/inverse-of-every-step shape follows the
// teacher's position.go DoMove/UndoMove; the History slice is pre-sized
// after original_source/move_stack.c's fixed-capacity array-stack, so
// Make does not allocate until a game outgrows initialHistoryCapacity
// plies, at which point append grows the slice.

package engine

// initialHistoryCapacity is large enough that a full game never forces
// History to reallocate in the common case.
const initialHistoryCapacity = 256

// lostCastleRights[sq] is the set of castling rights forfeited when a
// king or rook leaves (or a rook is captured on) sq.
var lostCastleRights [64]Castle

func init() {
	lostCastleRights[SquareA1] = WhiteOOO
	lostCastleRights[SquareA1+4] = WhiteOOO | WhiteOO // e1
	lostCastleRights[SquareA1+7] = WhiteOO            // h1
	lostCastleRights[SquareA8] = BlackOOO
	lostCastleRights[SquareA8+4] = BlackOOO | BlackOO // e8
	lostCastleRights[SquareA8+7] = BlackOO            // h8
}

// CastlingRookSquares returns the rook's start and end square for a
// castling move whose king lands on kingTo.
func CastlingRookSquares(kingTo Square) (rookFrom, rookTo Square) {
	rank := kingTo.Rank()
	if kingTo.File() == 6 { // king-side: h-file -> f-file
		return RankFile(rank, 7), RankFile(rank, 5)
	}
	// queen-side: a-file -> d-file
	return RankFile(rank, 0), RankFile(rank, 3)
}

// Make applies move to pos, updating every invariant in §3 and pushing
// an UndoRecord that Unmake can later use to reverse it exactly.
// move must be pseudo-legal for pos; Make itself does not check for
// self-check (that is the legality filter's job).
func (pos *Position) Make(move Move) {
	if pos.History == nil {
		pos.History = make([]UndoRecord, 0, initialHistoryCapacity)
	}

	us := pos.SideToMove
	them := us.Opposite()
	from, to := move.From(), move.To()
	moved := ColorFigure(us, move.Moved())

	undo := UndoRecord{
		Move:         move,
		PrevEPTarget: pos.EPTarget,
		PrevCastle:   pos.Castle,
	}

	// Resolve and remove the captured piece, if any, which for
	// en-passant sits on a different square than To().
	captSq := move.CaptureSquare()
	if move.IsCapture() {
		captured := ColorFigure(them, move.Captured())
		undo.CapturedPiece = captured
		pos.Remove(captSq, captured)
		pos.Captured[us] = append(pos.Captured[us], captured)
	}

	// Move the piece itself. Promotions place a new piece kind on To()
	// rather than relocating the pawn.
	pos.Remove(from, moved)
	if move.IsPromotion() {
		pos.Put(to, ColorFigure(us, move.Promoted()))
	} else {
		pos.Put(to, moved)
	}

	// Castling also relocates the rook.
	if move.Flag() == CastleFlag {
		rookFrom, rookTo := CastlingRookSquares(to)
		rook := ColorFigure(us, Rook)
		pos.Remove(rookFrom, rook)
		pos.Put(rookTo, rook)
	}

	// En-passant target: set only for a fresh two-step pawn push.
	if move.Moved() == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		pos.setEPTarget(RankFile((from.Rank()+to.Rank())/2, from.File()))
	} else {
		pos.setEPTarget(NoSquare)
	}

	// Castling rights lost by this move.
	pos.setCastle(pos.Castle &^ lostCastleRights[from] &^ lostCastleRights[to])

	pos.toggleSideToMove()
	pos.SideToMove = them

	pos.History = append(pos.History, undo)
}

// Unmake reverses the most recent Make call, restoring pos bit-exactly.
// Panics (an InternalInconsistency condition, never expected in
// correct use) if there is no move to undo.
func (pos *Position) Unmake() {
	n := len(pos.History)
	if n == 0 {
		panic(ErrInternalInconsistency)
	}
	undo := pos.History[n-1]
	pos.History = pos.History[:n-1]

	pos.toggleSideToMove()
	pos.SideToMove = pos.SideToMove.Opposite()
	us := pos.SideToMove

	move := undo.Move
	from, to := move.From(), move.To()
	moved := ColorFigure(us, move.Moved())

	if move.Flag() == CastleFlag {
		rookFrom, rookTo := CastlingRookSquares(to)
		rook := ColorFigure(us, Rook)
		pos.Remove(rookTo, rook)
		pos.Put(rookFrom, rook)
	}

	if move.IsPromotion() {
		pos.Remove(to, ColorFigure(us, move.Promoted()))
	} else {
		pos.Remove(to, moved)
	}
	pos.Put(from, moved)

	if move.IsCapture() {
		pos.Put(move.CaptureSquare(), undo.CapturedPiece)
		log := pos.Captured[us]
		pos.Captured[us] = log[:len(log)-1]
	}

	pos.setCastle(undo.PrevCastle)
	pos.setEPTarget(undo.PrevEPTarget)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
