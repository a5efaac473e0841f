// moves.go implements the packed 32-bit Move encoding:
//
//	from (6 bits) | to (6 bits) | moved (3 bits) |
//	captured (3 bits) | promoted (3 bits) | flag (3 bits)
//
// grounded on the packed-uint Move representations in
// Bubblyworld-dragontoothmg/types.go (there a uint16) and
// treepeck-chego (a packed uint32), generalized to carry the captured
// and promoted figures the spec's make/unmake needs inline.

package engine

import "fmt"

const (
	moveFromShift     = 0
	moveToShift       = 6
	moveMovedShift    = 12
	moveCapturedShift = 15
	movePromotedShift = 18
	moveFlagShift     = 21

	moveSquareMask = 0x3f
	moveFigureMask = 0x7
	moveFlagMask   = 0x7
)

// MoveFlag categorizes a Move beyond its source/destination/figures.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	CaptureFlag
	EnPassantFlag
	CastleFlag
	PromotionFlag
)

// Move is a packed, position-independent description of a single ply.
// The zero value, NullMove, is a sentinel returned at search leaves.
type Move uint32

// NullMove is returned by the evaluator's leaf case and by failed
// lookups; it never appears in a legal-move list.
const NullMove Move = 0

// MakeMove packs a move's fields into a Move value.
func MakeMove(from, to Square, moved, captured, promoted Figure, flag MoveFlag) Move {
	return Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(moved)<<moveMovedShift |
		Move(captured)<<moveCapturedShift |
		Move(promoted)<<movePromotedShift |
		Move(flag)<<moveFlagShift
}

// From returns the source square.
func (m Move) From() Square { return Square(m >> moveFromShift & moveSquareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & moveSquareMask) }

// Moved returns the figure kind that moved (color is whoever moved it).
func (m Move) Moved() Figure { return Figure(m >> moveMovedShift & moveFigureMask) }

// Captured returns the figure kind captured, or NoFigure.
func (m Move) Captured() Figure { return Figure(m >> moveCapturedShift & moveFigureMask) }

// Promoted returns the figure kind promoted to, or NoFigure.
func (m Move) Promoted() Figure { return Figure(m >> movePromotedShift & moveFigureMask) }

// Flag returns the move's category flag.
func (m Move) Flag() MoveFlag { return MoveFlag(m >> moveFlagShift & moveFlagMask) }

// IsCapture returns true for ordinary captures and en-passant captures.
func (m Move) IsCapture() bool {
	return m.Flag() == CaptureFlag || m.Flag() == EnPassantFlag || m.Captured() != NoFigure
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() == PromotionFlag
}

// CaptureSquare returns the square of the captured piece. For
// en-passant this is not To(): it is the square the captured pawn
// actually stands on.
func (m Move) CaptureSquare() Square {
	if m.Flag() == EnPassantFlag {
		return RankFile(m.From().Rank(), m.To().File())
	}
	return m.To()
}

// UCI renders the move in long algebraic "e2e4"/"e7e8q" form.
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionSymbol[m.Promoted()]
	}
	return s
}

var promotionSymbol = map[Figure]string{
	Knight: "n", Bishop: "b", Rook: "r", Queen: "q",
}

func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.Moved(), m.UCI())
}

// MoveList is an ordered sequence of pseudo-legal or legal moves.
// A MoveList produced by the generator must not be retained across a
// make/unmake boundary: its moves describe the position it was
// generated from and are stale once that position changes.
type MoveList []Move

// ScoredMove pairs a legal Move with its ordering heuristic (§4.7).
// Only produced by the legality filter; never part of Position state.
type ScoredMove struct {
	Move  Move
	Score int
}
