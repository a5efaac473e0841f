// bitutil.go implements the least-significant-bit extraction and
// population-count helpers the move generator and evaluator rely on.

package engine

import "math/bits"

// PopCount returns the number of squares set in bb.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// LSB returns the bitboard containing only the least-significant set
// square of bb. Returns BbEmpty for an empty board.
func (bb Bitboard) LSB() Bitboard {
	return bb & -bb
}

// AsSquare returns the single occupied square of bb. Undefined if bb
// does not have exactly one bit set.
func (bb Bitboard) AsSquare() Square {
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Pop removes and returns the least-significant set square from *bb.
func (bb *Bitboard) Pop() Square {
	sq := bb.LSB()
	*bb &^= sq
	return sq.AsSquare()
}
