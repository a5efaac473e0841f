package engine

import "testing"

func TestInCheckByRook(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(0, 4), ColorFigure(White, King))
	pos.Put(RankFile(7, 4), ColorFigure(Black, Rook)) // e8, same file as the king
	pos.Put(RankFile(7, 0), ColorFigure(Black, King))

	if !pos.InCheck(White) {
		t.Error("InCheck(White) = false, want true (rook shares the e-file)")
	}
	if pos.InCheck(Black) {
		t.Error("InCheck(Black) = true, want false")
	}
}

func TestInCheckBlockedByIntervening(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(0, 4), ColorFigure(White, King))
	pos.Put(RankFile(3, 4), ColorFigure(White, Pawn)) // e4, blocks the file
	pos.Put(RankFile(7, 4), ColorFigure(Black, Rook))
	pos.Put(RankFile(7, 0), ColorFigure(Black, King))

	if pos.InCheck(White) {
		t.Error("InCheck(White) = true, want false (own pawn blocks the rook)")
	}
}

func TestInCheckByKnight(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(0, 4), ColorFigure(White, King))
	pos.Put(RankFile(2, 5), ColorFigure(Black, Knight)) // f3, knight-attacks e1
	pos.Put(RankFile(7, 0), ColorFigure(Black, King))

	if !pos.InCheck(White) {
		t.Error("InCheck(White) = false, want true (knight on f3 attacks e1)")
	}
}

func TestInCheckByPawn(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(3, 4), ColorFigure(White, King))  // e4
	pos.Put(RankFile(4, 3), ColorFigure(Black, Pawn)) // d5 attacks e4
	pos.Put(RankFile(7, 0), ColorFigure(Black, King))

	if !pos.InCheck(White) {
		t.Error("InCheck(White) = false, want true (black pawn on d5 attacks e4)")
	}
}

func TestInCheckByBishopDiagonal(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(0, 4), ColorFigure(White, King)) // e1
	pos.Put(RankFile(3, 7), ColorFigure(Black, Bishop)) // h4, on the a1-h8-adjacent diagonal through e1
	pos.Put(RankFile(7, 0), ColorFigure(Black, King))

	if !pos.InCheck(White) {
		t.Error("InCheck(White) = false, want true (bishop on h4 attacks e1 diagonally)")
	}
}
