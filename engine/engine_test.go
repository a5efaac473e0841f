package engine

import (
	"math"
	"testing"
)

func TestMinimaxFindsFreeCapture(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(0, 0), ColorFigure(White, King))
	pos.Put(RankFile(7, 7), ColorFigure(Black, King))
	pos.Put(RankFile(3, 4), ColorFigure(White, Rook))
	pos.Put(RankFile(3, 7), ColorFigure(Black, Knight)) // hangs to the rook

	s := NewSearcher(nil, nil)
	_, move := s.Minimax(pos, 2, White, math.Inf(-1), math.Inf(1))
	if move.To() != RankFile(3, 7) {
		t.Errorf("Minimax chose %v, want the rook capturing on h4", move)
	}
}

func TestMinimaxReportsStalemateAsZero(t *testing.T) {
	// Classic stalemate: black king boxed into a corner with no check.
	pos := emptyPosition(Black, NoCastle)
	pos.Put(RankFile(7, 0), ColorFigure(Black, King)) // a8
	pos.Put(RankFile(5, 1), ColorFigure(White, King)) // b6
	pos.Put(RankFile(6, 2), ColorFigure(White, Queen)) // c7

	s := NewSearcher(nil, nil)
	score, move := s.Minimax(pos, 1, Black, math.Inf(-1), math.Inf(1))
	if move != NullMove {
		t.Errorf("Minimax found a move %v in stalemate, want NullMove", move)
	}
	if score != 0 {
		t.Errorf("Minimax score in stalemate = %v, want 0", score)
	}
}

func TestMinimaxReportsCheckmate(t *testing.T) {
	// Back-rank mate: black king on a8 behind its own pawns, white rook
	// on h8 giving mate along rank 8, white king out of the way on a1.
	pos := emptyPosition(Black, NoCastle)
	pos.Put(RankFile(7, 0), ColorFigure(Black, King)) // a8
	pos.Put(RankFile(6, 0), ColorFigure(Black, Pawn)) // a7, blocks downward escape
	pos.Put(RankFile(6, 1), ColorFigure(Black, Pawn)) // b7, blocks downward escape
	pos.Put(RankFile(7, 7), ColorFigure(White, Rook)) // h8, checks along rank 8
	pos.Put(RankFile(0, 0), ColorFigure(White, King)) // a1, out of the way

	if !pos.InCheck(Black) {
		t.Fatal("test setup error: black should already be in check")
	}
	if len(pos.FilterLegalMoves(Black)) != 0 {
		t.Fatal("test setup error: black should have no legal replies")
	}

	s := NewSearcher(nil, nil)
	score, move := s.Minimax(pos, 1, Black, math.Inf(-1), math.Inf(1))
	if move != NullMove {
		t.Errorf("Minimax found a move %v for a mated side, want NullMove", move)
	}
	if score <= MateScore/2 {
		t.Errorf("Minimax score for black mated = %v, want a large positive score", score)
	}
}

func TestIterativeDeepenConsultsBookFirst(t *testing.T) {
	pos := startingPosition()
	book := NewBook()
	bookMove := MakeMove(RankFile(1, 3), RankFile(3, 3), Pawn, NoFigure, NoFigure, Normal)
	book.Add(pos.Zobrist(), bookMove)

	s := NewSearcher(NewTranspositionTable(1), book)
	result := s.IterativeDeepen(pos, 4, White)
	if result.Move != bookMove {
		t.Errorf("IterativeDeepen() = %v, want the book move %v", result.Move, bookMove)
	}
	if result.Depth != 0 {
		t.Errorf("book-move result Depth = %d, want 0 (unsearched)", result.Depth)
	}
}

func TestIterativeDeepenSearchesWithoutBook(t *testing.T) {
	pos := emptyPosition(White, NoCastle)
	pos.Put(RankFile(0, 0), ColorFigure(White, King))
	pos.Put(RankFile(7, 7), ColorFigure(Black, King))
	pos.Put(RankFile(3, 4), ColorFigure(White, Rook))
	pos.Put(RankFile(3, 7), ColorFigure(Black, Knight))

	s := NewSearcher(NewTranspositionTable(1), nil)
	result := s.IterativeDeepen(pos, 2, White)
	if result.Depth != 2 {
		t.Errorf("IterativeDeepen() Depth = %d, want 2", result.Depth)
	}
	if result.Move.To() != RankFile(3, 7) {
		t.Errorf("IterativeDeepen() move = %v, want the rook capturing on h4", result.Move)
	}
}
