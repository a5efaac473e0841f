package engine

import "testing"

func TestBookAddLookup(t *testing.T) {
	pos := startingPosition()
	book := NewBook()
	move := MakeMove(RankFile(1, 4), RankFile(3, 4), Pawn, NoFigure, NoFigure, Normal)
	book.Add(pos.Zobrist(), move)

	got, ok := book.Lookup(pos)
	if !ok {
		t.Fatal("Lookup() = not found, want found")
	}
	if got != move {
		t.Errorf("Lookup() = %v, want %v", got, move)
	}
}

func TestBookLookupMissAfterMove(t *testing.T) {
	pos := startingPosition()
	book := NewBook()
	book.Add(pos.Zobrist(), MakeMove(RankFile(1, 4), RankFile(3, 4), Pawn, NoFigure, NoFigure, Normal))

	pos.Make(MakeMove(RankFile(1, 3), RankFile(3, 3), Pawn, NoFigure, NoFigure, Normal))
	if _, ok := book.Lookup(pos); ok {
		t.Error("Lookup() after an unrelated move = found, want not found")
	}
}

func TestNilBookLookupIsSafe(t *testing.T) {
	var book *Book
	if _, ok := book.Lookup(startingPosition()); ok {
		t.Error("Lookup() on a nil *Book = found, want not found")
	}
	if book.Len() != 0 {
		t.Errorf("Len() on a nil *Book = %d, want 0", book.Len())
	}
}
