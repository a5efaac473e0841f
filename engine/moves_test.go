package engine

import "testing"

func TestMakeMoveRoundTrip(t *testing.T) {
	m := MakeMove(SquareA1+12, SquareA1+28, Pawn, Knight, Queen, PromotionFlag)
	if got := m.From(); got != SquareA1+12 {
		t.Errorf("From() = %v, want a1+12", got)
	}
	if got := m.To(); got != SquareA1+28 {
		t.Errorf("To() = %v, want a1+28", got)
	}
	if got := m.Moved(); got != Pawn {
		t.Errorf("Moved() = %v, want Pawn", got)
	}
	if got := m.Captured(); got != Knight {
		t.Errorf("Captured() = %v, want Knight", got)
	}
	if got := m.Promoted(); got != Queen {
		t.Errorf("Promoted() = %v, want Queen", got)
	}
	if got := m.Flag(); got != PromotionFlag {
		t.Errorf("Flag() = %v, want PromotionFlag", got)
	}
}

func TestIsCaptureDetectsPromotionCapture(t *testing.T) {
	// Promotions always carry PromotionFlag, even when they also
	// capture; IsCapture must still recognize the capture via the
	// non-NoFigure Captured() field.
	m := MakeMove(SquareA1+52, SquareA1+61, Pawn, Rook, Queen, PromotionFlag)
	if !m.IsCapture() {
		t.Error("IsCapture() = false for a promotion-capture, want true")
	}
	if !m.IsPromotion() {
		t.Error("IsPromotion() = false for a promotion-capture, want true")
	}
}

func TestIsCaptureFalseForQuietMove(t *testing.T) {
	m := MakeMove(SquareA1, SquareA1+8, Pawn, NoFigure, NoFigure, Normal)
	if m.IsCapture() {
		t.Error("IsCapture() = true for a quiet push, want false")
	}
}

func TestCaptureSquareEnPassant(t *testing.T) {
	from := RankFile(4, 4) // e5
	to := RankFile(5, 3)   // d6
	m := MakeMove(from, to, Pawn, Pawn, NoFigure, EnPassantFlag)
	want := RankFile(4, 3) // d5: the captured pawn, not d6
	if got := m.CaptureSquare(); got != want {
		t.Errorf("CaptureSquare() = %v, want %v", got, want)
	}
}

func TestCaptureSquareOrdinary(t *testing.T) {
	from, to := RankFile(1, 4), RankFile(2, 4)
	m := MakeMove(from, to, Pawn, Knight, NoFigure, CaptureFlag)
	if got := m.CaptureSquare(); got != to {
		t.Errorf("CaptureSquare() = %v, want %v", got, to)
	}
}

func TestUCI(t *testing.T) {
	m := MakeMove(RankFile(1, 4), RankFile(3, 4), Pawn, NoFigure, NoFigure, Normal)
	if got := m.UCI(); got != "e2e4" {
		t.Errorf("UCI() = %q, want %q", got, "e2e4")
	}
	promo := MakeMove(RankFile(6, 4), RankFile(7, 4), Pawn, NoFigure, Queen, PromotionFlag)
	if got := promo.UCI(); got != "e7e8q" {
		t.Errorf("UCI() = %q, want %q", got, "e7e8q")
	}
}

func TestNullMoveIsZero(t *testing.T) {
	if NullMove != Move(0) {
		t.Errorf("NullMove = %v, want 0", NullMove)
	}
}
