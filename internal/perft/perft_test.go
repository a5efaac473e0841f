package perft

import (
	"testing"

	"github.com/YashwantBhosale/chessplay/notation"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestCountStartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902}
	for depth, w := range want {
		pos, err := notation.ParseFEN(startFEN)
		if err != nil {
			t.Fatalf("ParseFEN() = %v", err)
		}
		got := Count(pos, depth)
		if got.Nodes != w {
			t.Errorf("Count(depth=%d).Nodes = %d, want %d", depth, got.Nodes, w)
		}
	}
}

func TestSplitSumsToCount(t *testing.T) {
	pos, err := notation.ParseFEN(startFEN)
	if err != nil {
		t.Fatalf("ParseFEN() = %v", err)
	}
	moves, counts := Split(pos, 3)
	if len(moves) != 20 {
		t.Fatalf("Split() returned %d root moves, want 20", len(moves))
	}
	var total uint64
	for _, c := range counts {
		total += c.Nodes
	}
	if total != 8902 {
		t.Errorf("sum of split counts = %d, want 8902", total)
	}
}
