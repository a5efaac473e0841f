// Package bookio reads the opening book's on-disk format into an
// engine.Book. Parsing the file is kept out of the engine package
// deliberately: spec.md §1 and §6 treat the book's text format as an
// external collaborator's concern, not the core engine's.
//
// The format is one entry per line, comma-separated:
//
//	FEN,side,move
//
// where side is "w" or "b" and move is UCI-style four- or five-
// character coordinates (e.g. "e2e4", "e7e8q"). Grounded on the
// teacher's puzzle/puzzle.go line-oriented bufio.Scanner loop, and on
// original_source/opening_book.c's contract of skipping malformed
// lines while counting them rather than aborting the whole load.
package bookio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/YashwantBhosale/chessplay/engine"
	"github.com/YashwantBhosale/chessplay/notation"
)

// LoadResult reports how a Load call went: the populated book plus
// how many lines were skipped for being malformed.
type LoadResult struct {
	Book    *engine.Book
	Read    int
	Skipped int
}

// Load parses every line of r into a Book. A malformed line (wrong
// field count, bad FEN, bad move) is counted and skipped rather than
// treated as fatal, so one bad line never discards an entire book.
func Load(r io.Reader) (LoadResult, error) {
	book := engine.NewBook()
	result := LoadResult{Book: book}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result.Read++

		move, key, ok := parseLine(line)
		if !ok {
			result.Skipped++
			continue
		}
		book.Add(key, move)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("reading opening book: %w", err)
	}
	return result, nil
}

// parseLine parses one "FEN,side,move" line. The side field is
// currently redundant with the FEN's own side-to-move field and is
// used only as a sanity check; a mismatch fails the line.
func parseLine(line string) (move engine.Move, key uint64, ok bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return engine.NullMove, 0, false
	}
	fen, side, uci := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])

	pos, err := notation.ParseFEN(fen)
	if err != nil {
		return engine.NullMove, 0, false
	}

	var wantSide engine.Color
	switch side {
	case "w":
		wantSide = engine.White
	case "b":
		wantSide = engine.Black
	default:
		return engine.NullMove, 0, false
	}
	if pos.SideToMove != wantSide {
		return engine.NullMove, 0, false
	}

	m, ok := matchUCIMove(pos, uci)
	if !ok {
		return engine.NullMove, 0, false
	}
	return m, pos.Zobrist(), true
}

// matchUCIMove finds the legal move from pos whose UCI() matches s
// exactly, so the book only ever stores moves legal in the position
// its FEN describes.
func matchUCIMove(pos *engine.Position, s string) (engine.Move, bool) {
	for _, sm := range pos.FilterLegalMoves(pos.SideToMove) {
		if sm.Move.UCI() == s {
			return sm.Move, true
		}
	}
	return engine.NullMove, false
}
