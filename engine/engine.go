// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements board representation, move generation and
// position searching for a simple chess-playing program.
//
// Position (basic.go, position.go) uses:
//
//   - Bitboards for representation, paired with a mailbox array for
//     O(1) square lookup.
//   - Ray-casting for sliding-piece move generation and for in-check
//     detection (check.go), rather than magic bitboards.
//
// Search (engine.go) is a straightforward alpha-beta minimax: White
// maximizes, Black minimizes, there is no negamax sign flip. It is
// deliberately single-threaded and knows nothing about a clock; see
// cmd/chessplay for the driver that adds a difficulty-to-depth mapping
// on top.
//
// Move ordering (legal.go) sorts legal moves by a flat additive score
// before searching them, both to narrow alpha-beta windows sooner and
// to pick a readable "best" move among ties.
//
// Evaluation (material.go) is a simple, explainable sum:
//
//   - Material gained or lost, read off each side's capture log.
//   - A flat bonus for giving check.
//   - Penalties for blocked and isolated pawns.
package engine

import (
	"math"
	"sort"
)

// MateScore is the magnitude of the evaluation Minimax returns when a
// side has no legal moves while in check. Depth is added so a search
// prefers the shortest mate it can find.
const MateScore = 1e6

// SearchResult is what IterativeDeepen reports for the move it settled
// on: the move itself, its minimax evaluation, and how deep the search
// that produced it went (0 for a book move, which is not searched).
type SearchResult struct {
	Move  Move
	Score float64
	Depth int
}

// Searcher bundles the mutable state a search run consults: the
// transposition table and the opening book. A Searcher is safe to
// reuse across positions and games; it is not safe for concurrent use
// since spec.md explicitly excludes multi-threaded search.
type Searcher struct {
	TT   *TranspositionTable
	Book *Book
}

// NewSearcher builds a Searcher over tt and book. Either may be nil,
// in which case the corresponding lookup is simply skipped.
func NewSearcher(tt *TranspositionTable, book *Book) *Searcher {
	return &Searcher{TT: tt, Book: book}
}

// IterativeDeepen searches pos to increasing depths up to maxDepth,
// returning the result of the deepest completed iteration. A book hit
// at the root short-circuits the search entirely: the recommended
// move is returned at Depth 0 without consulting the evaluator or the
// transposition table, per spec.md §4.9. Minimax itself also probes
// the book at every node it visits (see below), so a transposition
// into a book position several plies deep is short-circuited the same
// way mid-search.
func (s *Searcher) IterativeDeepen(pos *Position, maxDepth int, side Color) SearchResult {
	if s.Book != nil {
		if move, ok := s.Book.Lookup(pos); ok {
			return SearchResult{Move: move, Score: 0, Depth: 0}
		}
	}

	var result SearchResult
	for depth := 1; depth <= maxDepth; depth++ {
		score, move := s.Minimax(pos, depth, side, math.Inf(-1), math.Inf(1))
		if move == NullMove {
			break
		}
		result = SearchResult{Move: move, Score: score, Depth: depth}
	}
	return result
}

// Minimax evaluates pos to depth plies using alpha-beta pruning: White
// maximizes the returned score, Black minimizes it. Per spec.md §4.10,
// the book is probed at every node, not just the root: a hit returns
// (0.0, book_move) immediately, ahead of the transposition table and
// without touching the evaluator, since a book recommendation is
// authoritative and not itself a position evaluation. Otherwise it
// consults the transposition table before searching and stores a
// bound or exact result into it afterwards, per spec.md §4.8.
func (s *Searcher) Minimax(pos *Position, depth int, side Color, alpha, beta float64) (float64, Move) {
	if s.Book != nil {
		if move, ok := s.Book.Lookup(pos); ok {
			return 0, move
		}
	}

	if s.TT != nil {
		if entry, ok := s.TT.Probe(pos.Zobrist(), depth); ok {
			switch entry.Kind {
			case Exact:
				return entry.Evaluation, entry.BestMove
			case LowerBound:
				if entry.Evaluation > alpha {
					alpha = entry.Evaluation
				}
			case UpperBound:
				if entry.Evaluation < beta {
					beta = entry.Evaluation
				}
			}
			if alpha >= beta {
				return entry.Evaluation, entry.BestMove
			}
		}
	}

	legal := pos.FilterLegalMoves(side)
	if depth == 0 || len(legal) == 0 {
		if len(legal) == 0 {
			if !pos.InCheck(side) {
				return 0, NullMove // stalemate
			}
			if side == White {
				return -MateScore - float64(depth), NullMove
			}
			return MateScore + float64(depth), NullMove
		}
		return Evaluate(pos), NullMove
	}

	sort.Slice(legal, func(i, j int) bool { return legal[i].Score > legal[j].Score })

	origAlpha, origBeta := alpha, beta
	best := legal[0].Move
	var bestScore float64

	if side == White {
		bestScore = math.Inf(-1)
		for _, sm := range legal {
			pos.Make(sm.Move)
			score, _ := s.Minimax(pos, depth-1, Black, alpha, beta)
			pos.Unmake()
			if score > bestScore {
				bestScore, best = score, sm.Move
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		bestScore = math.Inf(1)
		for _, sm := range legal {
			pos.Make(sm.Move)
			score, _ := s.Minimax(pos, depth-1, White, alpha, beta)
			pos.Unmake()
			if score < bestScore {
				bestScore, best = score, sm.Move
			}
			if bestScore < beta {
				beta = bestScore
			}
			if alpha >= beta {
				break
			}
		}
	}

	if s.TT != nil {
		kind := Exact
		switch {
		case bestScore <= origAlpha:
			kind = UpperBound
		case bestScore >= origBeta:
			kind = LowerBound
		}
		s.TT.Store(TTEntry{Key: pos.Zobrist(), Depth: depth, Evaluation: bestScore, BestMove: best, Kind: kind})
	}

	return bestScore, best
}
