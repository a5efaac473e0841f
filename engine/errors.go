// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// errors.go defines the sentinel errors the core can return.

package engine

import "errors"

var (
	// ErrInvalidFen is returned when a FEN string does not conform to
	// the accepted subset.
	ErrInvalidFen = errors.New("invalid fen")
	// ErrInvalidMove is returned when a caller-supplied move is not in
	// the legal-move list for the side to move.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInternalInconsistency is returned by Position.Verify when it
	// finds a broken invariant, and is the value Unmake panics with when
	// there is no move to undo. Tests must never provoke this.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
