// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hash_table.go implements the transposition table of spec.md §4.8: an
// open-addressed, power-of-two-sized cache keyed on the Zobrist key,
// using quadratic probing bounded to a fixed number of steps and a
// depth-preferred replacement policy. Sizing-by-megabytes follows the
// teacher's hash_table.go (DefaultHashTableSizeMB / power-of-two entry
// count); the probe/replace scheme itself is spec.md's, not the
// teacher's two-slot lock/split scheme.

package engine

import "unsafe"

// DefaultHashTableSizeMB is the default size in MB for NewTranspositionTable.
var DefaultHashTableSizeMB = 64

// TTKind classifies how a stored evaluation bounds the true score.
type TTKind uint8

const (
	Exact TTKind = iota
	LowerBound
	UpperBound
)

// TTEntry is one transposition-table record.
type TTEntry struct {
	Key        uint64
	Depth      int
	Evaluation float64
	BestMove   Move
	Kind       TTKind
}

// maxProbeSteps bounds quadratic probing so a full table never spins.
const maxProbeSteps = 8

// TranspositionTable is a fixed-capacity, open-addressed cache of
// search results keyed by Zobrist key.
type TranspositionTable struct {
	slots    []TTEntry
	occupied []bool
	mask     uint64
}

// NewTranspositionTable builds a table sized to approximately
// sizeMB megabytes, rounded down to a power of two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	if entrySize == 0 {
		entrySize = 1
	}
	count := uint64(sizeMB) << 20 / entrySize
	if count == 0 {
		count = 1
	}
	for count&(count-1) != 0 {
		count &= count - 1
	}
	return &TranspositionTable{
		slots:    make([]TTEntry, count),
		occupied: make([]bool, count),
		mask:     count - 1,
	}
}

func (tt *TranspositionTable) index(key uint64, step uint64) uint64 {
	return (key + step*step) & tt.mask
}

// Probe returns the stored entry for key only if it is present and its
// depth is at least as deep as depth, per spec.md §4.8's contract: the
// caller may use the result for cutoff and ordering only in that case.
func (tt *TranspositionTable) Probe(key uint64, depth int) (TTEntry, bool) {
	for step := uint64(0); step < maxProbeSteps; step++ {
		idx := tt.index(key, step)
		if !tt.occupied[idx] {
			return TTEntry{}, false
		}
		if tt.slots[idx].Key == key {
			if tt.slots[idx].Depth >= depth {
				return tt.slots[idx], true
			}
			return TTEntry{}, false
		}
	}
	return TTEntry{}, false
}

// Store inserts entry, replacing an empty slot, a slot with the same
// key, or a slot whose stored depth is shallower than entry.Depth.
// Otherwise it falls back to overwriting the final probed slot.
func (tt *TranspositionTable) Store(entry TTEntry) {
	var last uint64
	for step := uint64(0); step < maxProbeSteps; step++ {
		idx := tt.index(entry.Key, step)
		last = idx
		if !tt.occupied[idx] || tt.slots[idx].Key == entry.Key || tt.slots[idx].Depth < entry.Depth {
			tt.slots[idx] = entry
			tt.occupied[idx] = true
			return
		}
	}
	tt.slots[last] = entry
	tt.occupied[last] = true
}

// Clear removes every entry from the table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.occupied {
		tt.occupied[i] = false
	}
}

// Size returns the number of slots in the table.
func (tt *TranspositionTable) Size() int {
	return len(tt.slots)
}
