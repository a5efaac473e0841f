// book.go holds the in-memory opening book of spec.md §4.9: a
// read-only-after-load table from Zobrist key to a single recommended
// move. Parsing the book's on-disk format is deliberately left to the
// bookio package (spec.md §1's "external collaborator" boundary); this
// file only defines the data structure and the lookup the search uses.

package engine

// BookEntry is one opening-book record: the position it applies to,
// named by its Zobrist key, and the move recommended from it.
type BookEntry struct {
	Key  uint64
	Move Move
}

// Book is a read-only-after-load table from Zobrist key to BookEntry.
// The zero value is an empty, usable book.
type Book struct {
	entries map[uint64]BookEntry
}

// NewBook returns an empty book ready for Add calls.
func NewBook() *Book {
	return &Book{entries: make(map[uint64]BookEntry)}
}

// Add records a book move for the position identified by key,
// overwriting any previous entry for that key.
func (b *Book) Add(key uint64, move Move) {
	if b.entries == nil {
		b.entries = make(map[uint64]BookEntry)
	}
	b.entries[key] = BookEntry{Key: key, Move: move}
}

// Lookup returns the book move for pos's current position, if any.
func (b *Book) Lookup(pos *Position) (Move, bool) {
	if b == nil || b.entries == nil {
		return NullMove, false
	}
	entry, ok := b.entries[pos.Zobrist()]
	if !ok {
		return NullMove, false
	}
	return entry.Move, true
}

// Len returns the number of positions the book has a move for.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
