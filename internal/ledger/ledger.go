// Package ledger tracks the cumulative wagered amount per betting cell.
//
// The Ledger is the single authority over bet state: every placement,
// clear and total flows through it. Rendering works from snapshots and
// never mutates entries.
package ledger

import (
	"errors"

	"github.com/foxeronthepath/roulette/internal/layout"
)

// ErrInvalidChipValue indicates a non-positive chip value was offered.
// The ledger rejects it before touching any state.
var ErrInvalidChipValue = errors.New("ledger: invalid chip value")

// Placement is a single chip dropped on a cell. Placements are immutable
// once created and belong to exactly one entry.
type Placement struct {
	Value    int
	Sequence uint64
}

// Entry holds the bet state for one cell: the cumulative total and the
// ordered placements that produced it. Total always equals the sum of
// the placement values.
type Entry struct {
	Cell       layout.CellID
	Total      int
	Placements []Placement
}

// Ledger maps cells to entries. Entries iterate in first-bet-first
// order. The placement sequence counter only ever increases, including
// across ClearAll: uniqueness is the contract, not reuse.
type Ledger struct {
	entries map[layout.CellID]*Entry
	order   []layout.CellID
	seq     uint64
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		entries: make(map[layout.CellID]*Entry),
	}
}

// Place appends a chip of the given value to the cell, creating the
// entry on first placement. It returns ErrInvalidChipValue for a
// non-positive value, leaving the ledger untouched.
func (l *Ledger) Place(cell layout.CellID, chipValue int) (*Entry, error) {
	if chipValue <= 0 {
		return nil, ErrInvalidChipValue
	}

	entry, ok := l.entries[cell]
	if !ok {
		entry = &Entry{Cell: cell}
		l.entries[cell] = entry
		l.order = append(l.order, cell)
	}

	l.seq++
	entry.Placements = append(entry.Placements, Placement{
		Value:    chipValue,
		Sequence: l.seq,
	})
	entry.Total += chipValue

	return entry, nil
}

// ClearCell removes the cell's entry entirely. Clearing a cell with no
// entry is a no-op, not an error.
func (l *Ledger) ClearCell(cell layout.CellID) {
	if _, ok := l.entries[cell]; !ok {
		return
	}
	delete(l.entries, cell)
	for i, id := range l.order {
		if id == cell {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// ClearAll removes every entry. The sequence counter is not reset.
func (l *Ledger) ClearAll() {
	l.entries = make(map[layout.CellID]*Entry)
	l.order = nil
}

// TotalWagered sums the entry totals. It is always recomputed from the
// entries rather than tracked incrementally, so it cannot drift from
// what the cells actually hold.
func (l *Ledger) TotalWagered() int {
	total := 0
	for _, entry := range l.entries {
		total += entry.Total
	}
	return total
}

// Amount returns the cumulative amount wagered on a cell, zero when the
// cell has no entry.
func (l *Ledger) Amount(cell layout.CellID) int {
	if entry, ok := l.entries[cell]; ok {
		return entry.Total
	}
	return 0
}

// Entries returns a snapshot of all entries in first-bet-first order.
func (l *Ledger) Entries() []*Entry {
	snapshot := make([]*Entry, 0, len(l.order))
	for _, id := range l.order {
		snapshot = append(snapshot, l.entries[id])
	}
	return snapshot
}
