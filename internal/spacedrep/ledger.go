package spacedrep

import "sort"

// Ledger maps item ids to at most one ReviewEntry. A Ledger is never
// modified after construction; With returns a new ledger.
// The nil *Ledger is a valid empty ledger.
type Ledger struct {
	entries map[string]ReviewEntry
}

// NewLedger builds a ledger from entries. Later entries win on duplicate ids.
func NewLedger(entries ...ReviewEntry) *Ledger {
	l := &Ledger{entries: make(map[string]ReviewEntry, len(entries))}
	for _, e := range entries {
		l.entries[e.ItemID] = e
	}
	return l
}

// Len returns the number of tracked items.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Get returns the entry for itemID.
func (l *Ledger) Get(itemID string) (ReviewEntry, bool) {
	if l == nil {
		return ReviewEntry{}, false
	}
	e, ok := l.entries[itemID]
	return e, ok
}

// Has reports whether itemID is tracked.
func (l *Ledger) Has(itemID string) bool {
	_, ok := l.Get(itemID)
	return ok
}

// IDs returns the tracked item ids in ascending order.
func (l *Ledger) IDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, 0, len(l.entries))
	for id := range l.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Entries returns all entries ordered by item id.
func (l *Ledger) Entries() []ReviewEntry {
	ids := l.IDs()
	out := make([]ReviewEntry, len(ids))
	for i, id := range ids {
		out[i] = l.entries[id]
	}
	return out
}

// With returns a copy of the ledger with e inserted or replaced.
func (l *Ledger) With(e ReviewEntry) *Ledger {
	next := &Ledger{entries: make(map[string]ReviewEntry, l.Len()+1)}
	if l != nil {
		for id, old := range l.entries {
			next.entries[id] = old
		}
	}
	next.entries[e.ItemID] = e
	return next
}
