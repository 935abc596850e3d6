package hashtable

import (
	"github.com/npillmayer/clxns"
)

// walker is the iterator state for tables. It walks the buckets in order
// and every chain from its head.
type walker struct {
	slots []*node
	slot  int   // current bucket
	cur   *node // next node to produce
}

// NewIterState is part of interface clxns.Collection. Iteration produces
// items of type clxns.KVP.
func (ht *Table) NewIterState() clxns.IterState {
	w := &walker{slots: ht.slots}
	if len(w.slots) > 0 {
		w.cur = w.slots[0]
	}
	return w
}

// Advance is part of interface clxns.IterState.
func (w *walker) Advance() (any, bool) {
	for w.cur == nil {
		w.slot++
		if w.slot >= len(w.slots) {
			return nil, false
		}
		w.cur = w.slots[w.slot]
	}
	n := w.cur
	w.cur = n.next
	return clxns.KVP{Key: n.key, Value: n.value}, true
}
