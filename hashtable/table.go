package hashtable

import (
	"github.com/npillmayer/clxns"
)

// DefaultCapacity is the number of buckets of a table created with a size
// hint of 0.
const DefaultCapacity = 7

// node is an entry of the table, linked into the chain of its bucket.
type node struct {
	hash  uint64 // cached hash of key
	key   string
	value any
	next  *node
}

// Table is a hash table. Table implements clxns.Collection.
//
// Invariants: occupied ≤ capacity, and no two nodes share a hash value.
type Table struct {
	slots    []*node // bucket heads; len(slots) is the capacity
	size     int     // number of entries
	baseCap  int     // initial / minimum capacity
	occupied int     // number of non-empty buckets
}

var _ clxns.Collection = (*Table)(nil)

// Hash is the djb2 string hash of key: starting at 5381, every byte b of
// the key accumulates as hash*33 + b.
func Hash(key string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(key); i++ {
		hash = (hash << 5) + hash + uint64(key[i])
	}
	return hash
}

// New creates an empty table with initCap buckets. A hint ≤ 0 selects
// DefaultCapacity.
func New(initCap int) *Table {
	if initCap <= 0 {
		initCap = DefaultCapacity
	}
	return &Table{
		slots:   make([]*node, initCap),
		baseCap: initCap,
	}
}

// Count returns the number of entries in the table.
func (ht *Table) Count() int {
	return ht.size
}

// Capacity returns the number of buckets.
func (ht *Table) Capacity() int {
	return len(ht.slots)
}

// OccupiedSlots returns the number of buckets holding at least one entry.
func (ht *Table) OccupiedSlots() int {
	return ht.occupied
}

func (ht *Table) slot(hash uint64) int {
	return int(hash % uint64(len(ht.slots)))
}

// find returns the link pointing to the node with the given hash in the
// chain starting at head, or nil.
func find(head **node, hash uint64) **node {
	for *head != nil {
		if (*head).hash == hash {
			return head
		}
		head = &(*head).next
	}
	return nil
}

// resize re-links every node into a new bucket array of size newCap.
// Cached hashes are reused.
func (ht *Table) resize(newCap int) {
	tracer().Debugf("resize hash table: capacity %d -> %d (%d entries, %d occupied)",
		len(ht.slots), newCap, ht.size, ht.occupied)
	old := ht.slots
	ht.slots = make([]*node, newCap)
	ht.occupied = 0
	for _, head := range old {
		for n := head; n != nil; {
			next := n.next
			i := ht.slot(n.hash)
			if ht.slots[i] == nil {
				ht.occupied++
			}
			n.next = ht.slots[i]
			ht.slots[i] = n
			n = next
		}
	}
}

// Add associates key with value. If an entry with the hash of key is already
// present, its key and value are replaced and the count stays unchanged.
func (ht *Table) Add(key string, value any) {
	if ht.occupied > len(ht.slots)/2 {
		ht.resize(2 * len(ht.slots))
	}
	hash := Hash(key)
	head := &ht.slots[ht.slot(hash)]
	if *head == nil {
		ht.occupied++
	} else if link := find(head, hash); link != nil {
		n := *link
		n.key, n.value, n.hash = key, value, hash
		return
	}
	*head = &node{hash: hash, key: key, value: value, next: *head}
	ht.size++
}

// Get returns the value associated with key. It fails with clxns.ErrMissing
// if key is not present.
func (ht *Table) Get(key string) (any, error) {
	hash := Hash(key)
	if link := find(&ht.slots[ht.slot(hash)], hash); link != nil {
		return (*link).value, nil
	}
	return nil, clxns.ErrMissing
}

// Contains reports whether key is present in the table.
func (ht *Table) Contains(key string) bool {
	_, err := ht.Get(key)
	return err == nil
}

// Remove deletes the entry for key and returns its value. If items is true,
// the value is released (see clxns.Releaser). Removing an absent key fails
// with clxns.ErrMissing and leaves the table unchanged.
func (ht *Table) Remove(key string, items bool) (any, error) {
	if ht.occupied > ht.baseCap && ht.occupied <= len(ht.slots)/4 {
		ht.resize(len(ht.slots) / 4)
	}
	hash := Hash(key)
	head := &ht.slots[ht.slot(hash)]
	link := find(head, hash)
	if link == nil {
		return nil, clxns.ErrMissing
	}
	n := *link
	*link = n.next
	if *head == nil {
		ht.occupied--
	}
	ht.size--
	if items {
		clxns.Release(n.value)
	}
	return n.value, nil
}

// Copy returns a shallow copy of the table, with the capacity of ht. Every
// entry is re-added, sharing keys and values with ht.
func (ht *Table) Copy() *Table {
	cp := New(len(ht.slots))
	cp.baseCap = ht.baseCap
	for _, head := range ht.slots {
		for n := head; n != nil; n = n.next {
			cp.Add(n.key, n.value)
		}
	}
	return cp
}

// CopyCollection is Copy for clients holding a clxns.Collection.
func (ht *Table) CopyCollection() clxns.Collection {
	return ht.Copy()
}

// Free unlinks every entry of the table. If items is true, every value is
// released first (see clxns.Releaser). The table must not be used afterwards.
func (ht *Table) Free(items bool) {
	for i, head := range ht.slots {
		for n := head; n != nil; {
			next := n.next
			if items {
				clxns.Release(n.value)
			}
			n.next, n.value = nil, nil
			n = next
		}
		ht.slots[i] = nil
	}
	ht.slots = nil
	ht.size, ht.occupied = 0, 0
}
