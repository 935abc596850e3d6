package resizearray

import (
	"github.com/npillmayer/clxns"
)

// DefaultCapacity is the capacity of an array created with a size hint of 0.
const DefaultCapacity = 8

// Array is a growable and shrinkable buffer of untyped references.
// Array implements clxns.Collection.
//
// Invariants: 0 ≤ size ≤ capacity and capacity ≥ base capacity.
type Array struct {
	buff    []any // len(buff) is the capacity
	size    int   // number of items in the array
	baseCap int   // initial / minimum capacity
}

var _ clxns.Collection = (*Array)(nil)

// New creates an empty array with an initial capacity of initCap.
// A hint ≤ 0 selects DefaultCapacity.
func New(initCap int) *Array {
	if initCap <= 0 {
		initCap = DefaultCapacity
	}
	return &Array{
		buff:    make([]any, initCap),
		baseCap: initCap,
	}
}

// Count returns the number of items in the array.
func (ra *Array) Count() int {
	return ra.size
}

// Capacity returns the number of slots currently allocated.
func (ra *Array) Capacity() int {
	return len(ra.buff)
}

// resize re-allocates the buffer to hold newCap items.
func (ra *Array) resize(newCap int) {
	tracer().Debugf("resize array: capacity %d -> %d (size %d)", len(ra.buff), newCap, ra.size)
	buff := make([]any, newCap)
	copy(buff, ra.buff[:ra.size])
	ra.buff = buff
}

// Add appends an item to the array, doubling the capacity if the array is full.
func (ra *Array) Add(item any) {
	if ra.size == len(ra.buff) {
		ra.resize(2 * len(ra.buff))
	}
	ra.buff[ra.size] = item
	ra.size++
}

// Get returns the item at index. It fails with clxns.ErrBounds if index is
// not in [0,Count()).
func (ra *Array) Get(index int) (any, error) {
	if index < 0 || index >= ra.size {
		return nil, clxns.BoundsError(index, ra.size)
	}
	return ra.buff[index], nil
}

// Exchange swaps the items at positions i and j. If either index is out of
// range, nothing is swapped and clxns.ErrBounds is returned.
func (ra *Array) Exchange(i, j int) error {
	if i < 0 || i >= ra.size {
		return clxns.BoundsError(i, ra.size)
	}
	if j < 0 || j >= ra.size {
		return clxns.BoundsError(j, ra.size)
	}
	ra.buff[i], ra.buff[j] = ra.buff[j], ra.buff[i]
	return nil
}

// Remove deletes the item at index and returns it. Items after index are
// shifted one position to the left. If the array has become sparse (at most
// a quarter full) and is larger than its base capacity, capacity is quartered.
func (ra *Array) Remove(index int) (any, error) {
	if index < 0 || index >= ra.size {
		return nil, clxns.BoundsError(index, ra.size)
	}
	item := ra.buff[index]
	copy(ra.buff[index:], ra.buff[index+1:ra.size])
	ra.size--
	ra.buff[ra.size] = nil
	if ra.size > ra.baseCap && ra.size <= len(ra.buff)/4 {
		ra.resize(len(ra.buff) / 4)
	}
	return item, nil
}

// Insert puts an item at position index, shifting the items from index on
// one position to the right. index may be Count(), which appends the item.
func (ra *Array) Insert(index int, item any) error {
	if index < 0 || index > ra.size {
		return clxns.BoundsError(index, ra.size+1)
	}
	if ra.size == len(ra.buff) {
		ra.resize(2 * len(ra.buff))
	}
	copy(ra.buff[index+1:ra.size+1], ra.buff[index:ra.size])
	ra.buff[index] = item
	ra.size++
	return nil
}

// Replace overwrites the item at index with item.
func (ra *Array) Replace(index int, item any) error {
	if index < 0 || index >= ra.size {
		return clxns.BoundsError(index, ra.size)
	}
	ra.buff[index] = item
	return nil
}

// Copy returns a shallow copy of the array. The copy has a buffer of its own,
// sized to the capacity of ra, holding the same item references.
func (ra *Array) Copy() *Array {
	buff := make([]any, len(ra.buff))
	copy(buff, ra.buff[:ra.size])
	return &Array{
		buff:    buff,
		size:    ra.size,
		baseCap: ra.baseCap,
	}
}

// CopyCollection is Copy for clients holding a clxns.Collection.
func (ra *Array) CopyCollection() clxns.Collection {
	return ra.Copy()
}

// Free drops the buffer of the array. If items is true, every stored item is
// released first (see clxns.Releaser). The array must not be used afterwards.
func (ra *Array) Free(items bool) {
	if items {
		for i := 0; i < ra.size; i++ {
			clxns.Release(ra.buff[i])
		}
	}
	ra.buff = nil
	ra.size = 0
}

// --- Iteration -------------------------------------------------------------

// cursor is the iterator state for arrays: a single position.
type cursor struct {
	ra  *Array
	pos int
}

// NewIterState is part of interface clxns.Collection.
func (ra *Array) NewIterState() clxns.IterState {
	return &cursor{ra: ra}
}

// Advance is part of interface clxns.IterState.
func (c *cursor) Advance() (any, bool) {
	if c.pos >= c.ra.size {
		return nil, false
	}
	item := c.ra.buff[c.pos]
	c.pos++
	return item, true
}
