package pqueue

import (
	"github.com/npillmayer/clxns"
	"github.com/npillmayer/clxns/resizearray"
)

// Comparator is a three-way comparison of two items: negative if a < b,
// zero if a and b are equal in priority, positive if a > b.
type Comparator func(a, b any) int

// Order selects which end of the comparator's order a queue serves first.
type Order int

const (
	// Ascending queues serve the smallest item first (min-heap).
	Ascending Order = iota
	// Descending queues serve the largest item first (max-heap).
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Queue is a priority queue. Queue implements clxns.Collection.
type Queue struct {
	array   *resizearray.Array // 1-indexed heap, slot 0 is a sentinel
	size    int
	compare Comparator
	order   Order
}

var _ clxns.Collection = (*Queue)(nil)

// New creates an empty priority queue. initSize is a capacity hint for the
// backing array (0 selects a default), cmp must not be nil.
func New(initSize int, order Order, cmp Comparator) *Queue {
	assert(cmp != nil, "priority queue requires a comparator")
	pq := &Queue{
		array:   resizearray.New(initSize),
		compare: cmp,
		order:   order,
	}
	pq.array.Add(nil) // sentinel
	return pq
}

// NewMin creates an ascending priority queue.
func NewMin(initSize int, cmp Comparator) *Queue {
	return New(initSize, Ascending, cmp)
}

// NewMax creates a descending priority queue.
func NewMax(initSize int, cmp Comparator) *Queue {
	return New(initSize, Descending, cmp)
}

// Count returns the number of items in the queue.
func (pq *Queue) Count() int {
	return pq.size
}

// Order returns the order of the queue.
func (pq *Queue) Order() Order {
	return pq.order
}

// Add enqueues an item. Enqueuing nil fails with clxns.ErrNullItem.
func (pq *Queue) Add(item any) error {
	if item == nil {
		return clxns.ErrNullItem
	}
	pq.array.Add(item)
	pq.size++
	pq.swim(pq.size)
	return nil
}

// Pop removes the head of the queue and returns it. Popping from an empty
// queue fails with clxns.ErrBounds.
func (pq *Queue) Pop() (any, error) {
	if pq.size == 0 {
		tracer().Debugf("pop on empty priority queue")
		return nil, clxns.ErrBounds
	}
	last := pq.size
	if err := pq.array.Exchange(1, last); err != nil {
		return nil, err
	}
	item, err := pq.array.Remove(last)
	if err != nil {
		return nil, err
	}
	pq.size = last - 1
	pq.sink(1)
	return item, nil
}

// Peek returns the head of the queue without removing it. Peeking into an
// empty queue fails with clxns.ErrBounds.
func (pq *Queue) Peek() (any, error) {
	if pq.size == 0 {
		return nil, clxns.ErrBounds
	}
	return pq.array.Get(1)
}

// Copy returns a shallow copy of the queue. The backing array is copied,
// comparator and order are shared.
func (pq *Queue) Copy() *Queue {
	cp := *pq
	cp.array = pq.array.Copy()
	return &cp
}

// CopyCollection is Copy for clients holding a clxns.Collection.
func (pq *Queue) CopyCollection() clxns.Collection {
	return pq.Copy()
}

// Free drops the backing array. If items is true, every enqueued item is
// released first (see clxns.Releaser). The queue must not be used afterwards.
func (pq *Queue) Free(items bool) {
	pq.array.Free(items) // the nil sentinel is ignored by clxns.Release
	pq.size = 0
}

// --- Heap maintenance ------------------------------------------------------

// item returns the item at heap position k.
func (pq *Queue) item(k int) any {
	item, err := pq.array.Get(k)
	assert(err == nil, "heap position out of range")
	return item
}

// violates reports whether the item at position first must not be an
// ancestor of the item at position second. Ties never violate order.
func (pq *Queue) violates(first, second int) bool {
	c := pq.compare(pq.item(first), pq.item(second))
	if pq.order == Descending {
		return c < 0
	}
	return c > 0
}

// swim moves the item at position k up until its parent does not violate order.
func (pq *Queue) swim(k int) {
	for k > 1 && pq.violates(k/2, k) {
		pq.array.Exchange(k/2, k)
		k /= 2
	}
}

// sink moves the item at position k down until no child violates order.
// Of two children, the one closer to the root under order is chosen; ties
// go to the left child.
func (pq *Queue) sink(k int) {
	for 2*k <= pq.size {
		j := 2 * k
		if j < pq.size && pq.violates(j, j+1) {
			j++
		}
		if !pq.violates(k, j) {
			break
		}
		pq.array.Exchange(k, j)
		k = j
	}
}

// --- Iteration -------------------------------------------------------------

// drain is the iterator state for queues. It owns a private copy of the
// queue and pops from it, so the source queue is left untouched.
type drain struct {
	pq *Queue
}

// NewIterState is part of interface clxns.Collection. Iteration produces the
// items in priority order, without consuming the queue.
func (pq *Queue) NewIterState() clxns.IterState {
	return &drain{pq: pq.Copy()}
}

// Advance is part of interface clxns.IterState.
func (d *drain) Advance() (any, bool) {
	item, err := d.pq.Pop()
	return item, err == nil
}

// FreeState is part of interface clxns.IterStateFreer.
func (d *drain) FreeState() {
	d.pq.Free(false)
}
