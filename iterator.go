package clxns

import "iter"

// Iterator is the one cursor type for all collections.
//
// An iterator holds a reference to its source collection, but does not own it.
// Mutating a collection while an iterator over it is outstanding is not
// supported.
type Iterator struct {
	next  any        // item cached by the latest successful MoveNext
	state IterState  // collection specific
	coll  Collection // source of the iteration
}

// NewIterator creates an iterator over c. Clients should call Free when done.
func NewIterator(c Collection) *Iterator {
	it := &Iterator{coll: c}
	if c != nil {
		it.state = c.NewIterState()
	}
	return it
}

// MoveNext advances the iterator and reports whether another item has been
// produced. The item is then available through GetNext.
func (it *Iterator) MoveNext() bool {
	if it == nil || it.state == nil {
		return false
	}
	item, ok := it.state.Advance()
	it.next = item
	return ok
}

// GetNext returns the item produced by the latest successful call to MoveNext.
// Calling it before MoveNext, or after MoveNext returned false, is a
// precondition violation; the result is unspecified.
func (it *Iterator) GetNext() any {
	return it.next
}

// Collection returns the source collection of the iterator.
func (it *Iterator) Collection() Collection {
	return it.coll
}

// Free releases the iterator state. The source collection is not affected.
func (it *Iterator) Free() {
	if it == nil || it.state == nil {
		return
	}
	if f, ok := it.state.(IterStateFreer); ok {
		f.FreeState()
	}
	it.state = nil
	it.next = nil
}

// All returns a range-over-func sequence of the items of c. The underlying
// iterator is freed when the sequence is exhausted or the loop breaks.
func All(c Collection) iter.Seq[any] {
	return func(yield func(any) bool) {
		it := NewIterator(c)
		defer it.Free()
		for it.MoveNext() {
			if !yield(it.GetNext()) {
				return
			}
		}
	}
}
