package clxns

// Collection is the operation set every concrete collection implements.
// It plays the role of a per-instance dispatch table: generic code holds a
// Collection and never needs to know the concrete type behind it.
type Collection interface {
	// Count returns the number of items in the collection.
	Count() int
	// NewIterState allocates the collection specific state of an iterator.
	NewIterState() IterState
	// CopyCollection returns a shallow copy of the collection.
	CopyCollection() Collection
	// Free destroys the collection. If items is true, stored payload
	// is released as well (see Releaser).
	Free(items bool)
}

// IterState is the opaque, collection specific state of an Iterator.
type IterState interface {
	// Advance produces the next item, if any. ok is false if the
	// collection is exhausted.
	Advance() (item any, ok bool)
}

// IterStateFreer is implemented by iterator states which hold on to
// resources of their own. FreeState is called when the iterator is freed.
type IterStateFreer interface {
	FreeState()
}

// Releaser is implemented by payload which has to be released explicitly.
type Releaser interface {
	Release()
}

// Release releases item if it implements Releaser, and does nothing otherwise.
func Release(item any) {
	if r, ok := item.(Releaser); ok {
		r.Release()
	}
}

// KVP is a key/value pair, as produced by iterators over hash tables.
type KVP struct {
	Key   string
	Value any
}

// Count returns the number of items in a collection.
func Count(c Collection) int {
	if c == nil {
		return 0
	}
	return c.Count()
}

// Copy returns a shallow copy of a collection: new structural memory, shared
// payload.
func Copy(c Collection) Collection {
	if c == nil {
		return nil
	}
	return c.CopyCollection()
}

// Free destroys a collection, optionally releasing its payload.
func Free(c Collection, items bool) {
	if c == nil {
		return
	}
	c.Free(items)
}
