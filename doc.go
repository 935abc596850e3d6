/*
Package clxns is a small runtime of generic collections: a dynamic array,
a binary-heap priority queue and a separate-chaining hash table.

Collections

The concrete collections live in sub-packages:

  - resizearray: a contiguous, growable and shrinkable buffer,
  - pqueue: a binary heap on top of a resize array, ordered by a comparator,
  - hashtable: a map from byte-string keys to untyped references.

All of them implement interface Collection, which is the common handle type for
the four generic verbs of this package: Count, NewIterator, Copy and Free.
Clients may therefore write code against Collection and iterate over an array,
a queue or a table without knowing which one they hold:

	it := clxns.NewIterator(coll)
	defer it.Free()
	for it.MoveNext() {
	    fmt.Println(it.GetNext())
	}

Ownership

A collection owns its structural memory (buffers, chain nodes, bucket arrays),
but never the payload it stores. Copies are shallow: they get new structural
memory, but share item references with the original. Payload is released only
if a client asks for it by passing items=true to Free. Items implementing
Releaser will then be released. Freeing an original and one of its copies with
items=true will release shared payload twice; clients have to track payload
lifetime themselves.

Collections are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package clxns

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'clxns'.
func T() tracing.Trace {
	return tracing.Select("clxns")
}
