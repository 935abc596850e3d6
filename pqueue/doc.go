/*
Package pqueue implements a priority queue as a binary heap over a resize array.

The heap is 1-indexed: slot 0 of the backing array holds a permanent sentinel,
so that the parent of position k is k/2 and its children are 2k and 2k+1.
A queue is ordered either ascending (smallest item first) or descending
(largest item first), as decided by a client supplied comparator.

Items comparing equal are never exchanged during sifting, therefore the
relative order of items with equal priority is not stable.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pqueue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'clxns'
func tracer() tracing.Trace {
	return tracing.Select("clxns")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
