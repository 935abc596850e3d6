/*
Package resizearray implements a contiguous array of untyped references which
grows and shrinks with its content.

Adding is amortized O(1): a full array doubles its capacity. Removing shifts
the tail of the array and shrinks capacity to a quarter if the array has
become sparse, but never below the initial (base) capacity.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package resizearray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'clxns'
func tracer() tracing.Trace {
	return tracing.Select("clxns")
}
