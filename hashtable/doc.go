/*
Package hashtable implements a separate-chaining hash table from byte-string
keys to untyped references.

Keys are hashed with Dan Bernstein's djb2 string hash (see Hash). Every bucket
heads a singly linked chain of the entries which collided into it. Entries are
identified by their hash value: a hash value appears in at most one entry of a
table, so adding a key with the hash of an existing entry replaces that entry.

The table resizes on the number of occupied buckets, not on the number of
entries. It doubles once more than half of the buckets are occupied, and
shrinks to a quarter once at most a quarter of the buckets are occupied, but
never below its initial capacity. Resizing re-links the existing chain nodes;
keys and values are never copied.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hashtable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'clxns'
func tracer() tracing.Trace {
	return tracing.Select("clxns")
}
