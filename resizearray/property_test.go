package resizearray

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// ops are encoded as ints: a non-negative op adds an item, a negative op
// removes the item at position (-op-1) modulo the current count.
func TestCountFollowsAddsAndRemoves(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("count = adds - removes", prop.ForAll(
		func(init int, ops []int) bool {
			ra := New(init)
			adds, removes := 0, 0
			for _, op := range ops {
				if op >= 0 || ra.Count() == 0 {
					ra.Add(op)
					adds++
				} else {
					if _, err := ra.Remove((-op - 1) % ra.Count()); err != nil {
						return false
					}
					removes++
				}
				if ra.Count() != adds-removes {
					return false
				}
				if ra.Count() > ra.Capacity() || ra.Capacity() < ra.baseCap {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 16),
		gen.SliceOf(gen.IntRange(-50, 50)),
	))
	properties.TestingRun(t)
}

func TestGetReturnsAddedItems(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("get(i) is the i-th added item", prop.ForAll(
		func(items []string) bool {
			ra := New(0)
			for _, s := range items {
				ra.Add(s)
			}
			for i, s := range items {
				if item, err := ra.Get(i); err != nil || item != s {
					return false
				}
			}
			_, err := ra.Get(len(items))
			return err != nil
		},
		gen.SliceOf(gen.AlphaString()),
	))
	properties.TestingRun(t)
}
