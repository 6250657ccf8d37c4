package slottable_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slottable/pkg/slottable"
)

// =============================================================================
// Fuzz Tests
//
// Property: for any sequence of insert/erase operations, every link returned
// by Insert resolves to the value it was given until that exact link is
// erased or Clear is called (spec.md §8 property 1, "Stability").
// =============================================================================

// FuzzSparseValidMap_StableUntilErased drives a real [slottable.SparseValidMap]
// with a seeded random operation stream and checks that every link still
// held resolves to the value it was inserted with.
func FuzzSparseValidMap_StableUntilErased(f *testing.F) {
	f.Add(int64(0), 50)
	f.Add(int64(1), 200)
	f.Add(int64(-1), 10)
	f.Add(int64(12345), 500)

	f.Fuzz(func(t *testing.T, seed int64, steps int) {
		if steps < 0 || steps > 2000 {
			t.Skip("out of range for a bounded fuzz run")
		}

		table, err := slottable.NewSparseValidMap[int, uint32]()
		require.NoError(t, err)

		live := map[uint32]int{}
		r := rand.New(rand.NewSource(seed))

		for i := 0; i < steps; i++ {
			if len(live) == 0 || r.Intn(2) == 0 {
				v := r.Int()
				l := table.Insert(v)
				live[l.Raw()] = v
				continue
			}

			var target uint32
			n := r.Intn(len(live))
			j := 0
			for k := range live {
				if j == n {
					target = k
					break
				}
				j++
			}

			table.Erase(slottable.LinkFromRaw[uint32](target))
			delete(live, target)
		}

		for raw, want := range live {
			l := slottable.LinkFromRaw[uint32](raw)
			got, ok := table.At(l)
			require.True(t, ok, "link %d should still resolve", raw)
			require.Equal(t, want, *got, "link %d should resolve to the value it was inserted with", raw)
		}

		require.Equal(t, len(live), table.Size())
	})
}

// FuzzPacked_StableUntilErased is the [slottable.Packed] sibling: the dense
// array moves values around on erase, so this is where a broken indirection
// fixup would show up fastest.
func FuzzPacked_StableUntilErased(f *testing.F) {
	f.Add(int64(0), 50)
	f.Add(int64(7), 300)
	f.Add(int64(99999), 1000)

	f.Fuzz(func(t *testing.T, seed int64, steps int) {
		if steps < 0 || steps > 2000 {
			t.Skip("out of range for a bounded fuzz run")
		}

		table := slottable.NewPacked[int, uint32]()
		live := map[uint32]int{}
		r := rand.New(rand.NewSource(seed))

		for i := 0; i < steps; i++ {
			if len(live) == 0 || r.Intn(2) == 0 {
				v := r.Int()
				l := table.Insert(v)
				live[l.Raw()] = v
				continue
			}

			var target uint32
			n := r.Intn(len(live))
			j := 0
			for k := range live {
				if j == n {
					target = k
					break
				}
				j++
			}

			table.Erase(slottable.LinkFromRaw[uint32](target))
			delete(live, target)
		}

		for raw, want := range live {
			l := slottable.LinkFromRaw[uint32](raw)
			got, ok := table.At(l)
			require.True(t, ok, "link %d should still resolve", raw)
			require.Equal(t, want, *got)
		}
	})
}
