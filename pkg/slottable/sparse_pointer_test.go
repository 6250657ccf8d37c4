package slottable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slottable/pkg/slottable"
)

// Test_SparsePointer_S6_Erase_Middle_Leaves_Outer_Two is scenario S6 from
// spec.md §8.
func Test_SparsePointer_S6_Erase_Middle_Leaves_Outer_Two(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[string, uint32]()

	a, b, c := "a", "b", "c"
	l1 := table.Insert(&a)
	l2 := table.Insert(&b)
	l3 := table.Insert(&c)

	table.Erase(l2)

	var seen []string
	table.ForEach(func(v *string) bool {
		seen = append(seen, *v)
		return true
	})
	assert.ElementsMatch(t, []string{"a", "c"}, seen)

	_, ok := table.At(l1)
	assert.True(t, ok)
	_, ok = table.At(l3)
	assert.True(t, ok)
	_, ok = table.At(l2)
	assert.False(t, ok)
}

func Test_SparsePointer_Erase_Does_Not_Clear_The_Pointee(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[string, uint32]()
	v := "still alive"
	l := table.Insert(&v)

	table.Erase(l)

	assert.Equal(t, "still alive", v, "erase must not free or mutate the pointee; the caller owns it")
}

func Test_SparsePointer_Insert_Reuses_Freed_Slot(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[int, uint32]()
	a, b := 1, 2
	l1 := table.Insert(&a)
	table.Erase(l1)

	l2 := table.Insert(&b)
	assert.Equal(t, l1.Raw(), l2.Raw())
	assert.Equal(t, 1, table.Capacity())
}

func Test_SparsePointerBackRef_EraseValue_Dereferences_Before_Reading_Link(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointerBackRef[item, uint32, *item]()
	v := &item{Name: "a"}
	table.Insert(v)

	table.EraseValue(v)

	assert.Equal(t, 0, table.Size())
}

func Test_SparsePointer_At_Reports_False_For_Out_Of_Range_Link(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[int, uint32]()
	v := 1
	table.Insert(&v)

	_, ok := table.At(slottable.LinkFromRaw[uint32](99))
	require.False(t, ok)
}
