package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slottable/pkg/slottable/model"
)

func Test_Sparse_Reuses_LIFO_When_Policy_Is_LIFO(t *testing.T) {
	t.Parallel()

	m := model.NewSparse(model.LIFO)

	a := m.Insert("a")
	b := m.Insert("b")
	c := m.Insert("c")
	require.Equal(t, []int{0, 1, 2}, []int{a, b, c})

	m.Erase(a)
	m.Erase(b)

	reused := m.Insert("d")
	assert.Equal(t, b, reused, "LIFO policy should reuse the most recently freed slot first")
}

func Test_Sparse_Reuses_Sorted_When_Policy_Is_Sorted(t *testing.T) {
	t.Parallel()

	m := model.NewSparse(model.Sorted)

	for i := 0; i < 5; i++ {
		m.Insert("v")
	}

	m.Erase(3)
	m.Erase(1)
	m.Erase(4)

	assert.Equal(t, []int{1, 3, 4}, m.Free, "sorted policy should keep the free-list in ascending order")

	reused := m.Insert("d")
	assert.Equal(t, 1, reused, "sorted policy should reuse the lowest-indexed freed slot first")
}

func Test_Sparse_ForEach_Skips_Vacant_Slots(t *testing.T) {
	t.Parallel()

	m := model.NewSparse(model.LIFO)
	m.Insert("a")
	b := m.Insert("b")
	m.Insert("c")
	m.Erase(b)

	assert.Equal(t, []string{"a", "c"}, m.ForEach())
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 3, m.Range())
}

func Test_Sparse_At_Reports_False_When_Id_Vacant_Or_Out_Of_Range(t *testing.T) {
	t.Parallel()

	m := model.NewSparse(model.LIFO)
	id := m.Insert("a")
	m.Erase(id)

	_, ok := m.At(id)
	assert.False(t, ok, "erased slot should no longer resolve")

	_, ok = m.At(99)
	assert.False(t, ok, "out of range id should not resolve")
}

func Test_Dense_Erase_Keeps_Values_Contiguous(t *testing.T) {
	t.Parallel()

	d := model.NewDense()
	a := d.Insert("a")
	_ = d.Insert("b")
	c := d.Insert("c")

	d.Erase(a)

	assert.Equal(t, 2, d.Size())
	value, ok := d.At(c)
	require.True(t, ok)
	assert.Equal(t, "c", value, "erasing a should relocate c without changing its resolved value")
	assert.ElementsMatch(t, []string{"c", "b"}, d.ForEach())
}

func Test_Dense_Insert_Reuses_Freed_Id_LIFO(t *testing.T) {
	t.Parallel()

	d := model.NewDense()
	a := d.Insert("a")
	b := d.Insert("b")
	d.Insert("c")

	d.Erase(a)
	d.Erase(b)

	reused := d.Insert("d")
	assert.Equal(t, b, reused, "dense oracle should reuse freed ids LIFO like Packed's indirection free-list")
}
