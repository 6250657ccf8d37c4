package slottable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvinalkan/slottable/pkg/slottable"
)

func Test_NullLink_IsValid_Returns_False(t *testing.T) {
	t.Parallel()

	null := slottable.NullLink[uint32]()
	assert.False(t, null.IsValid(), "the null sentinel must never be reported valid")
}

func Test_Link_IsValid_Returns_True_When_Not_Null(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[int, uint32]()
	v := 1
	l := table.Insert(&v)

	assert.True(t, l.IsValid(), "a link returned by Insert must be valid")
	assert.NotEqual(t, slottable.NullLink[uint32](), l)
}

func Test_Link_Raw_RoundTrips_Through_LinkFromRaw(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[int, uint32]()
	v := 42
	l := table.Insert(&v)

	raw := l.Raw()
	restored := slottable.LinkFromRaw[uint32](raw)

	assert.Equal(t, l, restored, "Raw/LinkFromRaw must round-trip a link's encoded offset")

	value, ok := table.At(restored)
	assert.True(t, ok)
	assert.Equal(t, &v, value)
}

func Test_NullLink_String_Reports_Null(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Link(null)", slottable.NullLink[uint32]().String())
}

func Test_Link_String_Is_Not_Empty_For_Valid_Link(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[int, uint32]()
	v := 1
	l := table.Insert(&v)

	assert.NotEmpty(t, l.String())
	assert.NotEqual(t, "Link(null)", l.String())
}

func Test_Link_Works_With_Uint64_Size(t *testing.T) {
	t.Parallel()

	table := slottable.NewSparsePointer[int, uint64]()
	v := 7
	l := table.Insert(&v)

	value, ok := table.At(l)
	assert.True(t, ok)
	assert.Equal(t, &v, value)
}
