// Package model provides a deliberately simple, in-memory oracle of the
// publicly observable behavior of the sparse and packed slot table
// variants in [github.com/calvinalkan/slottable/pkg/slottable].
//
// The model favors clarity over performance: it tracks state with a plain
// slice and a Go slice-backed free-list rather than any of the in-place
// encoding tricks the real variants use. Property tests drive both the
// model and a real table with the same operation sequence and compare
// observable state with [github.com/google/go-cmp/cmp].
package model

// FreePolicy selects which slot a model reuses on the next insert after an
// erase, mirroring the reuse order of a specific real variant.
type FreePolicy int

const (
	// LIFO reuses the most recently freed slot first, matching
	// [slottable.SparseValidMap], [slottable.SparseNoIter],
	// [slottable.SparsePointer], and the indirection free-list of
	// [slottable.Packed].
	LIFO FreePolicy = iota
	// Sorted reuses the lowest-indexed freed slot first, matching
	// [slottable.SparseSortedFree].
	Sorted
)

// Slot is the observable state of a single model slot.
type Slot struct {
	Live  bool
	Value string
}

// Sparse is an oracle for the sparse storage variants: a slot's position
// never changes once assigned, regardless of later inserts or erases.
type Sparse struct {
	Policy FreePolicy
	Slots  []Slot
	Free   []int // ids currently vacant, in reuse order (next reused is Free[0])
}

// NewSparse returns an empty oracle that reuses freed slots according to
// policy.
func NewSparse(policy FreePolicy) *Sparse {
	return &Sparse{Policy: policy}
}

// Size returns the number of live slots.
func (m *Sparse) Size() int {
	n := 0
	for _, s := range m.Slots {
		if s.Live {
			n++
		}
	}
	return n
}

// Range returns the number of slots ever allocated.
func (m *Sparse) Range() int { return len(m.Slots) }

// Insert stores value in a reused or newly-appended slot and returns its id.
func (m *Sparse) Insert(value string) int {
	if len(m.Free) == 0 {
		id := len(m.Slots)
		m.Slots = append(m.Slots, Slot{Live: true, Value: value})
		return id
	}

	id := m.Free[0]
	m.Free = m.Free[1:]
	m.Slots[id] = Slot{Live: true, Value: value}
	return id
}

// Erase marks id vacant and returns it to the free-list at the position its
// policy dictates.
func (m *Sparse) Erase(id int) {
	m.Slots[id] = Slot{}

	if m.Policy == LIFO {
		m.Free = append([]int{id}, m.Free...)
		return
	}

	i := 0
	for i < len(m.Free) && m.Free[i] < id {
		i++
	}
	m.Free = append(m.Free[:i], append([]int{id}, m.Free[i:]...)...)
}

// At returns the value stored at id, or false if id is out of range or
// vacant.
func (m *Sparse) At(id int) (string, bool) {
	if id < 0 || id >= len(m.Slots) || !m.Slots[id].Live {
		return "", false
	}
	return m.Slots[id].Value, true
}

// ForEach returns every live value in ascending slot order.
func (m *Sparse) ForEach() []string {
	var out []string
	for _, s := range m.Slots {
		if s.Live {
			out = append(out, s.Value)
		}
	}
	return out
}

// Dense is an oracle for [slottable.Packed]: live values are kept
// contiguous, and erasing one swaps the last value into its place.
type Dense struct {
	values      []string
	indirection []int // slot id -> dense position, or -1 if vacant
	free        []int // vacant slot ids, LIFO reuse order
}

// NewDense returns an empty dense oracle.
func NewDense() *Dense { return &Dense{} }

// Size returns the number of live values.
func (d *Dense) Size() int { return len(d.values) }

// Range returns the number of slot ids ever allocated.
func (d *Dense) Range() int { return len(d.indirection) }

// Insert appends value to the dense array and binds it to a reused or new
// slot id, which it returns.
func (d *Dense) Insert(value string) int {
	pos := len(d.values)
	d.values = append(d.values, value)

	if len(d.free) == 0 {
		id := len(d.indirection)
		d.indirection = append(d.indirection, pos)
		return id
	}

	id := d.free[len(d.free)-1]
	d.free = d.free[:len(d.free)-1]
	d.indirection[id] = pos
	return id
}

// Erase removes the value bound to id, swapping the last dense value into
// its place and repairing that value's indirection entry.
func (d *Dense) Erase(id int) {
	pos := d.indirection[id]
	last := len(d.values) - 1

	movedID := -1
	for i, p := range d.indirection {
		if p == last && i != id {
			movedID = i
			break
		}
	}

	d.values[pos] = d.values[last]
	d.values = d.values[:last]

	if movedID >= 0 {
		d.indirection[movedID] = pos
	}

	d.indirection[id] = -1
	d.free = append(d.free, id)
}

// At returns the value bound to id, or false if id is out of range or
// vacant.
func (d *Dense) At(id int) (string, bool) {
	if id < 0 || id >= len(d.indirection) || d.indirection[id] < 0 {
		return "", false
	}
	return d.values[d.indirection[id]], true
}

// ForEach returns every live value in dense order.
func (d *Dense) ForEach() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)
	return out
}
