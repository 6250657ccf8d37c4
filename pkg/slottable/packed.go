package slottable

// Packed stores values contiguously in insertion-then-erase-compacted
// order, trading an indirection lookup on [Packed.At] for cache-friendly
// iteration. Erase is O(1) when the last dense value's slot id equals its
// dense position (the usual case when erases are LIFO) and otherwise
// scans the indirection table from the back, O(n) in the worst case.
// Workloads that erase often should use [PackedBackRef]
// instead, which makes erase O(1) unconditionally at the cost of a
// back-reference field on T.
type Packed[T any, S Size] struct {
	values      Vector[T]
	indirection []S
	gen         []uint8
	freeHead    S
}

// NewPacked constructs an empty [Packed] table.
func NewPacked[T any, S Size]() *Packed[T, S] {
	return &Packed[T, S]{freeHead: linkMask[S]()}
}

// Size returns the number of live values.
func (p *Packed[T, S]) Size() int { return p.values.Len() }

// Capacity returns the number of slots ever allocated, live or not.
func (p *Packed[T, S]) Capacity() int { return len(p.indirection) }

// Range returns the number of live values, which for Packed is also the
// span available for parallel range iteration over the dense array.
func (p *Packed[T, S]) Range() S { return S(p.values.Len()) }

// Insert stores v and returns a link to it.
func (p *Packed[T, S]) Insert(v T) Link[S] {
	loc := S(p.values.Push(v))
	return p.bind(loc)
}

// Emplace appends a zero value, lets build initialize it in place, and
// returns a link to it.
func (p *Packed[T, S]) Emplace(build func(*T)) Link[S] {
	loc := S(p.values.Emplace(build))
	return p.bind(loc)
}

func (p *Packed[T, S]) bind(loc S) Link[S] {
	idx := p.freeHead
	if idx == linkMask[S]() {
		idx = S(len(p.indirection))
		p.indirection = append(p.indirection, loc)
		p.gen = append(p.gen, 0)
	} else {
		p.freeHead = p.indirection[idx] & linkMask[S]()
		p.indirection[idx] = loc
	}
	return encodeLink(idx, p.gen[idx])
}

// Erase removes the value named by l.
func (p *Packed[T, S]) Erase(l Link[S]) {
	id := l.index()
	checkSpoiler(p.gen[id], l.spoiler())

	pos := p.indirection[id]
	last := S(p.values.Len() - 1)
	*p.values.At(int(pos)) = *p.values.At(int(last))
	p.values.Truncate(p.values.Len() - 1)

	filler := S(p.values.Len())
	if int(filler) < len(p.indirection) && p.indirection[filler] == filler {
		p.indirection[filler] = pos
	} else {
		for end := len(p.indirection) - 1; end >= 0; end-- {
			if p.indirection[end] == filler {
				p.indirection[end] = pos
				break
			}
		}
	}

	p.indirection[id] = p.freeHead | invalidBit[S]()
	p.freeHead = id
	bumpSpoiler(&p.gen[id])
}

// At returns a pointer to the value named by l, or false if l is stale.
func (p *Packed[T, S]) At(l Link[S]) (*T, bool) {
	id := l.index()
	if int(id) >= len(p.indirection) {
		return nil, false
	}
	checkSpoiler(p.gen[id], l.spoiler())
	if p.indirection[id]&invalidBit[S]() != 0 {
		return nil, false
	}
	return p.values.At(int(p.indirection[id])), true
}

// ForEach calls f for every live value in dense order, stopping early if f
// returns false.
func (p *Packed[T, S]) ForEach(f func(*T) bool) {
	for i := 0; i < p.values.Len(); i++ {
		if !f(p.values.At(i)) {
			return
		}
	}
}

// ForEachRange calls f for every live value whose dense position is in
// [lo, hi), stopping early if f returns false.
func (p *Packed[T, S]) ForEachRange(lo, hi S, f func(*T) bool) {
	for i := lo; i < hi && int(i) < p.values.Len(); i++ {
		if !f(p.values.At(int(i))) {
			return
		}
	}
}

// Clear removes every value and releases the indirection table.
func (p *Packed[T, S]) Clear() {
	p.values.Reset()
	p.indirection = nil
	p.gen = nil
	p.freeHead = linkMask[S]()
}

// PackedBackRef is [Packed] with an O(1) erase, made possible by reading the
// slot id of the displaced dense element directly off its own
// back-reference field instead of scanning the indirection table for it.
type PackedBackRef[T any, S Size, PT BackRefOf[T, S]] struct {
	Packed[T, S]
}

// NewPackedBackRef constructs an empty [PackedBackRef] table.
func NewPackedBackRef[T any, S Size, PT BackRefOf[T, S]]() *PackedBackRef[T, S, PT] {
	return &PackedBackRef[T, S, PT]{Packed: Packed[T, S]{freeHead: linkMask[S]()}}
}

// Insert stores v, stamps its back-reference, and returns a link to it.
func (p *PackedBackRef[T, S, PT]) Insert(v T) Link[S] {
	loc := S(p.values.Push(v))
	link := p.bind(loc)
	PT(p.values.At(int(loc))).SetLink(link)
	return link
}

// Emplace appends a zero value, lets build initialize it in place, stamps
// its back-reference, and returns a link to it.
func (p *PackedBackRef[T, S, PT]) Emplace(build func(*T)) Link[S] {
	loc := S(p.values.Emplace(build))
	link := p.bind(loc)
	PT(p.values.At(int(loc))).SetLink(link)
	return link
}

// Erase removes the value named by l in O(1).
func (p *PackedBackRef[T, S, PT]) Erase(l Link[S]) {
	id := l.index()
	checkSpoiler(p.gen[id], l.spoiler())

	pos := p.indirection[id]
	last := S(p.values.Len() - 1)
	if pos != last {
		*p.values.At(int(pos)) = *p.values.At(int(last))
	}
	p.values.Truncate(p.values.Len() - 1)

	if pos != last {
		movedSlot := PT(p.values.At(int(pos))).GetLink().index()
		p.indirection[movedSlot] = pos
	}

	p.indirection[id] = p.freeHead | invalidBit[S]()
	p.freeHead = id
	bumpSpoiler(&p.gen[id])
}

// EraseValue removes v, reading its link from its own back-reference.
func (p *PackedBackRef[T, S, PT]) EraseValue(v T) {
	p.Erase(PT(&v).GetLink())
}
