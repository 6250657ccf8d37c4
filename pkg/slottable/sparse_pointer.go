package slottable

// SparsePointer stores *T rather than T, useful when T is large, must
// remain addressable from outside the table, or is simply easier to manage
// by reference. The source encodes its free-list link in the stolen low
// bit of the stored pointer itself; Go's garbage collector requires every
// word in a []*T to be either nil or a real pointer at every safepoint, so
// a synthetic tagged value there is unsound. This variant keeps a parallel
// []S free-list array instead — one extra word per slot, but GC-legal.
type SparsePointer[T any, S Size] struct {
	slots    []*T
	next     []S
	gen      []uint8
	freeHead S
	size     int
}

// NewSparsePointer constructs an empty [SparsePointer] table.
func NewSparsePointer[T any, S Size]() *SparsePointer[T, S] {
	return &SparsePointer[T, S]{freeHead: linkMask[S]()}
}

// Size returns the number of live values.
func (p *SparsePointer[T, S]) Size() int { return p.size }

// Capacity returns the number of slots ever allocated, live or not.
func (p *SparsePointer[T, S]) Capacity() int { return len(p.slots) }

// Insert stores v and returns a link to it. v must not be nil.
func (p *SparsePointer[T, S]) Insert(v *T) Link[S] {
	idx := p.freeHead
	if idx == linkMask[S]() {
		idx = S(len(p.slots))
		p.slots = append(p.slots, nil)
		p.next = append(p.next, linkMask[S]())
		p.gen = append(p.gen, 0)
	} else {
		p.freeHead = p.next[idx]
	}
	p.slots[idx] = v
	p.size++
	return encodeLink(idx, p.gen[idx])
}

// Erase removes the value named by l. The pointer itself is not freed;
// the caller owns v's lifetime.
func (p *SparsePointer[T, S]) Erase(l Link[S]) {
	id := l.index()
	checkSpoiler(p.gen[id], l.spoiler())
	p.slots[id] = nil
	p.next[id] = p.freeHead
	p.freeHead = id
	p.size--
	bumpSpoiler(&p.gen[id])
}

// At returns the pointer named by l, or false if l is stale or names a
// vacant slot.
func (p *SparsePointer[T, S]) At(l Link[S]) (*T, bool) {
	id := l.index()
	if int(id) >= len(p.slots) {
		return nil, false
	}
	checkSpoiler(p.gen[id], l.spoiler())
	v := p.slots[id]
	if v == nil {
		return nil, false
	}
	return v, true
}

// ForEach calls f for every live pointer, stopping early if f returns
// false.
func (p *SparsePointer[T, S]) ForEach(f func(*T) bool) {
	for _, v := range p.slots {
		if v == nil {
			continue
		}
		if !f(v) {
			return
		}
	}
}

// Clear removes every value and releases all slots. Stored pointers are
// dropped, not freed.
func (p *SparsePointer[T, S]) Clear() {
	p.slots = nil
	p.next = nil
	p.gen = nil
	p.freeHead = linkMask[S]()
	p.size = 0
}

// SparsePointerBackRef is [SparsePointer] extended with a back-reference
// applied to *T (the pointer is dereferenced before the field is read or
// written), enabling [SparsePointerBackRef.EraseValue].
type SparsePointerBackRef[T any, S Size, PT BackRefOf[T, S]] struct {
	SparsePointer[T, S]
}

// NewSparsePointerBackRef constructs an empty [SparsePointerBackRef]
// table.
func NewSparsePointerBackRef[T any, S Size, PT BackRefOf[T, S]]() *SparsePointerBackRef[T, S, PT] {
	return &SparsePointerBackRef[T, S, PT]{SparsePointer: SparsePointer[T, S]{freeHead: linkMask[S]()}}
}

// Insert stores v, stamps its back-reference, and returns a link to it.
func (p *SparsePointerBackRef[T, S, PT]) Insert(v *T) Link[S] {
	link := p.SparsePointer.Insert(v)
	PT(v).SetLink(link)
	return link
}

// EraseValue removes v, reading its link from its own back-reference.
func (p *SparsePointerBackRef[T, S, PT]) EraseValue(v *T) {
	p.Erase(PT(v).GetLink())
}
