package slottable

import "sort"

// Locator is the minimal interface a [BasicView] or [SortedView] needs from
// whatever container holds the actual values. Every variant in this
// package implements it. It is deliberately the only shared interface
// between variants: they do not share a unifying runtime interface beyond
// this single lookup method.
type Locator[T any, S Size] interface {
	At(Link[S]) (*T, bool)
}

// BasicView layers an insertion-ordered sequence of links over a host
// container, without owning the values themselves. Erase is unordered: the
// last link is swapped into the erased position before the slice shrinks.
type BasicView[T any, S Size, H Locator[T, S]] struct {
	host  H
	links []Link[S]
}

// NewBasicView constructs an empty [BasicView] over host.
func NewBasicView[T any, S Size, H Locator[T, S]](host H) *BasicView[T, S, H] {
	return &BasicView[T, S, H]{host: host}
}

// Len returns the number of links held by the view.
func (v *BasicView[T, S, H]) Len() int { return len(v.links) }

// PushBack appends l to the end of the view.
func (v *BasicView[T, S, H]) PushBack(l Link[S]) { v.links = append(v.links, l) }

// Insert is an alias for PushBack, matching the source's naming.
func (v *BasicView[T, S, H]) Insert(l Link[S]) { v.PushBack(l) }

// At returns the value at view position i by resolving it through the
// host.
func (v *BasicView[T, S, H]) At(i int) (*T, bool) { return v.host.At(v.links[i]) }

// LinkAt returns the link held at view position i.
func (v *BasicView[T, S, H]) LinkAt(i int) Link[S] { return v.links[i] }

// Find returns the view position of l, or false if it isn't present.
func (v *BasicView[T, S, H]) Find(l Link[S]) (int, bool) {
	for i, x := range v.links {
		if x == l {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether l is present in the view.
func (v *BasicView[T, S, H]) Contains(l Link[S]) bool {
	_, ok := v.Find(l)
	return ok
}

// Erase removes l from the view (not from the host) and reports whether it
// was present. The last element is swapped into the erased position, so
// view order is not preserved across an erase.
func (v *BasicView[T, S, H]) Erase(l Link[S]) bool {
	i, ok := v.Find(l)
	if !ok {
		return false
	}
	last := len(v.links) - 1
	v.links[i] = v.links[last]
	v.links = v.links[:last]
	return true
}

// ForEach calls f for every value the view resolves, in view order,
// stopping early if f returns false. Links that no longer resolve (the
// host erased them without the view being told) are skipped.
func (v *BasicView[T, S, H]) ForEach(f func(*T) bool) {
	for _, l := range v.links {
		value, ok := v.host.At(l)
		if !ok {
			continue
		}
		if !f(value) {
			return
		}
	}
}

// InsertValue resolves val's link through its own back-reference and
// inserts it into the view. It is a free function rather than a method
// because Go methods cannot introduce their own type parameters.
func InsertValue[T any, S Size, H Locator[T, S], PT BackRefOf[T, S]](v *BasicView[T, S, H], val T) {
	v.Insert(PT(&val).GetLink())
}

// EraseValue resolves val's link through its own back-reference and
// erases it from the view, reporting whether it was present.
func EraseValue[T any, S Size, H Locator[T, S], PT BackRefOf[T, S]](v *BasicView[T, S, H], val T) bool {
	return v.Erase(PT(&val).GetLink())
}

// SortedView is a [BasicView] that keeps its links sorted by raw offset,
// trading O(n) insert/erase for O(log n) Find/Contains via binary search.
type SortedView[T any, S Size, H Locator[T, S]] struct {
	BasicView[T, S, H]
}

// NewSortedView constructs an empty [SortedView] over host.
func NewSortedView[T any, S Size, H Locator[T, S]](host H) *SortedView[T, S, H] {
	return &SortedView[T, S, H]{BasicView: BasicView[T, S, H]{host: host}}
}

func (v *SortedView[T, S, H]) lowerBound(l Link[S]) (int, bool) {
	i := sort.Search(len(v.links), func(i int) bool { return v.links[i].offset >= l.offset })
	return i, i < len(v.links) && v.links[i] == l
}

// Insert inserts l at the position that keeps the view sorted.
func (v *SortedView[T, S, H]) Insert(l Link[S]) {
	i, _ := v.lowerBound(l)
	v.links = append(v.links, Link[S]{})
	copy(v.links[i+1:], v.links[i:])
	v.links[i] = l
}

// PushBack is an alias for Insert: a sorted view has no "back" to append
// to, every insertion lands at its sorted position.
func (v *SortedView[T, S, H]) PushBack(l Link[S]) { v.Insert(l) }

// Find returns the view position of l via binary search, or false if it
// isn't present.
func (v *SortedView[T, S, H]) Find(l Link[S]) (int, bool) { return v.lowerBound(l) }

// Contains reports whether l is present in the view.
func (v *SortedView[T, S, H]) Contains(l Link[S]) bool {
	_, ok := v.lowerBound(l)
	return ok
}

// Erase removes l from the view (not from the host) and reports whether it
// was present, preserving sort order of the remainder.
func (v *SortedView[T, S, H]) Erase(l Link[S]) bool {
	i, ok := v.lowerBound(l)
	if !ok {
		return false
	}
	v.links = append(v.links[:i], v.links[i+1:]...)
	return true
}
