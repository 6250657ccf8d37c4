// Package slottable provides a family of generic, in-memory slot tables.
//
// A slot table stores values of some type T and hands back a small opaque
// [Link], a stable handle that stays valid across unrelated insertions and
// deletions until the value it names is erased. Seven variants trade off
// iteration speed, erase cost, and per-slot overhead differently; pick the
// one that matches your access pattern rather than reaching for the most
// general one by default.
//
// # Basic Usage
//
//	table, err := slottable.NewSparseValidMap[string, uint32]()
//	link := table.Insert("first")
//
//	if v, ok := table.At(link); ok {
//	    fmt.Println(*v)
//	}
//
//	table.Erase(link)
//
// # Choosing a variant
//
//   - [Packed] / [PackedBackRef]: values are kept contiguous for fast
//     iteration, at the cost of an indirection lookup on [Packed.At].
//     Prefer [PackedBackRef] unless your workload never erases.
//   - [SparseBackRef]: values never move; erase is O(1) but requires T to
//     carry a back-reference.
//   - [SparseValidMap]: values never move, no back-reference required,
//     iteration skips vacant slots via a bitmap.
//   - [SparseSortedFree]: like [SparseValidMap] but slot reuse is
//     lowest-index-first, trading a bitmap for a sorted free-list walk.
//   - [SparseNoIter]: the smallest and fastest variant for workloads that
//     only do random-access lookup through held links; it has no ForEach.
//   - [SparsePointer] / [SparsePointerBackRef]: stores *T, useful when T is
//     large or must remain addressable outside the table.
//
// [BasicView] and [SortedView] layer an ordered or insertion-ordered
// iteration sequence of links on top of any of the above.
//
// # Concurrency
//
// slottable is not concurrency-safe. Every type in this package assumes
// single-threaded access; callers needing concurrent access must
// synchronize externally.
package slottable
