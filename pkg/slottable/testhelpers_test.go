package slottable_test

import "github.com/calvinalkan/slottable/pkg/slottable"

// item is the back-reference-carrying value type shared by every test file
// in this package that exercises a *BackRef variant. Its link field is the
// designated back-reference: GetLink/SetLink implement [slottable.BackRefPtr].
type item struct {
	Name string
	link slottable.Link[uint32]
}

func (i *item) GetLink() slottable.Link[uint32]  { return i.link }
func (i *item) SetLink(l slottable.Link[uint32]) { i.link = l }

// item64 is item's uint64-backed twin, used by tests that exercise the
// 64-bit Size instantiation.
type item64 struct {
	Name string
	link slottable.Link[uint64]
}

func (i *item64) GetLink() slottable.Link[uint64]  { return i.link }
func (i *item64) SetLink(l slottable.Link[uint64]) { i.link = l }
