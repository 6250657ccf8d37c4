package slottable

// BackRefPtr is satisfied by *T when T carries a back-reference the table
// can read and write to remember which link currently names it. Variants
// whose name ends in BackRef require it; those that don't, don't accept it.
type BackRefPtr[S Size] interface {
	GetLink() Link[S]
	SetLink(Link[S])
}

// BackRefOf constrains the pointer-shaped type parameter used to reach
// GetLink/SetLink on a T stored by value in a slice. This is the Go
// substitute for designating "field M of T" at compile time: implement
// [BackRefPtr] on *T instead of naming a field.
type BackRefOf[T any, S Size] interface {
	*T
	BackRefPtr[S]
}
