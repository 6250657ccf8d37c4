package slottable

import "fmt"

// Flag is a capability bit combined with other [Flag] values to name a
// storage variant, mirroring the tag-mask the original library dispatches
// on. Go has no runtime polymorphism between variants: callers still pick a
// concrete generic type by name. Flags exist so a thin config
// surface — a CLI flag, a YAML scenario file, a benchmark matrix — can name
// a variant as data and have [Validate] or [ConstructorName] check and
// describe the choice before the caller switches on it to pick the actual
// type parameter list.
type Flag uint

const (
	// FlagPacked selects dense storage with an indirection table (§4.2).
	FlagPacked Flag = 1 << iota
	// FlagBackRef embeds a back-reference link into the value type.
	FlagBackRef
	// FlagSparse selects slot-based storage that never relocates a value.
	FlagSparse
	// FlagPointer selects a sparse table of *T rather than T (§4.7).
	FlagPointer
	// FlagNoIter selects the minimal sparse variant with no ForEach (§4.6).
	FlagNoIter
	// FlagValidMap selects a sparse table backed by an occupancy bitmap (§4.4).
	FlagValidMap
	// FlagSortedFree selects a sparse table with an ascending free-list (§4.5).
	FlagSortedFree
)

// String renders flags as the set of names it combines, e.g. "sparse|backref".
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}

	names := []struct {
		bit  Flag
		name string
	}{
		{FlagPacked, "packed"},
		{FlagBackRef, "backref"},
		{FlagSparse, "sparse"},
		{FlagPointer, "pointer"},
		{FlagNoIter, "no_iter"},
		{FlagValidMap, "validmap"},
		{FlagSortedFree, "sortedfree"},
	}

	s := ""
	for _, n := range names {
		if f&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// Validate reports [ErrInvalidFlags] unless flags names one of the
// recognized combinations from §6.1's dispatch table. It does not construct
// anything; it exists to let a config surface reject a bad combination with
// the same message this package would give at compile time if it could.
func Validate(flags Flag) error {
	if _, err := ConstructorName(flags); err != nil {
		return err
	}
	return nil
}

// ConstructorName returns the name of the exported constructor function
// that implements flags, per §6.1's dispatch table. It is meant for
// diagnostics and tooling, not for actually constructing a table — Go generics require the concrete type
// parameters at the call site, which a flag mask alone cannot supply.
func ConstructorName(flags Flag) (string, error) {
	switch flags {
	case FlagPacked:
		return "NewPacked", nil
	case FlagPacked | FlagBackRef:
		return "NewPackedBackRef", nil
	case FlagSparse | FlagBackRef:
		return "NewSparseBackRef", nil
	case FlagSparse | FlagValidMap:
		return "NewSparseValidMap", nil
	case FlagSparse | FlagValidMap | FlagBackRef:
		return "NewSparseValidMapBackRef", nil
	case FlagSparse | FlagSortedFree:
		return "NewSparseSortedFree", nil
	case FlagSparse | FlagSortedFree | FlagBackRef:
		return "NewSparseSortedFreeBackRef", nil
	case FlagSparse | FlagNoIter:
		return "NewSparseNoIter", nil
	case FlagSparse | FlagNoIter | FlagBackRef:
		return "NewSparseNoIterBackRef", nil
	case FlagSparse | FlagPointer:
		return "NewSparsePointer", nil
	case FlagSparse | FlagPointer | FlagBackRef:
		return "NewSparsePointerBackRef", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFlags, flags)
	}
}
