package slottable

import "errors"

// Sentinel errors returned by slottable operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, slottable.ErrSizeTooSmall) {
//	    // pick a wider Size or a smaller T
//	}
var (
	// ErrSizeTooSmall indicates T is smaller than the Size type S.
	//
	// The valid-map, sorted-free, and no-iter variants reinterpret a
	// vacant slot's bytes to hold the free-list link, which requires
	// sizeof(T) >= sizeof(S).
	//
	// Recovery: use a narrower S (uint32 instead of uint64), or a T with a
	// field wide enough to host the reinterpretation.
	ErrSizeTooSmall = errors.New("slottable: sizeof(T) smaller than sizeof(S)")

	// ErrInvalidFlags indicates a [Flag] combination with no corresponding
	// constructor.
	//
	// Recovery: pick one of the documented combinations in flags.go.
	ErrInvalidFlags = errors.New("slottable: unsupported flag combination")

	// ErrStaleLink indicates a [Link] was used after the slot it named was
	// erased and possibly reused.
	//
	// Only detected in debug builds (the slottable_debug build tag); this
	// is always a programming error, never a runtime condition to retry.
	ErrStaleLink = errors.New("slottable: stale link")
)
