package domain

// Listing is the outcome of a remote listing call. Listing failures
// never fail a page render; they degrade to an empty list. Degraded
// marks that a failure was swallowed so callers can tell an empty
// collection from an unreachable one.
type Listing[T any] struct {
	Items    []T
	Degraded bool
}

func ListingOf[T any](items []T) Listing[T] {
	return Listing[T]{Items: items}
}

func DegradedListing[T any]() Listing[T] {
	return Listing[T]{Degraded: true}
}
