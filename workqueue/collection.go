package workqueue

// Collection is a minimal ordered container of pending work items W.
// Implementations own their items under in-place mutation.
type Collection[W any] interface {
	// Empty reports whether the collection holds no items.
	Empty() bool
	// Offer inserts item into the collection.
	Offer(item W)
	// Take removes and returns one item per the collection's ordering
	// policy. The second return is false iff the collection was empty.
	Take() (W, bool)
}
