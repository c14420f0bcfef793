package object

// IDAllocator hands out object identities lazily (spec §4.9). The
// monotonic counter lives on the Heap, not on JSObject, so every
// object created by the same runtime draws from one shared sequence.
type IDAllocator struct {
	next uint64
}

// NewIDAllocator starts a counter at 1 (0 means "unassigned", invariant 9).
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Allocate returns the next id, skipping 0 on wraparound (spec §4.9:
// "collisions with zero ... are shifted down by one").
func (a *IDAllocator) Allocate() uint64 {
	id := a.next
	a.next++
	if a.next == 0 {
		a.next = 1
	}
	if id == 0 {
		id = a.next
		a.next++
	}
	return id
}

// GetObjectID returns o's stable nonzero identity, assigning one from
// ids on first request (invariant 9).
func GetObjectID(o *JSObject, ids *IDAllocator) uint64 {
	if o.objectID == 0 {
		o.objectID = ids.Allocate()
	}
	return o.objectID
}
