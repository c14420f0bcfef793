package object

import (
	"sync"
	"unsafe"
	"weak"
)

// ClassRegistry is the process-wide, prototype-keyed hidden-class
// registry (spec §3 Lifecycle: "installs the class from a registry
// keyed by prototype"; §5 "Shared resources"). It hands out the
// shared root class for a given prototype so sibling objects with the
// same prototype converge on the same transition tree.
//
// Entries are held by weak.Pointer (spec §9: "objects hold
// weak-by-convention class references") so a prototype that is no
// longer reachable lets its root class, and everything transitioned
// from it, become collectible instead of being pinned by this
// registry forever.
type ClassRegistry struct {
	mu      sync.Mutex
	byProto map[unsafe.Pointer]weak.Pointer[Shape]
}

// NewClassRegistry returns an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{byProto: make(map[unsafe.Pointer]weak.Pointer[Shape])}
}

// RootClassFor returns the shared empty class for proto, creating one
// on first request. Non-object prototypes (Null/Undefined) all share
// RootShape directly, since there is no prototype identity to key on.
func (r *ClassRegistry) RootClassFor(proto Value) HiddenClass {
	po := proto.AsObject()
	if po == nil {
		return RootShape
	}
	key := unsafe.Pointer(po)

	r.mu.Lock()
	defer r.mu.Unlock()

	if wp, ok := r.byProto[key]; ok {
		if s := wp.Value(); s != nil {
			return s
		}
	}
	s := &Shape{cacheable: true}
	r.byProto[key] = weak.Make(s)
	return s
}
