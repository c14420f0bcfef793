package object

import "vmobject/pkg/handle"

// Heap is the runtime entry point this package exposes (spec §6,
// "External Interfaces"): one Heap owns the shared class registry, the
// object-id sequence, the property-key intern table, the handle stack
// protocol, and the tunables in Config. Every operation in spec §6 is
// a method on *Heap so a caller never has to thread these
// collaborators through by hand.
type Heap struct {
	Config  Config
	Classes *ClassRegistry
	IDs     *IDAllocator
	Symbols SymbolTable
	Handles *handle.Stack
}

// NewHeap returns a Heap wired with the default reference
// collaborators and DefaultConfig.
func NewHeap() *Heap {
	return &Heap{
		Config:  DefaultConfig(),
		Classes: NewClassRegistry(),
		IDs:     NewIDAllocator(),
		Symbols: NewInternTable(),
		Handles: handle.NewStack(),
	}
}

// Options bundles the per-call flags spec §6 lists alongside the
// operation signatures: throwOnError governs whether a rejected write
// raises an error or is silently swallowed (ECMAScript's [[Put]] vs.
// "put" distinction); mustExist asserts the receiver already owns the
// property being updated; internalForce bypasses the extensible check
// when adding a property, the writable check of a put, and the
// configurable check of a delete, for engine-internal bootstrapping
// (installing builtins) that should never fail. Redefining an existing
// property through DefineOwnProperty does not consult internalForce.
type Options struct {
	ThrowOnError  bool
	MustExist     bool
	InternalForce bool
}

// Create allocates a plain object whose class comes from the
// prototype-keyed registry (spec §6 "create(parent)"), so sibling
// objects sharing proto converge on the same transition tree instead
// of each starting from an unshared empty class.
func (h *Heap) Create(proto Value) *JSObject {
	return NewWithClass(proto, h.Classes.RootClassFor(proto))
}

// CreateWithClass allocates an object that starts directly on class
// (spec §6 "create(class)").
func (h *Heap) CreateWithClass(proto Value, class HiddenClass) *JSObject {
	return NewWithClass(proto, class)
}

// CreateWithHint allocates an object pre-sized for propertyCountHint
// properties (spec §6 "create(parent, propertyCountHint)").
func (h *Heap) CreateWithHint(proto Value, propertyCountHint int) *JSObject {
	o := h.Create(proto)
	if propertyCountHint > DirectSlots && o.indirect == nil {
		o.indirect = newSliceStorage(0)
		o.indirect.(*sliceStorage).values = make([]Value, 0, propertyCountHint-DirectSlots)
	}
	return o
}

// GetObjectID returns o's stable identity (spec §6 "getObjectID"),
// assigning one from the Heap's shared sequence on first request.
func (h *Heap) GetObjectID(o *JSObject) uint64 {
	return GetObjectID(o, h.IDs)
}
