package object

import "vmobject/pkg/errors"

// SetParent implements [[SetPrototypeOf]] (spec §4.10): a no-op when
// proto already equals the current prototype, rejected on a
// non-extensible receiver or a cycle the new prototype chain would
// introduce, otherwise installed via the barrier-aware raw setter.
func (h *Heap) SetParent(o *JSObject, proto Value, opts Options) error {
	if o.Prototype().Is(proto) {
		return nil
	}
	if !o.IsExtensible() && !opts.InternalForce {
		if opts.ThrowOnError {
			return errors.NewTypeError("cannot set prototype of a non-extensible object")
		}
		return nil
	}
	if wouldCycle(o, proto) {
		if opts.ThrowOnError {
			return errors.NewTypeError("cyclic prototype value")
		}
		return nil
	}
	o.setParentRaw(proto)
	return nil
}

// wouldCycle reports whether walking proto's own chain would ever
// reach o again.
func wouldCycle(o *JSObject, proto Value) bool {
	current := proto.AsObject()
	for current != nil {
		if current == o {
			return true
		}
		current = current.Prototype().AsObject()
	}
	return false
}
