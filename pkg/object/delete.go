package object

import "vmobject/pkg/errors"

// DeleteNamed implements [[Delete]] for a string key (spec §4.4):
// own-property-only, rejecting a non-configurable property and
// otherwise clearing the slot to empty and transitioning off the
// class that still reports it.
func (h *Heap) DeleteNamed(o *JSObject, name string, opts Options) (bool, error) {
	return h.deleteNamedKey(o, StringKey(name), opts)
}

func (h *Heap) deleteNamedKey(o *JSObject, key Key, opts Options) (bool, error) {
	slot, flags, ok := o.class.Lookup(key)
	if !ok {
		// Deleting an absent property (including one only a host object's
		// delegate could ever report present) is vacuously successful.
		return true, nil
	}
	if !flags.Has(FlagConfigurable) && !opts.InternalForce {
		if opts.ThrowOnError {
			return false, errors.NewTypeError("property %q is non-configurable and cannot be deleted", key.DebugName())
		}
		return false, nil
	}
	o.setSlot(slot, empty)
	o.class = o.class.DeleteProperty(key)
	return true, nil
}

// DeleteComputed implements [[Delete]] for a computed key (spec §4.4):
// an index-shaped key against indexed storage deletes the indexed
// slot in parallel with any named-storage entry of the same spelling.
func (h *Heap) DeleteComputed(o *JSObject, key Value, opts Options) (bool, error) {
	if idx, ok := asUint32Index(key); ok && o.HasIndexedStorage() {
		if o.indexed.HaveOwnIndexed(idx) {
			if !o.indexed.DeleteOwnIndexed(idx) {
				if opts.ThrowOnError {
					return false, errors.NewTypeError("index %d is non-configurable and cannot be deleted", idx)
				}
				return false, nil
			}
		}
	}
	k := h.keyFromValue(key)
	return h.deleteNamedKey(o, k, opts)
}
