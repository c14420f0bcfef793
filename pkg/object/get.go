package object

import "vmobject/pkg/errors"

// GetNamed implements [[Get]] for a string-keyed property (spec §4.2):
// resolve the descriptor along the prototype chain, invoke an accessor
// getter against receiver, unwrap a plain data slot, or raise
// ReferenceError when opts.MustExist and nothing was found.
func (h *Heap) GetNamed(this, receiver *JSObject, name string, opts Options) (Value, error) {
	key := StringKey(name)
	owner, desc, ok := getNamedDescriptor(this, key)
	if !ok {
		if opts.MustExist {
			return Undefined, errors.NewReferenceError("property %q does not exist", name)
		}
		return Undefined, nil
	}
	return h.resolveNamedValue(owner, receiver, desc, key)
}

// GetComputed implements [[Get]] for a computed (string/symbol/number)
// key, preferring indexed storage via the fastIndexProperties fast
// path before falling back to named resolution (spec §4.2).
func (h *Heap) GetComputed(this, receiver *JSObject, key Value, opts Options) (Value, error) {
	owner, desc, ok := h.getComputedDescriptor(this, key)
	if !ok {
		if opts.MustExist {
			return Undefined, errors.NewReferenceError("property does not exist")
		}
		return Undefined, nil
	}
	if desc.Flags.Has(FlagIndexed) {
		return owner.indexed.GetOwnIndexed(desc.Index), nil
	}
	k := h.keyFromValue(key)
	return h.resolveNamedValue(owner, receiver, desc.NamedDescriptor, k)
}

// GetNamedOrIndexed first checks this's own indexed storage when name
// spells an array index and, failing that, resolves name through
// GetNamed (spec §6 "getNamedOrIndexed") — the combined entry point a caller
// uses when it does not already know whether name spells an index.
func (h *Heap) GetNamedOrIndexed(this, receiver *JSObject, name string, opts Options) (Value, error) {
	if idx, ok := parseArrayIndex(name); ok && this.HasIndexedStorage() {
		if this.indexed.HaveOwnIndexed(idx) {
			return this.indexed.GetOwnIndexed(idx), nil
		}
	}
	return h.GetNamed(this, receiver, name, opts)
}

// resolveNamedValue turns a resolved NamedDescriptor into a value:
// host delegation, accessor invocation against receiver, or a plain
// slot read on owner.
func (h *Heap) resolveNamedValue(owner, receiver *JSObject, desc NamedDescriptor, key Key) (Value, error) {
	if desc.Flags.Has(FlagHostObject) {
		v, _ := owner.host.HostGet(key)
		return v, nil
	}
	if desc.Flags.Has(FlagAccessor) {
		slotVal := owner.slot(desc.Slot)
		if !slotVal.isAccessorCell() {
			return Undefined, nil
		}
		acc := slotVal.asAccessorCell()
		if acc.Getter == nil {
			return Undefined, nil
		}
		return acc.Getter.Call(FromObject(receiver), nil)
	}
	return owner.slot(desc.Slot), nil
}

// HasNamed implements [[HasProperty]] for a string key (spec §6 "hasNamed").
func (h *Heap) HasNamed(o *JSObject, name string) bool {
	_, _, ok := getNamedDescriptor(o, StringKey(name))
	return ok
}

// HasComputed implements [[HasProperty]] for a computed key (spec §6
// "hasComputed").
func (h *Heap) HasComputed(o *JSObject, key Value) bool {
	_, _, ok := h.getComputedDescriptor(o, key)
	return ok
}

// HasNamedOrIndexed combines an index-shaped probe with HasNamed
// (spec §6 "hasNamedOrIndexed").
func (h *Heap) HasNamedOrIndexed(o *JSObject, name string) bool {
	if idx, ok := parseArrayIndex(name); ok && o.HasIndexedStorage() {
		if o.indexed.HaveOwnIndexed(idx) {
			return true
		}
	}
	return h.HasNamed(o, name)
}

// GetNamedCached is GetNamed with the inline-cache population hook
// wired in (spec §4.2 step 3): a call site holding its own ic gets a
// monomorphic/polymorphic shortcut on repeat accesses against the same
// receiver class, skipping prototype-chain descriptor resolution on a
// hit. Only plain, class-mode (non-dictionary), non-accessor,
// non-host own-property hits are cached.
func (h *Heap) GetNamedCached(this, receiver *JSObject, name string, ic *InlineCache, opts Options) (Value, error) {
	if slot, _, ok := ic.Lookup(this.class); ok {
		return this.slot(slot), nil
	}

	key := StringKey(name)
	owner, desc, ok := getNamedDescriptor(this, key)
	if !ok {
		if opts.MustExist {
			return Undefined, errors.NewReferenceError("property %q does not exist", name)
		}
		return Undefined, nil
	}

	if owner == this && !this.class.IsDictionary() &&
		!desc.Flags.Has(FlagAccessor) && !desc.Flags.Has(FlagHostObject) {
		ic.Update(this.class, desc.Slot, desc.Flags)
	}

	return h.resolveNamedValue(owner, receiver, desc, key)
}
