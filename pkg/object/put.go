package object

import "vmobject/pkg/errors"

// PutNamed implements [[Put]] for a string key (spec §4.3): walk the
// prototype chain for an existing accessor or non-writable data
// property; otherwise create (or overwrite) an own data property on
// this, subject to extensibility and the staticBuiltin override guard.
func (h *Heap) PutNamed(this, receiver *JSObject, name string, v Value, opts Options) error {
	key := StringKey(name)
	return h.putNamedKey(this, receiver, key, v, opts)
}

func (h *Heap) putNamedKey(this, receiver *JSObject, key Key, v Value, opts Options) error {
	if owner, desc, ok := getNamedDescriptor(this, key); ok {
		if desc.Flags.Has(FlagHostObject) {
			return owner.host.HostSet(key, v)
		}
		if desc.Flags.Has(FlagAccessor) {
			return h.invokeSetter(owner, receiver, desc, key, v, opts)
		}
		if owner == this {
			return h.putOwnData(this, key, desc, v, opts)
		}
		if !desc.Flags.Has(FlagWritable) && !opts.InternalForce {
			return h.rejectWrite(key, opts)
		}
	}
	if opts.MustExist {
		return errors.NewReferenceError("property %q does not exist", key.DebugName())
	}
	return h.createOwnData(this, key, v, opts)
}

// invokeSetter calls an accessor's Setter against receiver, or rejects
// the write when there is none (ECMAScript §8.12.5 step 5.b).
func (h *Heap) invokeSetter(owner, receiver *JSObject, desc NamedDescriptor, key Key, v Value, opts Options) error {
	slotVal := owner.slot(desc.Slot)
	if !slotVal.isAccessorCell() {
		return nil
	}
	acc := slotVal.asAccessorCell()
	if acc.Setter == nil {
		return h.rejectWrite(key, opts)
	}
	_, err := acc.Setter.Call(FromObject(receiver), []Value{v})
	return err
}

// putOwnData writes an already-owned data slot, honoring writability
// and the staticBuiltin override guard (spec §4.3, §4.5 invariant on
// FlagStaticBuiltin).
func (h *Heap) putOwnData(o *JSObject, key Key, desc NamedDescriptor, v Value, opts Options) error {
	if !desc.Flags.Has(FlagWritable) && !opts.InternalForce {
		if desc.Flags.Has(FlagStaticBuiltin) && h.Config.FreezeBuiltinsFatalOnOverride {
			panic("attempt to override static builtin " + key.DebugName())
		}
		return h.rejectWrite(key, opts)
	}
	if desc.Flags.Has(FlagInternalSetter) {
		return h.putInternalSetter(o, key, desc, v, opts)
	}
	o.setSlot(desc.Slot, v)
	return nil
}

// putInternalSetter dispatches a write to o's subclass hook instead of
// a plain slot write (spec §4.3 step 4, e.g. Array.length), then mirrors
// the hook's canonical result back into the named slot so a later read
// sees the post-coercion value rather than the raw argument.
func (h *Heap) putInternalSetter(o *JSObject, key Key, desc NamedDescriptor, v Value, opts Options) error {
	if o.internalSetter == nil {
		return h.rejectWrite(key, opts)
	}
	ok, err := o.internalSetter.SetInternal(key, v)
	if err != nil {
		return err
	}
	if !ok {
		return h.rejectWrite(key, opts)
	}
	if o.HasIndexedStorage() {
		_, hi := o.indexed.OwnIndexedRange()
		o.setSlot(desc.Slot, Number(float64(hi)))
		return nil
	}
	o.setSlot(desc.Slot, v)
	return nil
}

// createOwnData adds a fresh own data property to o (spec §4.3,
// addOwnProperty), rejecting when o is non-extensible.
func (h *Heap) createOwnData(o *JSObject, key Key, v Value, opts Options) error {
	if !o.IsExtensible() && !opts.InternalForce {
		return h.rejectWrite(key, opts)
	}
	flags := DefaultDataFlags
	newClass, slot := o.class.AddProperty(key, flags)
	o.class = newClass
	o.allocateNewSlotStorage(slot)
	o.setSlot(slot, v)
	if looksLikeIndex(key) {
		o.clearFastIndexProperties()
	}
	return nil
}

func (h *Heap) rejectWrite(key Key, opts Options) error {
	if opts.ThrowOnError {
		return errors.NewTypeError("cannot assign to read only property %q", key.DebugName())
	}
	return nil
}

// PutComputed implements [[Put]] for a computed key (spec §4.3): a
// fast indexed write when the receiver carries its own indexed
// storage and the key parses as an index, an array length bump for an
// append past the current range, otherwise falling back to the named
// path.
func (h *Heap) PutComputed(this, receiver *JSObject, key Value, v Value, opts Options) error {
	if idx, ok := asUint32Index(key); ok && this.HasIndexedStorage() && this.FastIndexProperties() {
		if !this.indexed.HaveOwnIndexed(idx) {
			if _, hi := this.indexed.OwnIndexedRange(); idx >= hi {
				// An append past the current range bumps length first,
				// through the ordinary named path so the internal-setter
				// hook fires, before the element itself is stored (spec
				// §4.3, §5 ordering).
				if err := h.PutNamed(this, this, "length", Number(float64(idx)+1), Options{ThrowOnError: opts.ThrowOnError, InternalForce: true}); err != nil {
					return err
				}
			}
		}
		ok, err := this.indexed.SetOwnIndexed(idx, v)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if opts.ThrowOnError {
			return errors.NewTypeError("cannot assign to read only index %d", idx)
		}
		return nil
	}
	k := h.keyFromValue(key)
	return h.putNamedKey(this, receiver, k, v, opts)
}

// PutNamedOrIndexed combines an index-shaped fast path with PutNamed
// (spec §6 "putNamedOrIndexed").
func (h *Heap) PutNamedOrIndexed(this, receiver *JSObject, name string, v Value, opts Options) error {
	if _, ok := parseArrayIndex(name); ok && this.HasIndexedStorage() && this.FastIndexProperties() {
		return h.PutComputed(this, receiver, String(name), v, opts)
	}
	return h.PutNamed(this, receiver, name, v, opts)
}

func looksLikeIndex(key Key) bool {
	if !key.IsString() {
		return false
	}
	_, ok := parseArrayIndex(key.Name())
	return ok
}
