package object

import (
	"reflect"

	"vmobject/pkg/errors"
)

// updateOutcome is the checkPropertyUpdate state machine's result
// (spec §4.5, ECMAScript §8.12.9): done means the update is already
// satisfied (no slot write needed), needSet means the caller must
// still write the requested value/flags, failed means the update is
// rejected.
type updateOutcome int

const (
	updateDone updateOutcome = iota
	updateNeedSet
	updateFailed
)

// checkPropertyUpdate implements ECMAScript §8.12.9's seven-step
// decision table for whether a defineProperty call against an existing
// descriptor is accepted.
func checkPropertyUpdate(current PropertyFlags, currentValue Value, hasAccessorCell bool, desc DefinePropertyFlags) updateOutcome {
	// Step 1: an empty descriptor always succeeds without writing anything.
	if desc.IsEmpty() {
		return updateDone
	}

	// Step 2: every field matches what's already there.
	if matchesCurrent(current, currentValue, hasAccessorCell, desc) {
		return updateDone
	}

	// Step 3: a non-configurable property rejects any attempt to flip
	// configurable from false to true.
	if !current.Has(FlagConfigurable) {
		if desc.SetConfigurable && desc.Configurable {
			return updateFailed
		}
	}

	if !current.Has(FlagConfigurable) {
		// Step 4: non-configurable, but nothing else being changed is
		// itself forbidden below (step 4 handles generic-descriptor
		// acceptance; steps 5-6 below narrow further).

		// Step 5: switching between data and accessor kind is rejected.
		if current.Has(FlagAccessor) != desc.IsAccessorDescriptor() && (desc.IsAccessorDescriptor() || desc.IsDataDescriptor()) {
			return updateFailed
		}

		if current.Has(FlagAccessor) {
			// Step 6: non-configurable accessor — getter/setter identity
			// must not change, enumerable must not change.
			if desc.SetEnumerable && desc.Enumerable != current.Has(FlagEnumerable) {
				return updateFailed
			}
			if hasAccessorCell {
				acc := currentValue.asAccessorCell()
				if (desc.SetGetter && !sameCallable(desc.Getter, acc.Getter)) ||
					(desc.SetSetter && !sameCallable(desc.Setter, acc.Setter)) {
					return updateFailed
				}
			}
			return updateNeedSet
		}

		// Step 7: non-configurable data property — writable may only
		// go true->false, never false->true; value may only change
		// when writable; enumerable must not change.
		if desc.SetEnumerable && desc.Enumerable != current.Has(FlagEnumerable) {
			return updateFailed
		}
		if !current.Has(FlagWritable) {
			if desc.SetWritable && desc.Writable {
				return updateFailed
			}
			if desc.SetValue && !SameValue(desc.Value, currentValue) {
				return updateFailed
			}
		}
	}

	return updateNeedSet
}

// sameCallable compares two accessor halves by identity. Halves whose
// dynamic type is not comparable with == are treated as different.
func sameCallable(a, b Callable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if t := reflect.TypeOf(a); t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

func matchesCurrent(current PropertyFlags, currentValue Value, hasAccessorCell bool, desc DefinePropertyFlags) bool {
	if desc.SetEnumerable && desc.Enumerable != current.Has(FlagEnumerable) {
		return false
	}
	if desc.SetConfigurable && desc.Configurable != current.Has(FlagConfigurable) {
		return false
	}
	if desc.IsAccessorDescriptor() {
		return false // accessor identity comparisons always fall through to needSet
	}
	if desc.SetWritable && desc.Writable != current.Has(FlagWritable) {
		return false
	}
	if desc.SetValue {
		if current.Has(FlagAccessor) || hasAccessorCell {
			return false
		}
		if !SameValue(desc.Value, currentValue) {
			return false
		}
	}
	return true
}

// DefineOwnProperty implements [[DefineOwnProperty]] for a string key
// (spec §4.5): dispatches to an update against an existing own
// property or to addOwnProperty for a fresh one.
func (h *Heap) DefineOwnProperty(o *JSObject, name string, desc DefinePropertyFlags, opts Options) error {
	return h.defineOwn(o, StringKey(name), desc, opts)
}

func (h *Heap) defineOwn(o *JSObject, key Key, desc DefinePropertyFlags, opts Options) error {
	slot, flags, ok := o.class.Lookup(key)
	if !ok {
		return h.defineNewOwn(o, key, desc, opts)
	}

	current := o.slot(slot)
	hasCell := current.isAccessorCell()
	outcome := checkPropertyUpdate(flags, current, hasCell, desc)
	switch outcome {
	case updateFailed:
		if opts.ThrowOnError {
			return errors.NewTypeError("cannot redefine property %q", key.DebugName())
		}
		return nil
	case updateDone:
		return nil
	}

	newFlags := flags
	if desc.SetEnumerable {
		newFlags = newFlags.With(FlagEnumerable, desc.Enumerable)
	}
	if desc.SetConfigurable {
		newFlags = newFlags.With(FlagConfigurable, desc.Configurable)
	}

	if desc.IsAccessorDescriptor() {
		acc := NewAccessor(nil, nil)
		if hasCell {
			acc = current.asAccessorCell()
		}
		if desc.SetGetter {
			acc = acc.WithGetter(desc.Getter)
		}
		if desc.SetSetter {
			acc = acc.WithSetter(desc.Setter)
		}
		newFlags = newFlags.With(FlagAccessor, true).With(FlagWritable, false)
		o.class = o.class.UpdateProperty(key, newFlags)
		o.setSlot(slot, accessorCellValue(acc))
		return nil
	}

	if desc.SetWritable {
		newFlags = newFlags.With(FlagWritable, desc.Writable)
	}
	newFlags = newFlags.With(FlagAccessor, false)
	o.class = o.class.UpdateProperty(key, newFlags)
	if desc.SetValue {
		o.setSlot(slot, desc.Value)
	}
	return nil
}

// DefineNewOwnProperty adds key to o unconditionally, without
// consulting any existing descriptor (spec §6 "defineNewOwnProperty")
// — used by object-literal and class-field initializers that already
// know the key is fresh.
func (h *Heap) DefineNewOwnProperty(o *JSObject, key Key, desc DefinePropertyFlags, opts Options) error {
	return h.defineNewOwn(o, key, desc, opts)
}

func (h *Heap) defineNewOwn(o *JSObject, key Key, desc DefinePropertyFlags, opts Options) error {
	if !o.IsExtensible() && !opts.InternalForce {
		if opts.ThrowOnError {
			return errors.NewTypeError("cannot define property %q, object is not extensible", key.DebugName())
		}
		return nil
	}
	flags := attributesFromDescriptor(desc)
	if desc.IsAccessorDescriptor() {
		acc := NewAccessor(nil, nil)
		if desc.SetGetter {
			acc = acc.WithGetter(desc.Getter)
		}
		if desc.SetSetter {
			acc = acc.WithSetter(desc.Setter)
		}
		newClass, slot := o.class.AddProperty(key, flags)
		o.class = newClass
		o.allocateNewSlotStorage(slot)
		o.setSlot(slot, accessorCellValue(acc))
		if looksLikeIndex(key) {
			o.clearFastIndexProperties()
		}
		return nil
	}
	newClass, slot := o.class.AddProperty(key, flags)
	o.class = newClass
	o.allocateNewSlotStorage(slot)
	o.setSlot(slot, desc.Value)
	if looksLikeIndex(key) {
		o.clearFastIndexProperties()
	}
	return nil
}

// attributesFromDescriptor fills in ECMAScript's default-false
// attributes for any field the descriptor left unmentioned (spec
// §4.5, defineNewOwnProperty).
func attributesFromDescriptor(desc DefinePropertyFlags) PropertyFlags {
	var f PropertyFlags
	if desc.SetEnumerable && desc.Enumerable {
		f |= FlagEnumerable
	}
	if desc.IsAccessorDescriptor() {
		f |= FlagAccessor
	} else if desc.SetWritable && desc.Writable {
		f |= FlagWritable
	}
	if desc.SetConfigurable && desc.Configurable {
		f |= FlagConfigurable
	}
	if desc.EnableInternalSetter {
		f |= FlagInternalSetter
	}
	return f
}

// DefineOwnComputed implements [[DefineOwnProperty]] for a computed
// key (spec §4.5): a three-branch dispatch between an already-named
// index-like property, an existing indexed slot (with possible
// demotion to named storage when the descriptor asks for attributes
// indexed storage can't represent), and a fresh indexed slot (with a
// possible array-length bump).
func (h *Heap) DefineOwnComputed(o *JSObject, key Value, desc DefinePropertyFlags, opts Options) error {
	k := h.keyFromValue(key)
	if _, _, ok := o.class.Lookup(k); ok {
		return h.defineOwn(o, k, desc, opts)
	}

	idx, isIndex := asUint32Index(key)
	if !isIndex || !o.HasIndexedStorage() || !o.FastIndexProperties() {
		return h.defineOwn(o, k, desc, opts)
	}

	if o.indexed.HaveOwnIndexed(idx) {
		if describesPlainIndexedData(desc) {
			if desc.SetValue {
				if ok, err := o.indexed.SetOwnIndexed(idx, desc.Value); err != nil {
					return err
				} else if !ok && opts.ThrowOnError {
					return errors.NewTypeError("cannot redefine read only index %d", idx)
				}
			}
			return nil
		}
		// The descriptor asks for attributes plain indexed storage can't
		// hold (an accessor, or explicit enumerable/configurable/writable
		// flags) — demote by deleting the indexed slot and falling
		// through to named-property storage under the index's spelling.
		// A descriptor that doesn't mention a value must not lose the
		// element's current one (spec §4.5.1.b).
		if !desc.SetValue {
			desc.SetValue = true
			desc.Value = o.indexed.GetOwnIndexed(idx)
		}
		// Attributes the descriptor leaves unmentioned keep the element's
		// current ones rather than defaulting to false.
		cur, _ := o.indexed.GetOwnIndexedPropertyFlags(idx)
		if !desc.SetEnumerable {
			desc.SetEnumerable, desc.Enumerable = true, cur.Has(FlagEnumerable)
		}
		if !desc.SetConfigurable {
			desc.SetConfigurable, desc.Configurable = true, cur.Has(FlagConfigurable)
		}
		if !desc.IsAccessorDescriptor() && !desc.SetWritable {
			desc.SetWritable, desc.Writable = true, cur.Has(FlagWritable)
		}
		o.indexed.DeleteOwnIndexed(idx)
		o.clearFastIndexProperties()
		return h.defineNewOwn(o, k, desc, opts)
	}

	if _, hi := o.indexed.OwnIndexedRange(); idx >= hi {
		// A fresh index past the current range bumps length first, the
		// same way PutComputed's append does.
		if err := h.PutNamed(o, o, "length", Number(float64(idx)+1), Options{ThrowOnError: opts.ThrowOnError, InternalForce: true}); err != nil {
			return err
		}
	}
	if describesPlainIndexedData(desc) {
		if ok, err := o.indexed.SetOwnIndexed(idx, desc.Value); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	return h.defineNewOwn(o, k, desc, opts)
}

// describesPlainIndexedData reports whether desc only ever asks for
// the attributes a default array element already has: a plain
// writable/enumerable/configurable data value, nothing more specific.
func describesPlainIndexedData(desc DefinePropertyFlags) bool {
	if desc.IsAccessorDescriptor() {
		return false
	}
	if desc.SetEnumerable && !desc.Enumerable {
		return false
	}
	if desc.SetWritable && !desc.Writable {
		return false
	}
	if desc.SetConfigurable && !desc.Configurable {
		return false
	}
	return true
}
