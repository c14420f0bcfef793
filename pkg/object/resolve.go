package object

import "strconv"

// NamedDescriptor is the (slot, flags) pair spec §3 calls a "Named
// property descriptor". Slot is -1 for descriptors synthesized for a
// host object, which owns no slot storage.
type NamedDescriptor struct {
	Slot  int
	Flags PropertyFlags
}

// ComputedDescriptor adds the integer index a NamedDescriptor resolved
// against indexed storage (spec §3, "ComputedPropertyDescriptor");
// Index is only meaningful when Flags.Has(FlagIndexed).
type ComputedDescriptor struct {
	NamedDescriptor
	Index uint32
}

// findOwnProperty resolves an own-property descriptor (spec §4.1):
// consult the class; fall back to a synthesized host descriptor; fall
// back to lazy initialization, retried exactly once.
func findOwnProperty(o *JSObject, key Key) (NamedDescriptor, bool) {
	if slot, flags, ok := o.class.Lookup(key); ok {
		return NamedDescriptor{Slot: slot, Flags: flags}, true
	}
	if o.IsHostObject() && o.host != nil {
		return NamedDescriptor{Slot: -1, Flags: FlagHostObject | FlagWritable}, true
	}
	if o.IsLazy() && o.lazy != nil {
		ensureInitialized(o)
		if slot, flags, ok := o.class.Lookup(key); ok {
			return NamedDescriptor{Slot: slot, Flags: flags}, true
		}
	}
	return NamedDescriptor{}, false
}

// ensureInitialized runs o's lazy initializer exactly once, if it has
// one (spec §4.1, §7).
func ensureInitialized(o *JSObject) {
	if o.IsLazy() && o.lazy != nil {
		init := o.lazy
		o.lazy = nil
		o.flags = o.flags.with(flagLazyObject, false)
		init.Init(o)
	}
}

// getNamedDescriptor walks the prototype chain starting at o, applying
// findOwnProperty at each step (spec §4.1).
func getNamedDescriptor(o *JSObject, key Key) (*JSObject, NamedDescriptor, bool) {
	current := o
	for current != nil {
		if desc, ok := findOwnProperty(current, key); ok {
			return current, desc, true
		}
		proto := current.Prototype()
		current = proto.AsObject()
	}
	return nil, NamedDescriptor{}, false
}

// asUint32Index reports whether key (a string, symbol, or number
// value) names a canonical uint32 array index.
func asUint32Index(key Value) (uint32, bool) {
	switch key.Type() {
	case TypeString:
		return parseArrayIndex(key.AsString())
	case TypeNumber:
		n := key.AsNumber()
		if n < 0 || n != float64(uint32(n)) {
			return 0, false
		}
		u := uint32(n)
		if u == 4294967295 {
			return 0, false // 2^32-1 is not a valid array index
		}
		return u, true
	default:
		return 0, false
	}
}

// keyFromValue interns a string, symbol, or number primitive key value
// into a Key, so repeated computed accesses with the same spelling
// converge on the same property-key identity.
func (h *Heap) keyFromValue(key Value) Key {
	switch key.Type() {
	case TypeSymbol:
		return SymbolKey(key)
	case TypeNumber:
		interned := h.Symbols.Intern(numberToString(key.AsNumber()))
		return StringKey(interned.AsString())
	default:
		interned := h.Symbols.Intern(key.AsString())
		return StringKey(interned.AsString())
	}
}

// numberToString renders a number key the way ECMAScript ToString
// would for the common case: an exact integer prints without a
// fractional part or exponent.
func numberToString(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// getOwnComputedPrimitiveDescriptor resolves a computed own-property
// lookup (spec §4.1): the fastIndexProperties fast path skips symbol
// interning entirely for a plain index-shaped object; otherwise it
// falls back to the named path and only then tries indexed storage.
func (h *Heap) getOwnComputedPrimitiveDescriptor(o *JSObject, key Value) (ComputedDescriptor, bool) {
	if o.FastIndexProperties() {
		if idx, ok := asUint32Index(key); ok {
			if o.HasIndexedStorage() {
				if flags, ok := o.indexed.GetOwnIndexedPropertyFlags(idx); ok {
					return ComputedDescriptor{NamedDescriptor{Slot: -1, Flags: flags | FlagIndexed}, idx}, true
				}
			}
			return ComputedDescriptor{}, false
		}
	}

	k := h.keyFromValue(key)
	if nd, ok := findOwnProperty(o, k); ok {
		return ComputedDescriptor{NamedDescriptor: nd}, true
	}
	if o.HasIndexedStorage() {
		if idx, ok := asUint32Index(key); ok {
			if flags, ok := o.indexed.GetOwnIndexedPropertyFlags(idx); ok {
				return ComputedDescriptor{NamedDescriptor{Slot: -1, Flags: flags | FlagIndexed}, idx}, true
			}
		}
	}
	return ComputedDescriptor{}, false
}

// getComputedDescriptor walks the prototype chain for a computed key,
// applying getOwnComputedPrimitiveDescriptor at each step.
func (h *Heap) getComputedDescriptor(o *JSObject, key Value) (*JSObject, ComputedDescriptor, bool) {
	current := o
	for current != nil {
		if desc, ok := h.getOwnComputedPrimitiveDescriptor(current, key); ok {
			return current, desc, true
		}
		proto := current.Prototype()
		current = proto.AsObject()
	}
	return nil, ComputedDescriptor{}, false
}
