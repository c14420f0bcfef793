package object

// DirectSlots is D, the number of inline property slots every object
// carries before spilling into indirect storage (spec §3). A small
// constant keeps the common few-property object allocation-free
// beyond the cell itself.
const DirectSlots = 6

// objFlags is the object cell's packed flag byte (spec §3).
type objFlags uint16

const (
	flagNoExtend objFlags = 1 << iota
	flagSealed
	flagFrozen
	flagLazyObject
	flagHostObject
	flagIndexedStorage
	flagFastIndexProperties
)

// HostObject delegates named-property reads/writes to an embedder
// callback (spec §4.1, Glossary: "Host object"). A JSObject with a
// non-nil Host never owns the properties its class reports absent —
// findOwnProperty synthesizes a {hostObject, writable} descriptor
// instead (spec §4.1).
type HostObject interface {
	HostGet(key Key) (Value, bool)
	HostSet(key Key, v Value) error
	// HostOwnKeys lists the embedder-visible keys. GetOwnPropertyNames
	// and GetForInPropertyNames do not call it, so host keys are not
	// part of their results. Per spec §9 Open Questions, callers should treat
	// the result as an unordered set that may duplicate class-visible
	// names (e.g. array-index spellings) rather than rely on ordering.
	HostOwnKeys() []Key
}

// LazyInitializer installs an object's real properties on first
// access (Glossary: "Lazy object"). Invoked exactly once; findOwnProperty
// retries the lookup a single time after Init returns (spec §4.1, §7).
type LazyInitializer interface {
	Init(o *JSObject)
}

// InternalSetterHook is the subclass hook a FlagInternalSetter-flagged
// named property dispatches to instead of a plain slot write (spec
// §4.3 step 4, e.g. Array.length). SetInternal reports false when key
// doesn't belong to this hook at all; a non-nil error rejects the
// write outright.
type InternalSetterHook interface {
	SetInternal(key Key, v Value) (bool, error)
}

// JSObject is the root heap cell every object operation in this core
// operates on (spec §3). Construct one with New, NewWithClass, or
// NewWithHint — never by zero-valuing JSObject directly, since Class
// and Indexed must never be nil.
type JSObject struct {
	parent   Value
	class    HiddenClass
	direct   [DirectSlots]Value
	indirect PropStorage
	flags    objFlags
	objectID uint64

	host           HostObject
	lazy           LazyInitializer
	indexed        Indexed
	internalSetter InternalSetterHook
}

// New allocates a plain, extensible object with the given prototype
// (Null or Undefined for no prototype) and the empty root class.
func New(proto Value) *JSObject {
	return NewWithClass(proto, RootShape)
}

// NewWithClass allocates an object that starts life on an existing
// hidden class — used when a factory knows the shape its instances
// will converge on (e.g. object literals with a fixed key set).
func NewWithClass(proto Value, class HiddenClass) *JSObject {
	o := &JSObject{parent: proto, class: class, indexed: defaultIndexed}
	n := class.PropertyCount()
	if n > DirectSlots {
		o.indirect = newSliceStorage(n - DirectSlots)
	}
	for i := 0; i < DirectSlots && i < n; i++ {
		o.direct[i] = Undefined
	}
	return o
}

// NewWithHint allocates a fresh object and pre-sizes indirect storage
// for propertyCountHint properties, avoiding incremental grows for
// callers that know roughly how many properties they'll add (e.g. an
// object literal compiler emitting N initializers).
func NewWithHint(proto Value, propertyCountHint int) *JSObject {
	o := New(proto)
	if propertyCountHint > DirectSlots {
		o.indirect = newSliceStorage(0)
		o.indirect.(*sliceStorage).values = make([]Value, 0, propertyCountHint-DirectSlots)
	}
	return o
}

func (f objFlags) has(bit objFlags) bool { return f&bit != 0 }
func (f objFlags) with(bit objFlags, set bool) objFlags {
	if set {
		return f | bit
	}
	return f &^ bit
}

func (o *JSObject) Prototype() Value     { return o.parent }
func (o *JSObject) Class() HiddenClass   { return o.class }
func (o *JSObject) IsExtensible() bool   { return !o.flags.has(flagNoExtend) }
func (o *JSObject) IsSealed() bool       { return o.flags.has(flagSealed) }
func (o *JSObject) IsFrozen() bool       { return o.flags.has(flagFrozen) }
func (o *JSObject) IsLazy() bool         { return o.flags.has(flagLazyObject) }
func (o *JSObject) IsHostObject() bool   { return o.flags.has(flagHostObject) }
func (o *JSObject) HasIndexedStorage() bool { return o.flags.has(flagIndexedStorage) }
func (o *JSObject) FastIndexProperties() bool {
	return o.flags.has(flagFastIndexProperties)
}

// MakeHostObject installs a HostObject delegate (invariant 6: a host
// object owns no indexed range of its own).
func (o *JSObject) MakeHostObject(h HostObject) {
	o.host = h
	o.flags = o.flags.with(flagHostObject, true)
	o.flags = o.flags.with(flagIndexedStorage, false)
}

// MakeLazy installs a LazyInitializer, invoked once on first miss.
func (o *JSObject) MakeLazy(l LazyInitializer) {
	o.lazy = l
	o.flags = o.flags.with(flagLazyObject, true)
}

// MakeIndexed installs an Indexed backing store and marks the object
// as carrying its own indexed range. fastIndexProperties starts true;
// it is cleared the moment an index-like named property appears
// (invariant 5, §4.5). When ix also implements InternalSetterHook
// (e.g. DenseArray's length hook), it is wired in automatically.
func (o *JSObject) MakeIndexed(ix Indexed) {
	o.indexed = ix
	o.flags = o.flags.with(flagIndexedStorage, true)
	o.flags = o.flags.with(flagFastIndexProperties, true)
	if hook, ok := ix.(InternalSetterHook); ok {
		o.internalSetter = hook
		if _, _, ok := o.class.Lookup(lengthKey); !ok {
			newClass, slot := o.class.AddProperty(lengthKey, FlagWritable|FlagInternalSetter)
			o.class = newClass
			o.allocateNewSlotStorage(slot)
			_, hi := ix.OwnIndexedRange()
			o.setSlot(slot, Number(float64(hi)))
		}
	}
}

// lengthKey is the well-known, non-enumerable, non-configurable
// "length" named property an array-like indexed object carries,
// dispatched through InternalSetterHook rather than a plain slot write
// (spec §4.3, §4.5.1.c).
var lengthKey = StringKey("length")

func (o *JSObject) Host() HostObject     { return o.host }
func (o *JSObject) Lazy() LazyInitializer { return o.lazy }
func (o *JSObject) Indexed() Indexed     { return o.indexed }
func (o *JSObject) InternalSetter() InternalSetterHook { return o.internalSetter }

func (o *JSObject) clearFastIndexProperties() {
	o.flags = o.flags.with(flagFastIndexProperties, false)
}

// slot reads slot i using the convention that slots below DirectSlots
// live in the inline array and the rest live in indirect storage
// (spec §3, "Slot index convention").
func (o *JSObject) slot(i int) Value {
	if i < DirectSlots {
		return o.direct[i]
	}
	return o.indirect.At(i - DirectSlots)
}

func (o *JSObject) setSlot(i int, v Value) {
	if i < DirectSlots {
		o.direct[i] = v
		return
	}
	o.indirect.SetAt(i-DirectSlots, v)
}

// allocateNewSlotStorage grows storage so slot index slot is
// addressable, placing it inline when possible and otherwise
// extending the indirect vector (spec §4.5, addOwnProperty).
func (o *JSObject) allocateNewSlotStorage(slot int) {
	if slot < DirectSlots {
		return
	}
	want := slot - DirectSlots + 1
	if o.indirect == nil {
		o.indirect = newSliceStorage(want)
		return
	}
	if want <= o.indirect.Size() {
		return
	}
	if o.indirect.ResizeWithinCapacity(want) {
		return
	}
	o.indirect.Resize(want)
}

func (o *JSObject) setParentRaw(p Value) { o.parent = p }
