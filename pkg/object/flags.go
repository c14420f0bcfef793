package object

// PropertyFlags is the bit-packed attribute record a HiddenClass
// stores per property (spec §3). The Indexed bit is synthesized by
// the descriptor-resolution path (§4.1) — it is never itself stored
// in a HiddenClass.
type PropertyFlags uint8

const (
	FlagEnumerable PropertyFlags = 1 << iota
	FlagWritable
	FlagConfigurable
	FlagAccessor
	FlagInternalSetter
	FlagHostObject
	FlagStaticBuiltin
	FlagIndexed
)

func (f PropertyFlags) Has(bit PropertyFlags) bool { return f&bit != 0 }

func (f PropertyFlags) With(bit PropertyFlags, set bool) PropertyFlags {
	if set {
		return f | bit
	}
	return f &^ bit
}

// DefaultDataFlags are the attributes of an ordinary assignment
// (`obj.x = v` on a fresh property): enumerable, writable, configurable.
const DefaultDataFlags = FlagEnumerable | FlagWritable | FlagConfigurable

// NonEnumerableDataFlags are the attributes builtins install their own
// methods/fields with: writable and configurable, but not enumerable.
const NonEnumerableDataFlags = FlagWritable | FlagConfigurable

// DefinePropertyFlags records which attributes a defineProperty call
// mentioned, and their requested values (spec §3). Mentioning an
// attribute and requesting it false are different things — `SetX`
// tracks "was X mentioned at all".
type DefinePropertyFlags struct {
	SetEnumerable   bool
	Enumerable      bool
	SetWritable     bool
	Writable        bool
	SetConfigurable bool
	Configurable    bool

	SetGetter bool
	Getter    Callable
	SetSetter bool
	Setter    Callable
	SetValue  bool
	Value     Value

	EnableInternalSetter bool
}

// IsEmpty reports whether this descriptor mentions no attributes at
// all — step 1 of checkPropertyUpdate (§4.5).
func (d DefinePropertyFlags) IsEmpty() bool {
	return !d.SetEnumerable && !d.SetWritable && !d.SetConfigurable &&
		!d.SetGetter && !d.SetSetter && !d.SetValue
}

// IsAccessorDescriptor reports whether d describes an accessor (as
// opposed to a data) property.
func (d DefinePropertyFlags) IsAccessorDescriptor() bool {
	return d.SetGetter || d.SetSetter
}

// IsDataDescriptor reports whether d describes a data property.
func (d DefinePropertyFlags) IsDataDescriptor() bool {
	return d.SetValue || d.SetWritable
}
