package object

import "fmt"

// KeyKind distinguishes the two property-key flavors this core names
// properties with. Private (#field) identity is out of scope.
type KeyKind uint8

const (
	KeyString KeyKind = iota
	KeySymbol
)

// Key is a property key: a string or a symbol value. It is comparable
// with ==, which is what HiddenClass implementations key their
// transition maps on.
type Key struct {
	kind KeyKind
	name string // spelling, for KeyString; description, for KeySymbol
	sym  Value  // the symbol identity, for KeySymbol
}

func StringKey(name string) Key { return Key{kind: KeyString, name: name} }

func SymbolKey(sym Value) Key {
	if sym.Type() != TypeSymbol {
		panic("object: SymbolKey requires a symbol value")
	}
	return Key{kind: KeySymbol, name: sym.AsString(), sym: sym}
}

func (k Key) Kind() KeyKind  { return k.kind }
func (k Key) IsString() bool { return k.kind == KeyString }
func (k Key) IsSymbol() bool { return k.kind == KeySymbol }

// Name returns the string spelling for a KeyString key. Only valid
// when IsString() is true.
func (k Key) Name() string { return k.name }

func (k Key) Symbol() Value { return k.sym }

// DebugName returns a human-readable rendering for diagnostics.
func (k Key) DebugName() string {
	if k.kind == KeySymbol {
		return fmt.Sprintf("Symbol(%s)", k.name)
	}
	return k.name
}

// Equal reports whether two keys name the same property.
func (k Key) Equal(other Key) bool {
	if k.kind != other.kind {
		return false
	}
	if k.kind == KeyString {
		return k.name == other.name
	}
	return k.sym.Is(other.sym)
}
