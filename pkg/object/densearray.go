package object

import "vmobject/pkg/errors"

// DenseArray is the reference Indexed implementation for a JS-array-like
// object: a flat, growable []Value plus per-slot flags, grounded on the
// teacher's ArrayObject (pkg/vm/value.go) which likewise keeps a length,
// a flat elements slice, and per-element attribute tracking alongside its
// named-property storage. Absent slots (sparse holes) are distinguished
// with a parallel present bitmap rather than a sentinel value, since
// Value's zero value is a legitimate Undefined element.
type DenseArray struct {
	elements []Value
	attrs    []PropertyFlags
	present  []bool
}

// NewDenseArray returns an empty dense array.
func NewDenseArray() *DenseArray {
	return &DenseArray{}
}

// Length reports the array's length property value: the size of the
// element vector, holes included, so it is one past the highest index
// written unless SetLength set it otherwise. Deleting an element does
// not shrink it. Mirrors the teacher's ArrayObject.length.
func (a *DenseArray) Length() uint32 { return uint32(len(a.elements)) }

func (a *DenseArray) OwnIndexedRange() (uint32, uint32) { return 0, uint32(len(a.elements)) }

func (a *DenseArray) HaveOwnIndexed(i uint32) bool {
	return i < uint32(len(a.present)) && a.present[i]
}

func (a *DenseArray) GetOwnIndexedPropertyFlags(i uint32) (PropertyFlags, bool) {
	if !a.HaveOwnIndexed(i) {
		return 0, false
	}
	return a.attrs[i], true
}

func (a *DenseArray) GetOwnIndexed(i uint32) Value {
	if !a.HaveOwnIndexed(i) {
		return Undefined
	}
	return a.elements[i]
}

func (a *DenseArray) SetOwnIndexed(i uint32, v Value) (bool, error) {
	if a.HaveOwnIndexed(i) && !a.attrs[i].Has(FlagWritable) {
		return false, nil
	}
	a.growTo(i + 1)
	a.elements[i] = v
	if !a.present[i] {
		a.present[i] = true
		a.attrs[i] = DefaultDataFlags
	}
	return true, nil
}

func (a *DenseArray) DeleteOwnIndexed(i uint32) bool {
	if !a.HaveOwnIndexed(i) {
		return true
	}
	if !a.attrs[i].Has(FlagConfigurable) {
		return false
	}
	a.present[i] = false
	a.elements[i] = Undefined
	return true
}

func (a *DenseArray) CheckAllOwnIndexed(mode IndexedMode) bool {
	for i, present := range a.present {
		if !present {
			continue
		}
		switch mode {
		case IndexedNonConfigurable:
			if a.attrs[i].Has(FlagConfigurable) {
				return false
			}
		case IndexedReadOnly:
			if a.attrs[i].Has(FlagConfigurable) || a.attrs[i].Has(FlagWritable) {
				return false
			}
		}
	}
	return true
}

func (a *DenseArray) SealOwnIndexed() {
	for i, present := range a.present {
		if present {
			a.attrs[i] = a.attrs[i].With(FlagConfigurable, false)
		}
	}
}

func (a *DenseArray) FreezeOwnIndexed() {
	for i, present := range a.present {
		if present {
			a.attrs[i] = a.attrs[i].With(FlagConfigurable, false).With(FlagWritable, false)
		}
	}
}

// SetLength implements an assignment to the array's length property
// (spec §4.5.1.c): growing pads with holes, shrinking deletes every
// element at or past the new length, rejecting the whole resize if any
// of those elements is non-configurable.
func (a *DenseArray) SetLength(n uint32) bool {
	if n >= uint32(len(a.elements)) {
		a.growTo(n)
		return true
	}
	for i := n; i < uint32(len(a.elements)); i++ {
		if a.present[i] && !a.attrs[i].Has(FlagConfigurable) {
			return false
		}
	}
	a.elements = a.elements[:n]
	a.attrs = a.attrs[:n]
	a.present = a.present[:n]
	return true
}

// SetInternal implements InternalSetterHook for the array's "length"
// property (spec §4.3 step 4, Array.length's subclass hook).
func (a *DenseArray) SetInternal(key Key, v Value) (bool, error) {
	if key.Name() != "length" {
		return false, nil
	}
	n, ok := lengthFromValue(v)
	if !ok {
		return false, errors.NewTypeError("invalid array length")
	}
	return a.SetLength(n), nil
}

// lengthFromValue reports whether v is a non-negative integer that
// fits a uint32 array length (ECMAScript ToUint32 with the
// RangeError-on-non-integer narrowing real arrays apply to length).
func lengthFromValue(v Value) (uint32, bool) {
	if !v.IsNumber() {
		return 0, false
	}
	n := v.AsNumber()
	if n < 0 || n != float64(uint32(n)) {
		return 0, false
	}
	return uint32(n), true
}

func (a *DenseArray) growTo(n uint32) {
	for uint32(len(a.elements)) < n {
		a.elements = append(a.elements, Undefined)
		a.attrs = append(a.attrs, 0)
		a.present = append(a.present, false)
	}
}
