package object

import "testing"

func TestDefineOwnComputedDemotePreservesValue(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	o.MakeIndexed(NewDenseArray())

	if err := h.PutComputed(o, o, Number(0), String("kept"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutComputed failed: %v", err)
	}

	// Demote index 0 by asking for an attribute plain indexed storage
	// can't hold, without mentioning a new value.
	desc := DefinePropertyFlags{SetConfigurable: true, Configurable: false}
	if err := h.DefineOwnComputed(o, Number(0), desc, Options{ThrowOnError: true}); err != nil {
		t.Fatalf("DefineOwnComputed failed: %v", err)
	}

	if o.FastIndexProperties() {
		t.Fatalf("expected fastIndexProperties to clear after demotion")
	}
	v, err := h.GetComputed(o, o, Number(0), Options{})
	if err != nil {
		t.Fatalf("GetComputed failed: %v", err)
	}
	if v.AsString() != "kept" {
		t.Errorf("expected demotion to preserve the existing value \"kept\", got %v", v)
	}
}

func TestPutComputedAppendBumpsLength(t *testing.T) {
	h := NewHeap()
	a := h.Create(Undefined)
	a.MakeIndexed(NewDenseArray())

	if err := h.PutComputed(a, a, Number(3), String("v"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutComputed failed: %v", err)
	}

	length, err := h.GetNamed(a, a, "length", Options{})
	if err != nil {
		t.Fatalf("GetNamed(length) failed: %v", err)
	}
	if length.AsNumber() != 4 {
		t.Errorf("expected length 4, got %v", length.AsNumber())
	}

	names := h.GetOwnPropertyNames(a)
	if len(names) != 2 || names[0].Name() != "3" || names[1].Name() != "length" {
		t.Errorf(`expected own property names ["3","length"], got %v`, names)
	}
}

func TestPutComputedDoesNotResurrectDemotedIndex(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	o.MakeIndexed(NewDenseArray())

	if err := h.PutComputed(o, o, Number(0), String("first"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutComputed failed: %v", err)
	}
	desc := DefinePropertyFlags{SetConfigurable: true, Configurable: false}
	if err := h.DefineOwnComputed(o, Number(0), desc, Options{ThrowOnError: true}); err != nil {
		t.Fatalf("DefineOwnComputed failed: %v", err)
	}

	if err := h.PutComputed(o, o, Number(0), String("second"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutComputed after demotion failed: %v", err)
	}

	if o.indexed.HaveOwnIndexed(0) {
		t.Fatalf("expected demoted index 0 to stay out of indexed storage")
	}
	v, err := h.GetComputed(o, o, Number(0), Options{})
	if err != nil {
		t.Fatalf("GetComputed failed: %v", err)
	}
	if v.AsString() != "second" {
		t.Errorf("expected the named property to carry the new write, got %v", v)
	}
}

func TestDenseArraySetLength(t *testing.T) {
	a := NewDenseArray()
	a.SetOwnIndexed(0, Number(1))
	a.SetOwnIndexed(1, Number(2))
	a.SetOwnIndexed(2, Number(3))

	if !a.SetLength(1) {
		t.Fatalf("expected shrinking length to succeed")
	}
	if a.Length() != 1 {
		t.Errorf("expected length 1 after truncation, got %d", a.Length())
	}
	if a.HaveOwnIndexed(1) {
		t.Errorf("expected index 1 to be gone after truncation")
	}

	a.SetOwnIndexed(1, Number(2))
	a.attrs[1] = a.attrs[1].With(FlagConfigurable, false)
	if a.SetLength(1) {
		t.Errorf("expected shrinking past a non-configurable element to fail")
	}
}
