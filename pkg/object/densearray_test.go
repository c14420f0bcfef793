package object

import "testing"

func TestDenseArrayPutGetComputed(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	o.MakeIndexed(NewDenseArray())

	if err := h.PutComputed(o, o, Number(0), String("first"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutComputed failed: %v", err)
	}
	if err := h.PutComputed(o, o, Number(3), String("fourth"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutComputed to a sparse index failed: %v", err)
	}

	v, err := h.GetComputed(o, o, Number(0), Options{})
	if err != nil || v.AsString() != "first" {
		t.Fatalf("expected \"first\", got %v err=%v", v, err)
	}
	v3, _ := h.GetComputed(o, o, Number(3), Options{})
	if v3.AsString() != "fourth" {
		t.Errorf("expected \"fourth\", got %v", v3)
	}
	v1, _ := h.GetComputed(o, o, Number(1), Options{})
	if !v1.IsUndefined() {
		t.Errorf("expected a sparse hole to read as undefined, got %v", v1)
	}
}

func TestDenseArrayFastIndexPropertiesDisabledByIndexLikeName(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	o.MakeIndexed(NewDenseArray())
	if !o.FastIndexProperties() {
		t.Fatalf("expected a fresh indexed object to start with fastIndexProperties true")
	}

	if err := h.PutNamed(o, o, "0", Number(9), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutNamed with index-like name failed: %v", err)
	}
	if o.FastIndexProperties() {
		t.Errorf("expected fastIndexProperties to clear once an index-like named property exists")
	}
}

func TestDenseArrayDeleteComputedRejectsNonConfigurable(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	arr := NewDenseArray()
	o.MakeIndexed(arr)
	arr.SetOwnIndexed(0, Number(1))
	arr.attrs[0] = arr.attrs[0].With(FlagConfigurable, false)

	ok, err := h.DeleteComputed(o, Number(0), Options{ThrowOnError: true})
	if ok || err == nil {
		t.Errorf("expected delete of non-configurable index to fail, got ok=%v err=%v", ok, err)
	}
}

func TestFreezeAppliesToIndexedStorage(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	arr := NewDenseArray()
	o.MakeIndexed(arr)
	arr.SetOwnIndexed(0, Number(1))

	h.Freeze(o)
	if !h.IsFrozen(o) {
		t.Fatalf("expected object with indexed storage to report frozen")
	}
	if ok, _ := arr.SetOwnIndexed(0, Number(2)); ok {
		t.Errorf("expected write to a frozen indexed slot to fail")
	}
}
