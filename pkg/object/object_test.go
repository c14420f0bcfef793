package object

import "testing"

func TestGetPutNamedRoundTrip(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)

	opts := Options{ThrowOnError: true}
	if err := h.PutNamed(o, o, "foo", Number(42), opts); err != nil {
		t.Fatalf("PutNamed failed: %v", err)
	}
	v, err := h.GetNamed(o, o, "foo", Options{})
	if err != nil {
		t.Fatalf("GetNamed returned error: %v", err)
	}
	if v.AsNumber() != 42 {
		t.Errorf("expected 42, got %v", v.AsNumber())
	}

	if err := h.PutNamed(o, o, "foo", Number(7), opts); err != nil {
		t.Fatalf("overwrite PutNamed failed: %v", err)
	}
	v2, _ := h.GetNamed(o, o, "foo", Options{})
	if v2.AsNumber() != 7 {
		t.Errorf("expected overwritten 7, got %v", v2.AsNumber())
	}
}

func TestGetNamedMustExistMissingRaisesReferenceError(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	_, err := h.GetNamed(o, o, "missing", Options{MustExist: true})
	if err == nil {
		t.Fatalf("expected a ReferenceError, got nil")
	}
}

func TestPrototypeChainLookup(t *testing.T) {
	h := NewHeap()
	proto := h.Create(Undefined)
	if err := h.PutNamed(proto, proto, "greeting", String("hi"), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutNamed on proto failed: %v", err)
	}
	child := h.Create(FromObject(proto))

	v, err := h.GetNamed(child, child, "greeting", Options{})
	if err != nil {
		t.Fatalf("GetNamed through prototype failed: %v", err)
	}
	if v.AsString() != "hi" {
		t.Errorf("expected inherited \"hi\", got %q", v.AsString())
	}

	if h.HasNamed(child, "greeting") != true {
		t.Errorf("expected HasNamed to see inherited property")
	}

	names := h.GetOwnPropertyNames(child)
	if len(names) != 0 {
		t.Errorf("expected no own property names on child, got %v", names)
	}
}

func TestDeleteNamedRejectsNonConfigurable(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	desc := DefinePropertyFlags{SetValue: true, Value: Number(1), SetConfigurable: true, Configurable: false}
	if err := h.DefineNewOwnProperty(o, StringKey("x"), desc, Options{}); err != nil {
		t.Fatalf("DefineNewOwnProperty failed: %v", err)
	}
	ok, err := h.DeleteNamed(o, "x", Options{ThrowOnError: true})
	if ok || err == nil {
		t.Errorf("expected delete of non-configurable property to fail, got ok=%v err=%v", ok, err)
	}
	if !h.HasNamed(o, "x") {
		t.Errorf("expected x to still be present after rejected delete")
	}
}

func TestDeleteNamedConfigurableSucceeds(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	h.PutNamed(o, o, "x", Number(1), Options{ThrowOnError: true})
	ok, err := h.DeleteNamed(o, "x", Options{})
	if err != nil || !ok {
		t.Fatalf("expected delete to succeed, got ok=%v err=%v", ok, err)
	}
	if h.HasNamed(o, "x") {
		t.Errorf("expected x to be gone after delete")
	}
}

func TestSealRejectsNewPropertiesAndDelete(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	h.PutNamed(o, o, "x", Number(1), Options{ThrowOnError: true})
	h.Seal(o)

	if !h.IsSealed(o) {
		t.Fatalf("expected object to report sealed")
	}
	if err := h.PutNamed(o, o, "y", Number(2), Options{ThrowOnError: true}); err == nil {
		t.Errorf("expected adding a property to a sealed object to fail")
	}
	// Existing writable properties may still be written.
	if err := h.PutNamed(o, o, "x", Number(99), Options{ThrowOnError: true}); err != nil {
		t.Errorf("expected overwrite of existing property on sealed object to succeed, got %v", err)
	}
	if ok, _ := h.DeleteNamed(o, "x", Options{}); ok {
		t.Errorf("expected delete on sealed object to fail")
	}
}

func TestFreezeRejectsWrites(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	h.PutNamed(o, o, "x", Number(1), Options{ThrowOnError: true})
	h.Freeze(o)

	if !h.IsFrozen(o) {
		t.Fatalf("expected object to report frozen")
	}
	if err := h.PutNamed(o, o, "x", Number(2), Options{ThrowOnError: true}); err == nil {
		t.Errorf("expected write to a frozen property to fail")
	}
	v, _ := h.GetNamed(o, o, "x", Options{})
	if v.AsNumber() != 1 {
		t.Errorf("expected frozen value to stay 1, got %v", v.AsNumber())
	}
}

func TestSetParentRejectsCycle(t *testing.T) {
	h := NewHeap()
	a := h.Create(Undefined)
	b := h.Create(FromObject(a))

	err := h.SetParent(a, FromObject(b), Options{ThrowOnError: true})
	if err == nil {
		t.Fatalf("expected setting a's prototype to its own descendant to fail")
	}
}

func TestDefinePropertyAccessor(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)

	var stored Value
	getter := callableFunc(func(this Value, args []Value) (Value, error) {
		return stored, nil
	})
	setter := callableFunc(func(this Value, args []Value) (Value, error) {
		stored = args[0]
		return Undefined, nil
	})

	desc := DefinePropertyFlags{SetGetter: true, Getter: getter, SetSetter: true, Setter: setter, SetEnumerable: true, Enumerable: true}
	if err := h.DefineNewOwnProperty(o, StringKey("computed"), desc, Options{}); err != nil {
		t.Fatalf("DefineNewOwnProperty failed: %v", err)
	}

	if err := h.PutNamed(o, o, "computed", Number(5), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("PutNamed through setter failed: %v", err)
	}
	v, err := h.GetNamed(o, o, "computed", Options{})
	if err != nil {
		t.Fatalf("GetNamed through getter failed: %v", err)
	}
	if v.AsNumber() != 5 {
		t.Errorf("expected getter to return 5, got %v", v.AsNumber())
	}
}

func TestOwnPropertyNamesIndexOrdering(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	h.PutNamed(o, o, "b", Number(1), Options{ThrowOnError: true})
	h.PutNamed(o, o, "10", Number(1), Options{ThrowOnError: true})
	h.PutNamed(o, o, "2", Number(1), Options{ThrowOnError: true})
	h.PutNamed(o, o, "a", Number(1), Options{ThrowOnError: true})

	names := h.GetOwnPropertyNames(o)
	got := make([]string, len(names))
	for i, k := range names {
		got[i] = k.Name()
	}
	want := []string{"2", "10", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestForInCacheInvalidatesOnShapeChange(t *testing.T) {
	h := NewHeap()
	proto := h.Create(Undefined)
	h.PutNamed(proto, proto, "inherited", Number(1), Options{ThrowOnError: true})
	child := h.Create(FromObject(proto))
	h.PutNamed(child, child, "own", Number(1), Options{ThrowOnError: true})

	first := h.GetForInPropertyNames(child)
	if len(first) != 2 {
		t.Fatalf("expected 2 for-in names, got %v", first)
	}

	// Adding a further property on proto changes proto's class, which
	// must invalidate the cached walk on the next call.
	h.PutNamed(proto, proto, "inherited2", Number(1), Options{ThrowOnError: true})
	second := h.GetForInPropertyNames(child)
	if len(second) != 3 {
		t.Fatalf("expected 3 for-in names after proto gained a property, got %v", second)
	}
}

func TestHostObjectDelegation(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	host := &mapHost{values: map[string]Value{"a": Number(1)}}
	o.MakeHostObject(host)

	v, err := h.GetNamed(o, o, "a", Options{})
	if err != nil || v.AsNumber() != 1 {
		t.Fatalf("expected host-delegated get to return 1, got %v err=%v", v, err)
	}
	if err := h.PutNamed(o, o, "a", Number(9), Options{ThrowOnError: true}); err != nil {
		t.Fatalf("host-delegated put failed: %v", err)
	}
	if host.values["a"].AsNumber() != 9 {
		t.Errorf("expected host map updated to 9, got %v", host.values["a"].AsNumber())
	}
}

func TestLazyObjectInitializesOnce(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	init := &countingInit{}
	o.MakeLazy(init)

	h.GetNamed(o, o, "anything", Options{})
	h.GetNamed(o, o, "anything-else", Options{})
	if init.calls != 1 {
		t.Errorf("expected lazy initializer to run exactly once, got %d calls", init.calls)
	}
}

type callableFunc func(this Value, args []Value) (Value, error)

func (f callableFunc) Call(this Value, args []Value) (Value, error) { return f(this, args) }

type mapHost struct {
	values map[string]Value
}

func (m *mapHost) HostGet(key Key) (Value, bool) {
	v, ok := m.values[key.Name()]
	return v, ok
}

func (m *mapHost) HostSet(key Key, v Value) error {
	m.values[key.Name()] = v
	return nil
}

func (m *mapHost) HostOwnKeys() []Key {
	keys := make([]Key, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, StringKey(k))
	}
	return keys
}

type countingInit struct {
	calls int
}

func (c *countingInit) Init(o *JSObject) {
	c.calls++
}
