package object

import "testing"

func TestShapeTransitionsAreShared(t *testing.T) {
	root := &Shape{cacheable: true}
	s1, slot1 := root.AddProperty(StringKey("a"), DefaultDataFlags)
	s2, slot2 := root.AddProperty(StringKey("a"), DefaultDataFlags)
	if s1 != s2 {
		t.Errorf("expected two objects adding the same key/flags to converge on one shape")
	}
	if slot1 != slot2 {
		t.Errorf("expected the same slot index from the shared transition")
	}
}

func TestShapeDictionaryModeDoesNotShareTransitions(t *testing.T) {
	d := NewDictionaryShape(nil)
	s1, _ := d.AddProperty(StringKey("a"), DefaultDataFlags)
	s2, _ := d.AddProperty(StringKey("a"), DefaultDataFlags)
	if s1 == s2 {
		t.Errorf("expected dictionary-mode AddProperty to fork a private shape every time")
	}
	if !s1.(*Shape).IsDictionary() {
		t.Errorf("expected forked shape to remain in dictionary mode")
	}
}

func TestShapeDeleteDemotesToDictionary(t *testing.T) {
	root := &Shape{cacheable: true}
	s1, _ := root.AddProperty(StringKey("a"), DefaultDataFlags)
	s2, _ := s1.AddProperty(StringKey("b"), DefaultDataFlags)
	s3 := s2.DeleteProperty(StringKey("a"))
	if !s3.IsDictionary() {
		t.Errorf("expected a shape with a deleted property to be in dictionary mode")
	}
	if _, _, ok := s3.Lookup(StringKey("a")); ok {
		t.Errorf("expected deleted key to be absent")
	}
	if _, _, ok := s3.Lookup(StringKey("b")); !ok {
		t.Errorf("expected surviving key to remain present")
	}
}

func TestClassRegistrySharesRootClassPerPrototype(t *testing.T) {
	r := NewClassRegistry()
	proto := New(Undefined)
	protoVal := FromObject(proto)
	c1 := r.RootClassFor(protoVal)
	c2 := r.RootClassFor(protoVal)
	if c1 != c2 {
		t.Errorf("expected repeat RootClassFor with the same prototype to return the same class")
	}
}

func TestInternTableCanonicalizesRepeatSpellings(t *testing.T) {
	tbl := NewInternTable()
	a := tbl.Intern("cafe")
	b := tbl.Intern("cafe")
	if a.AsString() != b.AsString() {
		t.Errorf("expected repeat interning of the same spelling to agree")
	}
}
