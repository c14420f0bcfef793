package object

import "testing"

func TestInlineCacheMonomorphicHit(t *testing.T) {
	h := NewHeap()
	o := h.Create(Undefined)
	h.PutNamed(o, o, "x", Number(1), Options{ThrowOnError: true})

	ic := NewInlineCache(h.Config.MaxPolymorphicInlineCacheEntries)
	v, err := h.GetNamedCached(o, o, "x", ic, Options{})
	if err != nil || v.AsNumber() != 1 {
		t.Fatalf("first GetNamedCached failed: v=%v err=%v", v, err)
	}
	if _, _, ok := ic.Lookup(o.class); !ok {
		t.Fatalf("expected cache to have stamped o's class")
	}
	v2, err := h.GetNamedCached(o, o, "x", ic, Options{})
	if err != nil || v2.AsNumber() != 1 {
		t.Fatalf("second (cached) GetNamedCached failed: v=%v err=%v", v2, err)
	}
}

func TestInlineCacheGoesPolymorphicThenMegamorphic(t *testing.T) {
	ic := NewInlineCache(2)
	shapes := []HiddenClass{&Shape{cacheable: true}, &Shape{cacheable: true}, &Shape{cacheable: true}}

	ic.Update(shapes[0], 0, DefaultDataFlags)
	if ic.state != CacheMonomorphic {
		t.Fatalf("expected monomorphic after first update")
	}
	ic.Update(shapes[1], 1, DefaultDataFlags)
	if ic.state != CachePolymorphic {
		t.Fatalf("expected polymorphic after second distinct shape")
	}
	ic.Update(shapes[2], 2, DefaultDataFlags)
	if ic.state != CacheMegamorphic {
		t.Fatalf("expected megamorphic once maxPoly is exceeded, got %v", ic.state)
	}
	if _, _, ok := ic.Lookup(shapes[0]); ok {
		t.Errorf("megamorphic cache should never report a hit")
	}
}

func TestSiteCacheIsolatesPerSite(t *testing.T) {
	sc := NewSiteCache[int](4)
	a := sc.For(1)
	b := sc.For(2)
	if a == b {
		t.Fatalf("expected distinct call sites to get distinct caches")
	}
	if sc.For(1) != a {
		t.Errorf("expected repeat For(1) to return the same cache instance")
	}
}
