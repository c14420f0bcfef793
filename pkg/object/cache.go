package object

// CacheState is the inline-cache population hook's state machine
// (spec §2, "Inline-cache population hook"), grounded on the teacher's
// PropCacheState.
type CacheState uint8

const (
	CacheUninitialized CacheState = iota
	CacheMonomorphic
	CachePolymorphic
	CacheMegamorphic
)

type cacheEntry struct {
	class HiddenClass
	slot  int
	flags PropertyFlags
}

// InlineCache is the (class, slot) export a call site stamps on every
// plain-data, non-dictionary hit (spec §4.2 step 3), so a repeat
// access on the same shape can skip descriptor resolution entirely.
// One InlineCache belongs to one call site; the bytecode/interpreter
// layer that owns call sites is out of scope here (spec §1), so this
// type carries no notion of instruction pointers — callers key their
// own site-to-cache map however their dispatch loop does.
type InlineCache struct {
	state   CacheState
	entries [4]cacheEntry
	count   int
	maxPoly int
}

// NewInlineCache returns an empty cache. maxPoly bounds how many
// distinct shapes it tracks before going megamorphic (normally
// Config.MaxPolymorphicInlineCacheEntries).
func NewInlineCache(maxPoly int) *InlineCache {
	if maxPoly <= 0 || maxPoly > 4 {
		maxPoly = 4
	}
	return &InlineCache{maxPoly: maxPoly}
}

// Lookup returns the cached (slot, flags) for class, if any.
func (c *InlineCache) Lookup(class HiddenClass) (int, PropertyFlags, bool) {
	switch c.state {
	case CacheMonomorphic:
		if c.entries[0].class == class {
			return c.entries[0].slot, c.entries[0].flags, true
		}
	case CachePolymorphic:
		for i := 0; i < c.count; i++ {
			if c.entries[i].class == class {
				e := c.entries[i]
				if i > 0 {
					copy(c.entries[1:i+1], c.entries[0:i])
					c.entries[0] = e
				}
				return e.slot, e.flags, true
			}
		}
	}
	return 0, 0, false
}

// Update stamps (class, slot, flags) into the cache — the inline-cache
// population hook itself. Only class-mode (non-dictionary) shapes
// should ever be passed here; callers filter before calling Update.
func (c *InlineCache) Update(class HiddenClass, slot int, flags PropertyFlags) {
	switch c.state {
	case CacheUninitialized:
		c.state = CacheMonomorphic
		c.entries[0] = cacheEntry{class: class, slot: slot, flags: flags}
		c.count = 1
	case CacheMonomorphic:
		if c.entries[0].class == class {
			c.entries[0].slot = slot
			c.entries[0].flags = flags
			return
		}
		c.state = CachePolymorphic
		c.entries[1] = cacheEntry{class: class, slot: slot, flags: flags}
		c.count = 2
	case CachePolymorphic:
		for i := 0; i < c.count; i++ {
			if c.entries[i].class == class {
				c.entries[i].slot = slot
				c.entries[i].flags = flags
				return
			}
		}
		if c.count < c.maxPoly {
			c.entries[c.count] = cacheEntry{class: class, slot: slot, flags: flags}
			c.count++
		} else {
			c.state = CacheMegamorphic
			c.count = 0
		}
	case CacheMegamorphic:
		// Never cache again once megamorphic.
	}
}

// Reset clears the cache, e.g. when the receiver's class transitions
// in a way the cache can't represent.
func (c *InlineCache) Reset() {
	c.state = CacheUninitialized
	c.count = 0
}

// SiteCache maps arbitrary, caller-defined call-site keys to their own
// InlineCache, lazily created — a convenience the bytecode/interpreter
// layer (out of scope here) can use instead of hand-rolling its own
// site table, grounded on the teacher's map-based vm.propCache.
type SiteCache[K comparable] struct {
	sites   map[K]*InlineCache
	maxPoly int
}

// NewSiteCache returns an empty site cache.
func NewSiteCache[K comparable](maxPoly int) *SiteCache[K] {
	return &SiteCache[K]{sites: make(map[K]*InlineCache), maxPoly: maxPoly}
}

// For returns the InlineCache for site, creating one if needed.
func (sc *SiteCache[K]) For(site K) *InlineCache {
	ic, ok := sc.sites[site]
	if !ok {
		ic = NewInlineCache(sc.maxPoly)
		sc.sites[site] = ic
	}
	return ic
}
