package object

// HiddenClass is the collaborator this core treats as an external
// interface (spec §1: "the hidden-class implementation ... only its
// interface"). It maps a property key to a (slot, flags) pair and
// hands back a new HiddenClass on every add/update/delete transition;
// the object stores only a pointer to its current class.
//
// Implementations fall into two observable modes (spec §3): class
// mode, where AddProperty/UpdateProperty/DeleteProperty share
// transitions with sibling objects of the same shape, and dictionary
// mode, where the class is private to one object and IsDictionary
// reports true. Only class-mode entries may be cached by call sites
// (the inline-cache population hook, §4, relies on this).
type HiddenClass interface {
	// Lookup reports the (slot, flags) of key if this class carries it.
	Lookup(key Key) (slot int, flags PropertyFlags, ok bool)

	// AddProperty returns a class identical to this one plus a new
	// property at the next available slot, and that slot's index.
	AddProperty(key Key, flags PropertyFlags) (HiddenClass, int)

	// UpdateProperty returns a class with key's flags replaced; the
	// slot index is unchanged. key must already exist on this class.
	UpdateProperty(key Key, flags PropertyFlags) HiddenClass

	// DeleteProperty returns a class with key removed. Per invariant 4
	// the caller is responsible for clearing the corresponding slot to
	// empty before installing the returned class.
	DeleteProperty(key Key) HiddenClass

	// ForEachProperty visits every property this class carries, in
	// insertion order, stopping early if visit returns false.
	ForEachProperty(visit func(key Key, slot int, flags PropertyFlags) bool)

	// IsDictionary reports whether this class is private to one object.
	IsDictionary() bool

	// PropertyCount reports how many properties this class carries.
	PropertyCount() int

	// HasIndexLikeProperties reports whether any named (string-keyed)
	// property's spelling parses as a uint32 array index — the
	// condition that forces fastIndexProperties off (invariant 5).
	HasIndexLikeProperties() bool

	// MakeAllNonConfigurable returns a class with every property's
	// Configurable bit cleared (seal, §4.7).
	MakeAllNonConfigurable() HiddenClass

	// MakeAllReadOnly returns a class with every data property's
	// Writable bit cleared in addition to Configurable (freeze, §4.7).
	MakeAllReadOnly() HiddenClass

	// AreAllNonConfigurable/AreAllReadOnly support isSealed/isFrozen's
	// full-class-scan fallback (§4.7) when the object's cheap flag bit
	// has not yet been promoted.
	AreAllNonConfigurable() bool
	AreAllReadOnly() bool

	// GetForInCache/SetForInCache/ClearForInCache manage the for-in
	// name cache attached to this class (§4.8). SetForInCache mutates
	// the class in place — the cache is a side table on an otherwise
	// immutable class, not itself a transition.
	GetForInCache() *ForInCache
	SetForInCache(c *ForInCache)
	ClearForInCache()

	// Cacheable reports whether an inline-cache site or the for-in
	// cache may record this class as a prototype-chain step (§4.8's
	// "every prototype is marked cacheable"). The rule for marking an
	// object cacheable is delegated to the collaborator, per spec §9
	// Open Questions; this core treats it as a black box.
	Cacheable() bool
}

// ForInCache is the prefix-encoded name list described in spec §4.8:
// ProtoClasses records the shape of every prototype consulted when the
// cache was built (in walk order); Names is the merged, deduplicated
// enumerable-name sequence. A lookup is valid only while every
// prototype's current class still matches ProtoClasses at the same
// position.
type ForInCache struct {
	ProtoClasses []HiddenClass
	Names        []Key
}
