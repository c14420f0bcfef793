package object

import "sync"

// shapeField is one property entry on a Shape, grounded on the
// teacher's vm.Field — slot offset plus the packed attribute bits.
type shapeField struct {
	key   Key
	slot  int
	flags PropertyFlags
}

// Shape is the reference HiddenClass implementation: an immutable
// (once published) map from key to (slot, flags), with a transition
// table shared by every object that reaches the same property set in
// the same order (spec §3, "class mode"). Dictionary-mode shapes are
// ordinary Shapes with dictionary set true and no transition sharing.
type Shape struct {
	parent      *Shape
	fields      []shapeField
	dictionary  bool
	mu          sync.RWMutex
	transitions map[transitionKey]*Shape
	forIn       *ForInCache
	cacheable   bool
}

type transitionKey struct {
	key   Key
	flags PropertyFlags
}

// RootShape is the empty shape every fresh extensible object starts
// from, the way the teacher's RootShape seeds every PlainObject.
var RootShape = &Shape{cacheable: true}

// NewDictionaryShape returns a private, non-shared shape pre-loaded
// with fields, used when an object is demoted to dictionary mode (for
// example by the sheer number of ad hoc properties a host or lazy
// object installs). Most callers just start from RootShape.
func NewDictionaryShape(fields []shapeField) *Shape {
	cp := make([]shapeField, len(fields))
	copy(cp, fields)
	return &Shape{fields: cp, dictionary: true, cacheable: true}
}

func (s *Shape) Lookup(key Key) (int, PropertyFlags, bool) {
	for _, f := range s.fields {
		if f.key.Equal(key) {
			return f.slot, f.flags, true
		}
	}
	return 0, 0, false
}

func (s *Shape) AddProperty(key Key, flags PropertyFlags) (HiddenClass, int) {
	// Deletes leave gaps rather than renumbering, so the next free slot
	// is one past the highest slot in use, not len(s.fields).
	slot := 0
	for _, f := range s.fields {
		if f.slot >= slot {
			slot = f.slot + 1
		}
	}
	if s.dictionary {
		next := &Shape{
			fields:     append(append([]shapeField{}, s.fields...), shapeField{key: key, slot: slot, flags: flags}),
			dictionary: true,
			cacheable:  s.cacheable,
		}
		return next, slot
	}

	tk := transitionKey{key: key, flags: flags}
	s.mu.RLock()
	next, ok := s.transitions[tk]
	s.mu.RUnlock()
	if ok {
		return next, slot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok = s.transitions[tk]; ok {
		return next, slot
	}
	next = &Shape{
		parent:    s,
		fields:    append(append([]shapeField{}, s.fields...), shapeField{key: key, slot: slot, flags: flags}),
		cacheable: s.cacheable,
	}
	if s.transitions == nil {
		s.transitions = make(map[transitionKey]*Shape)
	}
	s.transitions[tk] = next
	return next, slot
}

func (s *Shape) UpdateProperty(key Key, flags PropertyFlags) HiddenClass {
	newFields := make([]shapeField, len(s.fields))
	copy(newFields, s.fields)
	for i, f := range newFields {
		if f.key.Equal(key) {
			newFields[i].flags = flags
			break
		}
	}
	if s.dictionary {
		return &Shape{fields: newFields, dictionary: true, cacheable: s.cacheable}
	}
	// Attribute updates always fork a fresh shape rather than sharing a
	// transition slot: unlike AddProperty, the set of keys hasn't
	// changed, so there is no natural transition-table slot to key on.
	return &Shape{parent: s.parent, fields: newFields, cacheable: s.cacheable}
}

func (s *Shape) DeleteProperty(key Key) HiddenClass {
	newFields := make([]shapeField, 0, len(s.fields))
	for _, f := range s.fields {
		if f.key.Equal(key) {
			continue
		}
		if f.slot > 0 {
			// Slot indices are not renumbered on delete: invariant 1
			// only requires live slots stay below the object's slot
			// vector length, and JSObject's delete path leaves the
			// vacated slot as empty rather than compacting, exactly
			// like the teacher's shape-rebuild-on-delete, generalized
			// to not require a monolithic property-slice copy per op.
		}
		newFields = append(newFields, f)
	}
	return &Shape{fields: newFields, dictionary: true, cacheable: s.cacheable}
}

func (s *Shape) ForEachProperty(visit func(key Key, slot int, flags PropertyFlags) bool) {
	for _, f := range s.fields {
		if !visit(f.key, f.slot, f.flags) {
			return
		}
	}
}

func (s *Shape) IsDictionary() bool    { return s.dictionary }
func (s *Shape) PropertyCount() int    { return len(s.fields) }
func (s *Shape) Cacheable() bool       { return s.cacheable }

func (s *Shape) HasIndexLikeProperties() bool {
	for _, f := range s.fields {
		if f.key.IsString() {
			if _, ok := parseArrayIndex(f.key.Name()); ok {
				return true
			}
		}
	}
	return false
}

func (s *Shape) MakeAllNonConfigurable() HiddenClass {
	newFields := make([]shapeField, len(s.fields))
	for i, f := range s.fields {
		newFields[i] = f
		newFields[i].flags = f.flags.With(FlagConfigurable, false)
	}
	return &Shape{fields: newFields, dictionary: true, cacheable: s.cacheable}
}

func (s *Shape) MakeAllReadOnly() HiddenClass {
	newFields := make([]shapeField, len(s.fields))
	for i, f := range s.fields {
		newFields[i] = f
		newFields[i].flags = f.flags.With(FlagConfigurable, false)
		if !f.flags.Has(FlagAccessor) {
			newFields[i].flags = newFields[i].flags.With(FlagWritable, false)
		}
	}
	return &Shape{fields: newFields, dictionary: true, cacheable: s.cacheable}
}

func (s *Shape) AreAllNonConfigurable() bool {
	for _, f := range s.fields {
		if f.flags.Has(FlagConfigurable) {
			return false
		}
	}
	return true
}

func (s *Shape) AreAllReadOnly() bool {
	for _, f := range s.fields {
		if f.flags.Has(FlagConfigurable) {
			return false
		}
		if !f.flags.Has(FlagAccessor) && f.flags.Has(FlagWritable) {
			return false
		}
	}
	return true
}

func (s *Shape) GetForInCache() *ForInCache { return s.forIn }
func (s *Shape) SetForInCache(c *ForInCache) { s.forIn = c }
func (s *Shape) ClearForInCache()            { s.forIn = nil }

// parseArrayIndex reports whether name is a canonical uint32 array
// index spelling: no leading zeros (except "0" itself), digits only,
// in range [0, 2^32-2]. Grounded on the teacher's tryParseArrayIndex.
func parseArrayIndex(name string) (uint32, bool) {
	if name == "" {
		return 0, false
	}
	if len(name) > 1 && name[0] == '0' {
		return 0, false
	}
	var idx uint64
	for _, ch := range name {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		idx = idx*10 + uint64(ch-'0')
		if idx > 4294967294 {
			return 0, false
		}
	}
	return uint32(idx), true
}
