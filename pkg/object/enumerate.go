package object

import (
	"sort"
	"strconv"

	"vmobject/pkg/handle"
)

// GetOwnPropertyNames implements [[OwnPropertyKeys]] restricted to
// string keys (spec §4.8): index-like keys — both real indexed
// storage and named properties whose spelling happens to parse as an
// index — come first in ascending numeric order, followed by ordinary
// string keys in insertion order. Lazy objects initialize first.
func (h *Heap) GetOwnPropertyNames(o *JSObject) []Key {
	ensureInitialized(o)

	var indexKeys []uint32
	seen := make(map[uint32]bool)
	if o.HasIndexedStorage() {
		lo, hi := o.indexed.OwnIndexedRange()
		for i := lo; i < hi; i++ {
			if o.indexed.HaveOwnIndexed(i) {
				indexKeys = append(indexKeys, i)
				seen[i] = true
			}
		}
	}

	var stringKeys []Key
	o.class.ForEachProperty(func(key Key, slot int, flags PropertyFlags) bool {
		if key.IsSymbol() {
			return true
		}
		if idx, ok := parseArrayIndex(key.Name()); ok {
			if !seen[idx] {
				indexKeys = append(indexKeys, idx)
				seen[idx] = true
			}
			return true
		}
		stringKeys = append(stringKeys, key)
		return true
	})

	sort.Slice(indexKeys, func(i, j int) bool { return indexKeys[i] < indexKeys[j] })

	out := make([]Key, 0, len(indexKeys)+len(stringKeys))
	for _, idx := range indexKeys {
		out = append(out, StringKey(strconv.FormatUint(uint64(idx), 10)))
	}
	out = append(out, stringKeys...)
	return out
}

// GetOwnPropertySymbols implements [[OwnPropertyKeys]] restricted to
// symbol keys, in insertion order (spec §4.8).
func (h *Heap) GetOwnPropertySymbols(o *JSObject) []Key {
	ensureInitialized(o)
	var out []Key
	o.class.ForEachProperty(func(key Key, slot int, flags PropertyFlags) bool {
		if key.IsSymbol() {
			out = append(out, key)
		}
		return true
	})
	return out
}

// GetForInPropertyNames implements for-in enumeration (spec §4.8):
// enumerable string keys from o and every prototype, first occurrence
// wins on a name collision, prefix-cached on o's class against the
// shape of every prototype step consulted. Index-like keys are taken
// from o alone: a prototype's indexed entries and index-like named
// properties are not listed. o's indexed entries are always
// recomputed fresh, since array contents change far more often than
// shapes do.
func (h *Heap) GetForInPropertyNames(o *JSObject) []Key {
	ensureInitialized(o)

	names := h.ownEnumerableIndexNames(o)

	if cache := o.class.GetForInCache(); cache != nil && forInCacheValid(o, cache) {
		return append(names, cache.Names...)
	}

	protoClasses := []HiddenClass{o.class}
	seen := make(map[string]bool, len(names))
	for _, k := range names {
		seen[k.Name()] = true
	}

	var merged []Key
	current := o
	depth := 0
	cacheable := o.class.Cacheable()
	scope := handle.OpenScope(h.Handles)
	defer scope.Close()
	for current != nil {
		scope.Push(current)
		ensureInitialized(current)
		current.class.ForEachProperty(func(key Key, slot int, flags PropertyFlags) bool {
			if key.IsSymbol() || !flags.Has(FlagEnumerable) {
				return true
			}
			if _, isIndex := parseArrayIndex(key.Name()); isIndex {
				return true
			}
			if seen[key.Name()] {
				return true
			}
			seen[key.Name()] = true
			merged = append(merged, key)
			return true
		})
		proto := current.Prototype().AsObject()
		if proto == nil {
			scope.Flush()
			break
		}
		if !proto.class.Cacheable() {
			cacheable = false
		}
		protoClasses = append(protoClasses, proto.class)
		current = proto
		depth++
		if depth > h.Config.ForInCacheMaxExpansion {
			cacheable = false
		}
		scope.Flush()
	}

	if cacheable {
		o.class.SetForInCache(&ForInCache{ProtoClasses: protoClasses, Names: merged})
	}

	return append(names, merged...)
}

// ownEnumerableIndexNames collects o's own enumerable indices, sorted
// ascending, as string keys — both from indexed storage and from any
// index-like named property.
func (h *Heap) ownEnumerableIndexNames(o *JSObject) []Key {
	var idxs []uint32
	seen := make(map[uint32]bool)
	if o.HasIndexedStorage() {
		lo, hi := o.indexed.OwnIndexedRange()
		for i := lo; i < hi; i++ {
			if o.indexed.HaveOwnIndexed(i) {
				if flags, ok := o.indexed.GetOwnIndexedPropertyFlags(i); ok && flags.Has(FlagEnumerable) {
					idxs = append(idxs, i)
					seen[i] = true
				}
			}
		}
	}
	o.class.ForEachProperty(func(key Key, slot int, flags PropertyFlags) bool {
		if key.IsSymbol() || !flags.Has(FlagEnumerable) {
			return true
		}
		if idx, ok := parseArrayIndex(key.Name()); ok && !seen[idx] {
			idxs = append(idxs, idx)
			seen[idx] = true
		}
		return true
	})
	sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })
	out := make([]Key, len(idxs))
	for i, idx := range idxs {
		out[i] = StringKey(strconv.FormatUint(uint64(idx), 10))
	}
	return out
}

// forInCacheValid reports whether cache still matches o's current
// prototype chain shape (spec §4.8): same length, same class at every
// step.
func forInCacheValid(o *JSObject, cache *ForInCache) bool {
	current := o
	for i, class := range cache.ProtoClasses {
		if current == nil || current.class != class {
			return false
		}
		if i == len(cache.ProtoClasses)-1 {
			return current.Prototype().AsObject() == nil
		}
		current = current.Prototype().AsObject()
	}
	return current == nil
}
