package object

// PreventExtensions implements [[PreventExtensions]] (spec §4.7): the
// object accepts no further own properties, but existing ones keep
// their attributes.
func (h *Heap) PreventExtensions(o *JSObject) {
	o.flags = o.flags.with(flagNoExtend, true)
}

// Seal implements [[Seal]] (spec §4.7): prevents extensions and marks
// every own property non-configurable, named and indexed alike.
func (h *Heap) Seal(o *JSObject) {
	h.PreventExtensions(o)
	o.class = o.class.MakeAllNonConfigurable()
	if o.HasIndexedStorage() {
		o.indexed.SealOwnIndexed()
	}
	o.flags = o.flags.with(flagSealed, true)
}

// Freeze implements [[Freeze]] (spec §4.7): seals and additionally
// marks every own data property (named and indexed) non-writable.
func (h *Heap) Freeze(o *JSObject) {
	h.PreventExtensions(o)
	o.class = o.class.MakeAllReadOnly()
	if o.HasIndexedStorage() {
		o.indexed.FreezeOwnIndexed()
	}
	o.flags = o.flags.with(flagSealed, true)
	o.flags = o.flags.with(flagFrozen, true)
}

// IsSealed implements [[IsSealed]] (spec §4.7): the cheap flag bit
// short-circuits a positive answer; otherwise it falls back to a full
// scan of the class and indexed storage so a sealed-by-construction or
// indirectly-sealed object still reports correctly.
func (h *Heap) IsSealed(o *JSObject) bool {
	if o.IsSealed() {
		return true
	}
	if o.IsExtensible() {
		return false
	}
	if !o.class.AreAllNonConfigurable() {
		return false
	}
	if o.HasIndexedStorage() && !o.indexed.CheckAllOwnIndexed(IndexedNonConfigurable) {
		return false
	}
	o.flags = o.flags.with(flagSealed, true)
	return true
}

// IsFrozen implements [[IsFrozen]] (spec §4.7), with the same
// cheap-bit/full-scan structure as IsSealed.
func (h *Heap) IsFrozen(o *JSObject) bool {
	if o.IsFrozen() {
		return true
	}
	if o.IsExtensible() {
		return false
	}
	if !o.class.AreAllReadOnly() {
		return false
	}
	if o.HasIndexedStorage() && !o.indexed.CheckAllOwnIndexed(IndexedReadOnly) {
		return false
	}
	o.flags = o.flags.with(flagFrozen, true)
	o.flags = o.flags.with(flagSealed, true)
	return true
}
