package object

// IndexedMode selects what checkAllOwnIndexed tests for (spec §4.6,
// used by seal/freeze).
type IndexedMode uint8

const (
	IndexedNonConfigurable IndexedMode = iota
	IndexedReadOnly
)

// Indexed is the virtual indexed-storage interface concrete array-like
// subclasses (arrays, typed arrays, strings-as-objects, arguments
// objects) satisfy. It is dispatched through JSObject.Indexed — a
// small interface table fixed at allocation time, rather than a Go
// type switch, since the set of subclasses is open (spec §9: "model
// as ... a trait/interface the cell exposes; the cell's kind is
// immutable").
type Indexed interface {
	// OwnIndexedRange reports the half-open range [lo, hi) this
	// storage may have entries in. Entries inside the range may still
	// be absent (sparse); HaveOwnIndexed is the precise test.
	OwnIndexedRange() (lo, hi uint32)
	HaveOwnIndexed(i uint32) bool
	GetOwnIndexedPropertyFlags(i uint32) (PropertyFlags, bool)
	// GetOwnIndexed returns the value at i, or the empty sentinel's
	// zero value (Undefined) if absent — callers must check
	// HaveOwnIndexed first when absence is significant.
	GetOwnIndexed(i uint32) Value
	// SetOwnIndexed writes v at i. false rejects the write (the caller
	// turns this into a throw-or-false per throwOnError); an
	// implementation may also return an error for something like
	// typed-array bounds.
	SetOwnIndexed(i uint32, v Value) (bool, error)
	DeleteOwnIndexed(i uint32) bool
	// CheckAllOwnIndexed reports whether every own indexed entry
	// already satisfies mode — used by isSealed/isFrozen.
	CheckAllOwnIndexed(mode IndexedMode) bool
	// SealOwnIndexed clears the Configurable bit on every present entry
	// (§4.7 seal).
	SealOwnIndexed()
	// FreezeOwnIndexed clears Configurable and Writable on every
	// present entry (§4.7 freeze).
	FreezeOwnIndexed()
}

// plainIndexed is the default Indexed implementation plain objects
// carry: no indexed range, every set rejected, every check vacuously
// true (spec §4.6, "Plain objects' default implementations").
type plainIndexed struct{}

func (plainIndexed) OwnIndexedRange() (uint32, uint32)                { return 0, 0 }
func (plainIndexed) HaveOwnIndexed(uint32) bool                       { return false }
func (plainIndexed) GetOwnIndexedPropertyFlags(uint32) (PropertyFlags, bool) {
	return 0, false
}
func (plainIndexed) GetOwnIndexed(uint32) Value                 { return Undefined }
func (plainIndexed) SetOwnIndexed(uint32, Value) (bool, error)  { return false, nil }
func (plainIndexed) DeleteOwnIndexed(uint32) bool               { return true }
func (plainIndexed) CheckAllOwnIndexed(IndexedMode) bool         { return true }
func (plainIndexed) SealOwnIndexed()                             {}
func (plainIndexed) FreezeOwnIndexed()                           {}

var defaultIndexed Indexed = plainIndexed{}
