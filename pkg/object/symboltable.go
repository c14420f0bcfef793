package object

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// SymbolTable is the identifier-table/string-factory collaborator
// (spec §6): it interns a raw property-name spelling into the
// canonical string Value used as a property key, so two Values built
// from equal spellings compare equal and share a Go string backing
// array. Out of scope as a concrete subsystem (spec §1); this is the
// one reference implementation the core ships to be runnable
// standalone.
type SymbolTable interface {
	// Intern returns the canonical Value for name, identical across
	// calls with an equal (after normalization) spelling.
	Intern(name string) Value
}

// internTable normalizes every spelling to NFC before interning, the
// way the teacher normalizes source text with the same
// golang.org/x/text/unicode/norm package — applied here to property
// names instead of program text, so "café" written with a precomposed
// é and "café" written with e + combining acute intern to the same
// property key.
type internTable struct {
	mu    sync.RWMutex
	byKey map[string]Value
}

// NewInternTable returns a fresh reference SymbolTable.
func NewInternTable() SymbolTable {
	return &internTable{byKey: make(map[string]Value)}
}

func (t *internTable) Intern(name string) Value {
	canon := norm.NFC.String(name)

	t.mu.RLock()
	v, ok := t.byKey[canon]
	t.mu.RUnlock()
	if ok {
		return v
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.byKey[canon]; ok {
		return v
	}
	v = String(canon)
	t.byKey[canon] = v
	return v
}
