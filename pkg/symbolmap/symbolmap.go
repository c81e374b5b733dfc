// Package symbolmap maintains a selection of symbols from an immutable
// catalog, for use by character-art renderers deciding which output symbols
// are eligible.
//
// A SymbolMap starts out empty. Symbols are added and removed in bulk by
// category tag, either programmatically (AddByTags, RemoveByTags) or through
// the selector mini-language (ApplySelectors). Membership queries go through
// a derived index sorted by codepoint, rebuilt lazily by Prepare; callers are
// expected to batch mutations and call Prepare once before querying.
//
// A SymbolMap is reference counted. Ref and Unref are safe to call from any
// goroutine; everything else requires external serialization per instance.
package symbolmap

import (
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/walteh/symsel/pkg/catalog"
	"github.com/walteh/symsel/pkg/symtag"
)

// SymbolMap describes a selection of the symbols in a catalog.
type SymbolMap struct {
	// id identifies this instance in logs. CopyContents assigns a new one.
	id  uuid.UUID
	cat *catalog.Catalog

	desired *symbolSet
	// symbols is the derived index: the selected entries sorted ascending by
	// codepoint, terminated by a sentinel zero entry. Trustworthy only while
	// needRebuild is false.
	symbols     []catalog.Entry
	needRebuild bool

	refs atomic.Int32
}

// New creates an empty symbol map over cat, holding one reference.
func New(cat *catalog.Catalog) *SymbolMap {
	m := &SymbolMap{
		id:          uuid.New(),
		cat:         cat,
		desired:     newSymbolSet(),
		needRebuild: true,
	}
	m.refs.Store(1)
	return m
}

// ID identifies this instance; it changes when CopyContents reinitializes it.
func (m *SymbolMap) ID() string {
	return m.id.String()
}

// Ref adds a reference to m. Calling Ref on a destroyed map is a contract
// violation.
func (m *SymbolMap) Ref() {
	if m.refs.Load() <= 0 {
		panic("symbolmap: Ref on destroyed SymbolMap")
	}
	m.refs.Add(1)
}

// Unref removes a reference from m. When the count reaches zero the map
// releases its contents and must not be used again. Safe to call from any
// goroutine; concurrent final Unrefs destroy the map exactly once.
func (m *SymbolMap) Unref() {
	if m.refs.Load() <= 0 {
		panic("symbolmap: Unref on destroyed SymbolMap")
	}
	if m.refs.Add(-1) == 0 {
		m.desired = nil
		m.symbols = nil
		m.cat = nil
	}
}

// CopyContents reinitializes dst with a deep copy of src's selection. dst
// gets a fresh identity, a single reference, and a stale derived index
// regardless of src's cache state; any previous contents of dst are
// discarded. The two selections share no mutable state afterwards.
func CopyContents(dst, src *SymbolMap) {
	dst.id = uuid.New()
	dst.cat = src.cat
	dst.desired = src.desired.clone()
	dst.symbols = nil
	dst.needRebuild = true
	dst.refs.Store(1)
}

// AddByTags adds every catalog symbol matching tags to the selection.
// Already-selected symbols are unaffected.
func (m *SymbolMap) AddByTags(tags symtag.Tag) {
	for _, i := range m.cat.Matching(tags) {
		m.desired.add(i)
	}
	m.needRebuild = true
}

// RemoveByTags removes every catalog symbol matching tags from the selection.
// Removing an absent symbol is a no-op.
func (m *SymbolMap) RemoveByTags(tags symtag.Tag) {
	for _, i := range m.cat.Matching(tags) {
		m.desired.remove(i)
	}
	m.needRebuild = true
}

// Prepare rebuilds the derived index if the selection changed since the last
// rebuild. Idempotent.
func (m *SymbolMap) Prepare() {
	if !m.needRebuild {
		return
	}

	symbols := make([]catalog.Entry, 0, m.desired.len()+1)
	m.desired.each(func(i int) {
		symbols = append(symbols, m.cat.At(i))
	})
	sort.Slice(symbols, func(a, b int) bool {
		return symbols[a].Codepoint < symbols[b].Codepoint
	})
	// Sentinel terminator.
	symbols = append(symbols, catalog.Entry{})

	m.symbols = symbols
	m.needRebuild = false
}

// HasSymbol reports whether the selection contains the given codepoint. The
// derived index must be fresh: mutate, then Prepare, then query.
func (m *SymbolMap) HasSymbol(codepoint rune) bool {
	for _, sym := range m.symbols {
		// Sorted ascending; the sentinel stops the scan too.
		if sym.Codepoint == 0 || sym.Codepoint > codepoint {
			break
		}
		if sym.Codepoint == codepoint {
			return true
		}
	}
	return false
}

// Symbols returns the selected entries sorted ascending by codepoint, without
// the sentinel. Requires a fresh derived index; the slice is valid until the
// next mutation.
func (m *SymbolMap) Symbols() []catalog.Entry {
	if len(m.symbols) == 0 {
		return nil
	}
	return m.symbols[:len(m.symbols)-1]
}
