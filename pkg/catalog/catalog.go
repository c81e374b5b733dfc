// Package catalog holds the immutable universe of selectable symbols. Each
// entry pairs a Unicode codepoint with the category tags it was classified
// under. A catalog is constructed once, validated, and never mutated; symbol
// maps reference entries by catalog index.
package catalog

import (
	"github.com/hashicorp/go-multierror"
	"github.com/walteh/symsel/pkg/symtag"
	"gitlab.com/tozd/go/errors"
)

// Entry is one selectable symbol. The zero Entry is the sentinel that
// terminates entry sequences.
type Entry struct {
	Codepoint rune
	Tags      symtag.Tag
}

// Catalog is a fixed, ordered sequence of symbol entries. Safe for concurrent
// reads; there is no mutation after New returns.
type Catalog struct {
	// entries is terminated by a sentinel zero entry.
	entries []Entry
}

// New builds a catalog from the given entries. Every entry must have a
// nonzero codepoint and at least one tag, and codepoints must be unique.
// All violations are reported together, not just the first.
func New(entries []Entry) (*Catalog, error) {
	var result *multierror.Error
	seen := make(map[rune]int, len(entries))

	for i, e := range entries {
		if e.Codepoint == 0 {
			result = multierror.Append(result,
				errors.Errorf("entry %d: codepoint must be nonzero", i))
			continue
		}
		if e.Tags == symtag.None {
			result = multierror.Append(result,
				errors.Errorf("entry %d (U+%04X): no tags", i, e.Codepoint))
		}
		if prev, ok := seen[e.Codepoint]; ok {
			result = multierror.Append(result,
				errors.Errorf("entry %d (U+%04X): duplicate of entry %d", i, e.Codepoint, prev))
			continue
		}
		seen[e.Codepoint] = i
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Errorf("invalid symbol catalog: %w", err)
	}

	c := &Catalog{entries: make([]Entry, len(entries)+1)}
	copy(c.entries, entries)
	return c, nil
}

// Len returns the number of entries, excluding the sentinel.
func (c *Catalog) Len() int {
	return len(c.entries) - 1
}

// At returns the entry at index i. Indices handed out by Matching are always
// valid; anything else is the caller's contract to uphold.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Matching returns the indices of every entry whose tags intersect tags. The
// catalog is small and static, so each call scans it in full rather than
// consulting a prebuilt index.
func (c *Catalog) Matching(tags symtag.Tag) []int {
	var indices []int
	for i := 0; c.entries[i].Codepoint != 0; i++ {
		if c.entries[i].Tags&tags != 0 {
			indices = append(indices, i)
		}
	}
	return indices
}
