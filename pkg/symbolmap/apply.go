package symbolmap

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/symsel/pkg/catalog"
	"github.com/walteh/symsel/pkg/selector"
	"github.com/walteh/symsel/pkg/symtag"
)

// ApplySelectors parses a selector string ("block,border",
// "+block,border-dot,stipple", ...) and applies it to the selection.
//
// Clauses work against a scratch copy snapshotted from the current selection
// on first need, so a relative selector starts from what is already selected;
// a reset clause swaps in a brand-new empty set instead. The scratch set is
// committed in one step only when the whole string parses, so a parse error
// leaves the selection untouched.
func (m *SymbolMap) ApplySelectors(ctx context.Context, selectors string) error {
	clauses, err := selector.Parse(selectors)
	if err != nil {
		return err
	}

	var scratch *symbolSet
	for _, cl := range clauses {
		switch cl.Op {
		case selector.OpReset:
			scratch = newSymbolSet()
			addMatching(scratch, m.cat, cl.Tag)
		case selector.OpAdd:
			if scratch == nil {
				scratch = m.desired.clone()
			}
			addMatching(scratch, m.cat, cl.Tag)
		case selector.OpRemove:
			if scratch == nil {
				scratch = m.desired.clone()
			}
			removeMatching(scratch, m.cat, cl.Tag)
		}
	}
	if scratch == nil {
		// No clauses at all clears the selection.
		scratch = newSymbolSet()
	}

	m.desired = scratch
	m.needRebuild = true

	zerolog.Ctx(ctx).Debug().
		Str("symbol_map", m.id.String()).
		Str("selectors", selectors).
		Int("clauses", len(clauses)).
		Int("selected", m.desired.len()).
		Msg("applied symbol selectors")

	return nil
}

func addMatching(set *symbolSet, cat *catalog.Catalog, tags symtag.Tag) {
	for _, i := range cat.Matching(tags) {
		set.add(i)
	}
}

func removeMatching(set *symbolSet, cat *catalog.Catalog, tags symtag.Tag) {
	for _, i := range cat.Matching(tags) {
		set.remove(i)
	}
}
