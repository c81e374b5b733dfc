package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/symsel/pkg/catalog"
	"github.com/walteh/symsel/pkg/symtag"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		entries  []catalog.Entry
		wantErrs []string
	}{
		{
			name: "valid",
			entries: []catalog.Entry{
				{'█', symtag.Block | symtag.Solid},
				{'─', symtag.Border},
			},
		},
		{
			name:    "empty is valid",
			entries: nil,
		},
		{
			name: "zero codepoint",
			entries: []catalog.Entry{
				{0, symtag.Block},
			},
			wantErrs: []string{"codepoint must be nonzero"},
		},
		{
			name: "untagged entry",
			entries: []catalog.Entry{
				{'█', symtag.None},
			},
			wantErrs: []string{"no tags"},
		},
		{
			name: "duplicate codepoint",
			entries: []catalog.Entry{
				{'█', symtag.Block},
				{'█', symtag.Solid},
			},
			wantErrs: []string{"duplicate"},
		},
		{
			name: "all violations reported together",
			entries: []catalog.Entry{
				{0, symtag.Block},
				{'─', symtag.None},
				{'─', symtag.Border},
			},
			wantErrs: []string{"codepoint must be nonzero", "no tags", "duplicate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.New(tt.entries)
			if len(tt.wantErrs) > 0 {
				require.Error(t, err)
				for _, want := range tt.wantErrs {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.entries), c.Len())
		})
	}
}

func TestMatching(t *testing.T) {
	c, err := catalog.New([]catalog.Entry{
		{'█', symtag.Block | symtag.Solid},
		{'▌', symtag.Block | symtag.HHalf},
		{'─', symtag.Border},
		{'╱', symtag.Border | symtag.Diagonal},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		tags symtag.Tag
		want []int
	}{
		{name: "single tag", tags: symtag.Border, want: []int{2, 3}},
		{name: "intersection not subset", tags: symtag.Solid | symtag.Diagonal, want: []int{0, 3}},
		{name: "all", tags: symtag.All, want: []int{0, 1, 2, 3}},
		{name: "none matches nothing", tags: symtag.None, want: nil},
		{name: "absent tag", tags: symtag.Braille, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Matching(tt.tags))
		})
	}
}

func TestAt(t *testing.T) {
	c, err := catalog.New([]catalog.Entry{
		{'█', symtag.Block | symtag.Solid},
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.Entry{'█', symtag.Block | symtag.Solid}, c.At(0))
}

func TestBuiltin(t *testing.T) {
	c := catalog.Builtin()
	require.NotNil(t, c)
	assert.Same(t, c, catalog.Builtin(), "builtin catalog is built once")

	// Validation already guarantees unique, nonzero codepoints; spot-check
	// the classification.
	assert.NotEmpty(t, c.Matching(symtag.Space))
	assert.NotEmpty(t, c.Matching(symtag.Solid))
	assert.NotEmpty(t, c.Matching(symtag.Quad))
	assert.NotEmpty(t, c.Matching(symtag.Diagonal))
	assert.Len(t, c.Matching(symtag.Braille), 256)

	solid := c.Matching(symtag.Solid)
	require.Len(t, solid, 1)
	assert.Equal(t, '█', c.At(solid[0]).Codepoint)

	halves := c.Matching(symtag.Half)
	require.Len(t, halves, 4)
	for _, i := range halves {
		assert.Contains(t, []rune{'▀', '▄', '▌', '▐'}, c.At(i).Codepoint)
	}
}
