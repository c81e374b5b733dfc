// Package symtag defines the fixed vocabulary of symbol category tags used to
// classify catalog entries and to drive bulk selection.
package symtag

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Tag is a set of symbol category flags. Combine with bitwise OR, test with
// bitwise AND.
type Tag uint32

const (
	// Space matches the space symbol.
	Space Tag = 1 << iota
	// Solid matches solid fill symbols (the inverse of space).
	Solid
	// Stipple matches stipple/shade symbols.
	Stipple
	// Block matches block element symbols.
	Block
	// Border matches border drawing symbols.
	Border
	// Diagonal matches diagonal border symbols.
	Diagonal
	// Dot matches symbols that look like isolated dots (excluding braille).
	Dot
	// Quad matches quadrant block symbols.
	Quad
	// HHalf matches horizontal half block symbols.
	HHalf
	// VHalf matches vertical half block symbols.
	VHalf
	// Inverted matches symbols that are the inverse of simpler symbols. When
	// two symbols complement each other, only one carries this tag.
	Inverted
	// Braille matches braille pattern symbols.
	Braille
)

const (
	// None matches no symbols.
	None Tag = 0
	// Half is the joint set of horizontal and vertical halves.
	Half = HHalf | VHalf
	// All matches every supported symbol.
	All = Space | Solid | Stipple | Block | Border | Diagonal | Dot | Quad |
		Half | Inverted | Braille
)

// ErrUnrecognizedTag is returned by Parse for names outside the vocabulary.
var ErrUnrecognizedTag = errors.New("unrecognized symbol tag")

// vocabulary maps selector names to tag values. Order is the order tags are
// listed to users.
var vocabulary = []struct {
	name string
	tag  Tag
}{
	{"all", All},
	{"none", None},
	{"space", Space},
	{"solid", Solid},
	{"stipple", Stipple},
	{"block", Block},
	{"border", Border},
	{"diagonal", Diagonal},
	{"dot", Dot},
	{"quad", Quad},
	{"half", Half},
	{"hhalf", HHalf},
	{"vhalf", VHalf},
	{"inverted", Inverted},
	{"braille", Braille},
}

// Parse resolves a tag name to its Tag value. Matching is case-insensitive
// and exact; a name outside the vocabulary is an error, not a no-op.
func Parse(name string) (Tag, error) {
	for _, m := range vocabulary {
		if strings.EqualFold(m.name, name) {
			return m.tag, nil
		}
	}
	return None, errors.Errorf("%w '%s'", ErrUnrecognizedTag, name)
}

// Names returns the selector vocabulary in listing order.
func Names() []string {
	names := make([]string, len(vocabulary))
	for i, m := range vocabulary {
		names[i] = m.name
	}
	return names
}

// String renders the tag as a pipe-joined list of set bit names. Aggregate
// names (all, half) are not used; each set bit is listed individually.
func (t Tag) String() string {
	if t == None {
		return "none"
	}
	if t == All {
		return "all"
	}
	var parts []string
	for _, m := range vocabulary {
		// Skip aggregates and none; report single bits only.
		if m.tag == None || m.tag == All || m.tag == Half {
			continue
		}
		if t&m.tag != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, "|")
}
