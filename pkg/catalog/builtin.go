package catalog

import (
	"sync"

	"github.com/walteh/symsel/pkg/symtag"
)

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the default symbol catalog: block elements, halves,
// quadrants, shades, borders, diagonals, dots and the braille patterns.
// It is built once and shared for the life of the process.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := New(builtinEntries())
		if err != nil {
			// The builtin table is static; failing validation is a defect.
			panic(err)
		}
		builtin = c
	})
	return builtin
}

func builtinEntries() []Entry {
	entries := []Entry{
		{' ', symtag.Space},

		// Block elements, U+2580..U+2595. Each complementary pair has
		// exactly one member tagged inverted.
		{'▀', symtag.Block | symtag.VHalf | symtag.Inverted}, // upper half
		{'▁', symtag.Block},                                  // lower one eighth
		{'▂', symtag.Block},                                  // lower one quarter
		{'▃', symtag.Block},                                  // lower three eighths
		{'▄', symtag.Block | symtag.VHalf},                   // lower half
		{'▅', symtag.Block},                                  // lower five eighths
		{'▆', symtag.Block},                                  // lower three quarters
		{'▇', symtag.Block},                                  // lower seven eighths
		{'█', symtag.Block | symtag.Solid},                   // full block
		{'▉', symtag.Block},                                  // left seven eighths
		{'▊', symtag.Block},                                  // left three quarters
		{'▋', symtag.Block},                                  // left five eighths
		{'▌', symtag.Block | symtag.HHalf},                   // left half
		{'▍', symtag.Block},                                  // left three eighths
		{'▎', symtag.Block},                                  // left one quarter
		{'▏', symtag.Block},                                  // left one eighth
		{'▐', symtag.Block | symtag.HHalf | symtag.Inverted}, // right half
		{'░', symtag.Stipple},                                // light shade
		{'▒', symtag.Stipple},                                // medium shade
		{'▓', symtag.Stipple},                                // dark shade
		{'▔', symtag.Block | symtag.Inverted},                // upper one eighth
		{'▕', symtag.Block | symtag.Inverted},                // right one eighth

		// Quadrants, U+2596..U+259F. Three-cell shapes invert one-cell ones.
		{'▖', symtag.Block | symtag.Quad},                   // lower left
		{'▗', symtag.Block | symtag.Quad},                   // lower right
		{'▘', symtag.Block | symtag.Quad},                   // upper left
		{'▙', symtag.Block | symtag.Quad | symtag.Inverted}, // all but upper right
		{'▚', symtag.Block | symtag.Quad},                   // upper left + lower right
		{'▛', symtag.Block | symtag.Quad | symtag.Inverted}, // all but lower right
		{'▜', symtag.Block | symtag.Quad | symtag.Inverted}, // all but lower left
		{'▝', symtag.Block | symtag.Quad},                   // upper right
		{'▞', symtag.Block | symtag.Quad | symtag.Inverted}, // upper right + lower left
		{'▟', symtag.Block | symtag.Quad | symtag.Inverted}, // all but upper left

		// Box drawing.
		{'─', symtag.Border},
		{'│', symtag.Border},
		{'┌', symtag.Border},
		{'┐', symtag.Border},
		{'└', symtag.Border},
		{'┘', symtag.Border},
		{'├', symtag.Border},
		{'┤', symtag.Border},
		{'┬', symtag.Border},
		{'┴', symtag.Border},
		{'┼', symtag.Border},
		{'╴', symtag.Border},
		{'╵', symtag.Border},
		{'╶', symtag.Border},
		{'╷', symtag.Border},
		{'╱', symtag.Border | symtag.Diagonal},
		{'╲', symtag.Border | symtag.Diagonal},
		{'╳', symtag.Border | symtag.Diagonal},

		// Isolated dots.
		{'·', symtag.Dot}, // middle dot
		{'•', symtag.Dot}, // bullet
		{'▪', symtag.Dot}, // black small square
	}

	// Braille patterns U+2800..U+28FF.
	for r := rune(0x2800); r <= 0x28ff; r++ {
		entries = append(entries, Entry{r, symtag.Braille})
	}

	return entries
}
