package catalog

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/walteh/symsel/pkg/symtag"
	"gitlab.com/tozd/go/errors"
)

// Catalog file structure. Each symbol block is labeled with its codepoint,
// written either as "U+XXXX" or as the literal character:
//
//	symbol "U+2580" {
//	  tags = ["block", "vhalf", "inverted"]
//	}
type catalogFile struct {
	Symbols []symbolBlock `hcl:"symbol,block"`
}

type symbolBlock struct {
	Codepoint string   `hcl:"codepoint,label"`
	Tags      []string `hcl:"tags"`
}

// Load reads a user-defined symbol catalog from an HCL file. The resulting
// catalog is validated the same way as the builtin one.
func Load(fsys afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading catalog file: %w", err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing catalog file: %s", diags.Error())
	}

	var file catalogFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &file)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding catalog file: %s", diags.Error())
	}

	entries := make([]Entry, 0, len(file.Symbols))
	for _, sym := range file.Symbols {
		codepoint, err := parseCodepoint(sym.Codepoint)
		if err != nil {
			return nil, errors.Errorf("symbol %q: %w", sym.Codepoint, err)
		}

		var tags symtag.Tag
		for _, name := range sym.Tags {
			tag, err := symtag.Parse(name)
			if err != nil {
				return nil, errors.Errorf("symbol %q: %w", sym.Codepoint, err)
			}
			tags |= tag
		}

		entries = append(entries, Entry{Codepoint: codepoint, Tags: tags})
	}

	return New(entries)
}

// parseCodepoint accepts "U+XXXX" (hex, case-insensitive prefix) or a single
// literal character.
func parseCodepoint(s string) (rune, error) {
	if strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, errors.Errorf("invalid codepoint %q: %w", s, err)
		}
		return rune(v), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.Errorf("codepoint %q must be U+XXXX or a single character", s)
	}
	return r, nil
}
