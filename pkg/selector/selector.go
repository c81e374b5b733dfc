// Package selector parses the symbol selection mini-language: tag names
// separated by runs of spaces and commas, each optionally signed. "+tag" adds
// matching symbols, "-tag" removes them, and a bare tag before any sign has
// appeared starts the selection over from scratch.
//
// Parsing is pure; applying the resulting clauses to a symbol map happens in
// pkg/symbolmap, which is what gives selector application its all-or-nothing
// behavior.
package selector

import (
	"github.com/walteh/symsel/pkg/symtag"
	"gitlab.com/tozd/go/errors"
)

// Op is what a clause does to the selection under construction.
type Op int

const (
	// OpReset discards the selection built so far and starts a fresh, empty
	// one containing only the clause's matching symbols.
	OpReset Op = iota
	// OpAdd inserts matching symbols.
	OpAdd
	// OpRemove removes matching symbols.
	OpRemove
)

// Clause is one parsed step of a selector string.
type Clause struct {
	Op  Op
	Tag symtag.Tag
	// Raw is the tag name as written, for diagnostics.
	Raw string
}

// ErrSyntax is returned when a sign or clause position is not followed by a
// valid tag name token.
var ErrSyntax = errors.New("syntax error in symbol tag selectors")

// Parse translates a selector string into its clause sequence.
//
// The +/- signs set a sticky mode: a bare tag after an explicit sign continues
// in that mode, while a bare tag before any sign resets the selection. Spaces
// between a sign and its tag name are skipped. The first invalid token aborts
// the parse.
func Parse(input string) ([]Clause, error) {
	var clauses []Clause
	var mode Op // zero value OpReset means no explicit mode yet

	i := 0
	for i < len(input) {
		// Clauses are separated by any run of spaces and commas.
		for i < len(input) && (input[i] == ' ' || input[i] == ',') {
			i++
		}
		if i == len(input) {
			break
		}

		switch input[i] {
		case '-':
			mode = OpRemove
			i++
		case '+':
			mode = OpAdd
			i++
		}

		// Whitespace between a sign and its tag name is permitted.
		for i < len(input) && input[i] == ' ' {
			i++
		}

		start := i
		for i < len(input) && isASCIILetter(input[i]) {
			i++
		}
		if i == start {
			return nil, errors.WithStack(ErrSyntax)
		}

		name := input[start:i]
		tag, err := symtag.Parse(name)
		if err != nil {
			return nil, err
		}

		op := mode
		if mode == OpReset {
			// No sign seen yet: this clause starts the selection over, and
			// subsequent bare tags continue adding.
			mode = OpAdd
		}
		clauses = append(clauses, Clause{Op: op, Tag: tag, Raw: name})
	}

	return clauses, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
