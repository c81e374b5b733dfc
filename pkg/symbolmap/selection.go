package symbolmap

import "math/bits"

// symbolSet is a set of catalog indices. The index domain is small and dense,
// so a bitset beats hashing and makes clones a single allocation.
type symbolSet struct {
	words []uint64
	count int
}

func newSymbolSet() *symbolSet {
	return &symbolSet{}
}

func (s *symbolSet) add(i int) {
	w := i >> 6
	for w >= len(s.words) {
		s.words = append(s.words, 0)
	}
	mask := uint64(1) << (uint(i) & 63)
	if s.words[w]&mask == 0 {
		s.words[w] |= mask
		s.count++
	}
}

func (s *symbolSet) remove(i int) {
	w := i >> 6
	if w >= len(s.words) {
		return
	}
	mask := uint64(1) << (uint(i) & 63)
	if s.words[w]&mask != 0 {
		s.words[w] &^= mask
		s.count--
	}
}

func (s *symbolSet) has(i int) bool {
	w := i >> 6
	return w < len(s.words) && s.words[w]&(1<<(uint(i)&63)) != 0
}

func (s *symbolSet) len() int {
	return s.count
}

func (s *symbolSet) clone() *symbolSet {
	dup := &symbolSet{count: s.count}
	if len(s.words) > 0 {
		dup.words = make([]uint64, len(s.words))
		copy(dup.words, s.words)
	}
	return dup
}

// each calls fn for every member in ascending index order.
func (s *symbolSet) each(fn func(i int)) {
	for w, word := range s.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			fn(w<<6 + bit)
			word &^= 1 << uint(bit)
		}
	}
}
