package bitseq

import "strings"

// String renders the sequence as '0'/'1' characters, lowest index first.
func (s *sequence[B]) String() string {
	var b strings.Builder
	b.Grow(int(s.Len()))
	for i := uint64(0); i < s.Len(); i++ {
		if s.Test(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// FromString creates a fixed-length sequence with one bit per character of
// str, lowest index first; '1' marks a set bit.
func FromString[B Block](str string) *Set[B] {
	return FromStringChar[B](str, '1')
}

// FromStringChar is FromString with a custom set character. Every other
// character reads as clear.
func FromStringChar[B Block](str string, set byte) *Set[B] {
	s := New[B](uint64(len(str)))
	for i := 0; i < len(str); i++ {
		if str[i] == set {
			s.Set(uint64(i))
		}
	}
	return s
}
