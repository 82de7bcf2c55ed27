package fstring

// Compare orders a and b lexicographically by unit value over the shared
// prefix, with length as the tie-break (shorter sorts first). The two
// strings may have different capacities. The result is -1, 0 or +1.
func Compare[C Unit, A1, A2 any](a *String[C, A1], b *String[C, A2]) int {
	return compareUnits(a.Units(), b.Units())
}

// Equal reports whether a and b hold identical content, regardless of
// capacity.
func Equal[C Unit, A1, A2 any](a *String[C, A1], b *String[C, A2]) bool {
	return Compare(a, b) == 0
}

// CompareUnits orders the content against a raw unit slice with Compare
// semantics.
func (s *String[C, A]) CompareUnits(other []C) int {
	return compareUnits(s.Units(), other)
}

// EqualUnits reports whether the content equals a raw unit slice.
func (s *String[C, A]) EqualUnits(other []C) bool {
	return compareUnits(s.Units(), other) == 0
}

// EqualString reports whether the content equals str, without converting
// the content to a heap string. Wider units compare rune by rune.
func (s *String[C, A]) EqualString(str string) bool {
	b := s.cells()[:s.n]
	if unitSize[C]() == 1 {
		if len(b) != len(str) {
			return false
		}
		for i := range b {
			if byte(b[i]) != str[i] {
				return false
			}
		}
		return true
	}
	i := 0
	for _, r := range str {
		if i >= len(b) || rune(b[i]) != r {
			return false
		}
		i++
	}
	return i == len(b)
}

func compareUnits[C Unit](a, b []C) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
