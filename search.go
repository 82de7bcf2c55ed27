package fstring

// Searches report positions as plain ints with -1 meaning "not found".

// Index returns the index of the first occurrence of needle, or -1.
// An empty needle matches at 0.
func (s *String[C, A]) Index(needle []C) int {
	return s.IndexFrom(needle, 0)
}

// IndexFrom returns the index of the first occurrence of needle at or after
// from, or -1. An empty needle matches at from, or fails when from > Len().
func (s *String[C, A]) IndexFrom(needle []C, from int) int {
	if from < 0 {
		from = 0
	}
	if from > s.n {
		return -1
	}
	if len(needle) == 0 {
		return from
	}
	b := s.cells()[:s.n]
	for i := from; i+len(needle) <= len(b); i++ {
		if b[i] != needle[0] {
			continue
		}
		j := 1
		for j < len(needle) && b[i+j] == needle[j] {
			j++
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}

// IndexUnit returns the index of the first occurrence of u, or -1.
func (s *String[C, A]) IndexUnit(u C) int {
	return s.IndexUnitFrom(u, 0)
}

// IndexUnitFrom returns the index of the first occurrence of u at or after
// from, or -1.
func (s *String[C, A]) IndexUnitFrom(u C, from int) int {
	if from < 0 {
		from = 0
	}
	b := s.cells()[:s.n]
	for i := from; i < len(b); i++ {
		if b[i] == u {
			return i
		}
	}
	return -1
}

// LastIndexUnit returns the index of the last occurrence of u, or -1.
func (s *String[C, A]) LastIndexUnit(u C) int {
	return s.LastIndexUnitFrom(u, s.n-1)
}

// LastIndexUnitFrom scans backward from min(from, Len()-1) and returns the
// index of the first occurrence of u found, or -1.
func (s *String[C, A]) LastIndexUnitFrom(u C, from int) int {
	if from >= s.n {
		from = s.n - 1
	}
	b := s.cells()
	for i := from; i >= 0; i-- {
		if b[i] == u {
			return i
		}
	}
	return -1
}

// Contains reports whether needle occurs in the content.
func (s *String[C, A]) Contains(needle []C) bool {
	return s.Index(needle) >= 0
}

// ContainsUnit reports whether u occurs in the content.
func (s *String[C, A]) ContainsUnit(u C) bool {
	return s.IndexUnit(u) >= 0
}

// HasPrefix reports whether the content starts with prefix.
func (s *String[C, A]) HasPrefix(prefix []C) bool {
	if len(prefix) > s.n {
		return false
	}
	b := s.cells()
	for i, u := range prefix {
		if b[i] != u {
			return false
		}
	}
	return true
}

// HasSuffix reports whether the content ends with suffix.
func (s *String[C, A]) HasSuffix(suffix []C) bool {
	if len(suffix) > s.n {
		return false
	}
	b := s.cells()
	off := s.n - len(suffix)
	for i, u := range suffix {
		if b[off+i] != u {
			return false
		}
	}
	return true
}

// CountUnit returns the number of occurrences of u in the content.
func (s *String[C, A]) CountUnit(u C) int {
	count := 0
	for _, c := range s.cells()[:s.n] {
		if c == u {
			count++
		}
	}
	return count
}
