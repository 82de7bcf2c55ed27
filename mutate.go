package fstring

// All growing operations saturate: they store what fits below capacity,
// drop the remainder and report the count actually stored. None of them
// ever touch the slot past Cap().

// Append appends units, truncating to available space.
// It returns the number of units appended.
func (s *String[C, A]) Append(units ...C) int {
	b := s.cells()
	count := min(len(units), len(b)-1-s.n)
	copy(b[s.n:s.n+count], units[:count])
	s.n += count
	return count
}

// AppendString appends str, truncating to available space, and returns the
// number of units appended. Byte-width units copy str byte for byte; wider
// units take one unit per decoded rune.
func (s *String[C, A]) AppendString(str string) int {
	b := s.cells()
	capacity := len(b) - 1
	count := 0
	if unitSize[C]() == 1 {
		for i := 0; i < len(str) && s.n < capacity; i++ {
			b[s.n] = C(str[i])
			s.n++
			count++
		}
		return count
	}
	for _, r := range str {
		if s.n >= capacity {
			break
		}
		b[s.n] = C(r)
		s.n++
		count++
	}
	return count
}

// AppendRepeat appends count copies of u, truncating to available space,
// and returns the number of units appended.
func (s *String[C, A]) AppendRepeat(count int, u C) int {
	b := s.cells()
	count = min(count, len(b)-1-s.n)
	if count < 0 {
		return 0
	}
	for i := 0; i < count; i++ {
		b[s.n+i] = u
	}
	s.n += count
	return count
}

// Push appends a single unit. It reports whether the unit fit.
func (s *String[C, A]) Push(u C) bool {
	b := s.cells()
	if s.n >= len(b)-1 {
		return false
	}
	b[s.n] = u
	s.n++
	return true
}

// Pop removes the last unit. It reports whether anything was removed;
// popping an empty string is a no-op.
func (s *String[C, A]) Pop() bool {
	if s.n == 0 {
		return false
	}
	s.n--
	var zero C
	s.cells()[s.n] = zero
	return true
}

// Insert inserts units at index, shifting the tail right. The insertion is
// clamped to the space between index and capacity; shifted tail units that
// would land past capacity are dropped. Inserting past Len() is a no-op.
// It returns the number of units inserted.
func (s *String[C, A]) Insert(index int, units ...C) int {
	if index < 0 || index > s.n {
		return 0
	}
	b := s.cells()
	capacity := len(b) - 1
	ins := min(len(units), capacity-index)
	if ins == 0 {
		return 0
	}
	// Clamp the shifted region so it is never computed as if capacity
	// were unbounded.
	move := min(s.n-index, capacity-index-ins)
	copy(b[index+ins:index+ins+move], b[index:index+move])
	copy(b[index:index+ins], units[:ins])
	s.n = index + ins + move
	return ins
}

// InsertString inserts str at index with Insert semantics and returns the
// number of units inserted.
func (s *String[C, A]) InsertString(index int, str string) int {
	var tmp String[C, A]
	tmp.AppendString(str)
	return s.Insert(index, tmp.Units()...)
}

// Erase removes up to count units starting at index, shifting the tail
// left. A negative count removes everything from index on. Erasing at or
// past Len() is a no-op. It returns the number of units removed.
func (s *String[C, A]) Erase(index, count int) int {
	if index < 0 || index >= s.n {
		return 0
	}
	rest := s.n - index
	if count < 0 || count > rest {
		count = rest
	}
	if count == 0 {
		return 0
	}
	b := s.cells()
	copy(b[index:], b[index+count:s.n])
	clear(b[s.n-count : s.n])
	s.n -= count
	return count
}

// Replace removes count units at index and inserts units in their place,
// with the same saturating behavior as Erase followed by Insert.
// It returns the number of units inserted.
func (s *String[C, A]) Replace(index, count int, units []C) int {
	if index < 0 || index > s.n {
		return 0
	}
	s.Erase(index, count)
	return s.Insert(index, units...)
}

// Resize sets the length to size, clamped to capacity. Growing fills the
// new tail with fill; shrinking truncates.
func (s *String[C, A]) Resize(size int, fill C) {
	b := s.cells()
	size = min(size, len(b)-1)
	if size < 0 {
		size = 0
	}
	if size > s.n {
		for i := s.n; i < size; i++ {
			b[i] = fill
		}
	} else {
		clear(b[size:s.n])
	}
	s.n = size
}

// Truncate shrinks the string to size units. Larger sizes are a no-op.
func (s *String[C, A]) Truncate(size int) {
	if size < 0 {
		size = 0
	}
	if size >= s.n {
		return
	}
	clear(s.cells()[size:s.n])
	s.n = size
}

// Swap exchanges the contents of two same-type strings.
func (s *String[C, A]) Swap(other *String[C, A]) {
	*s, *other = *other, *s
}
