// Package fstring implements a fixed-capacity, inline-storage string type.
//
// A String carries its whole buffer inside the value: assignment is a deep
// copy, two values can never alias, and no operation allocates. Capacity is
// part of the type. Go cannot spell an integer type parameter, so the buffer
// is supplied as an array type argument with one extra slot for the
// terminator:
//
//	var name fstring.String[byte, [17]byte] // capacity 16
//	name.AppendString("hello")
//
// Capacity overflow never fails: every growing operation stores as much as
// fits, drops the rest and reports the count actually stored. The only hard
// error in the package is ErrIndexRange from checked element access.
package fstring

import (
	"errors"
	"unicode/utf16"
	"unsafe"

	"github.com/rawbytedev/fstring/internal/chars"
)

// Unit is the constraint on character unit types, re-exported so callers do
// not import internal packages.
type Unit = chars.Unit

// ErrIndexRange is returned by At and Set for indexes outside [0, Len()).
var ErrIndexRange = errors.New("fstring: index out of range")

// String is a fixed-capacity string of C units backed by the inline array
// type A. A must be an array [N]C with N >= 1; capacity is N-1 and the last
// slot always holds the zero terminator. The zero value is an empty string.
//
// Content slots beyond Len() are kept zeroed, so == on two same-type values
// and direct use as a map key agree with content equality.
type String[C Unit, A any] struct {
	buf A
	n   int
}

// Aliases for common byte-string sizes.
type (
	Str8   = String[byte, [9]byte]
	Str16  = String[byte, [17]byte]
	Str32  = String[byte, [33]byte]
	Str64  = String[byte, [65]byte]
	Str128 = String[byte, [129]byte]
	Str256 = String[byte, [257]byte]
)

// cells reinterprets the inline array as a []C spanning all Cap()+1 slots.
// Same aliasing trick the codec uses for primitive slices: the array is
// inline in the struct, so the view is valid for the lifetime of s.
func (s *String[C, A]) cells() []C {
	var u C
	total := unsafe.Sizeof(s.buf)
	unit := unsafe.Sizeof(u)
	if total < unit || total%unit != 0 {
		panic("fstring: buffer type parameter must be a [Capacity+1]unit array")
	}
	return unsafe.Slice((*C)(unsafe.Pointer(&s.buf)), int(total/unit))
}

// unitSize reports the byte width of one unit.
func unitSize[C Unit]() uintptr {
	var u C
	return unsafe.Sizeof(u)
}

// FromString builds a byte string from s, truncating to the capacity of A.
//
//	greeting := fstring.FromString[[17]byte]("hello world")
func FromString[A any](s string) String[byte, A] {
	var out String[byte, A]
	out.AppendString(s)
	return out
}

// FromUnits builds a string from a unit slice, truncating to capacity.
func FromUnits[A any, C Unit](src []C) String[C, A] {
	var out String[C, A]
	out.Append(src...)
	return out
}

// Repeat builds a string of count copies of u, truncating to capacity.
func Repeat[A any, C Unit](count int, u C) String[C, A] {
	var out String[C, A]
	out.AppendRepeat(count, u)
	return out
}

// Len returns the number of stored units, excluding the terminator.
func (s *String[C, A]) Len() int { return s.n }

// Cap returns the capacity in units, excluding the terminator slot.
func (s *String[C, A]) Cap() int { return len(s.cells()) - 1 }

// Available returns the number of units that can still be appended.
func (s *String[C, A]) Available() int { return s.Cap() - s.n }

// Full reports whether the string is at capacity.
func (s *String[C, A]) Full() bool { return s.n == s.Cap() }

// Empty reports whether the string holds no units.
func (s *String[C, A]) Empty() bool { return s.n == 0 }

// Clear removes all content and re-zeroes the buffer.
func (s *String[C, A]) Clear() {
	b := s.cells()
	clear(b[:s.n])
	s.n = 0
}

// Assign replaces the content with src, truncating to capacity.
// It returns the number of units stored.
func (s *String[C, A]) Assign(src []C) int {
	s.Clear()
	return s.Append(src...)
}

// AssignString replaces the content with str, truncating to capacity.
// It returns the number of units stored.
func (s *String[C, A]) AssignString(str string) int {
	s.Clear()
	return s.AppendString(str)
}

// At returns the unit at index i, or ErrIndexRange when i is outside
// [0, Len()). This is the only failing access path in the package.
func (s *String[C, A]) At(i int) (C, error) {
	if i < 0 || i >= s.n {
		var zero C
		return zero, ErrIndexRange
	}
	return s.cells()[i], nil
}

// Get returns the unit at index i without bounds checking against Len().
// The result is unspecified outside [0, Len()); use At when in doubt.
func (s *String[C, A]) Get(i int) C {
	return s.cells()[i]
}

// Set overwrites the unit at index i, or returns ErrIndexRange when i is
// outside [0, Len()).
func (s *String[C, A]) Set(i int, u C) error {
	if i < 0 || i >= s.n {
		return ErrIndexRange
	}
	s.cells()[i] = u
	return nil
}

// Front returns the first unit. The result is unspecified when empty.
func (s *String[C, A]) Front() C { return s.cells()[0] }

// Back returns the last unit. Panics when empty.
func (s *String[C, A]) Back() C { return s.cells()[s.n-1] }

// AppendTo appends the content units to dst and returns the extended slice.
// The result never aliases the internal buffer.
func (s *String[C, A]) AppendTo(dst []C) []C {
	return append(dst, s.cells()[:s.n]...)
}

// Units returns the content as a view aliasing the internal buffer.
// Callers may overwrite units in place but must not keep the slice across
// mutations that change Len().
func (s *String[C, A]) Units() []C {
	return s.cells()[:s.n]
}

// String converts the content to a heap string. Byte and rune units convert
// directly; uint16 units are decoded as UTF-16.
func (s *String[C, A]) String() string {
	content := s.cells()[:s.n]
	switch v := any(content).(type) {
	case []byte:
		return string(v)
	case []rune:
		return string(v)
	case []uint16:
		return string(utf16.Decode(v))
	}
	// Named unit types: convert unit by unit.
	out := make([]rune, len(content))
	for i, u := range content {
		out[i] = rune(u)
	}
	return string(out)
}
