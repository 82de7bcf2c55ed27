// Package textops provides derived text algorithms over fixed-capacity
// strings: case mapping, trimming, splitting, joining, padding, replacement
// and character-class checks.
//
// Everything here is a pure function layered on the public fstring contract:
// inputs are never mutated and results come back as fresh values. Where a
// result can be larger than its input (Join, ReplaceAll, RepeatStr, Substr)
// the caller picks the output capacity with an explicit array type argument.
package textops

import (
	"github.com/rawbytedev/fstring"
	"github.com/rawbytedev/fstring/internal/chars"
)

// ToUpper returns s with ASCII lowercase letters mapped to uppercase.
// Units outside 'a'..'z' pass through unchanged.
func ToUpper[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	var out fstring.String[C, A]
	for _, u := range s.Units() {
		out.Push(chars.ToUpper(u))
	}
	return out
}

// ToLower returns s with ASCII uppercase letters mapped to lowercase.
func ToLower[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	var out fstring.String[C, A]
	for _, u := range s.Units() {
		out.Push(chars.ToLower(u))
	}
	return out
}

// ToTitle uppercases the first letter of every whitespace-separated word
// and lowercases the rest.
func ToTitle[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	var out fstring.String[C, A]
	newWord := true
	for _, u := range s.Units() {
		switch {
		case chars.IsSpace(u):
			newWord = true
			out.Push(u)
		case newWord:
			out.Push(chars.ToUpper(u))
			newWord = false
		default:
			out.Push(chars.ToLower(u))
		}
	}
	return out
}

// TrimLeft returns s without leading whitespace (space, tab, newline,
// carriage return).
func TrimLeft[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	us := s.Units()
	start := 0
	for start < len(us) && chars.IsSpace(us[start]) {
		start++
	}
	return fstring.FromUnits[A](us[start:])
}

// TrimRight returns s without trailing whitespace.
func TrimRight[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	us := s.Units()
	end := len(us)
	for end > 0 && chars.IsSpace(us[end-1]) {
		end--
	}
	return fstring.FromUnits[A](us[:end])
}

// Trim returns s without leading or trailing whitespace.
func Trim[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	us := s.Units()
	start := 0
	for start < len(us) && chars.IsSpace(us[start]) {
		start++
	}
	end := len(us)
	for end > start && chars.IsSpace(us[end-1]) {
		end--
	}
	return fstring.FromUnits[A](us[start:end])
}

// Split splits s on delim. Empty segments are dropped: delimiter runs,
// leading and trailing delimiters produce nothing, so "a,,b" splits into
// exactly {"a", "b"}.
func Split[C fstring.Unit, A any](s *fstring.String[C, A], delim C) []fstring.String[C, A] {
	return SplitN(s, delim, -1)
}

// SplitN is Split with an upper bound on the number of segments; scanning
// stops once max segments have been emitted. max <= 0 means no bound.
func SplitN[C fstring.Unit, A any](s *fstring.String[C, A], delim C, max int) []fstring.String[C, A] {
	var parts []fstring.String[C, A]
	var cur fstring.String[C, A]
	for _, u := range s.Units() {
		if max > 0 && len(parts) >= max {
			return parts
		}
		if u == delim {
			if !cur.Empty() {
				parts = append(parts, cur)
				cur.Clear()
			}
		} else {
			cur.Push(u)
		}
	}
	if !cur.Empty() && (max <= 0 || len(parts) < max) {
		parts = append(parts, cur)
	}
	return parts
}

// Join concatenates parts with delim between each pair, never before the
// first or after the last, into a string of caller-chosen capacity.
func Join[AOut any, C fstring.Unit, A any](parts []fstring.String[C, A], delim C) fstring.String[C, AOut] {
	var out fstring.String[C, AOut]
	for i := range parts {
		if i > 0 {
			out.Push(delim)
		}
		out.Append(parts[i].Units()...)
	}
	return out
}

// JoinSeq is Join with a multi-unit delimiter.
func JoinSeq[AOut any, C fstring.Unit, A any](parts []fstring.String[C, A], delim []C) fstring.String[C, AOut] {
	var out fstring.String[C, AOut]
	for i := range parts {
		if i > 0 {
			out.Append(delim...)
		}
		out.Append(parts[i].Units()...)
	}
	return out
}

// PadLeft left-pads s with fill up to width. Content already at or past
// width comes back unchanged.
func PadLeft[C fstring.Unit, A any](s *fstring.String[C, A], width int, fill C) fstring.String[C, A] {
	if s.Len() >= width {
		return *s
	}
	var out fstring.String[C, A]
	out.AppendRepeat(width-s.Len(), fill)
	out.Append(s.Units()...)
	return out
}

// PadRight right-pads s with fill up to width.
func PadRight[C fstring.Unit, A any](s *fstring.String[C, A], width int, fill C) fstring.String[C, A] {
	out := *s
	out.AppendRepeat(width-s.Len(), fill)
	return out
}

// Center pads s on both sides up to width; an odd remainder puts the extra
// fill unit on the right. Content already at or past width comes back
// verbatim.
func Center[C fstring.Unit, A any](s *fstring.String[C, A], width int, fill C) fstring.String[C, A] {
	if s.Len() >= width {
		return *s
	}
	total := width - s.Len()
	left := total / 2
	var out fstring.String[C, A]
	out.AppendRepeat(left, fill)
	out.Append(s.Units()...)
	out.AppendRepeat(total-left, fill)
	return out
}

// ReplaceUnit returns s with every occurrence of from replaced by to.
func ReplaceUnit[C fstring.Unit, A any](s *fstring.String[C, A], from, to C) fstring.String[C, A] {
	var out fstring.String[C, A]
	for _, u := range s.Units() {
		if u == from {
			out.Push(to)
		} else {
			out.Push(u)
		}
	}
	return out
}

// ReplaceAll returns s with every occurrence of from replaced by to, built
// into a caller-chosen capacity since the result may outgrow the input.
// An empty from returns the content unchanged.
func ReplaceAll[AOut any, C fstring.Unit, A any](s *fstring.String[C, A], from, to []C) fstring.String[C, AOut] {
	var out fstring.String[C, AOut]
	if len(from) == 0 {
		out.Append(s.Units()...)
		return out
	}
	us := s.Units()
	pos := 0
	for pos < len(us) {
		found := s.IndexFrom(from, pos)
		if found < 0 {
			out.Append(us[pos:]...)
			break
		}
		out.Append(us[pos:found]...)
		out.Append(to...)
		pos = found + len(from)
	}
	return out
}

// Reverse returns s with its units in reverse order.
func Reverse[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	var out fstring.String[C, A]
	us := s.Units()
	for i := len(us); i > 0; i-- {
		out.Push(us[i-1])
	}
	return out
}

// RepeatStr concatenates s with itself times times into a caller-chosen
// capacity, truncating once the output fills up.
func RepeatStr[AOut any, C fstring.Unit, A any](s *fstring.String[C, A], times int) fstring.String[C, AOut] {
	var out fstring.String[C, AOut]
	for i := 0; i < times && !out.Full(); i++ {
		out.Append(s.Units()...)
	}
	return out
}

// Remove returns s without any occurrence of u.
func Remove[C fstring.Unit, A any](s *fstring.String[C, A], u C) fstring.String[C, A] {
	var out fstring.String[C, A]
	for _, c := range s.Units() {
		if c != u {
			out.Push(c)
		}
	}
	return out
}

// RemoveWhitespace returns s without any whitespace units.
func RemoveWhitespace[C fstring.Unit, A any](s *fstring.String[C, A]) fstring.String[C, A] {
	var out fstring.String[C, A]
	for _, c := range s.Units() {
		if !chars.IsSpace(c) {
			out.Push(c)
		}
	}
	return out
}

// Count returns the number of occurrences of u in s.
func Count[C fstring.Unit, A any](s *fstring.String[C, A], u C) int {
	return s.CountUnit(u)
}

// IsAlpha reports whether s is non-empty and all ASCII letters.
func IsAlpha[C fstring.Unit, A any](s *fstring.String[C, A]) bool {
	if s.Empty() {
		return false
	}
	for _, u := range s.Units() {
		if !chars.IsAlpha(u) {
			return false
		}
	}
	return true
}

// IsDigit reports whether s is non-empty and all ASCII decimal digits.
func IsDigit[C fstring.Unit, A any](s *fstring.String[C, A]) bool {
	if s.Empty() {
		return false
	}
	for _, u := range s.Units() {
		if !chars.IsDigit(u) {
			return false
		}
	}
	return true
}

// IsAlnum reports whether s is non-empty and all ASCII letters or digits.
func IsAlnum[C fstring.Unit, A any](s *fstring.String[C, A]) bool {
	if s.Empty() {
		return false
	}
	for _, u := range s.Units() {
		if !chars.IsAlpha(u) && !chars.IsDigit(u) {
			return false
		}
	}
	return true
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// The inputs may have different capacities.
func EqualFold[C fstring.Unit, A1, A2 any](a *fstring.String[C, A1], b *fstring.String[C, A2]) bool {
	if a.Len() != b.Len() {
		return false
	}
	au, bu := a.Units(), b.Units()
	for i := range au {
		if chars.ToLower(au[i]) != chars.ToLower(bu[i]) {
			return false
		}
	}
	return true
}
