// Package numconv converts numbers to and from fixed-capacity strings
// without allocating.
//
// Formatting produces byte strings (digits are ASCII); the caller picks the
// output capacity with an explicit array type argument, e.g.
// numconv.FormatInt[[24]byte](255, 16). Parsing is best effort by design:
// malformed or empty input yields zero, never an error, and digit scanning
// stops at the first unit that is not a valid digit in the requested base.
// Callers that need strict validation check the content first (textops
// IsDigit and friends).
package numconv

import (
	"math"

	"github.com/rawbytedev/fstring"
	"github.com/rawbytedev/fstring/internal/chars"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// FormatInt formats v in the given base (2..36, lowercase digits), with a
// leading '-' for negative values. Bases outside 2..36 fall back to 10.
func FormatInt[A any](v int64, base int) fstring.String[byte, A] {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return formatUint[A](u, base, neg)
}

// FormatUint formats v in the given base (2..36, lowercase digits).
// Bases outside 2..36 fall back to 10.
func FormatUint[A any](v uint64, base int) fstring.String[byte, A] {
	return formatUint[A](v, base, false)
}

func formatUint[A any](v uint64, base int, neg bool) fstring.String[byte, A] {
	if base < 2 || base > 36 {
		base = 10
	}
	var scratch [65]byte // worst case: 64 binary digits + sign
	i := len(scratch)
	for {
		i--
		scratch[i] = digits[v%uint64(base)]
		v /= uint64(base)
		if v == 0 {
			break
		}
	}
	if neg {
		i--
		scratch[i] = '-'
	}
	var out fstring.String[byte, A]
	out.Append(scratch[i:]...)
	return out
}

// FormatFloat formats v in fixed-point form with precision fractional
// digits. Fractional digits are produced by repeated multiply-and-truncate
// toward zero, not round-to-nearest: FormatFloat[...](0.999, 2) is "0.99".
// NaN formats as "nan" and infinities as "inf"/"-inf".
func FormatFloat[A any](v float64, precision int) fstring.String[byte, A] {
	var out fstring.String[byte, A]
	if math.IsNaN(v) {
		out.AppendString("nan")
		return out
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			out.Push('-')
		}
		out.AppendString("inf")
		return out
	}
	if v < 0 {
		out.Push('-')
		v = -v
	}
	ip := int64(v)
	whole := FormatUint[[21]byte](uint64(ip), 10)
	out.Append(whole.Units()...)
	if precision > 0 {
		out.Push('.')
		frac := v - float64(ip)
		for i := 0; i < precision && !out.Full(); i++ {
			frac *= 10
			d := int(frac)
			if d > 9 { // float error can push the scaled digit to 10
				d = 9
			}
			out.Push(byte('0' + d))
			frac -= float64(d)
		}
	}
	return out
}

// FormatFloatScientific formats v as mantissa and decimal exponent with an
// unpadded exponent, e.g. "1.50e+3". Mantissa digits follow FormatFloat
// truncation.
func FormatFloatScientific[A any](v float64, precision int) fstring.String[byte, A] {
	var out fstring.String[byte, A]
	if math.IsNaN(v) {
		out.AppendString("nan")
		return out
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			out.Push('-')
		}
		out.AppendString("inf")
		return out
	}
	if v < 0 {
		out.Push('-')
		v = -v
	}
	exp := 0
	if v != 0 {
		exp = int(math.Floor(math.Log10(v)))
		v /= math.Pow(10, float64(exp))
	}
	mant := FormatFloat[[64]byte](v, precision)
	out.Append(mant.Units()...)
	out.Push('e')
	if exp >= 0 {
		out.Push('+')
	}
	es := FormatInt[[21]byte](int64(exp), 10)
	out.Append(es.Units()...)
	return out
}

// FormatBool formats v as "true" or "false".
func FormatBool[A any](v bool) fstring.String[byte, A] {
	var out fstring.String[byte, A]
	if v {
		out.AppendString("true")
	} else {
		out.AppendString("false")
	}
	return out
}

// Hex formats v with a "0x" prefix. Negative values are formatted through
// their unsigned bit pattern by the caller converting to uint64.
func Hex[A any](v uint64, uppercase bool) fstring.String[byte, A] {
	var out fstring.String[byte, A]
	out.AppendString("0x")
	hex := digits
	if uppercase {
		hex = "0123456789ABCDEF"
	}
	var scratch [16]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = hex[v%16]
		v /= 16
		if v == 0 {
			break
		}
	}
	out.Append(scratch[i:]...)
	return out
}

// Binary formats v with a "0b" prefix.
func Binary[A any](v uint64) fstring.String[byte, A] {
	var out fstring.String[byte, A]
	out.AppendString("0b")
	var scratch [64]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + v%2)
		v /= 2
		if v == 0 {
			break
		}
	}
	out.Append(scratch[i:]...)
	return out
}

// PadInt formats v in base 10 left-padded with fill up to width.
func PadInt[A any](v int64, width int, fill byte) fstring.String[byte, A] {
	str := FormatInt[[21]byte](v, 10)
	var out fstring.String[byte, A]
	out.AppendRepeat(width-str.Len(), fill)
	out.Append(str.Units()...)
	return out
}

// ParseInt parses a signed integer in the given base (2..36; out-of-range
// bases fall back to 10). A leading '+' or '-' is honored, digit scanning
// stops at the first invalid unit, and malformed or empty input yields 0.
func ParseInt[C fstring.Unit, A any](s *fstring.String[C, A], base int) int64 {
	us := s.Units()
	i, neg := 0, false
	if i < len(us) {
		switch us[i] {
		case C('-'):
			neg = true
			i++
		case C('+'):
			i++
		}
	}
	v := parseDigits(us[i:], base)
	if neg {
		return -int64(v)
	}
	return int64(v)
}

// ParseUint parses an unsigned integer with ParseInt semantics minus the
// sign handling.
func ParseUint[C fstring.Unit, A any](s *fstring.String[C, A], base int) uint64 {
	return parseDigits(s.Units(), base)
}

func parseDigits[C fstring.Unit](us []C, base int) uint64 {
	if base < 2 || base > 36 {
		base = 10
	}
	var v uint64
	for _, u := range us {
		d := chars.DigitVal(u)
		if d < 0 || d >= base {
			break
		}
		v = v*uint64(base) + uint64(d)
	}
	return v
}

// ParseFloat parses a fixed-point or scientific decimal ("-12.5", "1e-3").
// Scanning stops at the first unexpected unit; malformed or empty input
// yields 0.
func ParseFloat[C fstring.Unit, A any](s *fstring.String[C, A]) float64 {
	us := s.Units()
	i, neg := 0, false
	if i < len(us) {
		switch us[i] {
		case C('-'):
			neg = true
			i++
		case C('+'):
			i++
		}
	}
	var v float64
	for i < len(us) && chars.IsDigit(us[i]) {
		v = v*10 + float64(chars.DigitVal(us[i]))
		i++
	}
	if i < len(us) && us[i] == C('.') {
		i++
		scale := 0.1
		for i < len(us) && chars.IsDigit(us[i]) {
			v += float64(chars.DigitVal(us[i])) * scale
			scale /= 10
			i++
		}
	}
	if i < len(us) && (us[i] == C('e') || us[i] == C('E')) {
		i++
		expNeg := false
		if i < len(us) {
			switch us[i] {
			case C('-'):
				expNeg = true
				i++
			case C('+'):
				i++
			}
		}
		exp := 0
		for i < len(us) && chars.IsDigit(us[i]) {
			exp = exp*10 + chars.DigitVal(us[i])
			i++
		}
		if expNeg {
			exp = -exp
		}
		v *= math.Pow(10, float64(exp))
	}
	if neg {
		return -v
	}
	return v
}

// ParseBool reports whether s is one of "true", "1", "yes" or "on".
// Anything else, including empty input, is false.
func ParseBool[C fstring.Unit, A any](s *fstring.String[C, A]) bool {
	return s.EqualString("true") || s.EqualString("1") ||
		s.EqualString("yes") || s.EqualString("on")
}
