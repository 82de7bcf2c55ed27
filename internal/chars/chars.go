package chars

// Unit is the set of storage element types a fixed string can hold:
// single bytes, UTF-16 code units or full runes.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// IsSpace reports whether u is one of space, tab, newline or carriage return.
// This is the whole whitespace set used by trimming and token scanning.
func IsSpace[C Unit](u C) bool {
	return u == C(' ') || u == C('\t') || u == C('\n') || u == C('\r')
}

// IsDigit reports whether u is an ASCII decimal digit.
func IsDigit[C Unit](u C) bool {
	return u >= C('0') && u <= C('9')
}

// IsUpper reports whether u is an ASCII uppercase letter.
func IsUpper[C Unit](u C) bool {
	return u >= C('A') && u <= C('Z')
}

// IsLower reports whether u is an ASCII lowercase letter.
func IsLower[C Unit](u C) bool {
	return u >= C('a') && u <= C('z')
}

// IsAlpha reports whether u is an ASCII letter.
func IsAlpha[C Unit](u C) bool {
	return IsUpper(u) || IsLower(u)
}

// ToUpper maps ASCII lowercase to uppercase; anything else passes through.
func ToUpper[C Unit](u C) C {
	if IsLower(u) {
		return u - C('a') + C('A')
	}
	return u
}

// ToLower maps ASCII uppercase to lowercase; anything else passes through.
func ToLower[C Unit](u C) C {
	if IsUpper(u) {
		return u - C('A') + C('a')
	}
	return u
}

// DigitVal returns the numeric value of u as a digit in bases up to 36
// (0-9, a-z, A-Z), or -1 when u is not a digit at all.
func DigitVal[C Unit](u C) int {
	switch {
	case IsDigit(u):
		return int(u - C('0'))
	case IsLower(u):
		return 10 + int(u-C('a'))
	case IsUpper(u):
		return 10 + int(u-C('A'))
	default:
		return -1
	}
}
