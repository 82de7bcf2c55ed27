package fstring

// Convert copies src into a string of a different capacity, truncating when
// the destination is smaller. Capacities are distinct types, so this is the
// only way to move content between them.
//
//	short := fstring.Convert[[9]byte](&long)
func Convert[AOut any, C Unit, A any](src *String[C, A]) String[C, AOut] {
	var out String[C, AOut]
	out.Append(src.Units()...)
	return out
}

// Concat copies a then b into a string of caller-chosen capacity,
// truncating when the destination cannot hold both.
func Concat[AOut any, C Unit, A1, A2 any](a *String[C, A1], b *String[C, A2]) String[C, AOut] {
	var out String[C, AOut]
	out.Append(a.Units()...)
	out.Append(b.Units()...)
	return out
}

// Substr copies count units starting at pos into a string of caller-chosen
// capacity. A negative count takes everything from pos on; pos past Len()
// yields an empty string.
func Substr[AOut any, C Unit, A any](src *String[C, A], pos, count int) String[C, AOut] {
	var out String[C, AOut]
	if pos < 0 || pos >= src.Len() {
		return out
	}
	rest := src.Len() - pos
	if count < 0 || count > rest {
		count = rest
	}
	out.Append(src.Units()[pos : pos+count]...)
	return out
}
