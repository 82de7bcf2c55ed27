package fstring

// FNV-1a parameters, 64-bit flavor.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns the FNV-1a hash of the content, folded one unit at a time.
// Only the stored units participate, never the padding, so equal content
// hashes equal across different capacities of the same unit type.
func (s *String[C, A]) Hash() uint64 {
	h := uint64(fnvOffset64)
	for _, u := range s.cells()[:s.n] {
		h ^= uint64(u)
		h *= fnvPrime64
	}
	return h
}
