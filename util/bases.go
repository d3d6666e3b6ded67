package util

// CanonicalBases selects which bases count as canonical.
type CanonicalBases int

const (
	// ACGT admits only the four unambiguous uppercase bases.
	ACGT CanonicalBases = iota
	// ACGTN additionally admits uppercase N.
	ACGTN
)

// IsCanonicalBase returns true iff base is an uppercase A, C, G or T, or an
// uppercase N when canon is ACGTN.  Lowercase bases and IUPAC ambiguity
// codes are never canonical.
func IsCanonicalBase(base byte, canon CanonicalBases) bool {
	switch base {
	case 'A', 'C', 'G', 'T':
		return true
	case 'N':
		return canon == ACGTN
	}
	return false
}

// FirstNonCanonicalBase scans bases left to right and returns the index of
// the first non-canonical base, or -1 when every base is canonical.  An
// empty bases string is a caller bug and panics.
func FirstNonCanonicalBase(bases string, canon CanonicalBases) int {
	if len(bases) == 0 {
		panic("FirstNonCanonicalBase: bases cannot be empty")
	}
	for i := 0; i < len(bases); i++ {
		if !IsCanonicalBase(bases[i], canon) {
			return i
		}
	}
	return -1
}

// AreCanonicalBases returns true iff every base in bases is canonical under
// canon.  An empty bases string is a caller bug and panics.
func AreCanonicalBases(bases string, canon CanonicalBases) bool {
	return FirstNonCanonicalBase(bases, canon) == -1
}
