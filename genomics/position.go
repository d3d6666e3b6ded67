package genomics

// Position is a single zero-based locus on a named reference sequence.  The
// strand bit records whether the feature it describes maps to the reverse
// strand.
type Position struct {
	ReferenceName string
	Position      int64
	ReverseStrand bool
}

// MakePosition returns a Position at the zero-based coordinate position on
// the named contig.
func MakePosition(referenceName string, position int64, reverseStrand bool) Position {
	return Position{
		ReferenceName: referenceName,
		Position:      position,
		ReverseStrand: reverseStrand,
	}
}

// Compare returns (negative int, 0, positive int) if (p<p1, p=p1, p>p1)
// respectively.  Reference names order lexicographically and dominate the
// coordinate; the strand bit is ignored.
func (p Position) Compare(p1 Position) int {
	if p.ReferenceName != p1.ReferenceName {
		if p.ReferenceName < p1.ReferenceName {
			return -1
		}
		return 1
	}
	switch {
	case p.Position < p1.Position:
		return -1
	case p.Position > p1.Position:
		return 1
	}
	return 0
}

// LT returns true iff p < p1.
func (p Position) LT(p1 Position) bool { return p.Compare(p1) < 0 }

// EQ returns true iff p and p1 name the same locus, ignoring strand.
func (p Position) EQ(p1 Position) bool { return p.Compare(p1) == 0 }

// String renders the locus in the one-based point form used for logging and
// reporting, e.g. "chr2:3" for the zero-based chr2:2.
func (p Position) String() string {
	return MakeIntervalStr(p.ReferenceName, p.Position, p.Position, true)
}
