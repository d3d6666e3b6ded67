package genomics

import (
	"fmt"
	"strconv"
)

// Range is a half-open interval [Start, End) on a named reference sequence.
type Range struct {
	ReferenceName string
	Start         int64
	End           int64
}

// MakeRange returns the range [start, end) on the named contig.  start must
// lie in [0, end]; anything else is a caller bug and panics.
func MakeRange(referenceName string, start, end int64) Range {
	if start < 0 || end < start {
		panic(fmt.Sprintf("MakeRange: invalid range %s:[%d,%d)", referenceName, start, end))
	}
	return Range{ReferenceName: referenceName, Start: start, End: end}
}

// Len returns the number of bases r spans.
func (r Range) Len() int64 { return r.End - r.Start }

// Contains returns true iff inner lies entirely within r: same reference
// name, r.Start <= inner.Start and inner.End <= r.End.  A zero-length inner
// range is containable anywhere in [r.Start, r.End].
func (r Range) Contains(inner Range) bool {
	return r.ReferenceName == inner.ReferenceName &&
		r.Start <= inner.Start && inner.End <= r.End
}

// Intersects returns true iff r and r1 share at least one base.
func (r Range) Intersects(r1 Range) bool {
	return r.ReferenceName == r1.ReferenceName &&
		r.Start < r1.End && r1.Start < r.End
}

// String renders r in the one-based display form, e.g. "chr1:2-11" for the
// zero-based [1, 10).
func (r Range) String() string {
	return MakeIntervalStr(r.ReferenceName, r.Start, r.End, true)
}

// MakeIntervalStr renders a genomic interval for logging and reporting.
// With oneBased the zero-based stored coordinates are both shifted up by
// one; otherwise they are emitted verbatim.  A point interval (start ==
// end) collapses to the "contig:lo" form.  The output is a compatibility
// surface and must stay bit-exact.
func MakeIntervalStr(contig string, start, end int64, oneBased bool) string {
	var offset int64
	if oneBased {
		offset = 1
	}
	lo := strconv.FormatInt(start+offset, 10)
	if start == end {
		return contig + ":" + lo
	}
	return contig + ":" + lo + "-" + strconv.FormatInt(end+offset, 10)
}
