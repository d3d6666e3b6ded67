package util

import (
	"fmt"

	"github.com/iSC-Labs/nucleus/genomics"
)

// AlignedContig returns the name of the contig the read is aligned to, or
// "" for an unaligned read.
func AlignedContig(r *genomics.Read) string {
	if r.Alignment == nil {
		return ""
	}
	return r.Alignment.Position.ReferenceName
}

// ReadStart returns the zero-based genomic coordinate the read's alignment
// is anchored at.  Leading clips are already expressed relative to this
// anchor, so they do not move it.  The read must be aligned.
func ReadStart(r *genomics.Read) int64 {
	if r.Alignment == nil {
		panic(fmt.Sprintf("ReadStart: unaligned read %q", r.FragmentName))
	}
	return r.Alignment.Position.Position
}

// ReadEnd returns the zero-based exclusive end of the read's alignment: the
// anchor plus the length of every CIGAR operation that consumes reference
// bases (M, D, N, = and X).  Insertions, clips and padding consume none.
// The read must be aligned.
func ReadEnd(r *genomics.Read) int64 {
	end := ReadStart(r)
	for _, op := range r.Alignment.Cigar {
		end += int64(op.Type().Consumes().Reference * op.Len())
	}
	return end
}

// ReadRange returns the half-open genomic interval [ReadStart, ReadEnd)
// the read's alignment spans.  The read must be aligned.
func ReadRange(r *genomics.Read) genomics.Range {
	return genomics.MakeRange(AlignedContig(r), ReadStart(r), ReadEnd(r))
}

// IsReadProperlyPlaced reports whether the read's placement is consistent.
// Unpaired reads, including fully unmapped records, are always properly
// placed.  A paired read is properly placed iff it is flagged as properly
// placed and its mate, when a mate position is known, maps to the read's
// own contig.
func IsReadProperlyPlaced(r *genomics.Read) bool {
	if r.NumberReads <= 1 {
		return true
	}
	if !r.ProperPlacement {
		return false
	}
	if r.NextMatePosition == nil {
		return true
	}
	return r.NextMatePosition.ReferenceName == AlignedContig(r)
}

// ReadSatisfiesRequirements reports whether the read passes every gate in
// reqs.  The gates are independent and side-effect free; a rejected read is
// an ordinary false, not an error.  An unaligned read passes iff
// KeepUnaligned is set, and no other gate applies to it.
func ReadSatisfiesRequirements(r *genomics.Read, reqs *genomics.ReadRequirements) bool {
	if r.Alignment == nil {
		return reqs.KeepUnaligned
	}
	if r.DuplicateFragment && !reqs.KeepDuplicates {
		return false
	}
	if r.FailedVendorQualityChecks && !reqs.KeepFailedVendorQualityChecks {
		return false
	}
	if r.SecondaryAlignment && !reqs.KeepSecondaryAlignments {
		return false
	}
	if r.SupplementaryAlignment && !reqs.KeepSupplementaryAlignments {
		return false
	}
	if !reqs.KeepImproperlyPlaced && !IsReadProperlyPlaced(r) {
		return false
	}
	if reqs.MinMappingQuality != nil && r.Alignment.MappingQuality != nil &&
		*r.Alignment.MappingQuality < *reqs.MinMappingQuality {
		return false
	}
	return true
}
