package genomics

import "github.com/grailbio/hts/sam"

// unavailableMapQ is the SAM sentinel for "mapping quality not available".
const unavailableMapQ = 0xff

// FromSAMRecord converts a BAM/SAM record into a Read.  Flag bits become
// the individual boolean fields, an unmapped record yields a nil Alignment,
// and a MAPQ of 255 becomes an unset MappingQuality.  The returned Read
// shares no memory with the record.
func FromSAMRecord(r *sam.Record) *Read {
	read := &Read{
		FragmentName:              r.Name,
		NumberReads:               1,
		ProperPlacement:           r.Flags&sam.ProperPair != 0,
		DuplicateFragment:         r.Flags&sam.Duplicate != 0,
		FailedVendorQualityChecks: r.Flags&sam.QCFail != 0,
		SecondaryAlignment:        r.Flags&sam.Secondary != 0,
		SupplementaryAlignment:    r.Flags&sam.Supplementary != 0,
		AlignedSequence:           string(r.Seq.Expand()),
		AlignedQuality:            append([]byte(nil), r.Qual...),
	}
	if r.Flags&sam.Paired != 0 {
		read.NumberReads = 2
	}
	if r.Flags&sam.Unmapped == 0 && r.Ref != nil {
		aln := &LinearAlignment{
			Position: Position{
				ReferenceName: r.Ref.Name(),
				Position:      int64(r.Pos),
				ReverseStrand: r.Flags&sam.Reverse != 0,
			},
			Cigar: append(sam.Cigar(nil), r.Cigar...),
		}
		if r.MapQ != unavailableMapQ {
			mapq := int32(r.MapQ)
			aln.MappingQuality = &mapq
		}
		read.Alignment = aln
	}
	if r.Flags&sam.Paired != 0 && r.Flags&sam.MateUnmapped == 0 && r.MateRef != nil {
		read.NextMatePosition = &Position{
			ReferenceName: r.MateRef.Name(),
			Position:      int64(r.MatePos),
			ReverseStrand: r.Flags&sam.MateReverse != 0,
		}
	}
	return read
}

// ContigInfosFromSAMHeader lists the header's reference sequences as
// ContigInfos, ranked by their header order.
func ContigInfosFromSAMHeader(h *sam.Header) []ContigInfo {
	refs := h.Refs()
	contigs := make([]ContigInfo, 0, len(refs))
	for i, ref := range refs {
		contigs = append(contigs, ContigInfo{
			Name:       ref.Name(),
			NBases:     int64(ref.Len()),
			PosInFasta: i,
		})
	}
	return contigs
}
