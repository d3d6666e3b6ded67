package genomics

import "github.com/grailbio/hts/sam"

// LinearAlignment places a read on a contig: an anchor Position, an
// optional mapping quality, and the CIGAR describing how the read's bases
// map onto the reference.  CIGAR operations and their reference/query
// consumption semantics come from the sam package.
type LinearAlignment struct {
	Position Position
	// MappingQuality is phred-scaled; nil means the aligner did not report
	// one.
	MappingQuality *int32
	Cigar          sam.Cigar
}

// Read is one sequenced read, aligned or not.  A nil Alignment means the
// read is unaligned; a nil NextMatePosition means no mate position is
// known.
type Read struct {
	FragmentName              string
	NumberReads               int32
	ProperPlacement           bool
	DuplicateFragment         bool
	FailedVendorQualityChecks bool
	SecondaryAlignment        bool
	SupplementaryAlignment    bool
	AlignedSequence           string
	AlignedQuality            []byte
	Alignment                 *LinearAlignment
	NextMatePosition          *Position
}

// ReadRequirements selects which reads an analysis is willing to consume.
// The zero value keeps only aligned, properly placed, vendor-passing,
// primary, non-duplicate reads.
type ReadRequirements struct {
	KeepDuplicates                bool
	KeepFailedVendorQualityChecks bool
	KeepSecondaryAlignments       bool
	KeepSupplementaryAlignments   bool
	KeepImproperlyPlaced          bool
	KeepUnaligned                 bool
	// MinMappingQuality rejects aligned reads whose reported mapping
	// quality falls below it.  nil disables the check; reads without a
	// reported mapping quality always pass.
	MinMappingQuality *int32
}
