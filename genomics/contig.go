package genomics

// ContigInfo describes one reference sequence from a loaded genome index.
type ContigInfo struct {
	Name   string
	NBases int64
	// PosInFasta is the contig's rank in the source FASTA, used for
	// genome-wide ordering.
	PosInFasta int
}
