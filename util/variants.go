package util

import (
	"fmt"

	"github.com/iSC-Labs/nucleus/genomics"
)

// MapContigNameToPosInFasta maps each contig's name to its PosInFasta rank.
// When a name repeats, the last entry wins.
func MapContigNameToPosInFasta(contigs []genomics.ContigInfo) map[string]int {
	posInFasta := make(map[string]int, len(contigs))
	for _, contig := range contigs {
		posInFasta[contig.Name] = contig.PosInFasta
	}
	return posInFasta
}

// CompareVariants reports whether lhs strictly precedes rhs in genome
// order: contig rank first, per posInFasta, then start coordinate.  Ends
// are deliberately ignored, so variants at the same start compare equal and
// the result is a strict weak order usable with sort.Slice.  Both contigs
// must be present in posInFasta; a missing contig is a caller bug and
// panics.
func CompareVariants(lhs, rhs *genomics.Variant, posInFasta map[string]int) bool {
	lhsRank := contigRank(lhs.ReferenceName, posInFasta)
	rhsRank := contigRank(rhs.ReferenceName, posInFasta)
	if lhsRank != rhsRank {
		return lhsRank < rhsRank
	}
	return lhs.Start < rhs.Start
}

func contigRank(name string, posInFasta map[string]int) int {
	rank, ok := posInFasta[name]
	if !ok {
		panic(fmt.Sprintf("CompareVariants: contig %q not in FASTA order index", name))
	}
	return rank
}
