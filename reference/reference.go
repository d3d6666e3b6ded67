// Package reference provides read-only access to a reference genome: the
// contig catalog and base extraction over half-open genomic ranges.  Two
// providers are included, one holding the whole FASTA in memory and one
// random-accessing it through a samtools .fai index.
package reference

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/iSC-Labs/nucleus/genomics"
	"github.com/iSC-Labs/nucleus/util"
)

// Reference is the capability surface analyses consume a reference genome
// through.  Implementations are read-only after construction; Close
// releases whatever the provider holds open.
type Reference interface {
	// Contigs lists the genome's contigs in FASTA order.
	Contigs() []genomics.ContigInfo

	// Contig returns the named contig's info.
	Contig(name string) (genomics.ContigInfo, error)

	// HasContig reports whether the genome contains the named contig.
	HasContig(name string) bool

	// Bases returns the bases covered by the half-open range r.  Bases is
	// safe for concurrent use.
	Bases(r genomics.Range) (string, error)

	// IsValidInterval reports whether r names a known contig and lies
	// within its bounds.
	IsValidInterval(r genomics.Range) bool

	// Close releases the provider's resources.
	Close() error
}

// ContigIndex maps each of ref's contig names to its rank, in the form
// CompareVariants consumes.
func ContigIndex(ref Reference) map[string]int {
	return util.MapContigNameToPosInFasta(ref.Contigs())
}

// VerifyContigs checks that every contig in contigs is present in ref with
// a matching length.  Contigs absent on either side are only logged; a
// length mismatch is an error.
func VerifyContigs(ref Reference, contigs []genomics.ContigInfo) error {
	missing := 0
	for _, c := range contigs {
		got, err := ref.Contig(c.Name)
		if err != nil {
			missing++
			continue
		}
		if got.NBases != c.NBases {
			return errors.Errorf("inconsistent lengths for contig %s (%d in header, %d in reference)",
				c.Name, c.NBases, got.NBases)
		}
	}
	if missing != 0 {
		log.Printf("reference.VerifyContigs: %d contig(s) missing from the reference", missing)
	}
	if extra := len(ref.Contigs()) + missing - len(contigs); extra != 0 {
		log.Printf("reference.VerifyContigs: %d contig(s) present in the reference but absent from the header", extra)
	}
	return nil
}

// contigSet implements the contig catalog shared by the providers.
type contigSet struct {
	contigs []genomics.ContigInfo
	byName  map[string]genomics.ContigInfo
}

func newContigSet(contigs []genomics.ContigInfo) contigSet {
	byName := make(map[string]genomics.ContigInfo, len(contigs))
	for _, c := range contigs {
		byName[c.Name] = c
	}
	return contigSet{contigs: contigs, byName: byName}
}

// Contigs implements Reference.Contigs.
func (s contigSet) Contigs() []genomics.ContigInfo {
	return append([]genomics.ContigInfo(nil), s.contigs...)
}

// Contig implements Reference.Contig.
func (s contigSet) Contig(name string) (genomics.ContigInfo, error) {
	c, ok := s.byName[name]
	if !ok {
		return genomics.ContigInfo{}, errors.Errorf("contig not found: %s", name)
	}
	return c, nil
}

// HasContig implements Reference.HasContig.
func (s contigSet) HasContig(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// IsValidInterval implements Reference.IsValidInterval.
func (s contigSet) IsValidInterval(r genomics.Range) bool {
	c, ok := s.byName[r.ReferenceName]
	return ok && r.Start >= 0 && r.Start <= r.End && r.End <= c.NBases
}
