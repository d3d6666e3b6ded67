package reference

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/iSC-Labs/nucleus/genomics"
)

const scanBufSize = 64 * 1024 * 1024

// inMemory holds every contig's bases in memory.
type inMemory struct {
	contigSet
	seqs map[string]string
}

// New reads FASTA data from r and returns a Reference holding all of its
// bases in memory.  Contig ranks follow the order of appearance; any text
// after a space in a '>' header line is ignored.
func New(r io.Reader) (Reference, error) {
	ref := &inMemory{seqs: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, scanBufSize)
	var (
		contigs   []genomics.ContigInfo
		name      string
		seq       strings.Builder
		sawHeader bool
	)
	flush := func() {
		contigs = append(contigs, genomics.ContigInfo{
			Name:       name,
			NBases:     int64(seq.Len()),
			PosInFasta: len(contigs),
		})
		ref.seqs[name] = seq.String()
		seq.Reset()
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new contig.
			if sawHeader {
				flush()
			} else if seq.Len() != 0 {
				return nil, errors.New("malformed FASTA data: bases before the first header")
			}
			name = strings.Split(line[1:], " ")[0]
			sawHeader = true
			continue
		}
		seq.WriteString(line)
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if !sawHeader {
		return nil, errors.New("empty FASTA data")
	}
	flush()
	ref.contigSet = newContigSet(contigs)
	return ref, nil
}

// Bases implements Reference.Bases.
func (f *inMemory) Bases(r genomics.Range) (string, error) {
	s, ok := f.seqs[r.ReferenceName]
	if !ok {
		return "", errors.Errorf("contig not found: %s", r.ReferenceName)
	}
	if !f.IsValidInterval(r) {
		return "", errors.Errorf("invalid query range %v for contig of length %d", r, len(s))
	}
	return s[r.Start:r.End], nil
}

// Close implements Reference.Close.
func (f *inMemory) Close() error {
	f.seqs = nil
	return nil
}
