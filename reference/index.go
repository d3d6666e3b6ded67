package reference

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// faiRecord is one line of a .fai index in the making: a contig's base
// count, the byte offset of its first base, and its line geometry.
type faiRecord struct {
	name      string
	nBases    int64
	offset    int64
	lineBases int64
	lineWidth int64
}

// GenerateIndex writes a samtools-style .fai index for the FASTA stream in.
// The result can later be handed to NewIndexed to random-access the FASTA
// without loading it.
//
// The index format is defined by "samtools faidx"
// (http://www.htslib.org/doc/faidx.html).
func GenerateIndex(out io.Writer, in io.Reader) error {
	records, err := scanFastaLayout(in)
	if err != nil {
		return err
	}
	w := tsv.NewWriter(out)
	for _, rec := range records {
		w.WriteString(rec.name)
		w.WriteInt64(rec.nBases)
		w.WriteInt64(rec.offset)
		w.WriteInt64(rec.lineBases)
		w.WriteInt64(rec.lineWidth)
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

// scanFastaLayout walks the FASTA stream once, tracking raw byte offsets so
// the line geometry reflects the on-disk encoding, CR-LF and a missing
// final newline included.
func scanFastaLayout(in io.Reader) ([]faiRecord, error) {
	var (
		r       = bufio.NewReader(in)
		records []faiRecord
		cur     *faiRecord
		offset  int64
	)
	for {
		raw, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "couldn't scan FASTA data")
		}
		line := bytes.TrimRight(raw, "\r\n")
		switch {
		case len(line) == 0:
			// Blank line, or the stream's trailing newline.
		case line[0] == '>':
			records = append(records, faiRecord{
				name:   strings.Split(string(line[1:]), " ")[0],
				offset: offset + int64(len(raw)),
			})
			cur = &records[len(records)-1]
		case cur == nil:
			return nil, errors.New("malformed FASTA data: bases before the first header")
		default:
			if cur.lineWidth == 0 {
				cur.lineWidth = int64(len(raw))
				cur.lineBases = int64(len(line))
			}
			cur.nBases += int64(len(line))
		}
		offset += int64(len(raw))
		if err == io.EOF {
			break
		}
	}
	if offset == 0 {
		return nil, errors.New("empty FASTA data")
	}
	return records, nil
}
