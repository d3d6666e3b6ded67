package reference

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/iSC-Labs/nucleus/genomics"
)

// .fai lines are "<name>\t<length>\t<byte offset>\t<bases per line>\t<bytes
// per line>" (http://www.htslib.org/doc/faidx.html).
var faiRegExp = regexp.MustCompile(`(\S+)\t(\d+)\t(\d+)\t(\d+)\t(\d+)`)

type faiEntry struct {
	length    int64
	offset    int64
	lineBase  int64
	lineWidth int64
}

// indexed random-accesses a FASTA file through its .fai index instead of
// loading it into memory.
type indexed struct {
	contigSet
	entries map[string]faiEntry

	mu        sync.Mutex
	reader    io.ReadSeeker
	bufOff    int64
	buf       []byte // caches file contents starting at bufOff.
	resultBuf []byte // temp for concatenating multi-line sequences.
}

// NewIndexed returns a Reference that reads bases from fasta on demand,
// using the samtools .fai index read from index.  Contig ranks follow the
// index file's line order.
func NewIndexed(fasta io.ReadSeeker, index io.Reader) (Reference, error) {
	ref := &indexed{entries: make(map[string]faiEntry), reader: fasta}
	var contigs []genomics.ContigInfo
	scanner := bufio.NewScanner(index)
	for scanner.Scan() {
		matches := faiRegExp.FindStringSubmatch(scanner.Text())
		if len(matches) != 6 {
			return nil, errors.Errorf("invalid index line: %s", scanner.Text())
		}
		var ent faiEntry
		ent.length, _ = strconv.ParseInt(matches[2], 10, 64)
		ent.offset, _ = strconv.ParseInt(matches[3], 10, 64)
		ent.lineBase, _ = strconv.ParseInt(matches[4], 10, 64)
		ent.lineWidth, _ = strconv.ParseInt(matches[5], 10, 64)
		ref.entries[matches[1]] = ent
		contigs = append(contigs, genomics.ContigInfo{
			Name:       matches[1],
			NBases:     ent.length,
			PosInFasta: len(contigs),
		})
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA index")
	}
	ref.contigSet = newContigSet(contigs)
	return ref, nil
}

// read returns the byte range [off, off+n) of the underlying FASTA file,
// refilling the cache when the range falls outside it.
func (f *indexed) read(off int64, n int) ([]byte, error) {
	limit := off + int64(n)
	if off < f.bufOff || limit > f.bufOff+int64(len(f.buf)) {
		if newOff, err := f.reader.Seek(off, io.SeekStart); err != nil || newOff != off {
			return nil, errors.Errorf("failed to seek to offset %d: %d, %v", off, newOff, err)
		}
		bufSize := 8192
		if bufSize < n {
			bufSize = n
		}
		resizeBuf(&f.buf, bufSize)
		bytesRead, err := f.reader.Read(f.buf)
		if bytesRead < n {
			return nil, errors.New("unexpected end of FASTA file (stale index, or file doesn't end in a newline?)")
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		f.bufOff = off
		f.buf = f.buf[:bytesRead]
	}
	return f.buf[off-f.bufOff : limit-f.bufOff], nil
}

func resizeBuf(buf *[]byte, n int) {
	if cap(*buf) < n {
		*buf = make([]byte, n)
	} else {
		*buf = (*buf)[:n]
	}
}

// Bases implements Reference.Bases.
func (f *indexed) Bases(r genomics.Range) (string, error) {
	ent, ok := f.entries[r.ReferenceName]
	if !ok {
		return "", errors.Errorf("contig not found in index: %s", r.ReferenceName)
	}
	if !f.IsValidInterval(r) {
		return "", errors.Errorf("invalid query range %v for contig of length %d", r, ent.length)
	}
	if r.Start == r.End {
		return "", nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Skip to a byte offset that accounts for the newline characters
	// preceding start.
	charsPerNewline := ent.lineWidth - ent.lineBase
	offset := ent.offset + r.Start + charsPerNewline*(r.Start/ent.lineBase)

	// Count how many characters, bases plus newlines, the read must cover.
	span := r.End - r.Start
	firstLineBases := ent.lineBase - r.Start%ent.lineBase
	newlinesToRead := int64(0)
	if span > firstLineBases {
		newlinesToRead = 1 + (span-firstLineBases)/ent.lineBase
	}
	capacity := span + newlinesToRead*charsPerNewline

	buffer, err := f.read(offset, int(capacity))
	if err != nil && err != io.EOF {
		return "", err
	}

	// Copy the non-newline characters into the result.
	resizeBuf(&f.resultBuf, int(span))
	linePos := (offset - ent.offset) % ent.lineWidth
	resultPos := 0
	for i := range buffer {
		if linePos < ent.lineBase {
			f.resultBuf[resultPos] = buffer[i]
			resultPos++
		}
		linePos++
		if linePos == ent.lineWidth {
			linePos = 0
		}
	}
	return string(f.resultBuf), nil
}

// Close implements Reference.Close.
func (f *indexed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf = nil
	f.resultBuf = nil
	if c, ok := f.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
