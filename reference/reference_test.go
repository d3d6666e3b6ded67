package reference_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"

	"github.com/iSC-Labs/nucleus/genomics"
	"github.com/iSC-Labs/nucleus/reference"
)

var (
	fastaData  = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "ACGT\n" + "ACGT\n"
	fastaIndex = "seq1\t12\t6\t5\t6\n" + "seq2\t8\t44\t4\t5\n"
)

// both returns the in-memory and the indexed provider over the same data.
func both(t *testing.T) []reference.Reference {
	inMem, err := reference.New(strings.NewReader(fastaData))
	assert.NoError(t, err)
	indexed, err := reference.NewIndexed(strings.NewReader(fastaData), strings.NewReader(fastaIndex))
	assert.NoError(t, err)
	return []reference.Reference{inMem, indexed}
}

func TestBases(t *testing.T) {
	tests := []struct {
		r       genomics.Range
		want    string
		wantErr bool
	}{
		{genomics.MakeRange("seq1", 1, 2), "C", false},
		{genomics.MakeRange("seq1", 1, 6), "CGTAC", false},
		{genomics.MakeRange("seq1", 0, 12), "ACGTACGTACGT", false},
		// Spans a line boundary and the final short line.
		{genomics.MakeRange("seq1", 10, 12), "GT", false},
		{genomics.MakeRange("seq2", 0, 8), "ACGTACGT", false},
		{genomics.MakeRange("seq2", 2, 5), "GTA", false},
		{genomics.MakeRange("seq2", 4, 8), "ACGT", false},
		// Zero-length queries yield no bases.
		{genomics.MakeRange("seq1", 5, 5), "", false},
		// Unknown contig and out-of-bounds end.
		{genomics.MakeRange("seq0", 0, 1), "", true},
		{genomics.MakeRange("seq1", 10, 13), "", true},
	}
	for _, ref := range both(t) {
		for _, test := range tests {
			got, err := ref.Bases(test.r)
			if test.wantErr {
				assert.NotNil(t, err, "range %v", test.r)
				continue
			}
			assert.NoError(t, err, "range %v", test.r)
			assert.EQ(t, got, test.want, "range %v", test.r)
		}
		assert.NoError(t, ref.Close())
	}
}

func TestContigs(t *testing.T) {
	want := []genomics.ContigInfo{
		{Name: "seq1", NBases: 12, PosInFasta: 0},
		{Name: "seq2", NBases: 8, PosInFasta: 1},
	}
	for _, ref := range both(t) {
		assert.EQ(t, ref.Contigs(), want)

		c, err := ref.Contig("seq2")
		assert.NoError(t, err)
		assert.EQ(t, c, want[1])
		_, err = ref.Contig("seq0")
		assert.NotNil(t, err)

		assert.True(t, ref.HasContig("seq1"))
		assert.False(t, ref.HasContig("seq0"))

		assert.EQ(t, reference.ContigIndex(ref), map[string]int{"seq1": 0, "seq2": 1})
	}
}

func TestIsValidInterval(t *testing.T) {
	tests := []struct {
		r    genomics.Range
		want bool
	}{
		{genomics.MakeRange("seq1", 0, 12), true},
		{genomics.MakeRange("seq1", 0, 0), true},
		{genomics.MakeRange("seq1", 12, 12), true},
		{genomics.MakeRange("seq1", 0, 13), false},
		{genomics.MakeRange("seq2", 0, 9), false},
		{genomics.MakeRange("seq2", 0, 8), true},
		{genomics.MakeRange("seq0", 0, 1), false},
	}
	for _, ref := range both(t) {
		for _, test := range tests {
			assert.EQ(t, ref.IsValidInterval(test.r), test.want, "range %v", test.r)
		}
	}
}

func TestGenerateIndex(t *testing.T) {
	idx := bytes.Buffer{}
	assert.NoError(t, reference.GenerateIndex(&idx, strings.NewReader(fastaData)))
	assert.EQ(t, idx.String(), fastaIndex)

	// The generated index round-trips through the indexed provider.
	ref, err := reference.NewIndexed(strings.NewReader(fastaData), strings.NewReader(idx.String()))
	assert.NoError(t, err)
	got, err := ref.Bases(genomics.MakeRange("seq1", 0, 12))
	assert.NoError(t, err)
	assert.EQ(t, got, "ACGTACGTACGT")
	assert.NoError(t, ref.Close())

	// No newline at the end of the file.
	idx.Reset()
	assert.NoError(t, reference.GenerateIndex(&idx, strings.NewReader(">E0\nGGGG\n>E1\nAAAAA")))
	assert.EQ(t, idx.String(), "E0\t4\t4\t4\t5\nE1\t5\t13\t5\t5\n")

	// CR-LF newlines widen the line geometry.
	idx.Reset()
	assert.NoError(t, reference.GenerateIndex(&idx, strings.NewReader(">E0\r\nGGGG\r\n>E1\r\nAAAAA\r\n")))
	assert.EQ(t, idx.String(), "E0\t4\t5\t4\t6\nE1\t5\t16\t5\t7\n")

	// Empty and malformed inputs are rejected.
	idx.Reset()
	assert.Regexp(t, reference.GenerateIndex(&idx, strings.NewReader("")), "empty FASTA")
	idx.Reset()
	assert.Regexp(t, reference.GenerateIndex(&idx, strings.NewReader("ACGT\n>seq1\nACGT\n")),
		"bases before the first header")
}

func TestVerifyContigs(t *testing.T) {
	for _, ref := range both(t) {
		assert.NoError(t, reference.VerifyContigs(ref, []genomics.ContigInfo{
			{Name: "seq1", NBases: 12},
			{Name: "seq2", NBases: 8},
		}))
		// Missing contigs are tolerated.
		assert.NoError(t, reference.VerifyContigs(ref, []genomics.ContigInfo{
			{Name: "seq1", NBases: 12},
			{Name: "seqX", NBases: 99},
		}))
		// A length mismatch is not.
		assert.NotNil(t, reference.VerifyContigs(ref, []genomics.ContigInfo{
			{Name: "seq1", NBases: 11},
		}))
	}
}

func TestMalformedInput(t *testing.T) {
	_, err := reference.New(strings.NewReader(""))
	assert.NotNil(t, err)
	_, err = reference.New(strings.NewReader("ACGT\n>seq1\nACGT\n"))
	assert.NotNil(t, err)
	_, err = reference.NewIndexed(strings.NewReader(fastaData), strings.NewReader("not a fai line\n"))
	assert.NotNil(t, err)
}

func TestStaleIndex(t *testing.T) {
	// An index promising more bases than the file holds surfaces as an
	// error, not a short read.
	ref, err := reference.NewIndexed(strings.NewReader(fastaData), strings.NewReader("seq2\t80\t44\t4\t5\n"))
	assert.NoError(t, err)
	_, err = ref.Bases(genomics.MakeRange("seq2", 0, 80))
	assert.NotNil(t, err)
}
