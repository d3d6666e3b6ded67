package reference

import (
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Open reads the FASTA file at path into an in-memory Reference.  Files
// whose names end in ".gz" are decompressed transparently.
func Open(path string) (ref Reference, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	if strings.HasSuffix(path, ".gz") {
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, errors.Wrapf(err, "%s: cannot read gzip", path)
		}
		defer func() {
			if cerr := gz.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		reader = gz
	}
	return New(reader)
}

// OpenIndexed opens the FASTA file at path for random access through the
// .fai index at indexPath; an empty indexPath derives path+".fai".  The
// returned Reference keeps the FASTA file open until Close.
func OpenIndexed(path, indexPath string) (Reference, error) {
	if indexPath == "" {
		indexPath = path + ".fai"
	}
	ctx := vcontext.Background()
	fa, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	idx, err := file.Open(ctx, indexPath)
	if err != nil {
		_ = fa.Close(ctx)
		return nil, err
	}
	ref, err := NewIndexed(fa.Reader(ctx), idx.Reader(ctx))
	if cerr := idx.Close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = fa.Close(ctx)
		return nil, err
	}
	return &openedReference{Reference: ref, file: fa}, nil
}

// openedReference ties a Reference's lifetime to the file backing it.
type openedReference struct {
	Reference
	file file.File
}

// Close releases the provider and the underlying file.
func (r *openedReference) Close() error {
	err := r.Reference.Close()
	if cerr := r.file.Close(vcontext.Background()); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
