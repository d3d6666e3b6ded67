// Package genomics defines the value types shared by the nucleus core:
// genomic coordinates, read and variant records, contig metadata, and typed
// annotation values.  The types are plain data built by pure constructors;
// the operations over them live in the util, interval, and reference
// packages.
package genomics
