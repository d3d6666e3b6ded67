// Package util provides the record-level primitives of the nucleus core:
// canonical-base validation, CIGAR-derived alignment extents, read
// filtering, genome-wide variant ordering, and typed encoding of variant
// info annotations.
//
// Operations are pure functions over the genomics record types.
// Precondition violations (such as an empty base string, or an unaligned
// read passed to an extent calculator) are caller bugs and panic; every
// other outcome is an ordinary value.
package util
