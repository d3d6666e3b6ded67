// Package interval implements a union of genomic ranges with overlap and
// containment queries.  Overlapping and abutting ranges are merged on
// insertion, so each contig holds a set of disjoint half-open intervals,
// kept in a left-leaning red-black tree keyed by interval start.
package interval
