package interval

import (
	"github.com/biogo/store/llrb"

	"github.com/iSC-Labs/nucleus/genomics"
)

// entry is one merged interval in a per-contig tree.
type entry struct {
	start, end int64
}

// Compare orders entries by start for use in llrb.  Entries in a tree are
// disjoint, so the start alone identifies an interval.
func (e entry) Compare(c llrb.Comparable) int {
	e2 := c.(entry)
	switch {
	case e.start < e2.start:
		return -1
	case e.start > e2.start:
		return 1
	}
	return 0
}

// RangeSet is a union of genomic ranges.  Build it with NewRangeSet or Add,
// then query freely; queries never mutate the set, so a built set is safe
// for unrestricted concurrent reads.
type RangeSet struct {
	trees map[string]*llrb.Tree
}

// NewRangeSet returns a RangeSet holding the union of the given ranges.
func NewRangeSet(ranges ...genomics.Range) *RangeSet {
	s := &RangeSet{trees: make(map[string]*llrb.Tree)}
	for _, r := range ranges {
		s.Add(r)
	}
	return s
}

// Add unions r into the set.  A zero-length range contains nothing but
// still marks its contig as present; it never becomes an interval.
func (s *RangeSet) Add(r genomics.Range) {
	t := s.trees[r.ReferenceName]
	if t == nil {
		t = &llrb.Tree{}
		s.trees[r.ReferenceName] = t
	}
	start, end := r.Start, r.End
	// Absorb every existing interval that overlaps or abuts [start, end).
	for {
		c := t.Floor(entry{start: end})
		if c == nil {
			break
		}
		e := c.(entry)
		if e.end < start {
			break
		}
		if e.start < start {
			start = e.start
		}
		if e.end > end {
			end = e.end
		}
		t.Delete(e)
	}
	// Stored intervals hold at least one base, so every query can trust
	// the floor entry it finds.
	if start < end {
		t.Insert(entry{start: start, end: end})
	}
}

// Overlaps reports whether r shares at least one base with the set.
func (s *RangeSet) Overlaps(r genomics.Range) bool {
	t := s.trees[r.ReferenceName]
	if t == nil || r.Start == r.End {
		return false
	}
	c := t.Floor(entry{start: r.End - 1})
	if c == nil {
		return false
	}
	return c.(entry).end > r.Start
}

// ContainsRange reports whether r lies entirely within one interval of the
// set.  Zero-length ranges are containable.
func (s *RangeSet) ContainsRange(r genomics.Range) bool {
	t := s.trees[r.ReferenceName]
	if t == nil {
		return false
	}
	c := t.Floor(entry{start: r.Start})
	if c == nil {
		return false
	}
	e := c.(entry)
	return e.start <= r.Start && r.End <= e.end
}

// ContainsPosition reports whether the position falls inside the set.
func (s *RangeSet) ContainsPosition(p genomics.Position) bool {
	t := s.trees[p.ReferenceName]
	if t == nil {
		return false
	}
	c := t.Floor(entry{start: p.Position})
	if c == nil {
		return false
	}
	return c.(entry).end > p.Position
}

// NumContigs returns the number of contigs mentioned by the set.
func (s *RangeSet) NumContigs() int { return len(s.trees) }

// NumIntervals returns the number of disjoint intervals on the contig.
func (s *RangeSet) NumIntervals(contig string) int {
	t := s.trees[contig]
	if t == nil {
		return 0
	}
	return t.Len()
}

// Ranges returns the contig's disjoint intervals in start order.
func (s *RangeSet) Ranges(contig string) []genomics.Range {
	t := s.trees[contig]
	if t == nil {
		return nil
	}
	ranges := make([]genomics.Range, 0, t.Len())
	t.Do(func(c llrb.Comparable) (done bool) {
		e := c.(entry)
		ranges = append(ranges, genomics.Range{
			ReferenceName: contig,
			Start:         e.start,
			End:           e.end,
		})
		return
	})
	return ranges
}
