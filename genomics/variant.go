package genomics

// Variant is a sequence variation at a half-open region of a contig, with
// typed info annotations and optional per-sample calls.  Start and End use
// the same zero-based half-open convention as Range.
type Variant struct {
	ReferenceName  string
	Start          int64
	End            int64
	Names          []string
	ReferenceBases string
	AlternateBases []string
	Quality        float64
	Filter         []string
	Info           map[string]ListValue
	Calls          []VariantCall
}

// VariantCall is one sample's genotype call for a Variant.
type VariantCall struct {
	CallSetName string
	Genotype    []int
	Info        map[string]ListValue
}

// Position returns the variant's locus: its reference name and start.  The
// end is ignored.
func (v *Variant) Position() Position {
	return Position{ReferenceName: v.ReferenceName, Position: v.Start}
}

// Range returns the variant's half-open [Start, End) region.  Variants and
// Ranges share the zero-based half-open convention, so the coordinates
// carry over verbatim.
func (v *Variant) Range() Range {
	return Range{ReferenceName: v.ReferenceName, Start: v.Start, End: v.End}
}

// MutableInfo returns the variant's info map, allocating it on first use.
func (v *Variant) MutableInfo() map[string]ListValue {
	if v.Info == nil {
		v.Info = make(map[string]ListValue)
	}
	return v.Info
}

// MutableInfo returns the call's info map, allocating it on first use.
func (c *VariantCall) MutableInfo() map[string]ListValue {
	if c.Info == nil {
		c.Info = make(map[string]ListValue)
	}
	return c.Info
}

// ComparePositions orders two variants by their derived Positions:
// reference name first, then start.  Ends are ignored, so variants at the
// same locus compare equal regardless of their spans.
func ComparePositions(a, b *Variant) int {
	return a.Position().Compare(b.Position())
}
