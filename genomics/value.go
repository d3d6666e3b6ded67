package genomics

// ValueKind tags the live arm of a Value.
type ValueKind int

const (
	// InvalidKind is the kind of the zero Value; it matches no decode.
	InvalidKind ValueKind = iota
	// IntKind marks an integer Value.
	IntKind
	// NumberKind marks a floating-point Value.
	NumberKind
	// StringKind marks a string Value.
	StringKind
)

var valueKindNames = []string{"invalid", "int", "number", "string"}

// String returns the kind's name.
func (k ValueKind) String() string {
	if k < InvalidKind || k > StringKind {
		return "unknown"
	}
	return valueKindNames[k]
}

// Value is one typed annotation scalar: an integer, a floating-point
// number, or a string.  Exactly the arm named by Kind is meaningful; the
// others hold their zero values.
type Value struct {
	Kind   ValueKind
	Int    int64
	Number float64
	Str    string
}

// IntValue returns a Value holding the integer v.
func IntValue(v int64) Value { return Value{Kind: IntKind, Int: v} }

// NumberValue returns a Value holding the floating-point v.
func NumberValue(v float64) Value { return Value{Kind: NumberKind, Number: v} }

// StringValue returns a Value holding the string v.
func StringValue(v string) Value { return Value{Kind: StringKind, Str: v} }

// ListValue is an ordered sequence of Values.  Order and duplicates are
// preserved exactly as written.
type ListValue struct {
	Values []Value
}
