package util

import (
	"github.com/pkg/errors"

	"github.com/iSC-Labs/nucleus/genomics"
)

// Scalar enumerates the Go types an info annotation value can carry.
type Scalar interface {
	int | int64 | float64 | string
}

// InfoRecord is any record carrying a typed info map; *genomics.Variant and
// *genomics.VariantCall implement it.
type InfoRecord interface {
	MutableInfo() map[string]genomics.ListValue
}

func scalarValue[T Scalar](v T) genomics.Value {
	switch v := any(v).(type) {
	case int:
		return genomics.IntValue(int64(v))
	case int64:
		return genomics.IntValue(v)
	case float64:
		return genomics.NumberValue(v)
	default:
		return genomics.StringValue(v.(string))
	}
}

// SetValuesValue writes v into the matching arm of out.
func SetValuesValue[T Scalar](v T, out *genomics.Value) {
	*out = scalarValue(v)
}

// SetInfoField replaces record's info value under key with a single-element
// list holding v.  Any prior value under key is dropped, not merged.
func SetInfoField[T Scalar](key string, v T, record InfoRecord) {
	record.MutableInfo()[key] = genomics.ListValue{
		Values: []genomics.Value{scalarValue(v)},
	}
}

// SetInfoFields replaces record's info value under key with the given
// values, preserving their order and any duplicates.  Any prior value
// under key is dropped, not merged.
func SetInfoFields[T Scalar](key string, vs []T, record InfoRecord) {
	values := make([]genomics.Value, 0, len(vs))
	for _, v := range vs {
		values = append(values, scalarValue(v))
	}
	record.MutableInfo()[key] = genomics.ListValue{Values: values}
}

// ListValues decodes lv into a []T in list order.  Every element must carry
// the kind matching T; a mismatch returns a diagnosed error rather than a
// silently corrupted value.
func ListValues[T Scalar](lv genomics.ListValue) ([]T, error) {
	vs := make([]T, 0, len(lv.Values))
	for i, v := range lv.Values {
		decoded, err := decodeValue[T](v)
		if err != nil {
			return nil, errors.Wrapf(err, "list element %d", i)
		}
		vs = append(vs, decoded)
	}
	return vs, nil
}

func decodeValue[T Scalar](v genomics.Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *int:
		if v.Kind != genomics.IntKind {
			return out, errors.Errorf("cannot decode %s value as int", v.Kind)
		}
		*p = int(v.Int)
	case *int64:
		if v.Kind != genomics.IntKind {
			return out, errors.Errorf("cannot decode %s value as int64", v.Kind)
		}
		*p = v.Int
	case *float64:
		if v.Kind != genomics.NumberKind {
			return out, errors.Errorf("cannot decode %s value as float64", v.Kind)
		}
		*p = v.Number
	case *string:
		if v.Kind != genomics.StringKind {
			return out, errors.Errorf("cannot decode %s value as string", v.Kind)
		}
		*p = v.Str
	}
	return out, nil
}
