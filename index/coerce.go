package index

import "strconv"

// Coercion exists because a single "value" column stores heterogeneous
// scalars: numbers, text, booleans, nulls. A comparison such as gt(5) must
// behave the same whether a cell physically holds 5, 5.0 or "5". The target
// kind is inferred from the comparison value, and every cell is coerced to
// it before the operator runs.
//
// All coercions are total: a cell that cannot convert reports ok=false and
// is treated as null by the caller, never as an error.

// TargetKind infers the coercion target from a comparison value: strings
// coerce the column to String, numbers to Float, booleans to Bool. For an
// array (in-list comparison) the target is inferred from its first element.
// Null, empty arrays and invalid values yield no target (KindInvalid).
func TargetKind(v Value) Kind {
	switch v.Kind {
	case KindString:
		return KindString
	case KindInt, KindFloat:
		return KindFloat
	case KindBool:
		return KindBool
	case KindArray:
		if len(v.A) > 0 {
			return TargetKind(v.A[0])
		}
	}
	return KindInvalid
}

// Coerce converts v to the target kind, or to null when the conversion is
// impossible. Passing KindInvalid returns v unchanged.
func Coerce(v Value, target Kind) Value {
	switch target {
	case KindString:
		if s, ok := CoerceString(v); ok {
			return String(s)
		}
		return Null()
	case KindFloat:
		if f, ok := CoerceFloat(v); ok {
			return Float(f)
		}
		return Null()
	case KindBool:
		if b, ok := CoerceBool(v); ok {
			return Bool(b)
		}
		return Null()
	default:
		return v
	}
}

// CoerceString converts a scalar to its string form. Nulls and arrays do
// not convert.
func CoerceString(v Value) (string, bool) {
	switch v.Kind {
	case KindString:
		return v.s.Value(), true
	case KindInt:
		return strconv.FormatInt(v.I64, 10), true
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64), true
	case KindBool:
		if v.B {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// CoerceFloat converts a scalar to float64. Booleans convert to 1/0,
// strings are parsed; anything unparsable does not convert.
func CoerceFloat(v Value) (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	case KindBool:
		if v.B {
			return 1, true
		}
		return 0, true
	case KindString:
		f, err := strconv.ParseFloat(v.s.Value(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// CoerceBool converts a scalar to bool. Numbers convert as v != 0; strings
// follow strconv.ParseBool ("true", "1", ...), not truthiness — a cell
// holding "banana" becomes null rather than true.
func CoerceBool(v Value) (bool, bool) {
	switch v.Kind {
	case KindBool:
		return v.B, true
	case KindInt:
		return v.I64 != 0, true
	case KindFloat:
		return v.F64 != 0, true
	case KindString:
		b, err := strconv.ParseBool(v.s.Value())
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}
