package query

import "github.com/dakoda-project/dakoda-go/index"

// Convenience constructors mirroring how corpus queries are usually phrased:
// pick out a field, annotation type or view by name, then constrain the
// value column. The name-based constructors take an optional operator and
// default to exact match, so the common case stays short:
//
//	query.And(query.Field("corpus_admin_name"), query.Eq(index.String("SWIKO")))
//	query.And(query.Annotation("Stage"), query.Eq(index.String("SVO")))
//	query.Count(query.Annotation("Token"), query.OpGt, index.Int(100))

func nameOp(ops []Operator) Operator {
	if len(ops) > 0 {
		return ops[0]
	}
	return OpEq
}

// Field matches rows whose metadata field name satisfies op (default eq).
// The operator applies to the field NAME, not its value; combine with a
// value constraint to test the value:
//
//	query.And(query.Field("learner_age"), query.Ge(index.Int(18)))
func Field(name string, op ...Operator) *ColumnPredicate {
	return &ColumnPredicate{Column: index.ColField, Op: nameOp(op), Value: index.String(name)}
}

// Annotation matches rows whose annotation type name satisfies op (default
// eq). Type names are short names such as "Token" or "Stage". All views are
// searched unless combined with View.
func Annotation(name string, op ...Operator) *ColumnPredicate {
	return &ColumnPredicate{Column: index.ColType, Op: nameOp(op), Value: index.String(name)}
}

// View matches rows extracted from the named document view, e.g. "learner"
// or "target_hypothesis".
func View(name string, op ...Operator) *ColumnPredicate {
	return &ColumnPredicate{Column: index.ColView, Op: nameOp(op), Value: index.String(name)}
}

// Val matches rows whose value column satisfies op (default eq). This
// searches every indexed value; usually combined with Field, Annotation or
// View to scope it.
func Val(v index.Value, op ...Operator) *ColumnPredicate {
	return &ColumnPredicate{Column: index.ColValue, Op: nameOp(op), Value: v}
}

// Eq matches rows whose value equals v. Shorthand for Val(v, OpEq).
func Eq(v index.Value) *ColumnPredicate { return Val(v, OpEq) }

// Neq matches rows whose value differs from v.
func Neq(v index.Value) *ColumnPredicate { return Val(v, OpNe) }

// Lt matches rows whose value is below v.
func Lt(v index.Value) *ColumnPredicate { return Val(v, OpLt) }

// Le matches rows whose value is at or below v.
func Le(v index.Value) *ColumnPredicate { return Val(v, OpLe) }

// Gt matches rows whose value is above v.
func Gt(v index.Value) *ColumnPredicate { return Val(v, OpGt) }

// Ge matches rows whose value is at or above v.
func Ge(v index.Value) *ColumnPredicate { return Val(v, OpGe) }

// Contains matches rows whose value contains the literal substring s.
func Contains(s string) *ColumnPredicate { return Val(index.String(s), OpContains) }

// StartsWith matches rows whose value starts with the literal prefix s.
func StartsWith(s string) *ColumnPredicate { return Val(index.String(s), OpStartsWith) }

// EndsWith matches rows whose value ends with the literal suffix s.
func EndsWith(s string) *ColumnPredicate { return Val(index.String(s), OpEndsWith) }

// InList matches rows whose value is one of vs.
func InList(vs ...index.Value) *ColumnPredicate {
	return Val(index.Array(vs), OpIn)
}

// NotInList matches rows whose value is none of vs.
func NotInList(vs ...index.Value) *ColumnPredicate {
	return Val(index.Array(vs), OpNotIn)
}

// IsNull matches rows with a null value.
func IsNull() *ColumnPredicate { return Val(index.Null(), OpIsNull) }

// IsNotNull matches rows with a non-null value.
func IsNotNull() *ColumnPredicate { return Val(index.Null(), OpIsNotNull) }

// Custom matches rows whose non-null value satisfies fn. The function sees
// the raw cell without coercion.
func Custom(fn func(index.Value) bool) *ColumnPredicate {
	return &ColumnPredicate{Column: index.ColValue, Op: OpCustom, Fn: fn}
}

// Count selects documents where the number of rows matching base satisfies
// op against threshold, e.g. documents with more than 100 tokens:
//
//	query.Count(query.Annotation("Token"), query.OpGt, index.Int(100))
func Count(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggCount, op, threshold)
}

// SumFilter selects documents by the per-document sum of matching values.
func SumFilter(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggSum, op, threshold)
}

// MeanFilter selects documents by the per-document mean of matching values.
func MeanFilter(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggMean, op, threshold)
}

// MinFilter selects documents by the per-document minimum matching value.
func MinFilter(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggMin, op, threshold)
}

// MaxFilter selects documents by the per-document maximum matching value.
func MaxFilter(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggMax, op, threshold)
}

// StdFilter selects documents by the per-document sample standard deviation
// of matching values. Documents with fewer than two numeric matches never
// pass.
func StdFilter(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggStd, op, threshold)
}

// VarFilter selects documents by the per-document sample variance of
// matching values. Documents with fewer than two numeric matches never pass.
func VarFilter(base Predicate, op Operator, threshold index.Value) *AggregationPredicate {
	return aggFilter(base, AggVar, op, threshold)
}

func aggFilter(base Predicate, fn AggFunc, op Operator, threshold index.Value) *AggregationPredicate {
	return &AggregationPredicate{
		Base:      base,
		Fn:        fn,
		Op:        op,
		Threshold: threshold,
	}
}
