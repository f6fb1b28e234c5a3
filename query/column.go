package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dakoda-project/dakoda-go/index"
)

// Operator names a comparison applied by a ColumnPredicate.
type Operator string

const (
	// OpEq is the equality operator.
	OpEq Operator = "eq"
	// OpNe is the inequality operator.
	OpNe Operator = "ne"
	// OpLt is the less-than operator.
	OpLt Operator = "lt"
	// OpLe is the less-or-equal operator.
	OpLe Operator = "le"
	// OpGt is the greater-than operator.
	OpGt Operator = "gt"
	// OpGe is the greater-or-equal operator.
	OpGe Operator = "ge"
	// OpContains is the literal, case-sensitive substring operator.
	OpContains Operator = "contains"
	// OpStartsWith is the literal prefix operator.
	OpStartsWith Operator = "startswith"
	// OpEndsWith is the literal suffix operator.
	OpEndsWith Operator = "endswith"
	// OpIn tests membership in an array comparison value.
	OpIn Operator = "in"
	// OpNotIn tests non-membership in an array comparison value.
	OpNotIn Operator = "not_in"
	// OpIsNull matches null cells.
	OpIsNull Operator = "is_null"
	// OpIsNotNull matches non-null cells.
	OpIsNotNull Operator = "is_not_null"
	// OpCustom applies a user-supplied per-cell function.
	OpCustom Operator = "custom"
)

// ErrUnknownOperator is returned when a ColumnPredicate names an operator
// that does not exist. Unknown operators are a configuration error and are
// never silently ignored.
var ErrUnknownOperator = errors.New("query: unknown operator")

// ColumnPredicate tests one column against a comparison value.
//
// A predicate over a column the table does not have matches nothing rather
// than erroring: heterogeneous corpora do not produce every column for
// every document. Before comparing, cells are coerced to the kind of the
// comparison value (see index.TargetKind); cells that cannot convert become
// null, and null never satisfies any operator except OpIsNull/OpIsNotNull.
type ColumnPredicate struct {
	Column string
	Op     Operator
	Value  index.Value

	// Fn is the per-cell function for OpCustom. It receives the raw,
	// uncoerced cell; null cells are rejected before it runs.
	Fn func(index.Value) bool
}

// Evaluate implements Predicate.
func (p *ColumnPredicate) Evaluate(t *index.Table) (Mask, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	col, ok := t.Column(p.Column)
	if !ok {
		return allMask(t.Len(), false), nil
	}

	mask := make(Mask, len(col))

	switch p.Op {
	case OpIsNull:
		for i, cell := range col {
			mask[i] = cell.IsNull()
		}
		return mask, nil
	case OpIsNotNull:
		for i, cell := range col {
			mask[i] = !cell.IsNull()
		}
		return mask, nil
	case OpCustom:
		for i, cell := range col {
			mask[i] = !cell.IsNull() && p.Fn(cell)
		}
		return mask, nil
	}

	target := p.targetKind()
	cmp := index.Coerce(p.Value, target)

	for i, cell := range col {
		c := index.Coerce(cell, target)
		if c.IsNull() {
			continue
		}
		m, err := p.match(c, cmp, target)
		if err != nil {
			return nil, err
		}
		mask[i] = m
	}
	return mask, nil
}

func (p *ColumnPredicate) validate() error {
	switch p.Op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe,
		OpContains, OpStartsWith, OpEndsWith,
		OpIn, OpNotIn, OpIsNull, OpIsNotNull:
		return nil
	case OpCustom:
		if p.Fn == nil {
			return fmt.Errorf("query: operator %q requires a function", OpCustom)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperator, p.Op)
	}
}

func (p *ColumnPredicate) targetKind() index.Kind {
	switch p.Op {
	case OpContains, OpStartsWith, OpEndsWith:
		// Substring operators have string semantics no matter what the
		// comparison value holds.
		return index.KindString
	default:
		return index.TargetKind(p.Value)
	}
}

func (p *ColumnPredicate) match(c, cmp index.Value, target index.Kind) (bool, error) {
	switch p.Op {
	case OpEq:
		return c.Equal(cmp), nil
	case OpNe:
		if cmp.IsNull() {
			return false, nil
		}
		return !c.Equal(cmp), nil
	case OpLt, OpLe, OpGt, OpGe:
		return orderMatch(p.Op, c, cmp, target)
	case OpContains:
		s, _ := c.AsString()
		sub, ok := cmp.AsString()
		return ok && strings.Contains(s, sub), nil
	case OpStartsWith:
		s, _ := c.AsString()
		prefix, ok := cmp.AsString()
		return ok && strings.HasPrefix(s, prefix), nil
	case OpEndsWith:
		s, _ := c.AsString()
		suffix, ok := cmp.AsString()
		return ok && strings.HasSuffix(s, suffix), nil
	case OpIn:
		return memberOf(c, p.Value, target), nil
	case OpNotIn:
		return !memberOf(c, p.Value, target), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOperator, p.Op)
	}
}

func orderMatch(op Operator, c, cmp index.Value, target index.Kind) (bool, error) {
	if cmp.IsNull() {
		return false, nil
	}
	var rel int
	switch target {
	case index.KindString:
		a, _ := c.AsString()
		b, _ := cmp.AsString()
		rel = strings.Compare(a, b)
	case index.KindFloat, index.KindBool:
		a, aok := index.CoerceFloat(c)
		b, bok := index.CoerceFloat(cmp)
		if !aok || !bok {
			return false, nil
		}
		switch {
		case a < b:
			rel = -1
		case a > b:
			rel = 1
		}
	default:
		return false, nil
	}

	switch op {
	case OpLt:
		return rel < 0, nil
	case OpLe:
		return rel <= 0, nil
	case OpGt:
		return rel > 0, nil
	case OpGe:
		return rel >= 0, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
}

func memberOf(c, list index.Value, target index.Kind) bool {
	items, ok := list.AsArray()
	if !ok {
		// A scalar comparison value degenerates to equality.
		return c.Equal(index.Coerce(list, target))
	}
	for _, item := range items {
		if c.Equal(index.Coerce(item, target)) {
			return true
		}
	}
	return false
}
