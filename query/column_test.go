package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakoda-project/dakoda-go/index"
)

// valueTable builds a one-document-per-row table whose value column holds
// the given cells.
func valueTable(t *testing.T, cells ...index.Value) *index.Table {
	t.Helper()
	tbl := index.NewIndexTable()
	for i, cell := range cells {
		require.NoError(t, tbl.AppendRow(index.Int(int64(i)), index.Null(), index.Null(), index.String("f"), cell))
	}
	return tbl
}

func evalMask(t *testing.T, p Predicate, tbl *index.Table) Mask {
	t.Helper()
	mask, err := p.Evaluate(tbl)
	require.NoError(t, err)
	require.Len(t, mask, tbl.Len(), "mask length must equal table length")
	return mask
}

func TestColumnPredicateOperators(t *testing.T) {
	tbl := valueTable(t,
		index.String("apple"),
		index.String("banana"),
		index.Int(5),
		index.Float(7.5),
		index.Null(),
		index.Bool(true),
	)

	tests := []struct {
		name string
		p    Predicate
		want Mask
	}{
		{"eq string", Eq(index.String("apple")), Mask{true, false, false, false, false, false}},
		{"ne string", Neq(index.String("apple")), Mask{false, true, true, true, false, true}},
		{"gt numeric", Gt(index.Int(5)), Mask{false, false, false, true, false, false}},
		{"ge numeric", Ge(index.Int(5)), Mask{false, false, true, true, false, false}},
		{"lt numeric", Lt(index.Float(6)), Mask{false, false, true, false, false, true}},
		{"le numeric", Le(index.Float(1)), Mask{false, false, false, false, false, true}},
		{"contains", Contains("an"), Mask{false, true, false, false, false, false}},
		{"startswith", StartsWith("app"), Mask{true, false, false, false, false, false}},
		{"endswith", EndsWith("a"), Mask{false, true, false, false, false, false}},
		{"in list", InList(index.String("apple"), index.String("5")), Mask{true, false, true, false, false, false}},
		{"not in list", NotInList(index.String("apple"), index.String("banana")), Mask{false, false, true, true, false, true}},
		{"is null", IsNull(), Mask{false, false, false, false, true, false}},
		{"is not null", IsNotNull(), Mask{true, true, true, true, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalMask(t, tt.p, tbl))
		})
	}
}

func TestColumnPredicateCoercion(t *testing.T) {
	t.Run("string comparison coerces numbers", func(t *testing.T) {
		tbl := valueTable(t, index.Int(42), index.String("42"))
		mask := evalMask(t, Eq(index.String("42")), tbl)
		assert.Equal(t, Mask{true, true}, mask)
	})

	t.Run("numeric comparison parses strings", func(t *testing.T) {
		tbl := valueTable(t, index.String("10"), index.String("many"), index.Int(3))
		mask := evalMask(t, Gt(index.Int(5)), tbl)
		// "many" fails the float coercion, becomes null, matches nothing.
		assert.Equal(t, Mask{true, false, false}, mask)
	})

	t.Run("substring ops force string semantics", func(t *testing.T) {
		tbl := valueTable(t, index.Int(1234), index.String("x234y"))
		mask := evalMask(t, Val(index.Int(234), OpContains), tbl)
		assert.Equal(t, Mask{true, true}, mask)
	})

	t.Run("bool comparison", func(t *testing.T) {
		tbl := valueTable(t, index.Bool(true), index.String("true"), index.String("banana"), index.Int(0))
		mask := evalMask(t, Eq(index.Bool(true)), tbl)
		assert.Equal(t, Mask{true, true, false, false}, mask)
	})
}

func TestColumnPredicateMissingColumn(t *testing.T) {
	tbl := valueTable(t, index.Int(1), index.Int(2))
	p := &ColumnPredicate{Column: "no_such_column", Op: OpEq, Value: index.Int(1)}
	mask := evalMask(t, p, tbl)
	assert.Equal(t, 0, mask.Count(), "missing column matches nothing")
}

func TestColumnPredicateNullNeverMatches(t *testing.T) {
	tbl := valueTable(t, index.Null(), index.Null())
	for _, p := range []Predicate{
		Eq(index.Null()),
		Neq(index.String("x")),
		Gt(index.Int(0)),
		Contains(""),
	} {
		mask := evalMask(t, p, tbl)
		assert.Equal(t, 0, mask.Count(), "null must not satisfy %T", p)
	}
}

func TestColumnPredicateCustom(t *testing.T) {
	tbl := valueTable(t, index.String("short"), index.String("a much longer value"), index.Null())
	p := Custom(func(v index.Value) bool {
		s, _ := v.AsString()
		return len(s) > 10
	})
	mask := evalMask(t, p, tbl)
	assert.Equal(t, Mask{false, true, false}, mask)
}

func TestColumnPredicateCustomRequiresFn(t *testing.T) {
	tbl := valueTable(t, index.Int(1))
	p := &ColumnPredicate{Column: index.ColValue, Op: OpCustom}
	_, err := p.Evaluate(tbl)
	assert.Error(t, err)
}

func TestColumnPredicateUnknownOperator(t *testing.T) {
	tbl := valueTable(t, index.Int(1))
	p := &ColumnPredicate{Column: index.ColValue, Op: "regex", Value: index.String(".*")}
	_, err := p.Evaluate(tbl)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperator)
	assert.True(t, strings.Contains(err.Error(), "regex"))
}

func TestColumnPredicateLexicographicOrder(t *testing.T) {
	tbl := valueTable(t, index.String("alpha"), index.String("omega"))
	mask := evalMask(t, Lt(index.String("beta")), tbl)
	assert.Equal(t, Mask{true, false}, mask)
}
