package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakoda-project/dakoda-go/index"
	"github.com/dakoda-project/dakoda-go/testutil"
)

func TestMaskOps(t *testing.T) {
	a := Mask{true, true, false, false}
	b := Mask{true, false, true, false}

	assert.Equal(t, Mask{true, false, false, false}, a.And(b))
	assert.Equal(t, Mask{true, true, true, false}, a.Or(b))
	assert.Equal(t, Mask{false, false, true, true}, a.Not())
	assert.Equal(t, 2, a.Count())
}

func TestFilter(t *testing.T) {
	tbl := valueTable(t, index.Int(1), index.Int(5), index.Int(9))

	filtered, err := Filter(Gt(index.Int(4)), tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Len())
	col, _ := filtered.Column(index.ColValue)
	assert.Equal(t, []index.Value{index.Int(5), index.Int(9)}, col)
}

func TestDocumentsSortedDistinct(t *testing.T) {
	tbl := index.NewIndexTable()
	for _, ord := range []int64{9, 2, 9, 2, 4} {
		require.NoError(t, tbl.AppendRow(index.Int(ord), index.Null(), index.Null(), index.String("f"), index.Int(1)))
	}

	docs, err := Documents(True(), tbl)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 9}, docs)
}

func TestDocumentsEmptyNonNil(t *testing.T) {
	tbl := valueTable(t, index.Int(1))
	docs, err := Documents(False(), tbl)
	require.NoError(t, err)
	require.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestDocumentSetUnion(t *testing.T) {
	a := valueTable(t, index.String("x"))
	b := index.NewIndexTable()
	require.NoError(t, b.AppendRow(index.Int(3), index.Null(), index.Null(), index.String("f"), index.String("x")))

	setA, err := DocumentSet(Eq(index.String("x")), a)
	require.NoError(t, err)
	setB, err := DocumentSet(Eq(index.String("x")), b)
	require.NoError(t, err)

	setA.Or(setB)
	assert.Equal(t, uint64(2), setA.GetCardinality())
	assert.True(t, setA.Contains(0))
	assert.True(t, setA.Contains(3))
}

func TestMaskLengthInvariant(t *testing.T) {
	rng := testutil.NewRNG(3)
	for trial := 0; trial < 10; trial++ {
		tbl := rng.IndexTable(rng.Intn(60), 6)
		for _, p := range []Predicate{
			True(), False(),
			Eq(index.String("v1")),
			And(View("learner"), Gt(index.Int(10))),
			Not(Field("meta_field_2")),
			Count(View("learner"), OpGe, index.Int(1)),
		} {
			mask, err := p.Evaluate(tbl)
			require.NoError(t, err)
			assert.Len(t, mask, tbl.Len())
		}
	}
}
