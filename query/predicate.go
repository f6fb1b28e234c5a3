package query

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dakoda-project/dakoda-go/index"
)

// Mask is a row-aligned boolean selection over an index table. Every
// predicate evaluation yields a mask of exactly table length.
type Mask []bool

// Count returns the number of selected rows.
func (m Mask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// And intersects two masks of equal length into a new mask.
func (m Mask) And(other Mask) Mask {
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out
}

// Or unions two masks of equal length into a new mask.
func (m Mask) Or(other Mask) Mask {
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] || other[i]
	}
	return out
}

// Not complements the mask into a new mask.
func (m Mask) Not() Mask {
	out := make(Mask, len(m))
	for i := range m {
		out[i] = !m[i]
	}
	return out
}

func allMask(n int, v bool) Mask {
	m := make(Mask, n)
	if v {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// Predicate is a node in a boolean expression tree over index tables.
//
// Predicates are immutable value objects: combining them with And, Or and
// Not builds a new tree and never mutates operands, so they are safe to
// share across concurrent evaluations.
type Predicate interface {
	// Evaluate returns a boolean mask selecting the matching rows of t.
	// The mask length always equals t.Len().
	Evaluate(t *index.Table) (Mask, error)
}

// Filter returns the rows of t matching p.
func Filter(p Predicate, t *index.Table) (*index.Table, error) {
	mask, err := p.Evaluate(t)
	if err != nil {
		return nil, err
	}
	return t.Select(mask)
}

// Documents returns the sorted distinct document ordinals (the idx column)
// among the rows matching p. The result is an empty, non-nil slice when
// nothing matches.
func Documents(p Predicate, t *index.Table) ([]int, error) {
	set, err := DocumentSet(p, t)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, set.GetCardinality())
	it := set.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out, nil
}

// DocumentSet returns the matching document ordinals as a roaring bitmap.
// Callers that query several index subsets union these sets cheaply.
func DocumentSet(p Predicate, t *index.Table) (*roaring.Bitmap, error) {
	mask, err := p.Evaluate(t)
	if err != nil {
		return nil, err
	}
	set := roaring.New()
	col, ok := t.Column(index.ColIdx)
	if !ok {
		return set, nil
	}
	for i, selected := range mask {
		if !selected {
			continue
		}
		if ord, ok := col[i].AsInt64(); ok && ord >= 0 {
			set.Add(uint32(ord))
		}
	}
	return set, nil
}
