package query

import (
	"errors"
	"fmt"
	"math"

	"github.com/dakoda-project/dakoda-go/index"
)

// AggFunc names a per-group aggregation function.
type AggFunc string

const (
	// AggCount counts the rows of a group, nulls included.
	AggCount AggFunc = "count"
	// AggSum sums the numeric values of a group. The sum over no values is 0.
	AggSum AggFunc = "sum"
	// AggMean averages the numeric values of a group.
	AggMean AggFunc = "mean"
	// AggMin takes the minimum numeric value of a group.
	AggMin AggFunc = "min"
	// AggMax takes the maximum numeric value of a group.
	AggMax AggFunc = "max"
	// AggStd is the sample standard deviation of a group.
	AggStd AggFunc = "std"
	// AggVar is the sample variance of a group.
	AggVar AggFunc = "var"
)

// ErrUnknownAggregate is returned when an AggregationPredicate names an
// aggregation function that does not exist.
var ErrUnknownAggregate = errors.New("query: unknown aggregation function")

// aggValueColumn names the synthetic column the threshold comparison reads.
const aggValueColumn = "agg_value"

// AggregationPredicate selects whole documents by a per-document aggregate.
//
// Evaluation runs in four steps: filter the table with Base, group the
// surviving rows by GroupBy, aggregate ValueColumn per group with Fn, and
// compare each group's aggregate against Threshold with Op. The final mask
// marks every row of the original table whose group passed, so the result
// selects documents, not individual rows.
//
// For every function except AggCount the value column is coerced to float
// and nulls are skipped. Groups whose aggregate is null (mean of nothing,
// std of fewer than two values) never pass.
type AggregationPredicate struct {
	// Base restricts which rows participate in the aggregation. A nil Base
	// aggregates over the whole table.
	Base Predicate
	Fn   AggFunc
	Op   Operator
	// Threshold is the comparison value for the aggregate.
	Threshold index.Value

	// GroupBy is the grouping column; it defaults to the document ordinal
	// column "idx".
	GroupBy string
	// ValueColumn is the aggregated column; it defaults to "value".
	ValueColumn string
}

// Evaluate implements Predicate.
func (p *AggregationPredicate) Evaluate(t *index.Table) (Mask, error) {
	if err := validAggFunc(p.Fn); err != nil {
		return nil, err
	}
	// Validate the threshold operator before any data-dependent early
	// return, so a bad operator name always errors.
	threshold := &ColumnPredicate{Column: aggValueColumn, Op: p.Op, Value: p.Threshold}
	if err := threshold.validate(); err != nil {
		return nil, err
	}

	groupBy := p.GroupBy
	if groupBy == "" {
		groupBy = index.ColIdx
	}
	valueCol := p.ValueColumn
	if valueCol == "" {
		valueCol = index.ColValue
	}

	filtered := t
	if p.Base != nil {
		var err error
		filtered, err = Filter(p.Base, t)
		if err != nil {
			return nil, err
		}
	}
	if filtered.Len() == 0 {
		return allMask(t.Len(), false), nil
	}

	groupCol, ok := filtered.Column(groupBy)
	if !ok {
		return allMask(t.Len(), false), nil
	}
	valCol, ok := filtered.Column(valueCol)
	if !ok {
		return allMask(t.Len(), false), nil
	}

	// Group in first-seen order so the threshold table is deterministic.
	type group struct {
		key    index.Value
		count  int
		values []float64
	}
	var order []*group
	byKey := make(map[string]*group)
	for i, key := range groupCol {
		g, seen := byKey[key.Key()]
		if !seen {
			g = &group{key: key}
			byKey[key.Key()] = g
			order = append(order, g)
		}
		g.count++
		if p.Fn != AggCount {
			if f, ok := index.CoerceFloat(valCol[i]); ok {
				g.values = append(g.values, f)
			}
		}
	}

	agg := index.NewTable(groupBy, aggValueColumn)
	for _, g := range order {
		if err := agg.AppendRow(g.key, aggregate(p.Fn, g.count, g.values)); err != nil {
			return nil, err
		}
	}

	passMask, err := threshold.Evaluate(agg)
	if err != nil {
		return nil, err
	}

	passing := make(map[string]bool, passMask.Count())
	for i, pass := range passMask {
		if pass {
			passing[order[i].key.Key()] = true
		}
	}

	mask := make(Mask, t.Len())
	origGroup, ok := t.Column(groupBy)
	if !ok {
		return mask, nil
	}
	for i, key := range origGroup {
		mask[i] = passing[key.Key()]
	}
	return mask, nil
}

func validAggFunc(fn AggFunc) error {
	switch fn {
	case AggCount, AggSum, AggMean, AggMin, AggMax, AggStd, AggVar:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAggregate, fn)
	}
}

// aggregate computes one group's aggregate. count covers every row of the
// group; the other functions see only the values that coerced to float.
func aggregate(fn AggFunc, count int, values []float64) index.Value {
	switch fn {
	case AggCount:
		return index.Int(int64(count))
	case AggSum:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return index.Float(sum)
	case AggMean:
		if len(values) == 0 {
			return index.Null()
		}
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return index.Float(sum / float64(len(values)))
	case AggMin:
		if len(values) == 0 {
			return index.Null()
		}
		m := values[0]
		for _, v := range values[1:] {
			m = math.Min(m, v)
		}
		return index.Float(m)
	case AggMax:
		if len(values) == 0 {
			return index.Null()
		}
		m := values[0]
		for _, v := range values[1:] {
			m = math.Max(m, v)
		}
		return index.Float(m)
	case AggStd:
		v, ok := sampleVariance(values)
		if !ok {
			return index.Null()
		}
		return index.Float(math.Sqrt(v))
	case AggVar:
		v, ok := sampleVariance(values)
		if !ok {
			return index.Null()
		}
		return index.Float(v)
	}
	return index.Null()
}

// sampleVariance needs at least two values.
func sampleVariance(values []float64) (float64, bool) {
	n := len(values)
	if n < 2 {
		return 0, false
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return ss / float64(n-1), true
}
