package index

import (
	"errors"
	"fmt"
	"slices"
)

// Column names of the index schema shared by every indexer.
const (
	ColIdx   = "idx"
	ColView  = "view"
	ColType  = "type"
	ColField = "field"
	ColValue = "value"
)

// Schema returns the index column names in their canonical order.
func Schema() []string {
	return []string{ColIdx, ColView, ColType, ColField, ColValue}
}

// ErrSchemaMismatch is returned when tables with different column sets are
// combined.
var ErrSchemaMismatch = errors.New("index: schema mismatch")

// Table is an immutable-once-built columnar table: ordered named columns of
// equal length. It is the unit the predicate engine evaluates against.
//
// A Table is not safe for concurrent mutation; once built it is treated as
// an immutable snapshot and may be shared across any number of concurrent
// evaluations.
type Table struct {
	names []string
	cols  map[string][]Value
}

// NewTable creates an empty table with the given column names.
func NewTable(names ...string) *Table {
	t := &Table{
		names: slices.Clone(names),
		cols:  make(map[string][]Value, len(names)),
	}
	for _, n := range t.names {
		t.cols[n] = nil
	}
	return t
}

// NewIndexTable creates an empty table with the canonical index schema.
func NewIndexTable() *Table {
	return NewTable(Schema()...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return slices.Clone(t.names)
}

// Column returns the named column. Missing columns report ok=false rather
// than an error: predicates over heterogeneous tables treat an absent
// column as matching nothing.
func (t *Table) Column(name string) ([]Value, bool) {
	col, ok := t.cols[name]
	return col, ok
}

// AppendRow appends one row. The number of values must match the column
// count, in column order.
func (t *Table) AppendRow(vals ...Value) error {
	if len(vals) != len(t.names) {
		return fmt.Errorf("index: row arity %d does not match %d columns", len(vals), len(t.names))
	}
	for i, n := range t.names {
		t.cols[n] = append(t.cols[n], vals[i])
	}
	return nil
}

// Append concatenates another table with the identical schema onto t.
func (t *Table) Append(other *Table) error {
	if !slices.Equal(t.names, other.names) {
		return fmt.Errorf("%w: %v vs %v", ErrSchemaMismatch, t.names, other.names)
	}
	for _, n := range t.names {
		t.cols[n] = append(t.cols[n], other.cols[n]...)
	}
	return nil
}

// Row returns the i-th row in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.names))
	for j, n := range t.names {
		row[j] = t.cols[n][i]
	}
	return row
}

// Select returns a new table holding the rows where mask is true. The mask
// must cover every row.
func (t *Table) Select(mask []bool) (*Table, error) {
	if len(mask) != t.Len() {
		return nil, fmt.Errorf("index: mask length %d does not match %d rows", len(mask), t.Len())
	}
	out := NewTable(t.names...)
	for i, keep := range mask {
		if !keep {
			continue
		}
		for _, n := range t.names {
			out.cols[n] = append(out.cols[n], t.cols[n][i])
		}
	}
	return out, nil
}

// Equal reports content equality: same columns in the same order, same
// rows. Unlike Value.Equal, two null cells compare equal here.
func (t *Table) Equal(other *Table) bool {
	if other == nil || !slices.Equal(t.names, other.names) || t.Len() != other.Len() {
		return false
	}
	for _, n := range t.names {
		a, b := t.cols[n], other.cols[n]
		for i := range a {
			if !cellEqual(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}

func cellEqual(a, b Value) bool {
	if a.IsNull() && b.IsNull() {
		return true
	}
	return a.Equal(b)
}
