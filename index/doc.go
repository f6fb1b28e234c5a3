// Package index defines the tabular representation the query engine
// evaluates against: a typed scalar Value, safe coercions between scalar
// kinds, and a columnar Table with the fixed index schema
// (idx, view, type, field, value).
//
// Each row of an index table describes one extracted fact about a document:
// either one annotation instance (view and type set, value holding the
// annotation's designated feature) or one flattened metadata leaf (view and
// type null, field holding the leaf's name).
//
// # Values
//
// Cells are a closed tagged union:
//
//   - index.String("VVFIN")
//   - index.Int(243)
//   - index.Float(0.95)
//   - index.Bool(true)
//   - index.Null()
//
// Because the value column mixes kinds, comparisons coerce cells to the
// kind of the comparison value first; cells that cannot convert become
// null and match nothing. See TargetKind and Coerce.
package index
