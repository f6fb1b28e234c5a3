// Package query implements a composable predicate algebra over index
// tables: column comparisons with safe coercion, boolean composition, and
// aggregation predicates that select whole documents by per-document
// statistics.
//
// Predicates are built from small constructors and combined with And, Or
// and Not:
//
//	p := query.And(
//		query.View("learner"),
//		query.Annotation("Stage"),
//		query.Eq(index.String("SVO")),
//	)
//	docs, err := query.Documents(p, table)
//
// Evaluation is row-oriented: every predicate yields a boolean mask of
// table length, and Documents collapses a mask to the sorted distinct
// document ordinals it covers.
package query
