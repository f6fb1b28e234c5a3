package query

import "github.com/dakoda-project/dakoda-go/index"

// CompositeKind selects the boolean connective of a CompositePredicate.
type CompositeKind string

const (
	// KindAnd combines children with logical AND.
	KindAnd CompositeKind = "and"
	// KindOr combines children with logical OR.
	KindOr CompositeKind = "or"
)

// CompositePredicate combines zero or more child predicates with AND or OR.
//
// The identity of the empty composite is true for AND and false for OR, so
// callers can fold predicates into a possibly-empty child list without
// special-casing: And() is a no-op filter, Or() selects nothing.
type CompositePredicate struct {
	Children []Predicate
	Kind     CompositeKind
}

// And builds a conjunction of the given predicates.
func And(ps ...Predicate) *CompositePredicate {
	return &CompositePredicate{Children: ps, Kind: KindAnd}
}

// Or builds a disjunction of the given predicates.
func Or(ps ...Predicate) *CompositePredicate {
	return &CompositePredicate{Children: ps, Kind: KindOr}
}

// Evaluate implements Predicate.
func (p *CompositePredicate) Evaluate(t *index.Table) (Mask, error) {
	kind := p.Kind
	if kind != KindOr {
		kind = KindAnd
	}

	result := allMask(t.Len(), kind == KindAnd)
	for _, child := range p.Children {
		mask, err := child.Evaluate(t)
		if err != nil {
			return nil, err
		}
		if kind == KindAnd {
			result = result.And(mask)
		} else {
			result = result.Or(mask)
		}
	}
	return result, nil
}

// NotPredicate negates its child.
type NotPredicate struct {
	Child Predicate
}

// Not builds the complement of p.
func Not(p Predicate) *NotPredicate {
	return &NotPredicate{Child: p}
}

// Evaluate implements Predicate.
func (p *NotPredicate) Evaluate(t *index.Table) (Mask, error) {
	mask, err := p.Child.Evaluate(t)
	if err != nil {
		return nil, err
	}
	return mask.Not(), nil
}

// TruePredicate matches every row. It is the identity element for AND.
type TruePredicate struct{}

// True returns a predicate matching every row.
func True() TruePredicate { return TruePredicate{} }

// Evaluate implements Predicate.
func (TruePredicate) Evaluate(t *index.Table) (Mask, error) {
	return allMask(t.Len(), true), nil
}

// FalsePredicate matches no row. It is the identity element for OR.
type FalsePredicate struct{}

// False returns a predicate matching no row.
func False() FalsePredicate { return FalsePredicate{} }

// Evaluate implements Predicate.
func (FalsePredicate) Evaluate(t *index.Table) (Mask, error) {
	return allMask(t.Len(), false), nil
}
