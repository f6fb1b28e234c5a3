// Package testutil provides deterministic test data generation: a seeded,
// thread-safe RNG and synthetic index tables for property-style tests of
// the predicate algebra.
package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/dakoda-project/dakoda-go/index"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Value returns a random scalar cell: a mix of strings, ints, floats,
// bools and nulls, the shape a real value column has.
func (r *RNG) Value() index.Value {
	switch r.Intn(5) {
	case 0:
		return index.String("v" + strconv.Itoa(r.Intn(20)))
	case 1:
		return index.Int(int64(r.Intn(100)))
	case 2:
		return index.Float(r.Float64() * 100)
	case 3:
		return index.Bool(r.Intn(2) == 0)
	default:
		return index.Null()
	}
}

// IndexTable builds a random table with the canonical index schema: rows
// spread over docCount documents, with mixed-kind value cells.
func (r *RNG) IndexTable(rows, docCount int) *index.Table {
	t := index.NewIndexTable()
	views := []string{"learner", "target_hypothesis"}
	types := []string{"Token", "Lemma", "POS", "Sentence", "Stage"}
	fields := []string{"coveredText", "value", "PosValue", "name"}

	for i := 0; i < rows; i++ {
		view := index.Null()
		typ := index.Null()
		field := index.String("meta_field_" + strconv.Itoa(r.Intn(8)))
		if r.Intn(2) == 0 {
			view = index.String(views[r.Intn(len(views))])
			typ = index.String(types[r.Intn(len(types))])
			field = index.String(fields[r.Intn(len(fields))])
		}
		_ = t.AppendRow(
			index.Int(int64(r.Intn(docCount))),
			view,
			typ,
			field,
			r.Value(),
		)
	}
	return t
}
