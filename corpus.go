package dakoda

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/dakoda-project/dakoda-go/blobstore"
	"github.com/dakoda-project/dakoda-go/cache"
	"github.com/dakoda-project/dakoda-go/index"
	"github.com/dakoda-project/dakoda-go/query"
)

// Subset names one of the index tables a corpus maintains.
type Subset string

const (
	// SubsetCAS is the annotation index: one row per annotation instance.
	SubsetCAS Subset = "cas"
	// SubsetMeta is the metadata index: one row per flattened metadata leaf.
	SubsetMeta Subset = "meta"
)

// Subsets lists all index subsets in their canonical order.
var Subsets = []Subset{SubsetCAS, SubsetMeta}

// cacheScope is the key prefix index cache files live under.
const cacheScope = ".index"

// Corpus is a queryable collection of documents backed by a Source.
//
// Index tables are built lazily per subset, memoized for the corpus
// lifetime, and persisted through the index cache so later processes skip
// the build. All methods are safe for concurrent use.
type Corpus struct {
	source   Source
	docs     []*Document
	byID     map[string]*Document
	logger   *Logger
	cache    *cache.IndexCache
	indexers map[Subset]Indexer
	workers  int
	limiter  *rate.Limiter

	mu      sync.RWMutex
	indexes map[Subset]*index.Table
	group   singleflight.Group
}

// NewCorpus creates a corpus over the given source. Document handles are
// created eagerly from the source's ID list; content stays lazy.
func NewCorpus(source Source, opts ...Option) *Corpus {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Corpus{
		source: source,
		byID:   make(map[string]*Document),
		logger: o.logger.WithCorpus(source.Name()),
		indexers: map[Subset]Indexer{
			SubsetCAS:  &AnnotationIndexer{},
			SubsetMeta: &MetadataIndexer{},
		},
		workers: o.indexWorkers,
		limiter: o.limiter,
		indexes: make(map[Subset]*index.Table),
	}

	for i, id := range source.DocumentIDs() {
		doc := &Document{id: id, ordinal: i, corpus: c}
		c.docs = append(c.docs, doc)
		c.byID[id] = doc
	}

	if !o.noCache {
		store := o.cacheStore
		if store == nil {
			store = blobstore.NewLocalStore(source.Location())
		}
		c.cache = cache.New(store, cacheScope, o.compression)
	}
	return c
}

// Name returns the corpus name.
func (c *Corpus) Name() string { return c.source.Name() }

// Location returns the source location.
func (c *Corpus) Location() string { return c.source.Location() }

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.docs) }

// Docs returns all document handles in ordinal order. The slice is shared;
// do not modify it.
func (c *Corpus) Docs() []*Document { return c.docs }

// Doc returns the document with the given ordinal.
func (c *Corpus) Doc(ordinal int) (*Document, error) {
	if ordinal < 0 || ordinal >= len(c.docs) {
		return nil, fmt.Errorf("dakoda: document ordinal %d out of range [0,%d)", ordinal, len(c.docs))
	}
	return c.docs[ordinal], nil
}

// DocByID returns the document with the given source ID.
func (c *Corpus) DocByID(id string) (*Document, error) {
	doc, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, id)
	}
	return doc, nil
}

// RandomDoc returns a uniformly random document, for corpus exploration.
func (c *Corpus) RandomDoc() (*Document, error) {
	if len(c.docs) == 0 {
		return nil, ErrNoDocuments
	}
	return c.docs[rand.IntN(len(c.docs))], nil
}

// Index returns the index table for the subset, building it on first use.
// Concurrent first accesses build once; the result is memoized for the
// corpus lifetime and persisted through the cache when one is configured.
func (c *Corpus) Index(ctx context.Context, subset Subset) (*index.Table, error) {
	if _, ok := c.indexers[subset]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubset, subset)
	}

	c.mu.RLock()
	t, ok := c.indexes[subset]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := c.group.Do(string(subset), func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// finished between the memo miss and here.
		c.mu.RLock()
		t, ok := c.indexes[subset]
		c.mu.RUnlock()
		if ok {
			return t, nil
		}

		t, err := c.loadOrBuild(ctx, subset)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.indexes[subset] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*index.Table), nil
}

// Rebuild forces a fresh build of the subset's index, replacing both the
// memoized table and the cache file. It is the escape hatch for corpora
// mutated in place, since the cache has no staleness detection.
func (c *Corpus) Rebuild(ctx context.Context, subset Subset) (*index.Table, error) {
	if _, ok := c.indexers[subset]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubset, subset)
	}

	t, err := c.build(ctx, subset)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.indexes[subset] = t
	c.mu.Unlock()
	return t, nil
}

// loadOrBuild tries the cache first and falls back to building. Cache
// failures are logged and never fail the call.
func (c *Corpus) loadOrBuild(ctx context.Context, subset Subset) (*index.Table, error) {
	if c.cache != nil {
		cached, err := c.cache.IsCached(ctx, string(subset))
		if err != nil {
			c.logger.LogCacheMiss(ctx, subset, err)
		} else if cached {
			t, err := c.cache.Read(ctx, string(subset))
			if err != nil {
				c.logger.LogCacheMiss(ctx, subset, err)
			} else {
				c.logger.LogCacheHit(ctx, subset, t.Len())
				return t, nil
			}
		} else {
			c.logger.LogCacheMiss(ctx, subset, nil)
		}
	}
	return c.build(ctx, subset)
}

func (c *Corpus) build(ctx context.Context, subset Subset) (*index.Table, error) {
	started := time.Now()
	t, err := c.indexers[subset].IndexCorpus(ctx, c)
	c.logger.LogIndexBuild(ctx, subset, tableRows(t), time.Since(started), err)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		werr := c.cache.Write(ctx, string(subset), t)
		c.logger.LogCacheWrite(ctx, subset, werr)
	}
	return t, nil
}

func tableRows(t *index.Table) int {
	if t == nil {
		return 0
	}
	return t.Len()
}

// Filter returns the documents matching p in ANY index subset, in ordinal
// order. A predicate touching only metadata fields simply matches nothing
// in the annotation subset, so unrestricted queries need no subset hint.
func (c *Corpus) Filter(ctx context.Context, p query.Predicate) ([]*Document, error) {
	matched := roaring.New()
	for _, subset := range Subsets {
		t, err := c.Index(ctx, subset)
		if err != nil {
			return nil, err
		}
		set, err := query.DocumentSet(p, t)
		if err != nil {
			return nil, err
		}
		matched.Or(set)
	}
	return c.resolve(matched), nil
}

// FilterSubset returns the documents matching p in one index subset, in
// ordinal order.
func (c *Corpus) FilterSubset(ctx context.Context, p query.Predicate, subset Subset) ([]*Document, error) {
	t, err := c.Index(ctx, subset)
	if err != nil {
		return nil, err
	}
	set, err := query.DocumentSet(p, t)
	if err != nil {
		return nil, err
	}
	return c.resolve(set), nil
}

func (c *Corpus) resolve(set *roaring.Bitmap) []*Document {
	docs := make([]*Document, 0, set.GetCardinality())
	it := set.Iterator()
	for it.HasNext() {
		ord := int(it.Next())
		if ord < len(c.docs) {
			docs = append(docs, c.docs[ord])
		}
	}
	return docs
}
