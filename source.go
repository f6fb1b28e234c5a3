package dakoda

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dakoda-project/dakoda-go/annot"
	"github.com/dakoda-project/dakoda-go/meta"
)

// Content is everything a Source loads for one document: the annotation
// store and the structured metadata record.
type Content struct {
	Annotations *annot.Store
	Meta        *meta.Record
}

// Source supplies documents to a Corpus. Implementations own the physical
// format (stand-off annotation files, sidecar metadata JSON); the corpus
// layer only sees loaded Content.
//
// DocumentIDs must be stable and sorted: document ordinals, and with them
// every persisted index, derive from this order.
type Source interface {
	// Name identifies the corpus, e.g. "swiko".
	Name() string
	// Location is where the corpus lives: a directory path for local
	// sources, a URI otherwise. The default index cache scope derives
	// from it.
	Location() string
	// DocumentIDs returns the sorted IDs of all documents.
	DocumentIDs() []string
	// Load loads one document's content.
	Load(ctx context.Context, id string) (*Content, error)
}

// MemorySource is an in-memory Source for tests and programmatically
// built corpora. Safe for concurrent use once populated.
type MemorySource struct {
	name string

	mu   sync.RWMutex
	docs map[string]*Content
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource(name string) *MemorySource {
	return &MemorySource{name: name, docs: make(map[string]*Content)}
}

// Add registers a document, replacing any previous content under the same
// ID.
func (s *MemorySource) Add(id string, content *Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = content
}

// Name implements Source.
func (s *MemorySource) Name() string { return s.name }

// Location implements Source.
func (s *MemorySource) Location() string { return "memory://" + s.name }

// DocumentIDs implements Source.
func (s *MemorySource) DocumentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Load implements Source.
func (s *MemorySource) Load(_ context.Context, id string) (*Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, id)
	}
	return content, nil
}
