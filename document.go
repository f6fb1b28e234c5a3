package dakoda

import (
	"context"
	"fmt"
	"sync"

	"github.com/dakoda-project/dakoda-go/annot"
	"github.com/dakoda-project/dakoda-go/meta"
)

// LearnerView is the alias of the view holding the learner's own text.
const LearnerView = "learner"

// Document is a lazy handle to one corpus document. Content is loaded from
// the source on first access and kept for the handle's lifetime; handles
// are safe for concurrent use.
type Document struct {
	id      string
	ordinal int
	corpus  *Corpus

	mu      sync.Mutex
	content *Content
}

// ID returns the source document ID.
func (d *Document) ID() string { return d.id }

// Ordinal returns the document's 0-based position in the corpus. Index
// tables reference documents by this ordinal.
func (d *Document) Ordinal() int { return d.ordinal }

func (d *Document) load(ctx context.Context) (*Content, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.content != nil {
		return d.content, nil
	}
	content, err := d.corpus.source.Load(ctx, d.id)
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", d.id, err)
	}
	d.content = content
	return content, nil
}

// Annotations returns the document's annotation store.
func (d *Document) Annotations(ctx context.Context) (*annot.Store, error) {
	content, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	return content.Annotations, nil
}

// Meta returns the document's metadata record.
func (d *Document) Meta(ctx context.Context) (*meta.Record, error) {
	content, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	return content.Meta, nil
}

// View resolves a view alias ("learner", "target_hypothesis") to the
// document's view.
func (d *Document) View(ctx context.Context, alias string) (*annot.View, error) {
	store, err := d.Annotations(ctx)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: document %q has no annotations", ErrUnknownView, d.id)
	}
	view, ok := store.ViewByAlias(alias)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, alias)
	}
	return view, nil
}

// Text returns the learner view's text.
func (d *Document) Text(ctx context.Context) (string, error) {
	view, err := d.View(ctx, LearnerView)
	if err != nil {
		return "", err
	}
	return view.Text, nil
}
