package dakoda

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dakoda-project/dakoda-go/annot"
	"github.com/dakoda-project/dakoda-go/index"
)

// Indexer turns documents into index tables. Both methods emit the
// canonical index schema; IndexCorpus additionally tags every row with the
// document's 0-based ordinal in the idx column, while IndexDocument leaves
// idx null.
type Indexer interface {
	IndexDocument(ctx context.Context, d *Document) (*index.Table, error)
	IndexCorpus(ctx context.Context, c *Corpus) (*index.Table, error)
}

// AnnotationIndexer extracts one row per annotation instance: for every
// registered view alias and every indexed type, the annotation's
// designated feature value.
type AnnotationIndexer struct{}

// IndexDocument implements Indexer.
func (ix *AnnotationIndexer) IndexDocument(ctx context.Context, d *Document) (*index.Table, error) {
	return ix.indexDocument(ctx, d, index.Null())
}

// IndexCorpus implements Indexer.
func (ix *AnnotationIndexer) IndexCorpus(ctx context.Context, c *Corpus) (*index.Table, error) {
	return indexCorpus(ctx, c, ix.indexDocument)
}

func (ix *AnnotationIndexer) indexDocument(ctx context.Context, d *Document, idxVal index.Value) (*index.Table, error) {
	store, err := d.Annotations(ctx)
	if err != nil {
		return nil, err
	}

	t := index.NewIndexTable()
	if store == nil {
		return t, nil
	}

	for _, alias := range annot.AliasOrder {
		view, ok := store.ViewByAlias(alias)
		if !ok {
			// A document without this view contributes zero rows for it.
			continue
		}
		for _, typeName := range annot.IndexedTypes {
			field := annot.TypeToField[typeName]
			for _, a := range view.Select(typeName) {
				value := index.Null()
				if s, ok := view.Value(a); ok {
					value = index.String(s)
				}
				err := t.AppendRow(
					idxVal,
					index.String(alias),
					index.String(annot.ShortName(typeName)),
					index.String(field),
					value,
				)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return t, nil
}

// MetadataIndexer flattens each document's metadata record into one row
// per populated leaf. The view and type columns are null for metadata
// rows; the field column holds the scheme element name.
type MetadataIndexer struct{}

// IndexDocument implements Indexer.
func (ix *MetadataIndexer) IndexDocument(ctx context.Context, d *Document) (*index.Table, error) {
	return ix.indexDocument(ctx, d, index.Null())
}

// IndexCorpus implements Indexer. A document whose metadata cannot be
// loaded fails the whole call: silently skipping a document would leave a
// corrupt index behind a cache file.
func (ix *MetadataIndexer) IndexCorpus(ctx context.Context, c *Corpus) (*index.Table, error) {
	return indexCorpus(ctx, c, ix.indexDocument)
}

func (ix *MetadataIndexer) indexDocument(ctx context.Context, d *Document, idxVal index.Value) (*index.Table, error) {
	rec, err := d.Meta(ctx)
	if err != nil {
		return nil, err
	}

	t := index.NewIndexTable()
	var appendErr error
	rec.Flatten(func(field string, v index.Value) {
		if appendErr != nil {
			return
		}
		appendErr = t.AppendRow(idxVal, index.Null(), index.Null(), index.String(field), v)
	})
	if appendErr != nil {
		return nil, appendErr
	}
	return t, nil
}

// indexCorpus runs the per-document index function over every document
// with bounded concurrency and concatenates the results strictly in
// document order, so the output is identical to serial indexing.
func indexCorpus(ctx context.Context, c *Corpus,
	fn func(ctx context.Context, d *Document, idxVal index.Value) (*index.Table, error),
) (*index.Table, error) {
	tables := make([]*index.Table, len(c.docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, doc := range c.docs {
		g.Go(func() error {
			if c.limiter != nil {
				if err := c.limiter.Wait(gctx); err != nil {
					return err
				}
			}
			t, err := fn(gctx, doc, index.Int(int64(i)))
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := index.NewIndexTable()
	for _, t := range tables {
		if err := out.Append(t); err != nil {
			return nil, err
		}
	}
	return out, nil
}
