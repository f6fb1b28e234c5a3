// Package dakoda provides structured, queryable access to learner corpora:
// documents with layered annotation views and nested structured metadata,
// indexed into flat tables and filtered with composable predicates.
//
// # Quick Start
//
//	ctx := context.Background()
//	corpus := dakoda.NewCorpus(source)
//
//	// Documents from the learner view containing a Stage=SVO annotation.
//	p := query.And(
//		query.View("learner"),
//		query.Annotation("Stage"),
//		query.Eq(index.String("SVO")),
//	)
//	docs, _ := corpus.Filter(ctx, p)
//
//	// Documents with more than 100 tokens.
//	long := query.Count(query.Annotation("Token"), query.OpGt, index.Int(100))
//	docs, _ = corpus.FilterSubset(ctx, long, dakoda.SubsetCAS)
//
// # Index subsets
//
// A corpus maintains two index tables: SubsetCAS with one row per
// annotation instance and SubsetMeta with one row per flattened metadata
// leaf. Both share the schema (idx, view, type, field, value). Indexes
// build lazily on first query, are memoized, and persist through the
// index cache (local by default, S3/MinIO via options), so the build cost
// is paid once per corpus.
//
// # Sources
//
// Documents come from a Source, which owns the physical corpus format.
// MemorySource builds corpora programmatically; persistent sources load
// annotation stores and metadata sidecars on demand, and the Document
// handles stay lazy until content is touched.
package dakoda
