package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakoda-project/dakoda-go/blobstore"
	"github.com/dakoda-project/dakoda-go/index"
)

// annotationTable mimics the shape the annotation indexer produces.
func annotationTable(t *testing.T) *index.Table {
	t.Helper()
	tbl := index.NewIndexTable()
	rows := [][]index.Value{
		{index.Int(0), index.String("learner"), index.String("Token"), index.String("coveredText"), index.String("Das")},
		{index.Int(0), index.String("learner"), index.String("POS"), index.String("PosValue"), index.String("ART")},
		{index.Int(1), index.String("target_hypothesis"), index.String("Lemma"), index.String("value"), index.String("haben")},
	}
	for _, r := range rows {
		require.NoError(t, tbl.AppendRow(r...))
	}
	return tbl
}

// metadataTable mimics the shape the metadata indexer produces: null view
// and type, mixed value kinds.
func metadataTable(t *testing.T) *index.Table {
	t.Helper()
	tbl := index.NewIndexTable()
	rows := [][]index.Value{
		{index.Int(0), index.Null(), index.Null(), index.String("corpus_admin_acronym"), index.String("SWIKO")},
		{index.Int(0), index.Null(), index.Null(), index.String("text_tokenCount"), index.Int(243)},
		{index.Int(1), index.Null(), index.Null(), index.String("learner_lCount"), index.Float(2)},
		{index.Int(1), index.Null(), index.Null(), index.String("learner_multipleL1"), index.Bool(true)},
	}
	for _, r := range rows {
		require.NoError(t, tbl.AppendRow(r...))
	}
	return tbl
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tables := map[string]*index.Table{
		"annotation": annotationTable(t),
		"metadata":   metadataTable(t),
		"empty":      index.NewIndexTable(),
	}
	compressions := map[string]CompressionType{
		"none": CompressionNone,
		"lz4":  CompressionLZ4,
		"zstd": CompressionZSTD,
	}

	for tname, tbl := range tables {
		for cname, compression := range compressions {
			t.Run(tname+"/"+cname, func(t *testing.T) {
				data, err := EncodeTable(tbl, compression)
				require.NoError(t, err)

				back, err := DecodeTable(data)
				require.NoError(t, err)
				assert.True(t, tbl.Equal(back), "decoded table differs")
			})
		}
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	data, err := EncodeTable(annotationTable(t), CompressionNone)
	require.NoError(t, err)

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[0] = 'X'
		_, err := DecodeTable(bad)
		assert.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("unknown version", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[4] = 99
		_, err := DecodeTable(bad)
		assert.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("payload bit flip", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[len(bad)/2] ^= 0xFF
		_, err := DecodeTable(bad)
		assert.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeTable(data[:5])
		assert.ErrorIs(t, err, ErrBadFormat)
	})
}

func TestIndexCache(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	c := New(store, ".index", CompressionLZ4)

	cached, err := c.IsCached(ctx, "cas")
	require.NoError(t, err)
	assert.False(t, cached)

	_, err = c.Read(ctx, "cas")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	tbl := annotationTable(t)
	require.NoError(t, c.Write(ctx, "cas", tbl))

	cached, err = c.IsCached(ctx, "cas")
	require.NoError(t, err)
	assert.True(t, cached)

	back, err := c.Read(ctx, "cas")
	require.NoError(t, err)
	assert.True(t, tbl.Equal(back))

	// Overwrite is unconditional.
	require.NoError(t, c.Write(ctx, "cas", metadataTable(t)))
	back, err = c.Read(ctx, "cas")
	require.NoError(t, err)
	assert.True(t, metadataTable(t).Equal(back))

	require.NoError(t, c.Invalidate(ctx, "cas"))
	cached, err = c.IsCached(ctx, "cas")
	require.NoError(t, err)
	assert.False(t, cached)

	assert.NoError(t, c.Invalidate(ctx, "cas"), "invalidating a missing entry is fine")
}

func TestIndexCacheLocalStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())
	c := New(store, ".index", CompressionZSTD)

	tbl := metadataTable(t)
	require.NoError(t, c.Write(ctx, "meta", tbl))

	back, err := c.Read(ctx, "meta")
	require.NoError(t, err)
	assert.True(t, tbl.Equal(back))
}
