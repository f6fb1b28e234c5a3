package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortName(t *testing.T) {
	assert.Equal(t, "Token", ShortName(TypeToken))
	assert.Equal(t, "POS", ShortName(TypePOS))
	assert.Equal(t, "Stage", ShortName(TypeStage))
	assert.Equal(t, "Plain", ShortName("Plain"))
}

func TestViewCoveredText(t *testing.T) {
	v := NewView("ctok", "Das Haus ist groß.")

	assert.Equal(t, "Haus", v.CoveredText(Annotation{Type: TypeToken, Begin: 4, End: 8}))
	assert.Equal(t, "", v.CoveredText(Annotation{Begin: 8, End: 4}), "inverted span")
	assert.Equal(t, "groß.", v.CoveredText(Annotation{Begin: 13, End: 999}), "end clamps to text")
}

func TestViewValue(t *testing.T) {
	v := NewView("ctok", "Das Haus")

	t.Run("covered text types", func(t *testing.T) {
		got, ok := v.Value(Annotation{Type: TypeToken, Begin: 4, End: 8})
		require.True(t, ok)
		assert.Equal(t, "Haus", got)
	})

	t.Run("feature types", func(t *testing.T) {
		a := Annotation{Type: TypePOS, Begin: 4, End: 8, Feats: map[string]string{"PosValue": "NN"}}
		got, ok := v.Value(a)
		require.True(t, ok)
		assert.Equal(t, "NN", got)
	})

	t.Run("missing feature", func(t *testing.T) {
		_, ok := v.Value(Annotation{Type: TypeLemma, Begin: 0, End: 3})
		assert.False(t, ok)
	})

	t.Run("unregistered type", func(t *testing.T) {
		_, ok := v.Value(Annotation{Type: TypeDependency})
		assert.False(t, ok)
	})
}

func TestViewAccessors(t *testing.T) {
	v := NewView("ctok", "Das Haus")
	v.Add(Annotation{Type: TypeToken, Begin: 0, End: 3})
	v.Add(Annotation{Type: TypeToken, Begin: 4, End: 8})
	v.Add(Annotation{Type: TypeSentence, Begin: 0, End: 8})
	v.Add(Annotation{Type: TypeStage, Begin: 0, End: 8, Feats: map[string]string{"name": "SVO"}})

	assert.Len(t, v.Tokens(), 2)
	assert.Len(t, v.Sentences(), 1)
	assert.Len(t, v.Stages(), 1)
	assert.Empty(t, v.Lemmas())
	assert.Empty(t, v.POSTags())
}

func TestStoreAliases(t *testing.T) {
	s := NewStore()
	s.AddView(NewView("ctok", "learner text"))
	s.AddView(NewView("mixtral_th1", "hypothesis text"))

	learner, ok := s.ViewByAlias("learner")
	require.True(t, ok)
	assert.Equal(t, "learner text", learner.Text)

	th, ok := s.ViewByAlias("target_hypothesis")
	require.True(t, ok)
	assert.Equal(t, "hypothesis text", th.Text)

	_, ok = s.ViewByAlias("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"ctok", "mixtral_th1"}, s.ViewNames())
}

func TestIndexedTypesHaveDesignatedFields(t *testing.T) {
	for _, typeName := range IndexedTypes {
		_, ok := TypeToField[typeName]
		assert.True(t, ok, "indexed type %s needs a designated field", typeName)
	}
}
