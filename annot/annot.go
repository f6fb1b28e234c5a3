// Package annot models the annotation side of a corpus document: named
// views over a text, stand-off annotations with character spans and
// features, and the registry of well-known annotation types.
//
// The package is a collaborator surface: it does not parse any stand-off
// format. Sources construct Stores however they obtain them; the in-memory
// builder here is what indexers and tests consume.
package annot

import "strings"

// Well-known annotation type names. These follow the DKPro Core type
// system used by the corpus pipeline; Stage is the corpus's own acquisition
// stage type.
const (
	TypeToken      = "de.tudarmstadt.ukp.dkpro.core.api.segmentation.type.Token"
	TypeLemma      = "de.tudarmstadt.ukp.dkpro.core.api.segmentation.type.Lemma"
	TypePOS        = "de.tudarmstadt.ukp.dkpro.core.api.lexmorph.type.pos.POS"
	TypeSentence   = "de.tudarmstadt.ukp.dkpro.core.api.segmentation.type.Sentence"
	TypeMorpheme   = "de.tudarmstadt.ukp.dkpro.core.api.lexmorph.type.morph.Morpheme"
	TypeDependency = "de.tudarmstadt.ukp.dkpro.core.api.syntax.type.dependency.Dependency"
	TypeStage      = "org.dakoda.Stage"
)

// FieldCoveredText is the pseudo-feature resolving to the text span an
// annotation covers rather than a stored feature.
const FieldCoveredText = "coveredText"

// TypeToField maps each indexed annotation type to its designated feature:
// the one feature whose value represents the annotation in the index.
var TypeToField = map[string]string{
	TypeToken:    FieldCoveredText,
	TypeLemma:    "value",
	TypePOS:      "PosValue",
	TypeSentence: FieldCoveredText,
	TypeStage:    "name",
}

// IndexedTypes fixes the order in which annotation types are indexed, so
// index tables are deterministic across runs.
var IndexedTypes = []string{
	TypeToken,
	TypeLemma,
	TypePOS,
	TypeSentence,
	TypeStage,
}

// ViewAliases maps the public view names queries use to the stored view
// names documents carry.
var ViewAliases = map[string]string{
	"learner":           "ctok",
	"target_hypothesis": "mixtral_th1",
}

// AliasOrder fixes the order in which view aliases are indexed.
var AliasOrder = []string{"learner", "target_hypothesis"}

// ShortName returns the unqualified type name, e.g. "Token" for the DKPro
// token type. Index tables store short names in their type column.
func ShortName(typeName string) string {
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}

// Annotation is one stand-off annotation: a typed character span with
// string features. Begin and End are byte offsets into the view text,
// half-open.
type Annotation struct {
	Type  string
	Begin int
	End   int
	Feats map[string]string
}

// Feat returns the named feature value.
func (a Annotation) Feat(name string) (string, bool) {
	v, ok := a.Feats[name]
	return v, ok
}
