package annot

// View is one named layer of a document: a text plus the annotations
// standing off it, grouped by type. Views are built once by a Source and
// then only read, so a built View may be shared freely.
type View struct {
	Name string
	Text string

	anns map[string][]Annotation
}

// NewView creates an empty view over the given text.
func NewView(name, text string) *View {
	return &View{Name: name, Text: text, anns: make(map[string][]Annotation)}
}

// Add appends an annotation to the view, preserving insertion order within
// its type.
func (v *View) Add(a Annotation) {
	v.anns[a.Type] = append(v.anns[a.Type], a)
}

// Select returns the annotations of the given (fully qualified) type, in
// insertion order. A type the view does not have yields nil.
func (v *View) Select(typeName string) []Annotation {
	return v.anns[typeName]
}

// CoveredText returns the text span the annotation covers. Out-of-range
// spans clamp to the view text.
func (v *View) CoveredText(a Annotation) string {
	begin, end := a.Begin, a.End
	if begin < 0 {
		begin = 0
	}
	if end > len(v.Text) {
		end = len(v.Text)
	}
	if begin >= end {
		return ""
	}
	return v.Text[begin:end]
}

// Value resolves the annotation's designated feature per TypeToField:
// FieldCoveredText yields the covered span, anything else a feature
// lookup. Types without a registered designated feature report ok=false.
func (v *View) Value(a Annotation) (string, bool) {
	field, ok := TypeToField[a.Type]
	if !ok {
		return "", false
	}
	if field == FieldCoveredText {
		return v.CoveredText(a), true
	}
	return a.Feat(field)
}

// Tokens returns the view's token annotations.
func (v *View) Tokens() []Annotation { return v.Select(TypeToken) }

// Lemmas returns the view's lemma annotations.
func (v *View) Lemmas() []Annotation { return v.Select(TypeLemma) }

// POSTags returns the view's part-of-speech annotations.
func (v *View) POSTags() []Annotation { return v.Select(TypePOS) }

// Sentences returns the view's sentence annotations.
func (v *View) Sentences() []Annotation { return v.Select(TypeSentence) }

// Stages returns the view's acquisition stage annotations.
func (v *View) Stages() []Annotation { return v.Select(TypeStage) }
