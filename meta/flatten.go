package meta

import "github.com/dakoda-project/dakoda-go/index"

// EmitFunc receives one flattened (field, value) leaf.
type EmitFunc func(field string, v index.Value)

// Flatten walks the record tree depth-first and emits every populated leaf.
//
// The traversal is deliberately explicit rather than reflective: the tree
// is closed, and the flattening contract is part of the index format.
// Rules:
//
//   - nil fields are skipped entirely;
//   - nested records recurse without accumulating a path prefix, so leaf
//     keys are the scheme's element names;
//   - a list of scalars emits one leaf per element under the list's name;
//   - a list of records recurses into every element.
func (r *Record) Flatten(emit EmitFunc) {
	if r == nil {
		return
	}
	r.Corpus.flatten(emit)
	r.ProductionSetting.flatten(emit)
	r.Task.flatten(emit)
	r.Learner.flatten(emit)
	r.Text.flatten(emit)
	for i := range r.TargetHypotheses {
		r.TargetHypotheses[i].flatten(emit)
	}
	for i := range r.Annotations {
		r.Annotations[i].flatten(emit)
	}
	for i := range r.Annotators {
		r.Annotators[i].flatten(emit)
	}
}

func (c *Corpus) flatten(emit EmitFunc) {
	if c == nil {
		return
	}
	c.Administrative.flatten(emit)
	c.Design.flatten(emit)
	c.Proficiency.flatten(emit)
	c.Project.flatten(emit)
	c.Subcorpus.flatten(emit)
}

func (a *CorpusAdministrative) flatten(emit EmitFunc) {
	if a == nil {
		return
	}
	emitStr(emit, "corpus_admin_acronym", a.Acronym)
	emitStrs(emit, "corpus_admin_name", a.Names)
	emitStrs(emit, "corpus_admin_author", a.Authors)
	emitStr(emit, "corpus_admin_availability", a.Availability)
	emitStr(emit, "corpus_admin_licence", a.Licence)
	emitStr(emit, "corpus_admin_licenceUrl", a.LicenceURL)
}

func (d *CorpusDesign) flatten(emit EmitFunc) {
	if d == nil {
		return
	}
	emitStr(emit, "corpus_design_description", d.Description)
	emitStr(emit, "corpus_design_designType", d.DesignType)
	emitStr(emit, "corpus_design_group", d.Group)
	emitStrs(emit, "corpus_design_l1Language", d.L1Languages)
	emitStrs(emit, "corpus_design_targetLanguage", d.TargetLanguages)
}

func (p *CorpusProficiency) flatten(emit EmitFunc) {
	if p == nil {
		return
	}
	emitStr(emit, "corpus_proficiency_assignmentMethod", p.AssignmentMethod)
	emitStr(emit, "corpus_proficiency_levelMin", p.LevelMin)
	emitStr(emit, "corpus_proficiency_levelMax", p.LevelMax)
}

func (p *CorpusProject) flatten(emit EmitFunc) {
	if p == nil {
		return
	}
	emitStr(emit, "corpus_project_name_dkd", p.Name)
	emitStrs(emit, "corpus_project_name_orig", p.NamesOrig)
	emitStrs(emit, "corpus_project_institution_dkd", p.Institutions)
	emitStr(emit, "corpus_project_type_dkd", p.Type)
}

func (s *CorpusSubcorpus) flatten(emit EmitFunc) {
	if s == nil {
		return
	}
	emitStr(emit, "corpus_subcorpus_signet", s.Signet)
	emitInt(emit, "corpus_subcorpus_sizeLearners", s.SizeLearners)
	emitInt(emit, "corpus_subcorpus_sizeTexts", s.SizeTexts)
	emitInt(emit, "corpus_subcorpus_sizeTokens", s.SizeTokens)
	emitStrs(emit, "corpus_subcorpus_targetLanguage", s.TargetLanguages)
}

func (p *ProductionSetting) flatten(emit EmitFunc) {
	if p == nil {
		return
	}
	emitInt(emit, "production_setting_schoolGrade", p.SchoolGrade)
	emitStrs(emit, "productionSetting_educationalStage", p.EducationalStages)
	emitStr(emit, "productionSetting_languageCourseLevel", p.LanguageCourseLevel)
	emitBool(emit, "productionSetting_collectedInResearchProject", p.CollectedInResearchProject)
	emitStrs(emit, "productionSetting_setting", p.Settings)
}

func (t *Task) flatten(emit EmitFunc) {
	if t == nil {
		return
	}
	emitStr(emit, "task_id", t.ID)
	emitStr(emit, "task_title", t.Title)
	emitStr(emit, "task_description", t.Description)
	emitFloat(emit, "task_durationMinutes", t.DurationMinutes)
	emitBool(emit, "task_isDurationLimited", t.IsDurationLimited)
	emitStrs(emit, "task_levelMin", t.LevelMin)
	emitStrs(emit, "task_levelMax", t.LevelMax)
	emitStrs(emit, "task_stimulusType", t.StimulusTypes)
}

func (l *Learner) flatten(emit EmitFunc) {
	if l == nil {
		return
	}
	emitStr(emit, "learner_id", l.ID)
	emitStrs(emit, "learner_id_orig", l.IDOrig)
	emitFloat(emit, "learner_lCount", l.LanguageCount)
	emitBool(emit, "learner_multipleL1", l.MultipleL1)
	emitInt(emit, "learner_textCount", l.TextCount)
	emitStr(emit, "learner_note", l.Note)
	l.Sociodemographic.flatten(emit)
	for i := range l.Languages {
		l.Languages[i].flatten(emit)
	}
}

func (s *Sociodemographics) flatten(emit EmitFunc) {
	if s == nil {
		return
	}
	emitStr(emit, "learner_socio_birthplace", s.Birthplace)
	emitStr(emit, "learner_socio_country", s.Country)
	emitStr(emit, "learner_socio_educationalBackground", s.EducationalBackground)
	emitStr(emit, "learner_socio_gender", s.Gender)
	emitStrs(emit, "learner_socio_majorSubject", s.MajorSubjects)
	emitStrs(emit, "learner_socio_profession", s.Professions)
	emitInt(emit, "learner_socio_schoolGrade", s.SchoolGrade)
}

func (l *LanguageOfSpeaker) flatten(emit EmitFunc) {
	if l == nil {
		return
	}
	emitStr(emit, "learner_language_iso639_3", l.ISO639_3)
	emitStrs(emit, "learner_language_status", l.Statuses)
	emitBool(emit, "learner_language_IsTarget", l.IsTarget)
	emitStr(emit, "learner_language_group", l.Group)
	emitBool(emit, "learner_language_isSpokenHome", l.IsSpokenHome)
}

func (t *TextProperties) flatten(emit EmitFunc) {
	if t == nil {
		return
	}
	emitStr(emit, "text_file", t.File)
	emitStr(emit, "text_id", t.ID)
	emitStr(emit, "text_language", t.Language)
	emitInt(emit, "text_longitudinalOrder", t.LongitudinalOrder)
	emitStr(emit, "text_timeOfCreation", t.TimeOfCreation)
	emitInt(emit, "text_tokenCount", t.TokenCount)
	emitInt(emit, "text_clauseCount", t.ClauseCount)
	emitStrs(emit, "text_topicAutom", t.Topics)
	emitStr(emit, "text_note", t.Note)
}

func (t *TargetHypothesis) flatten(emit EmitFunc) {
	if t == nil {
		return
	}
	emitBool(emit, "targetHypothesis_automatic", t.Automatic)
	emitBool(emit, "targetHypothesis_corrected", t.Corrected)
	emitStr(emit, "targetHypothesis_tool", t.Tool)
	emitStr(emit, "targetHypothesis_toolVersion", t.ToolVersion)
}

func (a *AnnotationMeta) flatten(emit EmitFunc) {
	if a == nil {
		return
	}
	emitBool(emit, "annotation_automatic", a.Automatic)
	emitBool(emit, "annotation_corrected", a.Corrected)
	emitStr(emit, "annotation_tool", a.Tool)
	emitStr(emit, "annotation_toolVersion", a.ToolVersion)
	emitStr(emit, "annotation_modelVersion", a.ModelVersion)
	emitStrs(emit, "annotation_type", a.Types)
}

func (a *Annotator) flatten(emit EmitFunc) {
	if a == nil {
		return
	}
	emitStr(emit, "annotator_id", a.ID)
	emitStr(emit, "annotator_L1", a.L1)
	emitStr(emit, "annotator_L2", a.L2)
	emitStr(emit, "annotator_note", a.Note)
	emitStr(emit, "annotator_type", a.Type)
}

func emitStr(emit EmitFunc, field string, v *string) {
	if v != nil {
		emit(field, index.String(*v))
	}
}

func emitStrs(emit EmitFunc, field string, vs []string) {
	for _, v := range vs {
		emit(field, index.String(v))
	}
}

func emitInt(emit EmitFunc, field string, v *int64) {
	if v != nil {
		emit(field, index.Int(*v))
	}
}

func emitFloat(emit EmitFunc, field string, v *float64) {
	if v != nil {
		emit(field, index.Float(*v))
	}
}

func emitBool(emit EmitFunc, field string, v *bool) {
	if v != nil {
		emit(field, index.Bool(*v))
	}
}
