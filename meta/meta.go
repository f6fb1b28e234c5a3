// Package meta models the structured metadata attached to each corpus
// document: a fixed record tree covering the corpus, production setting,
// task, learner, text and annotation blocks of the metadata scheme, plus
// the depth-first flattening the metadata indexer consumes.
//
// The tree is a representative subset of the scheme, not the whole thing.
// Field names in JSON match the scheme's element names, so records
// round-trip through the sidecar JSON files sources load them from.
// Optional scalars are pointers; absent fields flatten to nothing.
package meta

import "encoding/json"

// Record is the document-level metadata record.
type Record struct {
	Corpus            *Corpus            `json:"corpus,omitempty"`
	ProductionSetting *ProductionSetting `json:"production_setting,omitempty"`
	Task              *Task              `json:"task,omitempty"`
	Learner           *Learner           `json:"learner,omitempty"`
	Text              *TextProperties    `json:"text,omitempty"`
	TargetHypotheses  []TargetHypothesis `json:"target_hypothesis,omitempty"`
	Annotations       []AnnotationMeta   `json:"annotation,omitempty"`
	Annotators        []Annotator        `json:"annotator,omitempty"`
}

// ParseRecord decodes a metadata record from its JSON sidecar form.
func ParseRecord(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Corpus groups the corpus-level metadata blocks.
type Corpus struct {
	Administrative *CorpusAdministrative `json:"administrative,omitempty"`
	Design         *CorpusDesign         `json:"design,omitempty"`
	Proficiency    *CorpusProficiency    `json:"proficiency,omitempty"`
	Project        *CorpusProject        `json:"project,omitempty"`
	Subcorpus      *CorpusSubcorpus      `json:"subcorpus,omitempty"`
}

// CorpusAdministrative identifies and licenses the source corpus.
type CorpusAdministrative struct {
	Acronym      *string  `json:"corpus_admin_acronym,omitempty"`
	Names        []string `json:"corpus_admin_name,omitempty"`
	Authors      []string `json:"corpus_admin_author,omitempty"`
	Availability *string  `json:"corpus_admin_availability,omitempty"`
	Licence      *string  `json:"corpus_admin_licence,omitempty"`
	LicenceURL   *string  `json:"corpus_admin_licenceUrl,omitempty"`
}

// CorpusDesign describes the study design of the corpus.
type CorpusDesign struct {
	Description     *string  `json:"corpus_design_description,omitempty"`
	DesignType      *string  `json:"corpus_design_designType,omitempty"`
	Group           *string  `json:"corpus_design_group,omitempty"`
	L1Languages     []string `json:"corpus_design_l1Language,omitempty"`
	TargetLanguages []string `json:"corpus_design_targetLanguage,omitempty"`
}

// CorpusProficiency describes how proficiency levels were assigned.
type CorpusProficiency struct {
	AssignmentMethod *string `json:"corpus_proficiency_assignmentMethod,omitempty"`
	LevelMin         *string `json:"corpus_proficiency_levelMin,omitempty"`
	LevelMax         *string `json:"corpus_proficiency_levelMax,omitempty"`
}

// CorpusProject identifies the collecting research project.
type CorpusProject struct {
	Name         *string  `json:"corpus_project_name_dkd,omitempty"`
	NamesOrig    []string `json:"corpus_project_name_orig,omitempty"`
	Institutions []string `json:"corpus_project_institution_dkd,omitempty"`
	Type         *string  `json:"corpus_project_type_dkd,omitempty"`
}

// CorpusSubcorpus sizes the subcorpus a document belongs to.
type CorpusSubcorpus struct {
	Signet          *string  `json:"corpus_subcorpus_signet,omitempty"`
	SizeLearners    *int64   `json:"corpus_subcorpus_sizeLearners,omitempty"`
	SizeTexts       *int64   `json:"corpus_subcorpus_sizeTexts,omitempty"`
	SizeTokens      *int64   `json:"corpus_subcorpus_sizeTokens,omitempty"`
	TargetLanguages []string `json:"corpus_subcorpus_targetLanguage,omitempty"`
}

// ProductionSetting describes the circumstances of text production.
type ProductionSetting struct {
	SchoolGrade                *int64   `json:"production_setting_schoolGrade,omitempty"`
	EducationalStages          []string `json:"productionSetting_educationalStage,omitempty"`
	LanguageCourseLevel        *string  `json:"productionSetting_languageCourseLevel,omitempty"`
	CollectedInResearchProject *bool    `json:"productionSetting_collectedInResearchProject,omitempty"`
	Settings                   []string `json:"productionSetting_setting,omitempty"`
}

// Task describes the elicitation task the text answers.
type Task struct {
	ID                *string  `json:"task_id,omitempty"`
	Title             *string  `json:"task_title,omitempty"`
	Description       *string  `json:"task_description,omitempty"`
	DurationMinutes   *float64 `json:"task_durationMinutes,omitempty"`
	IsDurationLimited *bool    `json:"task_isDurationLimited,omitempty"`
	LevelMin          []string `json:"task_levelMin,omitempty"`
	LevelMax          []string `json:"task_levelMax,omitempty"`
	StimulusTypes     []string `json:"task_stimulusType,omitempty"`
}

// Learner describes the producing learner, including sociodemographics and
// the languages they speak.
type Learner struct {
	ID               *string             `json:"learner_id,omitempty"`
	IDOrig           []string            `json:"learner_id_orig,omitempty"`
	LanguageCount    *float64            `json:"learner_lCount,omitempty"`
	MultipleL1       *bool               `json:"learner_multipleL1,omitempty"`
	TextCount        *int64              `json:"learner_textCount,omitempty"`
	Note             *string             `json:"learner_note,omitempty"`
	Sociodemographic *Sociodemographics  `json:"sociodemographic,omitempty"`
	Languages        []LanguageOfSpeaker `json:"language,omitempty"`
}

// Sociodemographics holds per-learner background data.
type Sociodemographics struct {
	Birthplace            *string  `json:"learner_socio_birthplace,omitempty"`
	Country               *string  `json:"learner_socio_country,omitempty"`
	EducationalBackground *string  `json:"learner_socio_educationalBackground,omitempty"`
	Gender                *string  `json:"learner_socio_gender,omitempty"`
	MajorSubjects         []string `json:"learner_socio_majorSubject,omitempty"`
	Professions           []string `json:"learner_socio_profession,omitempty"`
	SchoolGrade           *int64   `json:"learner_socio_schoolGrade,omitempty"`
}

// LanguageOfSpeaker describes one language of the learner's repertoire.
type LanguageOfSpeaker struct {
	ISO639_3     *string  `json:"learner_language_iso639_3,omitempty"`
	Statuses     []string `json:"learner_language_status,omitempty"`
	IsTarget     *bool    `json:"learner_language_IsTarget,omitempty"`
	Group        *string  `json:"learner_language_group,omitempty"`
	IsSpokenHome *bool    `json:"learner_language_isSpokenHome,omitempty"`
}

// TextProperties describes the text itself.
type TextProperties struct {
	File              *string  `json:"text_file,omitempty"`
	ID                *string  `json:"text_id,omitempty"`
	Language          *string  `json:"text_language,omitempty"`
	LongitudinalOrder *int64   `json:"text_longitudinalOrder,omitempty"`
	TimeOfCreation    *string  `json:"text_timeOfCreation,omitempty"`
	TokenCount        *int64   `json:"text_tokenCount,omitempty"`
	ClauseCount       *int64   `json:"text_clauseCount,omitempty"`
	Topics            []string `json:"text_topicAutom,omitempty"`
	Note              *string  `json:"text_note,omitempty"`
}

// TargetHypothesis describes one target hypothesis layer of the document.
type TargetHypothesis struct {
	Automatic   *bool   `json:"targetHypothesis_automatic,omitempty"`
	Corrected   *bool   `json:"targetHypothesis_corrected,omitempty"`
	Tool        *string `json:"targetHypothesis_tool,omitempty"`
	ToolVersion *string `json:"targetHypothesis_toolVersion,omitempty"`
}

// AnnotationMeta describes one annotation layer's provenance.
type AnnotationMeta struct {
	Automatic    *bool    `json:"annotation_automatic,omitempty"`
	Corrected    *bool    `json:"annotation_corrected,omitempty"`
	Tool         *string  `json:"annotation_tool,omitempty"`
	ToolVersion  *string  `json:"annotation_toolVersion,omitempty"`
	ModelVersion *string  `json:"annotation_modelVersion,omitempty"`
	Types        []string `json:"annotation_type,omitempty"`
}

// Annotator describes one human annotator.
type Annotator struct {
	ID   *string `json:"annotator_id,omitempty"`
	L1   *string `json:"annotator_L1,omitempty"`
	L2   *string `json:"annotator_L2,omitempty"`
	Note *string `json:"annotator_note,omitempty"`
	Type *string `json:"annotator_type,omitempty"`
}
