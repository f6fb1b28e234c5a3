package dakoda

import "errors"

var (
	// ErrNoDocuments is returned when an operation needs at least one
	// document and the corpus is empty.
	ErrNoDocuments = errors.New("dakoda: corpus has no documents")

	// ErrUnknownSubset is returned when an index subset name is not one of
	// the defined subsets.
	ErrUnknownSubset = errors.New("dakoda: unknown index subset")

	// ErrDocumentNotFound is returned when a document ID does not exist in
	// the source.
	ErrDocumentNotFound = errors.New("dakoda: document not found")

	// ErrUnknownView is returned when a view alias is not registered or
	// the document lacks the corresponding view.
	ErrUnknownView = errors.New("dakoda: unknown view")
)
