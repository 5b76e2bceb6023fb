package documents

import "errors"

// Sentinel errors for document loading.
var (
	// ErrDocumentNotFound indicates no document exists under the requested name.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocumentName indicates the name contains path separators,
	// dots, or is empty.
	ErrInvalidDocumentName = errors.New("invalid document name")

	// ErrInvalidRoot indicates the configured documents root is not a readable directory.
	ErrInvalidRoot = errors.New("invalid documents root")

	// ErrDocumentRead indicates an I/O error while reading a document.
	ErrDocumentRead = errors.New("failed to read document")

	// ErrPathTraversal indicates an attempt to read outside the documents root.
	ErrPathTraversal = errors.New("path traversal detected")
)
