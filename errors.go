package snipmark

import (
	"errors"

	"github.com/alnah/go-snipmark/internal/documents"
)

// Sentinel errors for library operations.
var (
	// Document loading errors. These are the same values the bundled loaders
	// return, so errors.Is works across the package boundary.
	ErrDocumentNotFound     = documents.ErrDocumentNotFound
	ErrInvalidDocumentName  = documents.ErrInvalidDocumentName
	ErrInvalidDocumentsRoot = documents.ErrInvalidRoot
	ErrDocumentRead         = documents.ErrDocumentRead
	ErrPathTraversal        = documents.ErrPathTraversal

	// Option validation errors.
	ErrUnknownStyle = errors.New("unknown highlight style")
	ErrNilLoader    = errors.New("document loader cannot be nil")
)
