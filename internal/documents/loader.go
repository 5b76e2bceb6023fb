package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Extension is appended to document names to form file names.
const Extension = ".md"

// Loader defines the contract for loading include documents.
// Implementations may read from embedded files, disk, a database, etc.
type Loader interface {
	// LoadDocument returns the UTF-8 content of the named document.
	// Returns ErrDocumentNotFound if the document doesn't exist.
	// Returns ErrInvalidDocumentName if the name contains invalid characters.
	LoadDocument(ctx context.Context, name string) (string, error)

	// List returns the names of available documents, sorted.
	List(ctx context.Context) ([]string, error)
}

// ValidateName checks that a document name is safe for use as a file name.
// Dots are rejected so callers cannot pick another extension or climb out of
// the root with "..".
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDocumentName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentName, name)
	}
	return nil
}

// IsNotFound reports whether err means the document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDocumentNotFound)
}

// documentName strips Extension from a file name, reporting whether it
// was a document file with a valid name.
func documentName(fileName string) (string, bool) {
	name, ok := strings.CutSuffix(fileName, Extension)
	if !ok || ValidateName(name) != nil {
		return "", false
	}
	return name, true
}
