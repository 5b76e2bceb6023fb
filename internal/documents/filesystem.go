package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilesystemLoader loads documents from a root directory on disk.
// Implements Loader interface.
type FilesystemLoader struct {
	root string
}

// NewFilesystemLoader creates a FilesystemLoader for the given root.
// Returns ErrInvalidRoot if the path is not a readable directory.
func NewFilesystemLoader(root string) (*FilesystemLoader, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}

	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	// Containment checks compare real paths, so resolve the root too
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidRoot, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidRoot, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidRoot, err)
	}

	return &FilesystemLoader{root: absPath}, nil
}

// Root returns the absolute, symlink-resolved documents root.
func (f *FilesystemLoader) Root() string {
	return f.root
}

// Path returns the file path a document name maps to.
func (f *FilesystemLoader) Path(name string) string {
	return filepath.Join(f.root, name+Extension)
}

// LoadDocument reads {root}/{name}.md.
func (f *FilesystemLoader) LoadDocument(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}

	filePath := f.Path(name)
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- name validated, path contained
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	return string(content), nil
}

// List returns the names of the .md files directly under root.
func (f *FilesystemLoader) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := documentName(e.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// verifyPathContainment ensures the resolved file path is within root,
// following symlinks so a link cannot point outside.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file keeps its unresolved path; the read reports not-found.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// Trailing separator rejects sibling prefixes (/docs vs /docs-evil)
	if !strings.HasPrefix(absFilePath, f.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes documents root", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
