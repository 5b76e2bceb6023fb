package documents

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed markdown/*.md
var bundled embed.FS

// bundledDir is the directory of bundled documents inside the embedded FS.
const bundledDir = "markdown"

// FSLoader loads documents from a directory of an fs.FS.
// Implements Loader interface.
type FSLoader struct {
	fsys fs.FS
	dir  string
}

// NewFSLoader creates an FSLoader reading <dir>/<name>.md from fsys.
// Use "." for the root of fsys.
func NewFSLoader(fsys fs.FS, dir string) *FSLoader {
	return &FSLoader{fsys: fsys, dir: dir}
}

// NewEmbeddedLoader creates an FSLoader over the documents bundled with the binary.
func NewEmbeddedLoader() *FSLoader {
	return NewFSLoader(bundled, bundledDir)
}

// LoadDocument reads a document by name.
func (l *FSLoader) LoadDocument(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}

	content, err := fs.ReadFile(l.fsys, path.Join(l.dir, name+Extension))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	return string(content), nil
}

// List returns the names of the documents in the loader's directory.
func (l *FSLoader) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
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

// Compile-time interface check.
var _ Loader = (*FSLoader)(nil)
