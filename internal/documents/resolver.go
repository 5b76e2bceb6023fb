package documents

import (
	"context"
	"sort"
)

// Resolver combines a custom loader with a fallback loader.
// The custom loader is tried first; the fallback serves names it does not have.
type Resolver struct {
	custom   Loader // nil if no documents root configured
	fallback Loader
}

// NewResolver creates a Resolver over a documents root with bundled
// documents as fallback. An empty root serves bundled documents only.
// Returns an error if root is set but invalid.
func NewResolver(root string) (*Resolver, error) {
	r := &Resolver{fallback: NewEmbeddedLoader()}

	if root != "" {
		fsLoader, err := NewFilesystemLoader(root)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// NewResolverWith creates a Resolver from arbitrary loaders.
// custom may be nil.
func NewResolverWith(custom, fallback Loader) *Resolver {
	return &Resolver{custom: custom, fallback: fallback}
}

// LoadDocument loads from the custom loader, falling back on not-found only.
// Validation and I/O errors from the custom loader are returned as-is.
func (r *Resolver) LoadDocument(ctx context.Context, name string) (string, error) {
	if r.custom == nil {
		return r.fallback.LoadDocument(ctx, name)
	}

	content, err := r.custom.LoadDocument(ctx, name)
	if err == nil {
		return content, nil
	}
	if !IsNotFound(err) {
		return "", err
	}

	return r.fallback.LoadDocument(ctx, name)
}

// List returns the union of both loaders' names, sorted and deduplicated.
func (r *Resolver) List(ctx context.Context) ([]string, error) {
	names, err := r.fallback.List(ctx)
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}

	custom, err := r.custom.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names)+len(custom))
	merged := make([]string, 0, len(names)+len(custom))
	for _, n := range append(names, custom...) {
		if !seen[n] {
			seen[n] = true
			merged = append(merged, n)
		}
	}
	sort.Strings(merged)
	return merged, nil
}

// HasCustomLoader returns true if a documents root is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
