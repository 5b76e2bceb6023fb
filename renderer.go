package snipmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/alnah/go-snipmark/internal/documents"
	"github.com/alnah/go-snipmark/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ DocumentLoader             = (*documents.Resolver)(nil)
	_ DocumentLoader             = (*documents.FilesystemLoader)(nil)
	_ DocumentLoader             = (*documents.FSLoader)(nil)
	_ pipeline.MarkdownConverter = (*pipeline.GoldmarkRenderer)(nil)
)

// DocumentLoader defines the contract for loading include documents.
// Implementations may read from disk, embedded files, a database, etc.
type DocumentLoader interface {
	// LoadDocument returns the UTF-8 content of <name>.md.
	// Returns an error matching ErrDocumentNotFound (or fs.ErrNotExist) if
	// the document doesn't exist.
	LoadDocument(ctx context.Context, name string) (string, error)
}

// Renderer runs the snippet rendering pipelines.
// Create with NewRenderer. A Renderer holds no per-call state and is safe for
// concurrent use.
type Renderer struct {
	markdown pipeline.MarkdownConverter
	loader   DocumentLoader
}

// NewRenderer creates a Renderer. Without options it renders without
// highlighting and serves the bundled include documents.
// Returns ErrUnknownStyle for an unregistered highlight style and
// ErrInvalidDocumentsRoot if the documents root is not a readable directory.
func NewRenderer(opts ...Option) (*Renderer, error) {
	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var mdOpts []pipeline.MarkdownOption
	if cfg.highlight {
		if !pipeline.HasStyle(cfg.style) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, cfg.style)
		}
		mdOpts = append(mdOpts, pipeline.WithHighlighting(cfg.style))
	}

	loader := cfg.loader
	if cfg.loaderSet {
		if loader == nil {
			return nil, ErrNilLoader
		}
	} else {
		resolver, err := documents.NewResolver(cfg.documentsRoot)
		if err != nil {
			return nil, err
		}
		loader = resolver
	}

	return &Renderer{
		markdown: pipeline.NewGoldmarkRenderer(mdOpts...),
		loader:   loader,
	}, nil
}

// Render converts an untrusted snippet for in-app display: Markdown to HTML,
// tag filtering, bare URL linking, then relative snippet references.
func (r *Renderer) Render(text string) string {
	out := r.markdown.Render(text)
	out = pipeline.StripTags(out)
	out = pipeline.LinkExternal(out)
	return pipeline.LinkReferences(out, pipeline.Relative())
}

// RenderForRSS is Render with snippet references made absolute against
// baseURL, so links keep working outside the site. baseURL is used verbatim
// and should not end with a slash.
func (r *Renderer) RenderForRSS(text, baseURL string) string {
	out := r.markdown.Render(text)
	out = pipeline.StripTags(out)
	out = pipeline.LinkExternal(out)
	return pipeline.LinkReferences(out, pipeline.Absolute(baseURL))
}

// RenderInclude loads the trusted document <name>.md and renders it with
// relative snippet references. No tag filtering or URL linking is applied.
// Returns ErrInvalidDocumentName before any lookup if name is not a bare
// name, and ErrDocumentNotFound if the loader has no such document.
// On error no HTML is returned.
func (r *Renderer) RenderInclude(ctx context.Context, name string) (string, error) {
	if err := documents.ValidateName(name); err != nil {
		return "", err
	}

	source, err := r.loader.LoadDocument(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !errors.Is(err, ErrDocumentNotFound) {
			return "", fmt.Errorf("%w: %q: %w", ErrDocumentNotFound, name, err)
		}
		return "", err
	}

	out := r.markdown.Render(source)
	return pipeline.LinkReferences(out, pipeline.Relative()), nil
}

// EscapeXML escapes &, < and > as numeric character references (&#x26;,
// &#x3C;, &#x3E;). Quotes are left alone. It is not part of any pipeline.
func EscapeXML(text string) string {
	return pipeline.EscapeXML(text)
}

// HighlightStyles returns the style names accepted by WithHighlighting, sorted.
func HighlightStyles() []string {
	return pipeline.StyleNames()
}

// WriteHighlightCSS writes the chroma stylesheet for a highlight style, to be
// served alongside HTML rendered with WithHighlighting(style).
// Returns ErrUnknownStyle for an unregistered style.
func WriteHighlightCSS(w io.Writer, style string) error {
	if !pipeline.HasStyle(style) {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return pipeline.WriteHighlightCSS(w, style)
}
