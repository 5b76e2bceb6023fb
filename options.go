package snipmark

// Option configures a Renderer.
type Option func(*rendererConfig)

// rendererConfig holds settings collected from options before NewRenderer
// builds the pipelines.
type rendererConfig struct {
	highlight     bool
	style         string
	loader        DocumentLoader
	loaderSet     bool
	documentsRoot string
}

// WithHighlighting enables chroma syntax highlighting of fenced code blocks
// using CSS classes. The style must be a registered chroma style name; see
// WriteHighlightCSS for the matching stylesheet.
//
// Highlight markup is removed again by the tag filter in Render and
// RenderForRSS, leaving plain <code>. It survives in RenderInclude.
func WithHighlighting(style string) Option {
	return func(c *rendererConfig) {
		c.highlight = true
		c.style = style
	}
}

// WithDocumentLoader sets the loader used by RenderInclude.
// Takes precedence over WithDocumentsRoot.
func WithDocumentLoader(l DocumentLoader) Option {
	return func(c *rendererConfig) {
		c.loader = l
		c.loaderSet = true
	}
}

// WithDocumentsRoot serves include documents from root/<name>.md, falling
// back to the bundled documents for names the directory does not have.
func WithDocumentsRoot(root string) Option {
	return func(c *rendererConfig) {
		c.documentsRoot = root
	}
}
