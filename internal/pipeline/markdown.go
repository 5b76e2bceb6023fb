package pipeline

import (
	"bytes"
	"html"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// MarkdownConverter abstracts Markdown to HTML conversion.
type MarkdownConverter interface {
	Render(source string) string
}

// MarkdownOption configures a GoldmarkRenderer.
type MarkdownOption func(*markdownConfig)

type markdownConfig struct {
	highlight bool
	style     string
}

// WithHighlighting renders fenced code blocks through chroma using CSS
// classes from the named style. See WriteHighlightCSS for the stylesheet.
func WithHighlighting(style string) MarkdownOption {
	return func(c *markdownConfig) {
		c.highlight = true
		c.style = style
	}
}

// GoldmarkRenderer converts Markdown to an HTML fragment using goldmark.
// It is immutable after construction and safe for concurrent use.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a renderer for the extended dialect: tables,
// fenced code, definition lists, footnotes, strikethrough and {#id .class}
// attributes. Raw HTML passes through untouched; filtering it is the job of
// the later stages. Bare URLs are left alone for LinkExternal.
func NewGoldmarkRenderer(opts ...MarkdownOption) *GoldmarkRenderer {
	var cfg markdownConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	extensions := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.DefinitionList,
		extension.Footnote,
	}
	if cfg.highlight {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // Stylesheet served separately
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAttribute(), // {#id .class} on headings
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithUnsafe(), // Keep raw HTML for the tag filter
			goldmarkhtml.WithXHTML(),  // <br />, <hr />
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts Markdown source to HTML. Malformed Markdown degrades to
// best-effort HTML. Conversion into an in-memory buffer cannot fail in
// practice; if it does, the escaped source is returned instead of partial
// output.
func (r *GoldmarkRenderer) Render(source string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return html.EscapeString(source)
	}
	return buf.String()
}

// HasStyle reports whether name is a registered chroma style.
func HasStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// StyleNames returns the registered chroma style names, sorted.
func StyleNames() []string {
	return styles.Names()
}

// WriteHighlightCSS writes the stylesheet matching WithHighlighting(style).
// Unknown styles fall back to chroma's default style.
func WriteHighlightCSS(w io.Writer, style string) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(w, styles.Get(style))
}

// Compile-time interface check.
var _ MarkdownConverter = (*GoldmarkRenderer)(nil)
