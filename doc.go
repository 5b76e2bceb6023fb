// Package snipmark renders user-authored Markdown snippets into filtered,
// link-enriched HTML fragments.
//
// # Quick Start
//
// Create a renderer once and share it; it is safe for concurrent use:
//
//	r, err := snipmark.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html := r.Render("**Tip:** see snippet#42 or https://vim.org")
//
// # Pipelines
//
// Three pipelines cover the places a snippet is shown:
//
//	Render        Markdown -> StripTags -> LinkExternal -> references (relative)
//	RenderForRSS  Markdown -> StripTags -> LinkExternal -> references (absolute)
//	RenderInclude load <name>.md -> Markdown -> references (relative)
//
// Render and RenderForRSS take untrusted text and keep only em, strong, code,
// blockquote, p, br and kbd tags. The filter is an allow-list, not an XSS
// boundary. RenderInclude is meant for trusted documentation bodies and keeps
// every tag the Markdown step produced.
//
// References of the form "snippet#<id>" (optionally followed by "/<slug>")
// become anchors labelled "Snippet #<id>". Bare http, https, ftp and ftps URLs
// become anchors opening a new window.
//
// EscapeXML prepares a fragment for embedding as XML character data, such as
// an RSS item description:
//
//	desc := snipmark.EscapeXML(r.RenderForRSS(body, "https://example.com"))
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := snipmark.NewRenderer(
//	    snipmark.WithHighlighting("monokai"),
//	    snipmark.WithDocumentsRoot("/srv/app/markdown"),
//	)
//
// Include documents are looked up in the documents root first and fall back
// to the bundled documents ("about", "markdown-help"). Use WithDocumentLoader
// to serve them from anywhere else.
//
// # Error Handling
//
// Only RenderInclude can fail. Errors can be checked with errors.Is:
//
//	html, err := r.RenderInclude(ctx, "faq")
//	if errors.Is(err, snipmark.ErrDocumentNotFound) {
//	    // serve a 404
//	}
package snipmark
