package pipeline

import "strings"

// LinkTarget is the anchor produced for a recognized URL or snippet reference.
type LinkTarget struct {
	Href      string
	Label     string
	Absolute  bool // Href carries scheme and host
	NewWindow bool // Open in a new browsing context (target="_blank")
}

// Anchor renders the target as an HTML anchor element.
// Href and Label are written verbatim; callers pass values without quotes
// or markup.
func (t LinkTarget) Anchor() string {
	var b strings.Builder
	b.Grow(len(t.Href) + len(t.Label) + 32)
	t.writeAnchor(&b)
	return b.String()
}

func (t LinkTarget) writeAnchor(b *strings.Builder) {
	b.WriteString(`<a href="`)
	b.WriteString(t.Href)
	b.WriteByte('"')
	if t.NewWindow {
		b.WriteString(` target="_blank"`)
	}
	b.WriteByte('>')
	b.WriteString(t.Label)
	b.WriteString("</a>")
}
