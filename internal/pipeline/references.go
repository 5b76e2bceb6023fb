package pipeline

import "strings"

// referencePrefix introduces a cross-reference token: snippet#<id>[/slug].
const referencePrefix = "snippet#"

// LinkMode selects how LinkReferences builds snippet hrefs.
// The zero value is relative mode.
type LinkMode struct {
	absolute bool
	baseURL  string
}

// Relative returns the mode producing hrefs of the form /snippet/<id>.
func Relative() LinkMode {
	return LinkMode{}
}

// Absolute returns the mode producing hrefs of the form <baseURL>/snippet/<id>.
// baseURL is used verbatim; pass it without a trailing slash.
func Absolute(baseURL string) LinkMode {
	return LinkMode{absolute: true, baseURL: baseURL}
}

// IsAbsolute reports whether the mode builds absolute hrefs.
func (m LinkMode) IsAbsolute() bool { return m.absolute }

// BaseURL returns the base used in absolute mode.
func (m LinkMode) BaseURL() string { return m.baseURL }

// Target resolves a snippet id to its anchor.
func (m LinkMode) Target(id string) LinkTarget {
	href := "/snippet/" + id
	if m.absolute {
		href = m.baseURL + href
	}
	return LinkTarget{Href: href, Label: "Snippet #" + id, Absolute: m.absolute}
}

// LinkReferences rewrites every snippet#<id> token into an anchor to that
// snippet. An optional /<slug> segment directly after the id is consumed and
// dropped; it ends at whitespace or at the next tag. The id is not checked
// against any store.
func LinkReferences(html string, mode LinkMode) string {
	if !strings.Contains(html, referencePrefix) {
		return html
	}

	var b strings.Builder
	b.Grow(len(html) + len(html)/2)

	last := 0
	for i := 0; i < len(html); {
		idStart, idEnd, end := matchReference(html, i)
		if end < 0 {
			i++
			continue
		}
		b.WriteString(html[last:i])
		mode.Target(html[idStart:idEnd]).writeAnchor(&b)
		i, last = end, end
	}
	b.WriteString(html[last:])

	return b.String()
}

// matchReference reports the id bounds and the end of a reference token
// starting at s[start]. end is -1 when no token starts there.
func matchReference(s string, start int) (idStart, idEnd, end int) {
	if !strings.HasPrefix(s[start:], referencePrefix) {
		return 0, 0, -1
	}

	idStart = start + len(referencePrefix)
	idEnd = idStart
	for idEnd < len(s) && s[idEnd] >= '0' && s[idEnd] <= '9' {
		idEnd++
	}
	if idEnd == idStart {
		return 0, 0, -1
	}

	end = idEnd
	if end < len(s) && s[end] == '/' {
		end++
		for end < len(s) && !isSlugTerminator(s[end]) {
			end++
		}
	}
	return idStart, idEnd, end
}

func isSlugTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', '<':
		return true
	}
	return false
}
