package pipeline

import "strings"

// Top-level label length bounds for recognized hosts.
const (
	minTLDLen = 2
	maxTLDLen = 63
)

// schemes are tried in order; a scheme must be followed by "://".
var schemes = []string{"https", "http", "ftps", "ftp"}

// LinkExternal wraps bare http, https, ftp and ftps URLs in anchors that open
// in a new browsing context. Both href and label are the matched text.
//
// A URL is a scheme, "://", a host of letters, digits, '-' and '.' holding at
// least one '.' followed by 2 to 63 letters, and an optional tail of word
// characters and . / : = ? # ! -. Matches are leftmost, run as far as the
// grammar allows, and never overlap.
//
// URLs already inside an href attribute are linked again; callers feeding
// HTML that carries anchors must strip them first.
func LinkExternal(html string) string {
	if !strings.Contains(html, "://") {
		return html
	}

	var b strings.Builder
	b.Grow(len(html) + len(html)/2)

	last := 0
	for i := 0; i < len(html); {
		end := matchURL(html, i)
		if end < 0 {
			i++
			continue
		}
		url := html[i:end]
		b.WriteString(html[last:i])
		LinkTarget{Href: url, Label: url, Absolute: true, NewWindow: true}.writeAnchor(&b)
		i, last = end, end
	}
	b.WriteString(html[last:])

	return b.String()
}

// matchURL returns the end offset of a URL starting at s[start], or -1.
func matchURL(s string, start int) int {
	if c := s[start]; c != 'h' && c != 'f' {
		return -1
	}

	hostStart := -1
	for _, scheme := range schemes {
		if strings.HasPrefix(s[start:], scheme+"://") {
			hostStart = start + len(scheme) + len("://")
			break
		}
	}
	if hostStart < 0 {
		return -1
	}

	hostEnd := hostStart
	for hostEnd < len(s) && isHostChar(s[hostEnd]) {
		hostEnd++
	}
	if !hasTopLevelLabel(s[hostStart:hostEnd]) {
		return -1
	}

	// The tail alphabet is a superset of the host alphabet, so the match
	// extends over the host and then the longest run of tail characters.
	end := hostEnd
	for end < len(s) && isTailChar(s[end]) {
		end++
	}
	return end
}

// hasTopLevelLabel reports whether host, split at some '.', has a non-empty
// part before the dot and at least minTLDLen letters right after it.
func hasTopLevelLabel(host string) bool {
	for i := 1; i < len(host); i++ {
		if host[i] != '.' {
			continue
		}
		letters := 0
		for j := i + 1; j < len(host) && isASCIILetter(host[j]) && letters < maxTLDLen; j++ {
			letters++
		}
		if letters >= minTLDLen {
			return true
		}
	}
	return false
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHostChar(c byte) bool {
	return isASCIIAlnum(c) || c == '-' || c == '.'
}

func isTailChar(c byte) bool {
	switch c {
	case '_', '.', '/', ':', '=', '?', '#', '!', '-':
		return true
	}
	return isASCIIAlnum(c)
}
