package pipeline

import "strings"

// allowedTags lists the elements StripTags keeps. Matching is case-insensitive.
var allowedTags = map[string]bool{
	"em":         true,
	"strong":     true,
	"code":       true,
	"blockquote": true,
	"p":          true,
	"br":         true,
	"kbd":        true,
}

// maxTagNameLen bounds the name lookup; no allowed name is longer.
const maxTagNameLen = len("blockquote")

// StripTags removes every tag-like token <...> whose element is not on the
// allow-list. Allowed tags are kept verbatim, attributes included. Text
// between tags is never touched.
//
// A token runs from '<' to the first '>' and never contains another '<', so a
// '<' that is not closed before the next '<' stays in the output as text.
// Tokens are matched against the output as it is built: removing a tag can
// never splice two fragments into a new token, which makes StripTags
// idempotent.
func StripTags(html string) string {
	if strings.IndexByte(html, '<') < 0 {
		return html
	}

	out := make([]byte, 0, len(html))

	// Output offsets of '<' not yet followed by '>'. Only the top can start a
	// token; lower entries become candidates again when the top is dropped.
	var opens []int

	for i := 0; i < len(html); i++ {
		c := html[i]
		switch c {
		case '<':
			opens = append(opens, len(out))
			out = append(out, c)
		case '>':
			if len(opens) == 0 {
				out = append(out, c)
				continue
			}
			start := opens[len(opens)-1]
			if isAllowedTag(out[start+1:]) {
				out = append(out, c)
				opens = opens[:0]
				continue
			}
			out = out[:start]
			opens = opens[:len(opens)-1]
		default:
			out = append(out, c)
		}
	}

	return string(out)
}

// isAllowedTag reports whether body, the text between '<' and '>', names an
// allow-listed element. Accepted shapes: "em", "/em", "br /", "p class=x".
func isAllowedTag(body []byte) bool {
	if len(body) > 0 && body[0] == '/' {
		body = body[1:]
	}

	n := 0
	for n < len(body) && n <= maxTagNameLen && isASCIIAlnum(body[n]) {
		n++
	}
	if n == 0 || n > maxTagNameLen {
		return false
	}
	if n < len(body) {
		switch body[n] {
		case ' ', '\t', '\n', '\r', '\f', '/':
		default:
			return false
		}
	}
	return allowedTags[strings.ToLower(string(body[:n]))]
}

func isASCIIAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
