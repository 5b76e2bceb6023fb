package pipeline

import "strings"

// EscapeXML escapes &, < and > as hexadecimal character references.
// '&' is replaced first so the references added for '<' and '>' are not
// escaped again.
func EscapeXML(text string) string {
	text = strings.ReplaceAll(text, "&", "&#x26;")
	text = strings.ReplaceAll(text, "<", "&#x3C;")
	text = strings.ReplaceAll(text, ">", "&#x3E;")
	return text
}
