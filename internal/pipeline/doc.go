// Package pipeline implements the text stages composed by the snipmark renderer.
//
// Each stage is a pure string transform:
//   - Markdown to HTML conversion via Goldmark
//   - Tag allow-list filtering (StripTags)
//   - Bare URL autolinking (LinkExternal)
//   - snippet#<id> cross-reference resolution (LinkReferences)
//   - Minimal XML escaping (EscapeXML)
//
// The token recognizers are small hand-written scanners. They run in linear
// time, never backtrack, and make the leftmost-longest, non-overlapping match
// rule explicit. Stage ordering lives in the root snipmark package.
package pipeline
