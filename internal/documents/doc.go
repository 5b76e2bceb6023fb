// Package documents loads Markdown documents for the include pipeline.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── FSLoader          - any fs.FS; NewEmbeddedLoader serves bundled documents
//	    ├── FilesystemLoader  - a documents root on disk
//	    └── Resolver          - custom root first, bundled documents as fallback
//
// A document is addressed by name without extension: "markdown-help" maps to
// markdown-help.md in the loader's directory.
//
// # Security
//
// Names are validated before any filesystem access: empty names, path
// separators and dots are rejected. FilesystemLoader also resolves symlinks
// and verifies the final path stays within its root.
package documents
