package documents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestEmbeddedLoader_LoadDocument(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		docName     string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads markdown-help",
			docName:     "markdown-help",
			wantContain: "snippet#",
		},
		{
			name:        "loads about",
			docName:     "about",
			wantContain: "# About",
		},
		{
			name:    "returns ErrDocumentNotFound for nonexistent",
			docName: "nonexistent-doc-xyz",
			wantErr: ErrDocumentNotFound,
		},
		{
			name:    "returns ErrInvalidDocumentName for traversal",
			docName: "../fsloader",
			wantErr: ErrInvalidDocumentName,
		},
		{
			name:    "returns ErrInvalidDocumentName for extension",
			docName: "about.md",
			wantErr: ErrInvalidDocumentName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadDocument(context.Background(), tt.docName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadDocument(%q) error = %v, want %v", tt.docName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadDocument(%q) unexpected error: %v", tt.docName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadDocument(%q) content should contain %q", tt.docName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_List(t *testing.T) {
	t.Parallel()

	names, err := NewEmbeddedLoader().List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	got := strings.Join(names, ",")
	if got != "about,markdown-help" {
		t.Errorf("List() = %q, want %q", got, "about,markdown-help")
	}
}

func TestFSLoader_MapFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"docs/guide.md":      {Data: []byte("# Guide")},
		"docs/notes.txt":     {Data: []byte("ignored")},
		"docs/nested/sub.md": {Data: []byte("ignored")},
		"other.md":           {Data: []byte("outside dir")},
	}
	loader := NewFSLoader(fsys, "docs")
	ctx := context.Background()

	got, err := loader.LoadDocument(ctx, "guide")
	if err != nil {
		t.Fatalf("LoadDocument(guide) error: %v", err)
	}
	if got != "# Guide" {
		t.Errorf("LoadDocument(guide) = %q, want %q", got, "# Guide")
	}

	if _, err := loader.LoadDocument(ctx, "other"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("LoadDocument(other) error = %v, want ErrDocumentNotFound", err)
	}

	names, err := loader.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(names) != 1 || names[0] != "guide" {
		t.Errorf("List() = %v, want [guide]", names)
	}
}

func TestFSLoader_MissingDirListsNothing(t *testing.T) {
	t.Parallel()

	names, err := NewFSLoader(fstest.MapFS{}, "missing").List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}
}

func TestFSLoader_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmbeddedLoader().LoadDocument(ctx, "about")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadDocument() error = %v, want context.Canceled", err)
	}
}
