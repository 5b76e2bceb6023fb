package pipeline

import (
	"bytes"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGoldmarkRenderer_Render - Extended dialect output
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "strong emphasis",
			input:       "**hi**",
			wantContain: []string{"<p><strong>hi</strong></p>"},
		},
		{
			name:        "table",
			input:       "| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContain: []string{"<table>", "<th>a</th>", "<td>2</td>"},
		},
		{
			name:        "fenced code",
			input:       "```go\nfmt.Println(1 < 2)\n```\n",
			wantContain: []string{`<pre><code class="language-go">`, "1 &lt; 2"},
		},
		{
			name:        "definition list",
			input:       "Term\n: Definition\n",
			wantContain: []string{"<dl>", "<dt>Term</dt>", "<dd>Definition</dd>"},
		},
		{
			name:        "footnote",
			input:       "Text[^1]\n\n[^1]: Note\n",
			wantContain: []string{"footnote-ref", "Note"},
		},
		{
			name:        "strikethrough",
			input:       "~~old~~",
			wantContain: []string{"<del>old</del>"},
		},
		{
			name:        "heading attribute",
			input:       "# Title {#intro}",
			wantContain: []string{`<h1 id="intro">Title</h1>`},
		},
		{
			name:        "xhtml line break",
			input:       "a  \nb",
			wantContain: []string{"a<br />"},
		},
		{
			name:        "raw inline html passes through",
			input:       "a <script>x</script> b",
			wantContain: []string{"<script>x</script>"},
			wantAbsent:  []string{"raw HTML omitted"},
		},
		{
			name:        "bare url not autolinked",
			input:       "see http://x.com",
			wantContain: []string{"<p>see http://x.com</p>"},
			wantAbsent:  []string{"<a "},
		},
		{
			name:        "reference token left for later stages",
			input:       "snippet#1",
			wantContain: []string{"<p>snippet#1</p>"},
		},
		{
			name:        "empty input",
			input:       "",
			wantAbsent:  []string{"<p>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Render(tt.input)
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, should contain %q", tt.input, got, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Render(%q) = %q, should not contain %q", tt.input, got, absent)
				}
			}
		})
	}
}

func TestGoldmarkRenderer_Highlighting(t *testing.T) {
	t.Parallel()

	source := "```go\npackage main\n```\n"

	plain := NewGoldmarkRenderer().Render(source)
	if strings.Contains(plain, "chroma") {
		t.Errorf("highlighting should be off by default, got %q", plain)
	}

	highlighted := NewGoldmarkRenderer(WithHighlighting("github")).Render(source)
	if !strings.Contains(highlighted, `class="chroma"`) {
		t.Errorf("highlighted output should carry chroma classes, got %q", highlighted)
	}
	if strings.Contains(highlighted, "style=") {
		t.Errorf("highlighted output should use classes, not inline styles, got %q", highlighted)
	}
}

func TestGoldmarkRenderer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()
	want := r.Render("*x* snippet#1")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := r.Render("*x* snippet#1"); got != want {
				t.Errorf("concurrent Render = %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestHasStyle(t *testing.T) {
	t.Parallel()

	if !HasStyle("github") {
		t.Error("HasStyle(github) = false, want true")
	}
	if HasStyle("no-such-style") {
		t.Error("HasStyle(no-such-style) = true, want false")
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	if !sort.StringsAreSorted(names) {
		t.Error("StyleNames() not sorted")
	}
	for _, name := range names {
		if !HasStyle(name) {
			t.Errorf("StyleNames() lists %q but HasStyle is false", name)
		}
	}
	if !slices.Contains(names, "github") {
		t.Error("StyleNames() missing github")
	}
}

func TestWriteHighlightCSS(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteHighlightCSS(&buf, "github"); err != nil {
		t.Fatalf("WriteHighlightCSS() error: %v", err)
	}
	if !strings.Contains(buf.String(), ".chroma") {
		t.Errorf("stylesheet should target .chroma, got %q", buf.String())
	}
}
