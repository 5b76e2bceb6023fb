package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestStripTags - Allow-list filtering
// ---------------------------------------------------------------------------

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "keeps em",
			input:    "<em>x</em>",
			expected: "<em>x</em>",
		},
		{
			name:     "keeps every allowed tag",
			input:    "<p><strong>a</strong><code>b</code><kbd>c</kbd></p><blockquote>d</blockquote><br>",
			expected: "<p><strong>a</strong><code>b</code><kbd>c</kbd></p><blockquote>d</blockquote><br>",
		},
		{
			name:     "removes script keeps inner text",
			input:    "<script>x</script>",
			expected: "x",
		},
		{
			name:     "removes tag with attributes",
			input:    `<a href="http://example.com" target="_blank">link</a>`,
			expected: "link",
		},
		{
			name:     "keeps self-closing br",
			input:    "a<br />b<br/>c",
			expected: "a<br />b<br/>c",
		},
		{
			name:     "keeps allowed tag with attributes verbatim",
			input:    `<p class="lead">x</p>`,
			expected: `<p class="lead">x</p>`,
		},
		{
			name:     "keeps allowed tag with trailing whitespace",
			input:    "<em >x</em >",
			expected: "<em >x</em >",
		},
		{
			name:     "case-insensitive allow-list",
			input:    "<EM>x</Em><STRONG>y</STRONG>",
			expected: "<EM>x</Em><STRONG>y</STRONG>",
		},
		{
			name:     "prefix of allowed name is not allowed",
			input:    "<pre>x</pre><bra>y</bra><pp>z</pp>",
			expected: "xyz",
		},
		{
			name:     "removes headings and tables",
			input:    "<h1>T</h1><table><tr><td>1</td></tr></table>",
			expected: "T1",
		},
		{
			name:     "removes comments",
			input:    "a<!-- note -->b",
			expected: "ab",
		},
		{
			name:     "unclosed bracket left as-is",
			input:    "a < b",
			expected: "a < b",
		},
		{
			name:     "bracket not closed before next bracket stays",
			input:    "1 < 2 <em>x</em>",
			expected: "1 < 2 <em>x</em>",
		},
		{
			name:     "lone closing bracket stays",
			input:    "a > b",
			expected: "a > b",
		},
		{
			name:     "tag spanning lines removed",
			input:    "<div\nclass=\"x\">y</div>",
			expected: "y",
		},
		{
			name:     "removal cannot splice a new tag",
			input:    "<<b>x>",
			expected: "",
		},
		{
			name:     "removal keeps earlier text bracket when spliced result is allowed",
			input:    "<<b>em>x",
			expected: "<em>x",
		},
		{
			name:     "non-ascii text preserved",
			input:    "<span>日本語</span> <em>é</em>",
			expected: "日本語 <em>é</em>",
		},
		{
			name:     "empty tag removed",
			input:    "a<>b",
			expected: "ab",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := StripTags(tt.input)
			if got != tt.expected {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStripTags_Idempotent - Re-applying yields identical output
// ---------------------------------------------------------------------------

func TestStripTags_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<em>x</em>",
		"<script>alert(1)</script><p>ok</p>",
		"<<b>x>",
		"<<<a>b>c>d>",
		"<<b>em>x</em>",
		"a < b > c",
		"<p\n>x</p\n>",
		"<x<y<z>>>",
		"<em<b>>",
		strings.Repeat("<", 50) + strings.Repeat("i>", 50),
		"<b><<i>></i></b>",
	}

	for _, input := range inputs {
		once := StripTags(input)
		twice := StripTags(once)
		if once != twice {
			t.Errorf("StripTags not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

func TestIsAllowedTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body string
		want bool
	}{
		{"p", true},
		{"/p", true},
		{"br /", true},
		{"br/", true},
		{"blockquote cite=\"x\"", true},
		{"KBD", true},
		{"", false},
		{"/", false},
		{" p", false},
		{"pre", false},
		{"p-x", false},
		{"blockquotes", false},
		{"script", false},
		{"!-- c --", false},
	}

	for _, tt := range tests {
		if got := isAllowedTag([]byte(tt.body)); got != tt.want {
			t.Errorf("isAllowedTag(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}
