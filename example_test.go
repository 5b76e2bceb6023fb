package snipmark_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-snipmark"
)

// Example demonstrates rendering a user snippet for in-app display.
func Example() {
	r, err := snipmark.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(r.Render("**hi** <script>bad</script> http://x.com snippet#1"))
	// Output: <p><strong>hi</strong> bad <a href="http://x.com" target="_blank">http://x.com</a> <a href="/snippet/1">Snippet #1</a></p>
}

// ExampleRenderer_RenderForRSS demonstrates absolute references for feeds,
// escaped for use as an item description.
func ExampleRenderer_RenderForRSS() {
	r, err := snipmark.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := r.RenderForRSS("Based on snippet#42/window-moves", "https://example.com")
	fmt.Print(html)
	fmt.Print(snipmark.EscapeXML(html))
	// Output:
	// <p>Based on <a href="https://example.com/snippet/42">Snippet #42</a></p>
	// &#x3C;p&#x3E;Based on &#x3C;a href="https://example.com/snippet/42"&#x3E;Snippet #42&#x3C;/a&#x3E;&#x3C;/p&#x3E;
}

// ExampleRenderer_RenderInclude demonstrates rendering a bundled document.
func ExampleRenderer_RenderInclude() {
	r, err := snipmark.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html, err := r.RenderInclude(context.Background(), "markdown-help")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.HasPrefix(html, "<h1>Formatting help</h1>"))
	fmt.Println(strings.Contains(html, "<table>"))

	_, err = r.RenderInclude(context.Background(), "no-such-page")
	fmt.Println(errors.Is(err, snipmark.ErrDocumentNotFound))
	// Output:
	// true
	// true
	// true
}

// ExampleEscapeXML demonstrates the standalone XML escaper.
func ExampleEscapeXML() {
	fmt.Println(snipmark.EscapeXML(`Tom & "Jerry" <3`))
	// Output: Tom &#x26; "Jerry" &#x3C;3
}
