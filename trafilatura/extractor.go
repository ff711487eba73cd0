// Package trafilatura derives the extraction engine's plain-text input
// from raw HTML using go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/contactsift/contactsift"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements contactsift.TextExtractor at compile time.
var _ contactsift.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to produce the main textual content of
// a page with navigation, footer, and sidebar boilerplate removed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text returns the main textual content of the page and its title.
// Contact details often live in footers and sidebars that boilerplate
// removal discards, so when trafilatura cannot produce content the whole
// document text is used as a fallback rather than returning nothing.
func (e *Extractor) Text(rawHTML string) (string, string, error) {
	if rawHTML == "" {
		return "", "", contactsift.Errorf(contactsift.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result.ContentText == "" {
		text, renderErr := renderText(rawHTML)
		if renderErr != nil {
			return "", "", renderErr
		}
		return text, "", nil
	}

	// Append comment text; attribution lines there frequently carry
	// names and addresses.
	text := result.ContentText
	if result.CommentsText != "" {
		text += "\n" + result.CommentsText
	}

	return text, result.Metadata.Title, nil
}

// renderText walks the raw HTML tree and concatenates its text nodes,
// skipping script and style subtrees.
func renderText(rawHTML string) (string, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", contactsift.Errorf(contactsift.EINVALID, "failed to parse HTML: %v", err)
	}

	var buf bytes.Buffer
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return buf.String(), nil
}
