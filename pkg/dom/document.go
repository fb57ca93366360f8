package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const blankDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is a parsed, mutable HTML document
type Document struct {
	root *html.Node
}

// New returns an empty html5 document
func New() *Document {
	doc, err := ParseString(blankDocument)
	if err != nil {
		// the html5 parser does not fail on in-memory input
		panic(err)
	}
	return doc
}

// Parse reads a complete HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the <body> element. The html5 parser always creates one.
func (d *Document) Body() *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
}

// Render serializes the document as HTML
func (d *Document) Render() string {
	return RenderNode(d.root)
}

// FindByID returns the first element whose id attribute equals id
func (d *Document) FindByID(id string) *html.Node {
	return FindByID(d.root, id)
}

// FindAll returns every element with the given tag name, in document order
func (d *Document) FindAll(tag string) []*html.Node {
	return FindAll(d.root, tag)
}

// RenderNode serializes n and its descendants
func RenderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// RenderNodes serializes a list of sibling nodes
func RenderNodes(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(RenderNode(n))
	}
	return sb.String()
}

// RenderChildren serializes the children of n without n itself
func RenderChildren(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(RenderNode(c))
	}
	return sb.String()
}
