package fixture

import (
	"github.com/arthur-debert/htmlfixture/pkg/dom"
	"golang.org/x/net/html"
)

// Fixture is a template mounted into the document
type Fixture struct {
	// Name is the name passed to Load, empty for inline markup
	Name string
	// Path is the resolved template path
	Path string
	// Markup is the raw template text
	Markup string
	// Roots are the mounted top-level nodes, in document order
	Roots []*html.Node
	// Container is the element the roots were appended to
	Container *html.Node
}

// HTML renders the mounted roots as they currently are
func (f *Fixture) HTML() string {
	return dom.RenderNodes(f.Roots)
}

// Elements returns the element roots, skipping text and comment nodes
func (f *Fixture) Elements() []*html.Node {
	var elements []*html.Node
	for _, n := range f.Roots {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	return elements
}

// Attached reports whether every root is still inside the container
func (f *Fixture) Attached() bool {
	for _, n := range f.Roots {
		if n.Parent != f.Container {
			return false
		}
	}
	return f.Container != nil && f.Container.Parent != nil
}
