package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// FindByID returns the first element below n whose id equals id
func FindByID(n *html.Node, id string) *html.Node {
	return findFirst(n, func(c *html.Node) bool {
		v, ok := Attr(c, "id")
		return ok && v == id
	})
}

// FindAll returns every element below n with the given tag name
func FindAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	visit(n, func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == tag {
			found = append(found, c)
		}
	})
	return found
}

// FindByClass returns every element below n carrying class
func FindByClass(n *html.Node, class string) []*html.Node {
	var found []*html.Node
	visit(n, func(c *html.Node) {
		if HasClass(c, class) {
			found = append(found, c)
		}
	})
	return found
}

// Attr returns the value of an attribute on an element
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the element's class list contains class
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of n
func Text(n *html.Node) string {
	var sb strings.Builder
	visit(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// Contains reports whether n is ancestor or equal to descendant
func Contains(n, descendant *html.Node) bool {
	for c := descendant; c != nil; c = c.Parent {
		if c == n {
			return true
		}
	}
	return false
}

// Detach removes n from its parent. It reports false when n was already
// detached, which is not an error.
func Detach(n *html.Node) bool {
	if n == nil || n.Parent == nil {
		return false
	}
	n.Parent.RemoveChild(n)
	return true
}

func visit(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
