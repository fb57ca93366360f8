package dom

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const xmlWrapper = "htmlfixture-root"

// ParseFragment parses markup as the content of a <body> element.
// The returned nodes are detached and ready to be appended elsewhere.
func ParseFragment(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	return html.ParseFragment(strings.NewReader(markup), context)
}

// ParseXMLFragment parses markup with strict XML rules and converts the
// result to detached html nodes. Several top-level elements are allowed.
// A leading XML declaration is ignored.
func ParseXMLFragment(markup string) ([]*html.Node, error) {
	doc := etree.NewDocument()
	body := stripXMLDecl(markup)
	if err := doc.ReadFromString("<" + xmlWrapper + ">" + body + "</" + xmlWrapper + ">"); err != nil {
		return nil, err
	}

	var nodes []*html.Node
	for _, tok := range doc.Root().Child {
		if n := convertToken(tok); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func stripXMLDecl(markup string) string {
	trimmed := strings.TrimLeft(markup, " \t\r\n")
	if !strings.HasPrefix(trimmed, "<?xml") {
		return markup
	}
	end := strings.Index(trimmed, "?>")
	if end < 0 {
		return markup
	}
	return trimmed[end+2:]
}

func convertToken(tok etree.Token) *html.Node {
	switch t := tok.(type) {
	case *etree.Element:
		return convertElement(t)
	case *etree.CharData:
		return &html.Node{Type: html.TextNode, Data: t.Data}
	case *etree.Comment:
		return &html.Node{Type: html.CommentNode, Data: t.Data}
	default:
		// processing instructions and directives have no html form
		return nil
	}
}

func convertElement(el *etree.Element) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     qualified(el.Space, el.Tag),
		DataAtom: atom.Lookup([]byte(el.Tag)),
	}
	for _, a := range el.Attr {
		n.Attr = append(n.Attr, html.Attribute{Key: qualified(a.Space, a.Key), Val: a.Value})
	}
	for _, tok := range el.Child {
		if c := convertToken(tok); c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func qualified(space, local string) string {
	if space == "" {
		return local
	}
	return space + ":" + local
}
