package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestNew(t *testing.T) {
	doc := New()

	require.NotNil(t, doc.Body())
	assert.Nil(t, doc.Body().FirstChild)
	assert.Equal(t, "<!DOCTYPE html><html><head></head><body></body></html>", doc.Render())
}

func TestParseString(t *testing.T) {
	doc, err := ParseString(`<html><body><div id="app" class="a b"><p>hello</p></div></body></html>`)
	require.NoError(t, err)

	app := doc.FindByID("app")
	require.NotNil(t, app)
	assert.True(t, HasClass(app, "b"))
	assert.False(t, HasClass(app, "c"))
	assert.Equal(t, "hello", Text(app))
	assert.Len(t, doc.FindAll("p"), 1)
}

func TestParseFragment(t *testing.T) {
	markup := `<ul class="js-jobs-list"><li>one</li><li>two</li></ul>` + "\n"

	nodes, err := ParseFragment(markup)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	for _, n := range nodes {
		assert.Nil(t, n.Parent, "fragment nodes must be detached")
	}
	assert.Equal(t, markup, RenderNodes(nodes))
	assert.Len(t, FindByClass(nodes[0], "js-jobs-list"), 1)
}

func TestParseFragment_RepairsMarkup(t *testing.T) {
	nodes, err := ParseFragment(`<p>unclosed`)
	require.NoError(t, err)
	assert.Equal(t, `<p>unclosed</p>`, RenderNodes(nodes))
}

func TestParseXMLFragment(t *testing.T) {
	markup := `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><circle r="4"/></svg><!--icon-->`

	nodes, err := ParseXMLFragment(markup)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	svg := nodes[0]
	assert.Equal(t, "svg", svg.Data)
	v, ok := Attr(svg, "xmlns")
	assert.True(t, ok)
	assert.Equal(t, "http://www.w3.org/2000/svg", v)
	require.Len(t, FindAll(svg, "circle"), 1)

	assert.Equal(t, html.CommentNode, nodes[1].Type)
	assert.Equal(t, "icon", nodes[1].Data)
}

func TestParseXMLFragment_Strict(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"unclosed element", `<p>unclosed`},
		{"mismatched tags", `<p><b>x</p></b>`},
		{"unquoted attribute", `<p class=x>y</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXMLFragment(tt.markup)
			assert.Error(t, err)
		})
	}
}

func TestDetach(t *testing.T) {
	doc := New()
	nodes, err := ParseFragment(`<div id="x"></div>`)
	require.NoError(t, err)
	doc.Body().AppendChild(nodes[0])

	assert.True(t, Contains(doc.Root(), nodes[0]))
	assert.True(t, Detach(nodes[0]))
	assert.False(t, Contains(doc.Root(), nodes[0]))
	assert.False(t, Detach(nodes[0]), "second detach is a no-op")
	assert.False(t, Detach(nil))
}
