package commands

import (
	"github.com/arthur-debert/htmlfixture/pkg/dom"
	"github.com/arthur-debert/htmlfixture/pkg/fixture"
	"github.com/arthur-debert/htmlfixture/pkg/logging"
	"golang.org/x/net/html"
)

// ShowResult is a template as mounted in a fresh document
type ShowResult struct {
	Name string
	Path string
	// HTML is the rendered container content
	HTML string
	// Elements counts the element nodes mounted
	Elements int
}

// Show mounts name with m, renders it and cleans up again
func Show(m *fixture.Manager, name string) (*ShowResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Show").Str("name", name).Msg("Executing command")

	fx, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	defer m.Cleanup()

	result := &ShowResult{
		Name: fx.Name,
		Path: fx.Path,
		HTML: dom.RenderChildren(m.El()),
	}
	for _, root := range fx.Roots {
		result.Elements += countElements(root)
	}
	return result, nil
}

func countElements(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c)
	}
	return count
}
