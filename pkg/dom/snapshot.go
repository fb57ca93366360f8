package dom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Snapshot returns a canonical, line-oriented serialization of the whole
// document. Attribute order does not affect it; everything else does.
func (d *Document) Snapshot() string {
	return SnapshotNode(d.root)
}

// SnapshotNode is Snapshot for an arbitrary subtree
func SnapshotNode(n *html.Node) string {
	var sb strings.Builder
	writeSnapshot(&sb, n, 0)
	return sb.String()
}

// Equal reports whether two documents are structurally equal
func Equal(a, b *Document) bool {
	return a.Snapshot() == b.Snapshot()
}

func writeSnapshot(sb *strings.Builder, n *html.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case html.DocumentNode:
		sb.WriteString(indent + "#document\n")
	case html.DoctypeNode:
		fmt.Fprintf(sb, "%s!doctype %s\n", indent, n.Data)
	case html.ElementNode:
		sb.WriteString(indent + "<" + n.Data)
		for _, a := range sortedAttrs(n.Attr) {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + key
			}
			fmt.Fprintf(sb, " %s=%q", key, a.Val)
		}
		sb.WriteString(">\n")
	case html.TextNode:
		fmt.Fprintf(sb, "%s%q\n", indent, n.Data)
	case html.CommentNode:
		fmt.Fprintf(sb, "%s<!-- %q -->\n", indent, n.Data)
	default:
		fmt.Fprintf(sb, "%s?%d %q\n", indent, n.Type, n.Data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeSnapshot(sb, c, depth+1)
	}
}

func sortedAttrs(attrs []html.Attribute) []html.Attribute {
	sorted := make([]html.Attribute, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Namespace != sorted[j].Namespace {
			return sorted[i].Namespace < sorted[j].Namespace
		}
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}
