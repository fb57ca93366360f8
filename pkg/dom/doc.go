// Package dom holds the mutable HTML document fixtures are mounted into.
//
// Documents are trees of golang.org/x/net/html nodes. Markup is parsed
// with html5 rules, or with strict XML rules (via etree) for XHTML and SVG
// fixtures where silently repaired markup would hide mistakes.
//
// Snapshot gives a canonical structural serialization of a document, so
// that two documents are structurally equal exactly when their snapshots
// are equal.
package dom
