// Package commands implements the fixture inspection commands behind the
// htmlfixture CLI: listing, rendering and checking templates.
package commands
