// Package paths validates fixture base paths and resolves fixture names
// against them.
package paths
