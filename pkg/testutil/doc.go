// Package testutil provides utilities for testing htmlfixture components.
//
// Key components:
//   - TestEnvironment: a fixture tree in memory or in a temp directory,
//     with a filesystem.FS over it
//   - FileTree: declarative directory layout for fixture templates
//   - MockFS: testify mock of filesystem.FS for error injection
//
// Test data should be defined inline so each test is self-contained.
package testutil
