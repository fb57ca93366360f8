// Package fixture mounts HTML fixture templates into a document for tests
// and removes them again.
//
// A Manager owns the fixture base path, the target document and the set of
// fixtures mounted since the last Cleanup. It cycles between two states:
//
//	unloaded --Load/Set--> loaded --Cleanup--> unloaded
//
// Load is atomic. Every named template is resolved, read and parsed before
// the document is touched, so a failed Load leaves the document unchanged.
// Cleanup is idempotent and tolerates nodes that code under test already
// removed.
//
// Mounted fixtures live inside a single container element appended to
// <body>:
//
//	m := fixture.New(fixture.WithFS(filesystem.NewBasePathFS(".")))
//	if err := m.SetBase("frontend/fixtures"); err != nil { ... }
//	fx, err := m.Load("jobs.html")
//	defer m.Cleanup()
//
// A Manager is not meant for concurrent use. Tests sharing one run
// sequentially; see package harness for the per-test wiring.
package fixture
