// Package harness wires fixture managers into Go tests.
//
// A Harness binds a fixture.Manager to one test and registers its Cleanup
// with t.Cleanup, so fixtures are removed when the test ends, whether it
// passed, failed, called t.FailNow or panicked.
//
// Describe groups specs the way describe/beforeEach/afterEach/it do in
// browser test runners:
//
//	harness.Describe(t, "jobs list", func(s *harness.Suite) {
//		s.BeforeEach(func(h *harness.Harness) {
//			h.MustSetBase("frontend/fixtures")
//			h.MustLoad("jobs.html")
//		})
//		s.It("lists openings", func(t *testing.T, h *harness.Harness) {
//			h.Expect(len(h.ByClass("job-opening"))).ToEqual(2)
//		})
//	})
//
// Specs always run sequentially. The document is shared mutable state, so
// nothing here calls t.Parallel.
package harness
