package harness

import (
	"testing"

	"github.com/arthur-debert/htmlfixture/pkg/fixture"
)

// Hook runs before or after each spec
type Hook func(h *Harness)

// SpecFunc is the body of a spec
type SpecFunc func(t *testing.T, h *Harness)

// Suite collects hooks, specs and nested suites. Nothing runs until the
// enclosing Describe has collected the whole tree.
type Suite struct {
	name    string
	parent  *Suite
	opts    []fixture.Option
	before  []Hook
	after   []Hook
	entries []entry
}

type entry struct {
	name  string
	spec  SpecFunc
	suite *Suite
}

// Describe collects a suite with fn and runs it as a subtest of t.
// Options configure the fixture manager of every spec in the suite.
func Describe(t *testing.T, name string, fn func(s *Suite), opts ...fixture.Option) bool {
	t.Helper()

	s := &Suite{name: name, opts: opts}
	fn(s)
	return t.Run(name, s.run)
}

// Describe adds a nested suite. Its specs see the hooks of every
// enclosing suite.
func (s *Suite) Describe(name string, fn func(s *Suite)) {
	child := &Suite{name: name, parent: s}
	fn(child)
	s.entries = append(s.entries, entry{name: name, suite: child})
}

// BeforeEach registers a hook run before every spec of the suite
func (s *Suite) BeforeEach(fn Hook) {
	s.before = append(s.before, fn)
}

// AfterEach registers a hook run after every spec of the suite, even when
// the spec fails. Fixture cleanup runs after all AfterEach hooks.
func (s *Suite) AfterEach(fn Hook) {
	s.after = append(s.after, fn)
}

// It adds a spec
func (s *Suite) It(name string, fn SpecFunc) {
	s.entries = append(s.entries, entry{name: name, spec: fn})
}

func (s *Suite) run(t *testing.T) {
	for _, e := range s.entries {
		if e.suite != nil {
			t.Run(e.name, e.suite.run)
			continue
		}
		t.Run(e.name, func(t *testing.T) {
			s.runSpec(t, e.spec)
		})
	}
}

func (s *Suite) runSpec(t *testing.T, spec SpecFunc) {
	h := New(t, s.options()...)

	// t.Cleanup is LIFO, so these run before the fixture cleanup New registered
	after := s.afterHooks()
	t.Cleanup(func() {
		for _, fn := range after {
			fn(h)
		}
	})

	for _, fn := range s.beforeHooks() {
		fn(h)
	}
	spec(t, h)
}

// beforeHooks returns outermost suite hooks first
func (s *Suite) beforeHooks() []Hook {
	var hooks []Hook
	if s.parent != nil {
		hooks = append(hooks, s.parent.beforeHooks()...)
	}
	return append(hooks, s.before...)
}

// afterHooks returns innermost suite hooks first
func (s *Suite) afterHooks() []Hook {
	hooks := append([]Hook(nil), s.after...)
	if s.parent != nil {
		hooks = append(hooks, s.parent.afterHooks()...)
	}
	return hooks
}

func (s *Suite) options() []fixture.Option {
	if s.parent != nil {
		return s.parent.options()
	}
	return s.opts
}
