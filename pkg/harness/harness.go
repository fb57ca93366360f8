package harness

import (
	"testing"

	"github.com/arthur-debert/htmlfixture/pkg/dom"
	"github.com/arthur-debert/htmlfixture/pkg/fixture"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Harness is the fixture context of a single test
type Harness struct {
	T       testing.TB
	Fixture *fixture.Manager
}

// New creates a Harness for t. Fixture cleanup is registered with
// t.Cleanup and runs when t finishes.
func New(t testing.TB, opts ...fixture.Option) *Harness {
	t.Helper()

	h := &Harness{T: t, Fixture: fixture.New(opts...)}
	t.Cleanup(h.Fixture.Cleanup)
	return h
}

// MustSetBase sets the fixture base or fails the test
func (h *Harness) MustSetBase(base string) {
	h.T.Helper()
	require.NoError(h.T, h.Fixture.SetBase(base))
}

// MustLoad loads fixtures or fails the test
func (h *Harness) MustLoad(names ...string) *fixture.Fixture {
	h.T.Helper()
	fx, err := h.Fixture.Load(names...)
	require.NoError(h.T, err)
	return fx
}

// MustSet mounts inline markup or fails the test
func (h *Harness) MustSet(markup string) *fixture.Fixture {
	h.T.Helper()
	fx, err := h.Fixture.Set(markup)
	require.NoError(h.T, err)
	return fx
}

// MustLoadData decodes a data fixture into v or fails the test
func (h *Harness) MustLoadData(name string, v interface{}) {
	h.T.Helper()
	require.NoError(h.T, h.Fixture.LoadData(name, v))
}

// Document returns the document fixtures are mounted into
func (h *Harness) Document() *dom.Document {
	return h.Fixture.Document()
}

// ByID returns the element with the given id, or nil
func (h *Harness) ByID(id string) *html.Node {
	return h.Document().FindByID(id)
}

// ByClass returns the elements carrying class
func (h *Harness) ByClass(class string) []*html.Node {
	return dom.FindByClass(h.Document().Root(), class)
}

// Expect starts an expectation bound to this test
func (h *Harness) Expect(actual interface{}) *Expectation {
	return Expect(h.T, actual)
}
