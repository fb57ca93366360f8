package commands

import (
	"testing"

	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/arthur-debert/htmlfixture/pkg/fixture"
	"github.com/arthur-debert/htmlfixture/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*testutil.TestEnvironment, *fixture.Manager) {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).WithFileTree(testutil.FileTree{
		"frontend": testutil.FileTree{
			"fixtures": testutil.FileTree{
				"jobs.html": testutil.JobsMarkup,
				"jobs.json": testutil.JobsData,
				"partials": testutil.FileTree{
					"item.html": "<li>item</li>",
				},
			},
		},
	})
	m := fixture.New(fixture.WithFS(env.FS))
	require.NoError(t, m.SetBase("frontend/fixtures"))
	return env, m
}

func TestList(t *testing.T) {
	env, _ := setup(t)

	names, err := List(ListOptions{FS: env.FS, Base: "frontend/fixtures"})
	require.NoError(t, err)
	assert.Equal(t, []string{"jobs.html", "jobs.json", "partials/item.html"}, names)

	_, err = List(ListOptions{FS: env.FS, Base: "missing"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFixtureRead))

	_, err = List(ListOptions{FS: env.FS, Base: "/abs"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestIsData(t *testing.T) {
	assert.True(t, IsData("jobs.json"))
	assert.True(t, IsData("jobs.YML"))
	assert.False(t, IsData("jobs.html"))
}

func TestShow(t *testing.T) {
	_, m := setup(t)
	before := m.Document().Snapshot()

	result, err := Show(m, "partials/item.html")
	require.NoError(t, err)
	assert.Equal(t, "<li>item</li>", result.HTML)
	assert.Equal(t, 1, result.Elements)
	assert.Equal(t, before, m.Document().Snapshot(), "show cleans up")

	result, err = Show(m, "jobs.html")
	require.NoError(t, err)
	assert.Equal(t, testutil.JobsMarkup, result.HTML)
	// div, ul, 2 li, 2 a, form, button
	assert.Equal(t, 8, result.Elements)

	_, err = Show(m, "missing.html")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFixtureNotFound))
}

func TestCheck(t *testing.T) {
	env, m := setup(t)

	result, err := Check(m, ListOptions{FS: env.FS})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Empty(t, result.Failed())
	assert.True(t, result.Items[1].Data)

	env.WriteFile("frontend/fixtures/broken.xhtml", "<p>unclosed")
	env.WriteFile("frontend/fixtures/broken.yaml", "a: [")

	result, err = Check(m, ListOptions{FS: env.FS})
	require.NoError(t, err)
	failed := result.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "broken.xhtml", failed[0].Name)
	assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrFixtureParse))
	assert.Equal(t, "broken.yaml", failed[1].Name)
	assert.False(t, m.Loaded())
}
