package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "jobs.html")
	require.NoError(t, os.WriteFile(testFile, []byte("<ul></ul>"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "partials"), 0755))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "jobs.html", info.Name())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>", string(content))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/fixtures/partials", 0755))

	_, err := NewAferoFS(mem).ReadFile("/fixtures/partials")
	assert.Error(t, err)
}

func TestNewBasePathFS(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "jobs.html"), []byte("<p>jobs</p>"), 0644))

	fsys := NewBasePathFS(root)

	content, err := fsys.ReadFile("jobs.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>jobs</p>", string(content))

	_, err = fsys.ReadFile("../outside.html")
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	mem := afero.NewMemMapFs()
	files := map[string]string{
		"/fx/jobs.html":         "<ul></ul>",
		"/fx/b/detail.html":     "<article></article>",
		"/fx/a.json":            "{}",
		"/fx/.hidden/skip.html": "",
		"/fx/.ignored.html":     "",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0644))
	}

	var got []string
	err := Walk(NewAferoFS(mem), "/fx", func(name string) error {
		got = append(got, name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b/detail.html", "jobs.html"}, got)
}

func TestWalk_MissingRoot(t *testing.T) {
	err := Walk(NewAferoFS(afero.NewMemMapFs()), "/nope", func(string) error { return nil })
	assert.Error(t, err)
}
