// pkg/testutil/environment.go
// DEPENDENCIES: filesystem
// PURPOSE: Build isolated fixture trees for tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/htmlfixture/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero in-memory filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a project root holding fixture templates
type TestEnvironment struct {
	// Root is the project root fixture bases are relative to
	Root string
	// FS reads names relative to Root
	FS filesystem.FS

	Type EnvType

	t   *testing.T
	mem afero.Fs
}

// FileTree represents a directory structure for testing.
// Values are either file content (string) or a nested FileTree.
type FileTree map[string]interface{}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/project"
		env.mem = afero.NewMemMapFs()
		if err := env.mem.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create project root: %v", err)
		}
		env.FS = filesystem.NewAferoFS(afero.NewBasePathFs(env.mem, env.Root))
	case EnvIsolated:
		env.Root = filepath.Join(t.TempDir(), "project")
		if err := os.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create project root: %v", err)
		}
		env.FS = filesystem.NewBasePathFS(env.Root)
	default:
		t.Fatalf("Unknown environment type %d", envType)
	}

	return env
}

// WithFileTree creates a complete file tree below the project root
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	env.createFileTree(env.Root, tree)
	return env
}

// WriteFile writes a single file below the project root
func (env *TestEnvironment) WriteFile(rel, content string) {
	env.t.Helper()

	full := filepath.Join(env.Root, filepath.FromSlash(rel))
	env.mkdirAll(filepath.Dir(full))
	env.writeFile(full, content)
}

// RemoveFile deletes a file below the project root
func (env *TestEnvironment) RemoveFile(rel string) {
	env.t.Helper()

	full := filepath.Join(env.Root, filepath.FromSlash(rel))
	var err error
	if env.mem != nil {
		err = env.mem.Remove(full)
	} else {
		err = os.Remove(full)
	}
	if err != nil {
		env.t.Fatalf("Failed to remove %s: %v", rel, err)
	}
}

func (env *TestEnvironment) createFileTree(basePath string, tree FileTree) {
	env.t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			env.mkdirAll(filepath.Dir(fullPath))
			env.writeFile(fullPath, v)
		case FileTree:
			env.mkdirAll(fullPath)
			env.createFileTree(fullPath, v)
		default:
			env.t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

func (env *TestEnvironment) mkdirAll(dir string) {
	env.t.Helper()

	var err error
	if env.mem != nil {
		err = env.mem.MkdirAll(dir, 0755)
	} else {
		err = os.MkdirAll(dir, 0755)
	}
	if err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
}

func (env *TestEnvironment) writeFile(path, content string) {
	env.t.Helper()

	var err error
	if env.mem != nil {
		err = afero.WriteFile(env.mem, path, []byte(content), 0644)
	} else {
		err = os.WriteFile(path, []byte(content), 0644)
	}
	if err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
