package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "fixtures", cfg.Fixtures.Base)
	assert.Equal(t, "fixture_container", cfg.Fixtures.ContainerID)
	assert.True(t, cfg.Fixtures.Cache)
	assert.Equal(t, []string{".xhtml", ".svg"}, cfg.Fixtures.StrictExtensions)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
	assert.Contains(t, DefaultContent(), "[fixtures]")
}

func TestLoad(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		cfg, err := Load(t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, "fixtures", cfg.Fixtures.Base)
	})

	t.Run("project_file_overrides_defaults", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, ".htmlfixture.toml", `
[fixtures]
base = "frontend/fixtures"
cache = false
`)

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "frontend/fixtures", cfg.Fixtures.Base)
		assert.False(t, cfg.Fixtures.Cache)
		assert.Equal(t, "fixture_container", cfg.Fixtures.ContainerID)
	})

	t.Run("dotted_file_wins_over_plain", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, ".htmlfixture.toml", "[fixtures]\nbase = \"dotted\"\n")
		writeConfig(t, root, "htmlfixture.toml", "[fixtures]\nbase = \"plain\"\n")

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "dotted", cfg.Fixtures.Base)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "htmlfixture.toml", "[fixtures]\nbase = \"from-file\"\n")
		t.Setenv("HTMLFIXTURE_FIXTURES_BASE", "from-env")
		t.Setenv("HTMLFIXTURE_FIXTURES_CONTAINER_ID", "sandbox")
		t.Setenv("HTMLFIXTURE_FIXTURES_STRICT_EXTENSIONS", "xml,.SVG")
		t.Setenv("HTMLFIXTURE_LOGGING_VERBOSITY", "2")

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Fixtures.Base)
		assert.Equal(t, "sandbox", cfg.Fixtures.ContainerID)
		assert.Equal(t, []string{".xml", ".svg"}, cfg.Fixtures.StrictExtensions)
		assert.Equal(t, 2, cfg.Logging.Verbosity)
	})

	t.Run("overrides_win", func(t *testing.T) {
		t.Setenv("HTMLFIXTURE_FIXTURES_BASE", "from-env")

		cfg, err := Load(t.TempDir(), map[string]interface{}{"fixtures.base": "from-flag"})
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Fixtures.Base)
	})

	t.Run("invalid_toml", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, ".htmlfixture.toml", "[fixtures\nbase = ")

		_, err := Load(root, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_base", func(t *testing.T) {
		_, err := Load(t.TempDir(), map[string]interface{}{"fixtures.base": "/abs/fixtures"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("empty_container_id", func(t *testing.T) {
		_, err := Load(t.TempDir(), map[string]interface{}{"fixtures.container_id": " "})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestRootFromEnv(t *testing.T) {
	t.Setenv(EnvRoot, "")
	assert.Equal(t, ".", RootFromEnv())

	t.Setenv(EnvRoot, "/srv/app")
	assert.Equal(t, "/srv/app", RootFromEnv())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "fixtures.base", envKey("HTMLFIXTURE_FIXTURES_BASE"))
	assert.Equal(t, "fixtures.container_id", envKey("HTMLFIXTURE_FIXTURES_CONTAINER_ID"))
	assert.Equal(t, "", envKey("HTMLFIXTURE_ROOT"))
}

func TestFixtures_IsStrict(t *testing.T) {
	f := Fixtures{StrictExtensions: []string{".xhtml", ".svg"}}
	assert.True(t, f.IsStrict(".SVG"))
	assert.True(t, f.IsStrict("xhtml"))
	assert.False(t, f.IsStrict(".html"))
}
