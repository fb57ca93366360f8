package config

import (
	"strings"

	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/arthur-debert/htmlfixture/pkg/paths"
)

// Config is the complete htmlfixture configuration
type Config struct {
	Fixtures Fixtures `koanf:"fixtures"`
	Logging  Logging  `koanf:"logging"`
}

// Fixtures configures the fixture manager
type Fixtures struct {
	// Base is the fixture directory, relative to the project root
	Base string `koanf:"base"`
	// ContainerID is the id of the element fixtures are mounted into
	ContainerID string `koanf:"container_id"`
	// Cache keeps template bytes in memory across loads
	Cache bool `koanf:"cache"`
	// StrictExtensions lists extensions parsed as strict XML
	StrictExtensions []string `koanf:"strict_extensions"`
}

// Logging configures log verbosity
type Logging struct {
	Verbosity int `koanf:"verbosity"`
}

// IsStrict reports whether a fixture with the given extension is parsed as XML
func (f Fixtures) IsStrict(ext string) bool {
	ext = normalizeExt(ext)
	for _, s := range f.StrictExtensions {
		if s == ext {
			return true
		}
	}
	return false
}

// Validate checks the configuration and normalizes extension lists
func (c *Config) Validate() error {
	if err := paths.ValidateBase(c.Fixtures.Base); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid fixtures.base")
	}
	if strings.TrimSpace(c.Fixtures.ContainerID) == "" {
		return errors.New(errors.ErrConfigValid, "fixtures.container_id cannot be empty")
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative: %d", c.Logging.Verbosity)
	}

	exts := make([]string, 0, len(c.Fixtures.StrictExtensions))
	for _, ext := range c.Fixtures.StrictExtensions {
		if ext = normalizeExt(ext); ext != "" {
			exts = append(exts, ext)
		}
	}
	c.Fixtures.StrictExtensions = exts
	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
