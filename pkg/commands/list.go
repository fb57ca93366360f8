package commands

import (
	"path/filepath"

	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/arthur-debert/htmlfixture/pkg/filesystem"
	"github.com/arthur-debert/htmlfixture/pkg/logging"
	"github.com/arthur-debert/htmlfixture/pkg/paths"
)

// ListOptions defines the options for the List command
type ListOptions struct {
	FS   filesystem.FS
	Base string
}

// List returns every template name under the base, sorted
func List(opts ListOptions) ([]string, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "List").Str("base", opts.Base).Msg("Executing command")

	if err := paths.ValidateBase(opts.Base); err != nil {
		return nil, err
	}

	var names []string
	err := filesystem.Walk(opts.FS, filepath.FromSlash(opts.Base), func(name string) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFixtureRead, "cannot list fixtures under %s", opts.Base).
			WithDetail("base", opts.Base)
	}

	log.Info().Str("command", "List").Int("fixtureCount", len(names)).Msg("Command finished")
	return names, nil
}

// IsData reports whether name is a data fixture rather than markup
func IsData(name string) bool {
	switch paths.Ext(name) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
