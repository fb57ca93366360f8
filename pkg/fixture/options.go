package fixture

import (
	"strings"

	"github.com/arthur-debert/htmlfixture/pkg/dom"
	"github.com/arthur-debert/htmlfixture/pkg/filesystem"
	"github.com/rs/zerolog"
)

// Option configures a Manager
type Option func(*Manager)

// WithFS sets the filesystem templates are read from
func WithFS(fsys filesystem.FS) Option {
	return func(m *Manager) {
		m.fs = fsys
	}
}

// WithDocument mounts fixtures into doc instead of a blank document
func WithDocument(doc *dom.Document) Option {
	return func(m *Manager) {
		m.doc = doc
	}
}

// WithContainerID sets the id of the container element
func WithContainerID(id string) Option {
	return func(m *Manager) {
		if id != "" {
			m.containerID = id
		}
	}
}

// WithCache enables or disables the template cache
func WithCache(enabled bool) Option {
	return func(m *Manager) {
		m.cacheEnabled = enabled
	}
}

// WithStrictExtensions sets the extensions parsed with strict XML rules
func WithStrictExtensions(exts ...string) Option {
	return func(m *Manager) {
		m.strict = make(map[string]bool, len(exts))
		for _, ext := range exts {
			m.strict[strings.ToLower(ext)] = true
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}
