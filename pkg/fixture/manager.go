package fixture

import (
	stderrors "errors"
	"io/fs"
	"sync"

	"github.com/arthur-debert/htmlfixture/pkg/config"
	"github.com/arthur-debert/htmlfixture/pkg/dom"
	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/arthur-debert/htmlfixture/pkg/filesystem"
	"github.com/arthur-debert/htmlfixture/pkg/logging"
	"github.com/arthur-debert/htmlfixture/pkg/paths"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// DefaultBase is the base path used until SetBase is called
	DefaultBase = "fixtures"

	// DefaultContainerID is the id of the element fixtures mount into
	DefaultContainerID = "fixture_container"
)

// Manager loads fixtures into a document and removes them again
type Manager struct {
	mu sync.Mutex

	fs           filesystem.FS
	doc          *dom.Document
	base         string
	containerID  string
	strict       map[string]bool
	cacheEnabled bool
	cache        map[string][]byte
	logger       zerolog.Logger

	container *html.Node
	mounted   []*Fixture
}

// New creates a Manager. Without options it reads templates from the
// working directory, mounts into a blank document and uses DefaultBase.
func New(opts ...Option) *Manager {
	m := &Manager{
		fs:           filesystem.NewOS(),
		base:         DefaultBase,
		containerID:  DefaultContainerID,
		strict:       map[string]bool{".xhtml": true, ".svg": true},
		cacheEnabled: true,
		cache:        make(map[string][]byte),
		logger:       logging.GetLogger("fixture"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.doc == nil {
		m.doc = dom.New()
	}
	return m
}

// NewFromConfig creates a Manager from configuration. Options are applied
// after the configured values.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Manager, error) {
	base := []Option{
		WithContainerID(cfg.Fixtures.ContainerID),
		WithCache(cfg.Fixtures.Cache),
		WithStrictExtensions(cfg.Fixtures.StrictExtensions...),
	}
	m := New(append(base, opts...)...)
	if err := m.SetBase(cfg.Fixtures.Base); err != nil {
		return nil, err
	}
	return m, nil
}

// SetBase sets the directory fixture names are resolved against.
// An invalid base is rejected and the previous base stays in effect.
func (m *Manager) SetBase(base string) error {
	if err := paths.ValidateBase(base); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.base = base
	m.logger.Debug().Str("base", base).Msg("Fixture base set")
	return nil
}

// Base returns the current fixture base path
func (m *Manager) Base() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base
}

// Document returns the document fixtures are mounted into
func (m *Manager) Document() *dom.Document {
	return m.doc
}

// El returns the container element, or nil when nothing is loaded
func (m *Manager) El() *html.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.container
}

// Loaded reports whether any fixture is mounted
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.mounted) > 0
}

// Fixtures returns the fixtures mounted since the last Cleanup, in load order
func (m *Manager) Fixtures() []*Fixture {
	m.mu.Lock()
	defer m.mu.Unlock()

	fixtures := make([]*Fixture, len(m.mounted))
	copy(fixtures, m.mounted)
	return fixtures
}

// Load mounts the named templates, in order, and returns the last one.
// Nothing is mounted unless every template resolves and parses.
func (m *Manager) Load(names ...string) (*Fixture, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no fixture names given")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	done := logging.LogOperationStart(m.logger, "load")
	defer done()

	prepared := make([]*Fixture, 0, len(names))
	for _, name := range names {
		fx, err := m.prepare(name)
		if err != nil {
			m.logger.Debug().Err(err).Str("name", name).Msg("Fixture load failed, document untouched")
			return nil, err
		}
		prepared = append(prepared, fx)
	}

	if err := m.mount(prepared); err != nil {
		return nil, err
	}
	return prepared[len(prepared)-1], nil
}

// Set mounts inline markup, parsed with html5 rules
func (m *Manager) Set(markup string) (*Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	nodes, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFixtureParse, "cannot parse inline markup")
	}

	fx := &Fixture{Markup: markup, Roots: nodes}
	if err := m.mount([]*Fixture{fx}); err != nil {
		return nil, err
	}
	return fx, nil
}

// Cleanup removes every fixture mounted since the last Cleanup and the
// container with them. With nothing mounted it does nothing. Nodes that
// were already removed by someone else are treated as clean.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.container == nil && len(m.mounted) == 0 {
		return
	}

	for _, fx := range m.mounted {
		for _, n := range fx.Roots {
			if n.Parent != nil && n.Parent != fx.Container {
				m.logger.Trace().Str("name", fx.Name).Msg("Fixture node was moved, detaching it")
			}
			dom.Detach(n)
		}
	}

	if !dom.Detach(m.container) {
		m.logger.Trace().Msg("Fixture container already removed")
	}

	m.logger.Debug().Int("fixtures", len(m.mounted)).Msg("Fixtures cleaned up")
	m.container = nil
	m.mounted = nil
}

// ClearCache drops cached template contents
func (m *Manager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string][]byte)
}

// prepare resolves, reads and parses a template without touching the document
func (m *Manager) prepare(name string) (*Fixture, error) {
	path, data, err := m.read(name)
	if err != nil {
		return nil, err
	}

	var nodes []*html.Node
	if m.strict[paths.Ext(name)] {
		nodes, err = dom.ParseXMLFragment(string(data))
	} else {
		nodes, err = dom.ParseFragment(string(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFixtureParse, "cannot parse fixture %s", name).
			WithDetail("name", name).
			WithDetail("path", path)
	}

	return &Fixture{Name: name, Path: path, Markup: string(data), Roots: nodes}, nil
}

// read resolves name under the base and returns the template bytes
func (m *Manager) read(name string) (string, []byte, error) {
	path, err := paths.Resolve(m.base, name)
	if err != nil {
		return "", nil, err
	}

	if data, ok := m.cache[path]; ok {
		m.logger.Trace().Str("path", path).Msg("Fixture cache hit")
		return path, data, nil
	}

	info, err := m.fs.Stat(path)
	if err != nil || info.IsDir() {
		if err == nil || stderrors.Is(err, fs.ErrNotExist) {
			return "", nil, errors.Newf(errors.ErrFixtureNotFound, "fixture %s not found under %s", name, m.base).
				WithDetail("name", name).
				WithDetail("base", m.base)
		}
		return "", nil, errors.Wrapf(err, errors.ErrFixtureRead, "cannot stat fixture %s", name).
			WithDetail("path", path)
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrFixtureRead, "cannot read fixture %s", name).
			WithDetail("path", path)
	}

	if m.cacheEnabled {
		m.cache[path] = data
	}
	return path, data, nil
}

// mount appends prepared fixtures to the container, creating it on demand
func (m *Manager) mount(fixtures []*Fixture) error {
	container, err := m.ensureContainer()
	if err != nil {
		return err
	}

	for _, fx := range fixtures {
		fx.Container = container
		for _, n := range fx.Roots {
			container.AppendChild(n)
		}
		m.mounted = append(m.mounted, fx)
		m.logger.Debug().
			Str("name", fx.Name).
			Int("roots", len(fx.Roots)).
			Msg("Fixture mounted")
	}
	return nil
}

func (m *Manager) ensureContainer() (*html.Node, error) {
	if m.container != nil && dom.Contains(m.doc.Root(), m.container) {
		return m.container, nil
	}
	if m.container != nil {
		m.logger.Trace().Msg("Fixture container was removed, creating a new one")
	}

	body := m.doc.Body()
	if body == nil {
		return nil, errors.New(errors.ErrInternal, "document has no body to mount fixtures into")
	}

	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "id", Val: m.containerID}},
	}
	body.AppendChild(container)
	m.container = container
	return container, nil
}
