package fixture

import (
	"encoding/json"

	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/arthur-debert/htmlfixture/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte, v interface{}) error

var dataDecoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// LoadData decodes a data fixture into v, picking the decoder from the
// extension. Data fixtures are never mounted into the document.
func (m *Manager) LoadData(name string, v interface{}) error {
	decode, ok := dataDecoders[paths.Ext(name)]
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unsupported data fixture type: %s", name).
			WithDetail("name", name)
	}

	m.mu.Lock()
	path, data, err := m.read(name)
	m.mu.Unlock()
	if err != nil {
		return err
	}

	if err := decode(data, v); err != nil {
		return errors.Wrapf(err, errors.ErrFixtureParse, "cannot decode data fixture %s", name).
			WithDetail("name", name).
			WithDetail("path", path)
	}
	return nil
}
