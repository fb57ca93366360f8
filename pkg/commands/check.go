package commands

import (
	"github.com/arthur-debert/htmlfixture/pkg/errors"
	"github.com/arthur-debert/htmlfixture/pkg/fixture"
	"github.com/arthur-debert/htmlfixture/pkg/logging"
)

// CheckItem is the outcome for one template
type CheckItem struct {
	Name string
	// Data is set for data fixtures, which are decoded instead of mounted
	Data bool
	Err  error
}

// OK reports whether the template passed
func (c CheckItem) OK() bool {
	return c.Err == nil
}

// CheckResult collects the outcome for every template under the base
type CheckResult struct {
	Items []CheckItem
}

// Failed returns the items that did not pass
func (r *CheckResult) Failed() []CheckItem {
	var failed []CheckItem
	for _, item := range r.Items {
		if !item.OK() {
			failed = append(failed, item)
		}
	}
	return failed
}

// Check loads and cleans up every template listed under the manager's
// base. A markup template passes when it mounts and the document after
// cleanup is structurally equal to the document before the load. A data
// template passes when it decodes.
func Check(m *fixture.Manager, opts ListOptions) (*CheckResult, error) {
	log := logging.GetLogger("commands")
	done := logging.LogOperationStart(log, "check")
	defer done()

	opts.Base = m.Base()
	names, err := List(opts)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{}
	for _, name := range names {
		item := CheckItem{Name: name, Data: IsData(name)}
		if item.Data {
			var v interface{}
			item.Err = m.LoadData(name, &v)
		} else {
			item.Err = checkMarkup(m, name)
		}
		if item.Err != nil {
			log.Warn().Err(item.Err).Str("name", name).Msg("Fixture check failed")
		}
		result.Items = append(result.Items, item)
	}

	log.Info().
		Int("fixtureCount", len(result.Items)).
		Int("failed", len(result.Failed())).
		Msg("Command finished")
	return result, nil
}

func checkMarkup(m *fixture.Manager, name string) error {
	before := m.Document().Snapshot()

	if _, err := m.Load(name); err != nil {
		return err
	}
	m.Cleanup()

	if after := m.Document().Snapshot(); after != before {
		return errors.Newf(errors.ErrInternal, "document not restored after cleanup of %s", name).
			WithDetail("name", name)
	}
	return nil
}
