package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Expectation is a value under assertion. Failures are reported to the
// test with testify and the methods return whether the check passed.
type Expectation struct {
	t      testing.TB
	actual interface{}
}

// Expect starts an expectation on actual
func Expect(t testing.TB, actual interface{}) *Expectation {
	return &Expectation{t: t, actual: actual}
}

// ToEqual asserts that the value equals expected
func (e *Expectation) ToEqual(expected interface{}) bool {
	e.t.Helper()
	return assert.Equal(e.t, expected, e.actual)
}

// NotToEqual asserts that the value differs from expected
func (e *Expectation) NotToEqual(expected interface{}) bool {
	e.t.Helper()
	return assert.NotEqual(e.t, expected, e.actual)
}

// ToContain asserts that a string, slice or map contains element
func (e *Expectation) ToContain(element interface{}) bool {
	e.t.Helper()
	return assert.Contains(e.t, e.actual, element)
}

// ToBeNil asserts that the value is nil
func (e *Expectation) ToBeNil() bool {
	e.t.Helper()
	return assert.Nil(e.t, e.actual)
}

// ToBeTrue asserts that the value is the boolean true
func (e *Expectation) ToBeTrue() bool {
	e.t.Helper()
	return assert.Equal(e.t, true, e.actual)
}
