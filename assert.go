package buildassert

import (
	"fmt"

	"github.com/roach88/buildassert/internal/identity"
)

// Assert is the base of every assertion. SELF is the concrete assertion
// type returned by chained calls and ACTUAL is the type of the subject.
type Assert[SELF any, ACTUAL any] struct {
	*reporter
	actual ACTUAL
	myself SELF
}

func newAssert[SELF any, ACTUAL any](t TestingT, actual ACTUAL, myself SELF) *Assert[SELF, ACTUAL] {
	return &Assert[SELF, ACTUAL]{
		reporter: newReporter(t),
		actual:   actual,
		myself:   myself,
	}
}

// Actual returns the subject under test.
func (a *Assert[SELF, ACTUAL]) Actual() ACTUAL {
	return a.actual
}

// As sets a description that prefixes every later failure message of this
// assertion, e.g. "[release build] Expected task ...".
func (a *Assert[SELF, ACTUAL]) As(description string, args ...any) SELF {
	a.description = fmt.Sprintf(description, args...)
	return a.myself
}

// IsNotNull verifies that the subject is not nil.
func (a *Assert[SELF, ACTUAL]) IsNotNull() SELF {
	a.helper()

	if identity.IsNil(a.actual) {
		a.failWithMessage("Expecting actual not to be nil")
	}

	return a.myself
}

// T returns the TestingT failures are reported to.
func (a *Assert[SELF, ACTUAL]) T() TestingT {
	return a.t
}
