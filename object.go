package buildassert

import (
	"reflect"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/buildassert/internal/identity"
)

// ObjectAssert verifies an arbitrary value.
type ObjectAssert[V any] struct {
	*Assert[*ObjectAssert[V], V]
}

// ThatObject returns an assertion over value.
func ThatObject[V any](t TestingT, value V) *ObjectAssert[V] {
	a := &ObjectAssert[V]{}
	a.Assert = newAssert(t, value, a)
	return a
}

// IsEqualTo verifies that the value equals expected.
func (a *ObjectAssert[V]) IsEqualTo(expected V) *ObjectAssert[V] {
	a.helper()

	if !assert.ObjectsAreEqual(expected, a.actual) {
		a.failWithMessage("Expecting '%v' to be equal to '%v'", a.actual, expected)
	}
	return a
}

// IsNotEqualTo verifies that the value does not equal other.
func (a *ObjectAssert[V]) IsNotEqualTo(other V) *ObjectAssert[V] {
	a.helper()

	if assert.ObjectsAreEqual(other, a.actual) {
		a.failWithMessage("Expecting '%v' not to be equal to '%v'", a.actual, other)
	}
	return a
}

// IsSameAs verifies that the value is the very instance expected.
func (a *ObjectAssert[V]) IsSameAs(expected V) *ObjectAssert[V] {
	a.helper()

	if !identity.Same(a.actual, expected) {
		a.failWithMessage("Expecting '%v' to be the same instance as '%v'", a.actual, expected)
	}
	return a
}

// IsNull verifies that the value is nil.
func (a *ObjectAssert[V]) IsNull() *ObjectAssert[V] {
	a.helper()

	if !identity.IsNil(a.actual) {
		a.failWithMessage("Expecting '%v' to be nil", a.actual)
	}
	return a
}

// IsInstanceOf verifies that the value's dynamic type is, or implements, typ.
func (a *ObjectAssert[V]) IsInstanceOf(typ reflect.Type) *ObjectAssert[V] {
	a.helper()
	a.IsNotNull()
	if typ == nil {
		usagef("The expected type must not be <nil>.")
	}

	if !identity.Implements(reflect.TypeOf(any(a.actual)), typ) {
		a.failWithMessage("Expecting '%v' to be an instance of '%s' but was an instance of '%s'",
			a.actual, identity.QualifiedName(typ), identity.QualifiedNameOf(a.actual))
	}
	return a
}

// Satisfies passes the value to requirement, which is expected to run its
// own assertions.
func (a *ObjectAssert[V]) Satisfies(requirement func(V)) *ObjectAssert[V] {
	a.helper()
	a.IsNotNull()
	if requirement == nil {
		usagef("The requirement must not be <nil>.")
	}

	requirement(a.actual)
	return a
}

// Is verifies that the value matches condition.
func (a *ObjectAssert[V]) Is(condition Condition[V]) *ObjectAssert[V] {
	a.helper()
	a.IsNotNull()
	if !condition.valid() {
		usagef("The condition must not be <nil>.")
	}

	if !condition.Matches(a.actual) {
		a.failWithMessage("Expecting actual:\n  '%v'\nto match '%s'", a.actual, condition.Description())
	}
	return a
}

func (a *ObjectAssert[V]) narrowSubject() (*reporter, any) {
	a.helper()
	a.IsNotNull()
	return a.reporter, a.actual
}
