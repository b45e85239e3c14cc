package buildassert

import (
	"slices"

	"github.com/stretchr/testify/assert"
)

// SetAssert verifies a collection of elements whose order carries no
// meaning.
type SetAssert[E comparable] struct {
	*Assert[*SetAssert[E], []E]
}

// ThatSet returns an assertion over elements.
func ThatSet[E comparable](t TestingT, elements []E) *SetAssert[E] {
	a := &SetAssert[E]{}
	a.Assert = newAssert(t, elements, a)
	return a
}

// IsEmpty verifies that there are no elements.
func (a *SetAssert[E]) IsEmpty() *SetAssert[E] {
	a.helper()
	a.IsNotNull()

	if len(a.actual) != 0 {
		a.failWithMessage("Expecting empty but was: %v", a.actual)
	}
	return a
}

// IsNotEmpty verifies that there is at least one element.
func (a *SetAssert[E]) IsNotEmpty() *SetAssert[E] {
	a.helper()
	a.IsNotNull()

	if len(a.actual) == 0 {
		a.failWithMessage("Expecting actual not to be empty")
	}
	return a
}

// HasSize verifies the number of elements.
func (a *SetAssert[E]) HasSize(size int) *SetAssert[E] {
	a.helper()
	a.IsNotNull()

	if len(a.actual) != size {
		a.failWithMessage("Expected size: %d but was: %d in: %v", size, len(a.actual), a.actual)
	}
	return a
}

// Contains verifies that every given element is present. It stops at the
// first missing one.
func (a *SetAssert[E]) Contains(element E, more ...E) *SetAssert[E] {
	a.helper()
	a.IsNotNull()

	for _, e := range batch(element, more) {
		if !slices.Contains(a.actual, e) {
			a.failWithMessage("Expecting %v to contain '%v' but could not find it", a.actual, e)
		}
	}
	return a
}

// DoesNotContain verifies that none of the given elements is present.
func (a *SetAssert[E]) DoesNotContain(element E, more ...E) *SetAssert[E] {
	a.helper()
	a.IsNotNull()

	for _, e := range batch(element, more) {
		if slices.Contains(a.actual, e) {
			a.failWithMessage("Expecting %v not to contain '%v'", a.actual, e)
		}
	}
	return a
}

// ContainsExactlyInAnyOrder verifies that the elements are exactly the
// given ones, ignoring order.
func (a *SetAssert[E]) ContainsExactlyInAnyOrder(elements ...E) *SetAssert[E] {
	a.helper()
	a.IsNotNull()

	if !assert.ElementsMatch(discardT{}, elements, a.actual) {
		a.failWithMessage("Expecting %v to contain exactly in any order %v", a.actual, elements)
	}
	return a
}

// AllSatisfy passes every element to requirement.
func (a *SetAssert[E]) AllSatisfy(requirement func(E)) *SetAssert[E] {
	a.helper()
	a.IsNotNull()
	if requirement == nil {
		usagef("The requirement must not be <nil>.")
	}

	for _, e := range a.actual {
		requirement(e)
	}
	return a
}

// batch joins the mandatory first argument of a variadic check with the
// rest.
func batch[E any](first E, more []E) []E {
	return append([]E{first}, more...)
}

// discardT lets testify comparison helpers run without reporting.
type discardT struct{}

func (discardT) Errorf(string, ...any) {}
