package buildassert

import (
	"reflect"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/identity"
)

// ProviderAssertion is implemented by every provider assertion and is what
// Map and FlatMap accept. It is sealed.
type ProviderAssertion[V any] interface {
	// provided verifies the provider is not nil without realizing it.
	provided() (*reporter, host.Provider[V])
}

// AbstractProviderAssert holds the checks shared by every provider
// assertion. Each check realizes the provider at most once and nothing is
// cached between checks.
type AbstractProviderAssert[SELF any, V any, P host.Provider[V]] struct {
	*Assert[SELF, P]
}

func newAbstractProviderAssert[SELF any, V any, P host.Provider[V]](t TestingT, provider P, myself SELF) *AbstractProviderAssert[SELF, V, P] {
	return &AbstractProviderAssert[SELF, V, P]{Assert: newAssert(t, provider, myself)}
}

// IsPresent verifies that the provider has a value.
func (a *AbstractProviderAssert[SELF, V, P]) IsPresent() SELF {
	a.helper()
	a.realize()
	return a.myself
}

// IsEmpty verifies that the provider has no value.
func (a *AbstractProviderAssert[SELF, V, P]) IsEmpty() SELF {
	a.helper()
	a.IsNotNull()

	if _, ok := a.actual.Value(); ok {
		a.failWithMessage("Expecting provider to be empty but contains '%s'", a.actual.String())
	}
	return a.myself
}

// Contains verifies that the provider has a value equal to expected.
func (a *AbstractProviderAssert[SELF, V, P]) Contains(expected V) SELF {
	a.helper()
	a.IsNotNull()
	checkExpected(expected)

	actual, ok := a.actual.Value()
	if !ok {
		a.failWithMessage("Expecting provider to contain '%v' but was empty", expected)
	}
	if !assert.ObjectsAreEqual(expected, actual) {
		a.failWithMessage("Expecting provider to contain '%v' but was '%v'", expected, actual)
	}
	return a.myself
}

// HasValue is an alias of Contains.
func (a *AbstractProviderAssert[SELF, V, P]) HasValue(expected V) SELF {
	a.helper()
	return a.Contains(expected)
}

// ContainsSame verifies that the provider holds the very instance expected.
func (a *AbstractProviderAssert[SELF, V, P]) ContainsSame(expected V) SELF {
	a.helper()
	a.IsNotNull()
	checkExpected(expected)

	actual, ok := a.actual.Value()
	if !ok {
		a.failWithMessage("Expecting provider to contain '%v' but was empty", expected)
	}
	if !identity.Same(actual, expected) {
		a.failWithMessage("Expecting provider to contain value identical to '%v'", expected)
	}
	return a.myself
}

// ContainsInstanceOf verifies that the provider's value is, or implements,
// typ.
func (a *AbstractProviderAssert[SELF, V, P]) ContainsInstanceOf(typ reflect.Type) SELF {
	a.helper()
	a.IsNotNull()
	if typ == nil {
		usagef("The expected type must not be <nil>.")
	}

	value := a.realize()
	if !identity.Implements(reflect.TypeOf(any(value)), typ) {
		a.failWithMessage("Expecting '%s' to contain an instance of '%s' but contained an instance of '%s'",
			identity.SimpleName(a.actual), identity.QualifiedName(typ), identity.QualifiedNameOf(value))
	}
	return a.myself
}

// HasValueSatisfying passes the provider's value to requirement, which is
// expected to run its own assertions.
func (a *AbstractProviderAssert[SELF, V, P]) HasValueSatisfying(requirement func(V)) SELF {
	a.helper()
	a.IsNotNull()
	if requirement == nil {
		usagef("The requirement must not be <nil>.")
	}

	requirement(a.realize())
	return a.myself
}

// HasValueMatching verifies that the provider's value matches condition.
func (a *AbstractProviderAssert[SELF, V, P]) HasValueMatching(condition Condition[V]) SELF {
	a.helper()
	a.IsNotNull()
	if !condition.valid() {
		usagef("The condition must not be <nil>.")
	}

	value := a.realize()
	if !condition.Matches(value) {
		a.failWithMessage("Expecting actual:\n  '%v'\nto match '%s'", value, condition.Description())
	}
	return a.myself
}

// Get verifies that the provider has a value and returns an assertion over
// that value.
func (a *AbstractProviderAssert[SELF, V, P]) Get() *ObjectAssert[V] {
	a.helper()
	return ThatObject(a.t, a.realize())
}

// realize returns the provider's value, failing when it is absent.
func (a *AbstractProviderAssert[SELF, V, P]) realize() V {
	a.helper()
	a.IsNotNull()

	value, ok := a.actual.Value()
	if !ok {
		a.failWithMessage("Expecting '%s' to contain a value, but it was empty", a.actual.String())
	}
	return value
}

func (a *AbstractProviderAssert[SELF, V, P]) provided() (*reporter, host.Provider[V]) {
	a.helper()
	a.IsNotNull()
	return a.reporter, a.actual
}

func (a *AbstractProviderAssert[SELF, V, P]) narrowSubject() (*reporter, any) {
	a.helper()
	return a.reporter, a.realize()
}

func checkExpected(expected any) {
	if identity.IsNil(expected) {
		usagef("The expected value must not be <nil>.")
	}
}

// ProviderAssert verifies a provider of V.
type ProviderAssert[V any] struct {
	*AbstractProviderAssert[*ProviderAssert[V], V, host.Provider[V]]
}

// ThatProvider returns an assertion over provider.
func ThatProvider[V any](t TestingT, provider host.Provider[V]) *ProviderAssert[V] {
	a := &ProviderAssert[V]{}
	a.AbstractProviderAssert = newAbstractProviderAssert[*ProviderAssert[V], V](t, provider, a)
	return a
}

// DirectoryPropertyAssert verifies a provider of a directory.
type DirectoryPropertyAssert struct {
	*AbstractProviderAssert[*DirectoryPropertyAssert, host.Directory, host.DirectoryProperty]
}

// ThatDirectoryProperty returns an assertion over property.
func ThatDirectoryProperty(t TestingT, property host.DirectoryProperty) *DirectoryPropertyAssert {
	a := &DirectoryPropertyAssert{}
	a.AbstractProviderAssert = newAbstractProviderAssert[*DirectoryPropertyAssert, host.Directory](t, property, a)
	return a
}

// GetDirectory verifies that the property has a value and returns an
// assertion over the directory.
func (a *DirectoryPropertyAssert) GetDirectory() *DirectoryAssert {
	a.helper()
	return Narrow(a, DirectoryFactory)
}

// GetFile returns an assertion over the location of the directory.
func (a *DirectoryPropertyAssert) GetFile() *FileAssert {
	a.helper()
	return a.GetDirectory().AsFile()
}

// GetString returns an assertion over the path of the directory.
func (a *DirectoryPropertyAssert) GetString() *StringAssert {
	a.helper()
	return a.GetDirectory().AsString()
}

// RegularFilePropertyAssert verifies a provider of a regular file.
type RegularFilePropertyAssert struct {
	*AbstractProviderAssert[*RegularFilePropertyAssert, host.RegularFile, host.RegularFileProperty]
}

// ThatRegularFileProperty returns an assertion over property.
func ThatRegularFileProperty(t TestingT, property host.RegularFileProperty) *RegularFilePropertyAssert {
	a := &RegularFilePropertyAssert{}
	a.AbstractProviderAssert = newAbstractProviderAssert[*RegularFilePropertyAssert, host.RegularFile](t, property, a)
	return a
}

// GetRegularFile verifies that the property has a value and returns an
// assertion over the file.
func (a *RegularFilePropertyAssert) GetRegularFile() *RegularFileAssert {
	a.helper()
	return Narrow(a, RegularFileFactory)
}

// GetFile returns an assertion over the location of the file.
func (a *RegularFilePropertyAssert) GetFile() *FileAssert {
	a.helper()
	return a.GetRegularFile().AsFile()
}

// GetString returns an assertion over the path of the file.
func (a *RegularFilePropertyAssert) GetString() *StringAssert {
	a.helper()
	return a.GetRegularFile().AsString()
}
