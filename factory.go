package buildassert

import (
	"reflect"

	"github.com/roach88/buildassert/internal/identity"
)

// Narrowable is implemented by assertions whose subject can be realized to
// a single value: object assertions and provider assertions. It is sealed.
type Narrowable interface {
	// narrowSubject realizes the subject, failing if it is nil or absent.
	narrowSubject() (*reporter, any)
}

// Factory narrows a realized value to T and builds an assertion A over it.
// The check is a type assertion to T; construct receives the typed value.
type Factory[T any, A any] struct {
	construct func(TestingT, T) A
}

// NewFactory returns a factory built around construct, typically one of the
// That* constructors.
func NewFactory[T any, A any](construct func(TestingT, T) A) Factory[T, A] {
	if construct == nil {
		usagef("The factory constructor must not be <nil>.")
	}
	return Factory[T, A]{construct: construct}
}

// Type returns the type values must have to be narrowed by f.
func (f Factory[T, A]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// Predefined factories for the host domain types.
var (
	ConfigurationFactory  = NewFactory(ThatConfiguration)
	DirectoryFactory      = NewFactory(ThatDirectory)
	FileCollectionFactory = NewFactory(ThatFiles)
	ProjectFactory        = NewFactory(ThatProject)
	RegularFileFactory    = NewFactory(ThatRegularFile)
	TaskFactory           = NewFactory(ThatTask)
	FileFactory           = NewFactory(ThatFile)
	StringFactory         = NewFactory(ThatString)
)

// ObjectFactory narrows to T and returns an ObjectAssert over it.
func ObjectFactory[T any]() Factory[T, *ObjectAssert[T]] {
	return NewFactory(ThatObject[T])
}

// SetFactory narrows to []E and returns a SetAssert over it.
func SetFactory[E comparable]() Factory[[]E, *SetAssert[E]] {
	return NewFactory(ThatSet[E])
}

// Narrow realizes the subject of src, verifies that it is a T and returns
// the assertion built by factory. The new assertion's subject is the very
// value held by src.
func Narrow[T any, A any](src Narrowable, factory Factory[T, A]) A {
	if identity.IsNil(src) {
		usagef("The source assertion must not be <nil>.")
	}
	if factory.construct == nil {
		usagef("The factory for '%s' has no constructor.", identity.QualifiedName(factory.Type()))
	}

	r, value := src.narrowSubject()
	r.helper()

	typed, ok := value.(T)
	if !ok {
		r.failWithMessage("Expecting '%v' to be an instance of '%s' but was an instance of '%s'",
			value, identity.QualifiedName(factory.Type()), identity.QualifiedNameOf(value))
	}

	narrowed := construct(r, factory, typed)
	if identity.IsNil(narrowed) {
		usagef("The factory for '%s' accepted '%v' but built no assertion.",
			identity.QualifiedName(factory.Type()), value)
	}
	return narrowed
}

// construct builds the narrowed assertion. A constructor panic other than
// a failure or usage error becomes a usage error naming the factory.
func construct[T any, A any](r *reporter, factory Factory[T, A], value T) A {
	defer func() {
		v := recover()
		switch v.(type) {
		case nil:
		case *Failure, *UsageError:
			panic(v)
		default:
			usagef("The factory for '%s' failed to build an assertion for '%v': %v",
				identity.QualifiedName(factory.Type()), value, v)
		}
	}()
	return factory.construct(r.t, value)
}
