package buildassert

import (
	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/identity"
)

// Map returns an assertion over a provider that applies transform to the
// value of src's provider. Nothing is realized by Map itself: the composed
// provider is absent when the source is absent or transform returns nil.
func Map[V any, T any](src ProviderAssertion[V], transform func(V) T) *ProviderAssert[T] {
	if identity.IsNil(src) {
		usagef("The source assertion must not be <nil>.")
	}
	r, provider := src.provided()
	if transform == nil {
		usagef("The transformation must not be <nil>.")
	}

	return ThatProvider[T](r.t, mappedProvider[V, T]{source: provider, transform: transform})
}

// FlatMap returns an assertion over a provider that applies transform to the
// value of src's provider and takes the state of the provider it returns.
func FlatMap[V any, T any](src ProviderAssertion[V], transform func(V) host.Provider[T]) *ProviderAssert[T] {
	if identity.IsNil(src) {
		usagef("The source assertion must not be <nil>.")
	}
	r, provider := src.provided()
	if transform == nil {
		usagef("The transformation must not be <nil>.")
	}

	return ThatProvider[T](r.t, flatMappedProvider[V, T]{source: provider, transform: transform})
}

type mappedProvider[V any, T any] struct {
	source    host.Provider[V]
	transform func(V) T
}

func (m mappedProvider[V, T]) Value() (T, bool) {
	var zero T

	value, ok := m.source.Value()
	if !ok {
		return zero, false
	}

	mapped := m.transform(value)
	if identity.IsNil(mapped) {
		return zero, false
	}
	return mapped, true
}

func (m mappedProvider[V, T]) String() string {
	return "map(" + m.source.String() + ")"
}

type flatMappedProvider[V any, T any] struct {
	source    host.Provider[V]
	transform func(V) host.Provider[T]
}

func (m flatMappedProvider[V, T]) Value() (T, bool) {
	var zero T

	value, ok := m.source.Value()
	if !ok {
		return zero, false
	}

	inner := m.transform(value)
	if identity.IsNil(inner) {
		return zero, false
	}
	return inner.Value()
}

func (m flatMappedProvider[V, T]) String() string {
	return "flatMap(" + m.source.String() + ")"
}
