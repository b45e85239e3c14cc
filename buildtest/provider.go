package buildtest

import (
	"fmt"
	"reflect"

	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/identity"
)

// ProviderFunc is a provider computed by calling the function on every
// realization.
type ProviderFunc[V any] func() (V, bool)

// Value implements host.Provider.
func (f ProviderFunc[V]) Value() (V, bool) {
	return f()
}

// String implements host.Provider.
func (f ProviderFunc[V]) String() string {
	return "provider(?)"
}

// Provide returns a provider that calls f on every realization. The
// provider is absent whenever f returns nil.
func Provide[V any](f func() V) ProviderFunc[V] {
	return func() (V, bool) {
		v := f()
		if identity.IsNil(v) {
			var zero V
			return zero, false
		}
		return v, true
	}
}

// Property is a settable provider with an optional convention used when no
// value has been set.
type Property[V any] struct {
	value      *V
	source     host.Provider[V]
	convention *V
}

// NewProperty returns a property with no value.
func NewProperty[V any]() *Property[V] {
	return &Property[V]{}
}

// Fixed returns a property holding value.
func Fixed[V any](value V) *Property[V] {
	return NewProperty[V]().Set(value)
}

// Empty returns a property with no value.
func Empty[V any]() *Property[V] {
	return NewProperty[V]()
}

// Set gives the property a fixed value.
func (p *Property[V]) Set(value V) *Property[V] {
	p.value, p.source = &value, nil
	return p
}

// SetFrom makes the property track source.
func (p *Property[V]) SetFrom(source host.Provider[V]) *Property[V] {
	p.value, p.source = nil, source
	return p
}

// Convention sets the value used while nothing else is set.
func (p *Property[V]) Convention(value V) *Property[V] {
	p.convention = &value
	return p
}

// Unset clears the value. The convention, if any, applies again.
func (p *Property[V]) Unset() *Property[V] {
	p.value, p.source = nil, nil
	return p
}

// Value implements host.Provider.
func (p *Property[V]) Value() (V, bool) {
	switch {
	case p.value != nil:
		return *p.value, true
	case p.source != nil:
		return p.source.Value()
	case p.convention != nil:
		return *p.convention, true
	}
	var zero V
	return zero, false
}

// String describes the property without realizing a tracked source, e.g.
// "property(string, fixed(string, 1.0))".
func (p *Property[V]) String() string {
	typ := reflect.TypeFor[V]().String()

	switch {
	case p.value != nil:
		return fmt.Sprintf("property(%s, fixed(%s, %v))", typ, typ, *p.value)
	case p.source != nil:
		return fmt.Sprintf("property(%s, %s)", typ, p.source)
	case p.convention != nil:
		return fmt.Sprintf("property(%s, convention(%s, %v))", typ, typ, *p.convention)
	}
	return fmt.Sprintf("property(%s, undefined)", typ)
}

// NewDirectoryProperty returns an unset directory property.
func NewDirectoryProperty() *Property[host.Directory] {
	return NewProperty[host.Directory]()
}

// NewRegularFileProperty returns an unset regular file property.
func NewRegularFileProperty() *Property[host.RegularFile] {
	return NewProperty[host.RegularFile]()
}
