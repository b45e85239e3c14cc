package host

import "fmt"

// Provider is a lazily realized container holding at most one value.
type Provider[V any] interface {
	fmt.Stringer

	// Value realizes the provider. The boolean is false when no value is
	// present, in which case the returned value is the zero value of V.
	Value() (V, bool)
}

// DirectoryProperty is a provider of a Directory.
type DirectoryProperty interface {
	Provider[Directory]
}

// RegularFileProperty is a provider of a RegularFile.
type RegularFileProperty interface {
	Provider[RegularFile]
}

// Erase views p as a provider of untyped values. The returned provider
// realizes p on every call and keeps p's descriptor.
func Erase[V any](p Provider[V]) Provider[any] {
	return erased[V]{p: p}
}

type erased[V any] struct {
	p Provider[V]
}

func (e erased[V]) Value() (any, bool) {
	v, ok := e.p.Value()
	if !ok {
		return nil, false
	}
	return v, true
}

func (e erased[V]) String() string {
	return e.p.String()
}

// Unwrap returns the provider that was erased.
func (e erased[V]) Unwrap() any {
	return e.p
}
