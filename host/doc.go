// Package host defines the read-only surface of a build model that the
// buildassert package verifies.
//
// The interfaces here describe only what an assertion needs to query:
// names, groups, paths, enabled flags, dependency sets, input and output
// file sets, property lookup, extension/plugin/task/configuration lookup,
// and lazily realized values. Nothing in this package mutates a model or
// evaluates one; implementations live with the build tool (or, for tests,
// in package buildtest).
//
// # Providers
//
// A Provider is a container that is either absent or present with a value.
// Realization happens through Value, which may be arbitrarily expensive and
// is called again on every query:
//
//	v, ok := p.Value()
//	if !ok {
//	    // absent
//	}
//
// String returns the provider's own descriptor, which is what failure
// messages print when no value can be shown.
package host
