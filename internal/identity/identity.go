// Package identity answers nil, identity and type-name questions about
// values whose static type is unknown.
package identity

import (
	"reflect"
	"strings"
)

// IsNil reports whether value is nil, including typed nils held in an
// interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Same reports whether a and b are the same instance. Reference kinds
// (pointers, maps, channels, functions, slices) are compared by address;
// plain comparable values are their own identity and compare with ==.
// Non-comparable values are never the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// QualifiedName returns the import-path qualified name of t, for example
// "github.com/roach88/buildassert/buildtest.Task". Pointer types are
// prefixed with "*". Unnamed types fall back to t.String().
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return "*" + QualifiedName(t.Elem())
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// QualifiedNameOf returns QualifiedName of the dynamic type of v.
func QualifiedNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return QualifiedName(reflect.TypeOf(v))
}

// SimpleName returns the bare type name of v without package or pointer
// decoration, e.g. "Property[string]".
func SimpleName(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	// Generic instantiations carry qualified type arguments; keep only the
	// last path element of each.
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		args := strings.Split(name[i+1:len(name)-1], ",")
		for j, arg := range args {
			if k := strings.LastIndexByte(arg, '/'); k >= 0 {
				args[j] = arg[k+1:]
			}
		}
		name = name[:i] + "[" + strings.Join(args, ",") + "]"
	}
	return name
}

// Implements reports whether values of type actual can be used where a
// value of type expected is wanted: identical types, assignable types, or
// an interface that actual implements.
func Implements(actual, expected reflect.Type) bool {
	if actual == nil || expected == nil {
		return false
	}
	if expected.Kind() == reflect.Interface {
		return actual.Implements(expected)
	}
	return actual.AssignableTo(expected)
}
