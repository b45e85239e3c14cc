package buildassert

import "github.com/roach88/buildassert/host"

// ConfigurationAssert verifies a configuration. A configuration is also a
// file collection, so every file collection check applies.
type ConfigurationAssert struct {
	*AbstractFileCollectionAssert[*ConfigurationAssert, host.Configuration]
}

// ThatConfiguration returns an assertion over configuration.
func ThatConfiguration(t TestingT, configuration host.Configuration) *ConfigurationAssert {
	a := &ConfigurationAssert{}
	a.AbstractFileCollectionAssert = newAbstractFileCollectionAssert(t, configuration, a)
	return a
}

func (a *ConfigurationAssert) HasName(name string) *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Name(); actual != name {
		a.failWithMessage("Expected configuration name to be '%s', but was '%s'", name, actual)
	}
	return a
}

func (a *ConfigurationAssert) HasDescription(description string) *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Description(); actual != description {
		a.failWithMessage("Expected configuration '%s' description to be '%s', but was '%s'",
			a.actual.Name(), description, actual)
	}
	return a
}

func (a *ConfigurationAssert) CanBeConsumed() *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.CanBeConsumed() {
		a.failWithMessage("Expected configuration '%s' can be consumed by other projects, but it cannot", a.actual.Name())
	}
	return a
}

func (a *ConfigurationAssert) CanBeDeclared() *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.CanBeDeclared() {
		a.failWithMessage("Expected dependencies can be declared on configuration '%s', but they cannot", a.actual.Name())
	}
	return a
}

func (a *ConfigurationAssert) CanBeResolved() *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.CanBeResolved() {
		a.failWithMessage("Expected configuration '%s' can be resolved, but it cannot", a.actual.Name())
	}
	return a
}

func (a *ConfigurationAssert) IsTransitive() *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.IsTransitive() {
		a.failWithMessage("Expected configuration '%s' to be transitive, but it is not", a.actual.Name())
	}
	return a
}

func (a *ConfigurationAssert) IsNotTransitive() *ConfigurationAssert {
	a.helper()
	a.IsNotNull()

	if a.actual.IsTransitive() {
		a.failWithMessage("Expected configuration '%s' not to be transitive, but it is", a.actual.Name())
	}
	return a
}
