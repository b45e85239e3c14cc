package buildassert

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/identity"
)

// ProjectAssert verifies a project.
//
// Checks that accept several names stop at the first one that fails.
type ProjectAssert struct {
	*Assert[*ProjectAssert, host.Project]
}

// ThatProject returns an assertion over project.
func ThatProject(t TestingT, project host.Project) *ProjectAssert {
	a := &ProjectAssert{}
	a.Assert = newAssert(t, project, a)
	return a
}

// HasName verifies the project name.
func (a *ProjectAssert) HasName(name string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	a.field("name", name, a.actual.Name())
	return a
}

// HasPath verifies the project path, such as ":" or ":lib".
func (a *ProjectAssert) HasPath(path string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	a.field("path", path, a.actual.Path())
	return a
}

// HasGroup verifies the project group.
func (a *ProjectAssert) HasGroup(group string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	a.field("group", group, a.actual.Group())
	return a
}

// HasVersion verifies the project version.
func (a *ProjectAssert) HasVersion(version string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	a.field("version", version, a.actual.Version())
	return a
}

// HasDescription verifies the project description.
func (a *ProjectAssert) HasDescription(description string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	a.field("description", description, a.actual.Description())
	return a
}

func (a *ProjectAssert) field(name, expected, actual string) {
	a.helper()
	if expected != actual {
		a.failWithMessage("Expected project %s to be '%s' but was '%s'", name, expected, actual)
	}
}

// HasExtension verifies that every named extension is registered.
func (a *ProjectAssert) HasExtension(name string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(name, more) {
		if _, ok := a.actual.Extensions().FindByName(n); !ok {
			a.failWithMessage("Project '%s' does not contain the extension '%s'", a.actual.Name(), n)
		}
	}
	return a
}

// DoesNotHaveExtension verifies that none of the named extensions is
// registered.
func (a *ProjectAssert) DoesNotHaveExtension(name string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(name, more) {
		if _, ok := a.actual.Extensions().FindByName(n); ok {
			a.failWithMessage("Project '%s' should not contain the extension '%s'", a.actual.Name(), n)
		}
	}
	return a
}

// HasExtensionWithType verifies that the named extension exists and is, or
// implements, typ.
func (a *ProjectAssert) HasExtensionWithType(name string, typ reflect.Type) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	if typ == nil {
		usagef("The expected type must not be <nil>.")
	}

	extension := a.extension(name)
	if !identity.Implements(reflect.TypeOf(extension), typ) {
		a.failWithMessage("Expected extension '%s' to be an instance of '%s' but is '%s'",
			name, identity.QualifiedName(typ), identity.QualifiedNameOf(extension))
	}
	return a
}

// HasExtensionOfType verifies that some extension is, or implements, typ.
func (a *ProjectAssert) HasExtensionOfType(typ reflect.Type) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	if typ == nil {
		usagef("The expected type must not be <nil>.")
	}

	if _, ok := a.actual.Extensions().FindByType(typ); !ok {
		a.failWithMessage("Project '%s' does not contain an extension of type '%s'",
			a.actual.Name(), identity.QualifiedName(typ))
	}
	return a
}

// HasExtensionSatisfying locates the named extension and passes it to
// requirement.
func (a *ProjectAssert) HasExtensionSatisfying(name string, requirement func(any)) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	if requirement == nil {
		usagef("The requirement must not be <nil>.")
	}

	requirement(a.extension(name))
	return a
}

func (a *ProjectAssert) extension(name string) any {
	a.helper()

	extension, ok := a.actual.Extensions().FindByName(name)
	if !ok {
		a.failWithMessage("Project '%s' does not contain the extension '%s'", a.actual.Name(), name)
	}
	return extension
}

// HasConfiguration verifies that every named configuration exists.
func (a *ProjectAssert) HasConfiguration(name string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(name, more) {
		a.configuration(n)
	}
	return a
}

// DoesNotHaveConfiguration verifies that none of the named configurations
// exists.
func (a *ProjectAssert) DoesNotHaveConfiguration(name string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(name, more) {
		if _, ok := a.actual.Configurations().FindByName(n); ok {
			a.failWithMessage("Project '%s' should not contain the configuration '%s'", a.actual.Name(), n)
		}
	}
	return a
}

// HasConfigurationSatisfying locates the named configuration and passes it
// to requirement.
func (a *ProjectAssert) HasConfigurationSatisfying(name string, requirement func(host.Configuration)) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	if requirement == nil {
		usagef("The requirement must not be <nil>.")
	}

	requirement(a.configuration(name))
	return a
}

// Configuration verifies that the named configuration exists and returns
// an assertion over it.
func (a *ProjectAssert) Configuration(name string) *ConfigurationAssert {
	a.helper()
	a.IsNotNull()
	return ThatConfiguration(a.t, a.configuration(name))
}

func (a *ProjectAssert) configuration(name string) host.Configuration {
	a.helper()

	configuration, ok := a.actual.Configurations().FindByName(name)
	if !ok {
		a.failWithMessage("Project '%s' does not contain the configuration '%s'", a.actual.Name(), name)
	}
	return configuration
}

// HasPlugin verifies that every plugin id is applied.
func (a *ProjectAssert) HasPlugin(id string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(id, more) {
		if !a.actual.Plugins().HasPlugin(n) {
			a.failWithMessage("Project '%s' does not contain the plugin '%s'", a.actual.Name(), n)
		}
	}
	return a
}

// DoesNotHavePlugin verifies that none of the plugin ids is applied.
func (a *ProjectAssert) DoesNotHavePlugin(id string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(id, more) {
		if a.actual.Plugins().HasPlugin(n) {
			a.failWithMessage("Project '%s' should not contain the plugin '%s'", a.actual.Name(), n)
		}
	}
	return a
}

// HasTask verifies that every named task exists.
func (a *ProjectAssert) HasTask(name string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(name, more) {
		a.task(n)
	}
	return a
}

// DoesNotHaveTask verifies that none of the named tasks exists.
func (a *ProjectAssert) DoesNotHaveTask(name string, more ...string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	for _, n := range batch(name, more) {
		if _, ok := a.actual.Tasks().FindByName(n); ok {
			a.failWithMessage("Project '%s' should not contain the task '%s'", a.actual.Name(), n)
		}
	}
	return a
}

// HasTaskWithType verifies that the named task exists and is, or
// implements, typ.
func (a *ProjectAssert) HasTaskWithType(name string, typ reflect.Type) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	if typ == nil {
		usagef("The expected type must not be <nil>.")
	}

	task := a.task(name)
	if !identity.Implements(reflect.TypeOf(task), typ) {
		a.failWithMessage("Expected task '%s' to be an instance of '%s' but is '%s'",
			name, identity.QualifiedName(typ), identity.QualifiedNameOf(task))
	}
	return a
}

// HasTaskWithReports verifies that the named task exists and produces
// reports.
func (a *ProjectAssert) HasTaskWithReports(name string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	if _, ok := a.task(name).(host.Reporting); !ok {
		a.failWithMessage("Expected task '%s' to implement 'Reporting' but does not", name)
	}
	return a
}

// HasTaskSatisfying locates the named task and passes it to requirement.
func (a *ProjectAssert) HasTaskSatisfying(name string, requirement func(host.Task)) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	if requirement == nil {
		usagef("The requirement must not be <nil>.")
	}

	requirement(a.task(name))
	return a
}

// Task verifies that the named task exists and returns an assertion over
// it.
func (a *ProjectAssert) Task(name string) *TaskAssert {
	a.helper()
	a.IsNotNull()
	return ThatTask(a.t, a.task(name))
}

func (a *ProjectAssert) task(name string) host.Task {
	a.helper()

	task, ok := a.actual.Tasks().FindByName(name)
	if !ok {
		a.failWithMessage("Project '%s' does not contain the task '%s'", a.actual.Name(), name)
	}
	return task
}

// HasProjectFile verifies that path, relative to the project directory,
// is an existing regular file.
func (a *ProjectAssert) HasProjectFile(path string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	ThatFile(a.t, a.actual.File(path)).IsFile()
	return a
}

// HasProjectDirectory verifies that path, relative to the project
// directory, is an existing directory.
func (a *ProjectAssert) HasProjectDirectory(path string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	ThatFile(a.t, a.actual.File(path)).IsDirectory()
	return a
}

// HasBuildFile verifies that path, relative to the build directory, is an
// existing regular file.
func (a *ProjectAssert) HasBuildFile(path string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	ThatFile(a.t, a.buildDir().Join(path)).IsFile()
	return a
}

// HasBuildDirectory verifies that path, relative to the build directory,
// is an existing directory.
func (a *ProjectAssert) HasBuildDirectory(path string) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	ThatFile(a.t, a.buildDir().Join(path)).IsDirectory()
	return a
}

func (a *ProjectAssert) buildDir() host.File {
	a.helper()

	dir, ok := a.actual.BuildDirectory().Value()
	if !ok || identity.IsNil(dir) {
		a.failWithMessage("Project '%s' does not have a build directory", a.actual.Name())
	}
	return dir.AsFile()
}

// HasProperty verifies that the named project property exists.
func (a *ProjectAssert) HasProperty(name string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.HasProperty(name) {
		a.failWithMessage("Project '%s' does not contain a property named '%s'", a.actual.Name(), name)
	}
	return a
}

// DoesNotHaveProperty verifies that the named project property does not
// exist.
func (a *ProjectAssert) DoesNotHaveProperty(name string) *ProjectAssert {
	a.helper()
	a.IsNotNull()

	if a.actual.HasProperty(name) {
		a.failWithMessage("Project '%s' should not contain a property named '%s'", a.actual.Name(), name)
	}
	return a
}

// HasPropertyValue verifies that the named project property exists and
// equals value.
func (a *ProjectAssert) HasPropertyValue(name string, value any) *ProjectAssert {
	a.helper()
	a.HasProperty(name)
	checkExpected(value)

	actual := a.actual.Property(name)
	if !assert.ObjectsAreEqual(value, actual) {
		a.failWithMessage("Project '%s' property '%s' expected value '%v' but was '%s'",
			a.actual.Name(), name, value, describe(actual))
	}
	return a
}

// DoesNotHavePropertyValue verifies that the named project property is
// missing or does not equal value.
func (a *ProjectAssert) DoesNotHavePropertyValue(name string, value any) *ProjectAssert {
	a.helper()
	a.IsNotNull()
	checkExpected(value)

	if a.actual.HasProperty(name) && assert.ObjectsAreEqual(value, a.actual.Property(name)) {
		a.failWithMessage("Project '%s' property '%s' should not equal '%v'", a.actual.Name(), name, value)
	}
	return a
}

// Property verifies that the named project property exists and returns an
// assertion over its value.
func (a *ProjectAssert) Property(name string) *ObjectAssert[any] {
	a.helper()
	a.HasProperty(name)
	return ThatObject(a.t, a.actual.Property(name))
}

func describe(value any) string {
	if identity.IsNil(value) {
		return "nil"
	}
	return fmt.Sprint(value)
}
