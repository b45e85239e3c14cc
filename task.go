package buildassert

import (
	"fmt"
	"slices"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/buildassert/host"
)

// TaskAssert verifies a task.
type TaskAssert struct {
	*Assert[*TaskAssert, host.Task]
}

// ThatTask returns an assertion over task.
func ThatTask(t TestingT, task host.Task) *TaskAssert {
	a := &TaskAssert{}
	a.Assert = newAssert(t, task, a)
	return a
}

// HasName verifies the task name.
func (a *TaskAssert) HasName(name string) *TaskAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Name(); actual != name {
		a.failWithMessage("Expected task to have name '%s', but it was '%s'", name, actual)
	}
	return a
}

// HasDescription verifies the task description.
func (a *TaskAssert) HasDescription(description string) *TaskAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Description(); actual != description {
		a.failWithMessage("Expected task '%s' to have description '%s', but it was '%s'",
			a.actual.Name(), description, actual)
	}
	return a
}

// HasGroup verifies the task group.
func (a *TaskAssert) HasGroup(group string) *TaskAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Group(); actual != group {
		a.failWithMessage("Expected task '%s' to belong to group '%s', but was '%s'", a.actual.Name(), group, actual)
	}
	return a
}

// HasPath verifies the task path, such as ":lib:compileJava".
func (a *TaskAssert) HasPath(path string) *TaskAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Path(); actual != path {
		a.failWithMessage("Expected task '%s' to have path '%s', but was '%s'", a.actual.Name(), path, actual)
	}
	return a
}

// IsEnabled verifies that the task is enabled.
func (a *TaskAssert) IsEnabled() *TaskAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.Enabled() {
		a.failWithMessage("Expected task '%s' to be enabled, but it was disabled", a.actual.Name())
	}
	return a
}

// IsDisabled verifies that the task is disabled.
func (a *TaskAssert) IsDisabled() *TaskAssert {
	a.helper()
	a.IsNotNull()

	if a.actual.Enabled() {
		a.failWithMessage("Expected task '%s' to be disabled, but it was enabled", a.actual.Name())
	}
	return a
}

// HasProperty verifies that the named task property exists.
func (a *TaskAssert) HasProperty(name string) *TaskAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.HasProperty(name) {
		a.failWithMessage("Expected task '%s' to have property '%s', but it does not", a.actual.Name(), name)
	}
	return a
}

// HasPropertyValue verifies that the named task property exists and
// equals value.
func (a *TaskAssert) HasPropertyValue(name string, value any) *TaskAssert {
	a.helper()
	a.HasProperty(name)
	checkExpected(value)

	if !assert.ObjectsAreEqual(value, a.actual.Property(name)) {
		a.failWithMessage("Expected task '%s' to have property '%s' with value '%v', but is does not",
			a.actual.Name(), name, value)
	}
	return a
}

// DependsOn verifies that every given descriptor was recorded as a
// dependency of the task. Descriptors compare by value.
func (a *TaskAssert) DependsOn(dependency any, more ...any) *TaskAssert {
	a.helper()
	a.IsNotNull()

	recorded := a.actual.DependsOn()
	for _, dep := range batch(dependency, more) {
		checkExpected(dep)

		found := slices.ContainsFunc(recorded, func(r any) bool {
			return assert.ObjectsAreEqual(dep, r)
		})
		if !found {
			a.failWithMessage("Expected task '%s' to depend on '%s', but it does not", a.actual.Name(), fmt.Sprint(dep))
		}
	}
	return a
}

// HasInputs verifies that the task declares inputs.
func (a *TaskAssert) HasInputs() *TaskAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.Inputs().HasInputs() {
		a.failWithMessage("Expected task '%s' to have inputs, but it does not", a.actual.Name())
	}
	return a
}

// HasOutputs verifies that the task declares outputs.
func (a *TaskAssert) HasOutputs() *TaskAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.Outputs().HasOutput() {
		a.failWithMessage("Expected task '%s' to have outputs, but it does not", a.actual.Name())
	}
	return a
}

// InputFiles verifies that the task has inputs and returns an assertion
// over the input files.
func (a *TaskAssert) InputFiles() *FileCollectionAssert {
	a.helper()
	a.HasInputs()
	return ThatFiles(a.t, a.actual.Inputs().Files())
}

// OutputFiles verifies that the task has outputs and returns an assertion
// over the output files.
func (a *TaskAssert) OutputFiles() *FileCollectionAssert {
	a.helper()
	a.HasOutputs()
	return ThatFiles(a.t, a.actual.Outputs().Files())
}
