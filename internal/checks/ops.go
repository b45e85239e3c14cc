package checks

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/roach88/buildassert"
	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/fixture"
)

// env is what an operation runs against.
type env struct {
	t       buildassert.TestingT
	project host.Project
	subject subject
}

func (e *env) that() *buildassert.ProjectAssert {
	return buildassert.ThatProject(e.t, e.project)
}

func (e *env) task() *buildassert.TaskAssert {
	return e.that().Task(e.subject.name)
}

func (e *env) configuration() *buildassert.ConfigurationAssert {
	return e.that().Configuration(e.subject.name)
}

func (e *env) taskFiles() *buildassert.FileCollectionAssert {
	if e.subject.files == "outputs" {
		return e.task().OutputFiles()
	}
	return e.task().InputFiles()
}

func (e *env) property() *buildassert.ObjectAssert[any] {
	return e.that().Property(e.subject.name)
}

var providerFactory = buildassert.NewFactory(buildassert.ThatProvider[any])

func (e *env) provider() *buildassert.ProviderAssert[any] {
	return buildassert.Narrow(e.property(), providerFactory)
}

func (e *env) buildDir() *buildassert.DirectoryPropertyAssert {
	return buildassert.ThatDirectoryProperty(e.t, e.project.BuildDirectory())
}

func (e *env) file() *buildassert.FileAssert {
	return buildassert.ThatFile(e.t, e.project.File(e.subject.name))
}

// arg is an argument an operation reads from its check.
type arg int

const (
	argName arg = iota
	argNames
	argString
	argValue
	argValues
	argPath
	argCount
	argType
)

func (a arg) require(c *Check) error {
	switch a {
	case argName:
		if c.Name == "" {
			return fmt.Errorf("name is required")
		}
	case argNames:
		if len(c.Names) == 0 {
			return fmt.Errorf("names list is required and must be non-empty")
		}
	case argString:
		if _, ok := c.Value.(string); !ok {
			return fmt.Errorf("value must be a string")
		}
	case argValue:
		if c.Value == nil {
			return fmt.Errorf("value is required")
		}
	case argValues:
		if len(c.Values) == 0 {
			return fmt.Errorf("values list is required and must be non-empty")
		}
	case argPath:
		if c.Path == "" {
			return fmt.Errorf("path is required")
		}
	case argCount:
		if c.Count == nil || *c.Count < 0 {
			return fmt.Errorf("count is required and must be non-negative")
		}
	case argType:
		if _, err := lookupType(c.Type); err != nil {
			return err
		}
	}
	return nil
}

type operation struct {
	args []arg
	run  func(e *env, c *Check)
}

func op(run func(e *env, c *Check), args ...arg) operation {
	return operation{args: args, run: run}
}

func value(c *Check) any {
	return fixture.Normalize(c.Value)
}

func text(c *Check) string {
	s, _ := c.Value.(string)
	return s
}

func values(c *Check) []any {
	out := make([]any, len(c.Values))
	for i, v := range c.Values {
		out[i] = fixture.Normalize(v)
	}
	return out
}

func typeOf(c *Check) reflect.Type {
	typ, _ := lookupType(c.Type)
	return typ
}

var operations = map[string]map[string]operation{
	kindProject:       projectOps(),
	kindTask:          taskOps(),
	kindTaskFiles:     collectionOps(func(e *env) *buildassert.AbstractFileCollectionAssert[*buildassert.FileCollectionAssert, host.FileCollection] { return e.taskFiles().AbstractFileCollectionAssert }),
	kindConfiguration: configurationOps(),
	kindProperty:      propertyOps(),
	kindBuildDir:      buildDirOps(),
	kindFile:          fileOps(),
}

func projectOps() map[string]operation {
	names := func(assert func(a *buildassert.ProjectAssert, first string, more ...string) *buildassert.ProjectAssert) operation {
		return op(func(e *env, c *Check) { assert(e.that(), c.Names[0], c.Names[1:]...) }, argNames)
	}
	path := func(assert func(a *buildassert.ProjectAssert, path string) *buildassert.ProjectAssert) operation {
		return op(func(e *env, c *Check) { assert(e.that(), c.Path) }, argPath)
	}
	field := func(assert func(a *buildassert.ProjectAssert, s string) *buildassert.ProjectAssert) operation {
		return op(func(e *env, c *Check) { assert(e.that(), text(c)) }, argString)
	}

	return map[string]operation{
		"has_name":        field((*buildassert.ProjectAssert).HasName),
		"has_path":        field((*buildassert.ProjectAssert).HasPath),
		"has_group":       field((*buildassert.ProjectAssert).HasGroup),
		"has_version":     field((*buildassert.ProjectAssert).HasVersion),
		"has_description": field((*buildassert.ProjectAssert).HasDescription),

		"has_task":                    names((*buildassert.ProjectAssert).HasTask),
		"does_not_have_task":          names((*buildassert.ProjectAssert).DoesNotHaveTask),
		"has_configuration":           names((*buildassert.ProjectAssert).HasConfiguration),
		"does_not_have_configuration": names((*buildassert.ProjectAssert).DoesNotHaveConfiguration),
		"has_plugin":                  names((*buildassert.ProjectAssert).HasPlugin),
		"does_not_have_plugin":        names((*buildassert.ProjectAssert).DoesNotHavePlugin),
		"has_extension":               names((*buildassert.ProjectAssert).HasExtension),
		"does_not_have_extension":     names((*buildassert.ProjectAssert).DoesNotHaveExtension),

		"has_extension_with_type": op(func(e *env, c *Check) { e.that().HasExtensionWithType(c.Name, typeOf(c)) }, argName, argType),
		"has_extension_of_type":   op(func(e *env, c *Check) { e.that().HasExtensionOfType(typeOf(c)) }, argType),
		"has_task_with_type":      op(func(e *env, c *Check) { e.that().HasTaskWithType(c.Name, typeOf(c)) }, argName, argType),
		"has_task_with_reports":   op(func(e *env, c *Check) { e.that().HasTaskWithReports(c.Name) }, argName),

		"has_project_file":      path((*buildassert.ProjectAssert).HasProjectFile),
		"has_project_directory": path((*buildassert.ProjectAssert).HasProjectDirectory),
		"has_build_file":        path((*buildassert.ProjectAssert).HasBuildFile),
		"has_build_directory":   path((*buildassert.ProjectAssert).HasBuildDirectory),

		"has_property":                 op(func(e *env, c *Check) { e.that().HasProperty(c.Name) }, argName),
		"does_not_have_property":       op(func(e *env, c *Check) { e.that().DoesNotHaveProperty(c.Name) }, argName),
		"has_property_value":           op(func(e *env, c *Check) { e.that().HasPropertyValue(c.Name, value(c)) }, argName),
		"does_not_have_property_value": op(func(e *env, c *Check) { e.that().DoesNotHavePropertyValue(c.Name, value(c)) }, argName),
	}
}

func taskOps() map[string]operation {
	field := func(assert func(a *buildassert.TaskAssert, s string) *buildassert.TaskAssert) operation {
		return op(func(e *env, c *Check) { assert(e.task(), text(c)) }, argString)
	}

	return map[string]operation{
		"has_name":        field((*buildassert.TaskAssert).HasName),
		"has_description": field((*buildassert.TaskAssert).HasDescription),
		"has_group":       field((*buildassert.TaskAssert).HasGroup),
		"has_path":        field((*buildassert.TaskAssert).HasPath),

		"is_enabled":  op(func(e *env, c *Check) { e.task().IsEnabled() }),
		"is_disabled": op(func(e *env, c *Check) { e.task().IsDisabled() }),
		"has_inputs":  op(func(e *env, c *Check) { e.task().HasInputs() }),
		"has_outputs": op(func(e *env, c *Check) { e.task().HasOutputs() }),

		"has_property":       op(func(e *env, c *Check) { e.task().HasProperty(c.Name) }, argName),
		"has_property_value": op(func(e *env, c *Check) { e.task().HasPropertyValue(c.Name, value(c)) }, argName),
		"depends_on": op(func(e *env, c *Check) {
			deps := values(c)
			e.task().DependsOn(deps[0], deps[1:]...)
		}, argValues),
	}
}

func collectionOps[SELF any, FC host.FileCollection](get func(e *env) *buildassert.AbstractFileCollectionAssert[SELF, FC]) map[string]operation {
	return map[string]operation{
		"is_empty":     op(func(e *env, c *Check) { get(e).IsEmpty() }),
		"is_not_empty": op(func(e *env, c *Check) { get(e).IsNotEmpty() }),
		"contains": op(func(e *env, c *Check) {
			get(e).Contains(e.project.File(c.Path))
		}, argPath),
		"does_not_contain": op(func(e *env, c *Check) {
			get(e).DoesNotContain(e.project.File(c.Path))
		}, argPath),
		"has_size":        op(func(e *env, c *Check) { get(e).HasSize(*c.Count) }, argCount),
		"has_single_file": op(func(e *env, c *Check) { get(e).HasSingleFile() }),
	}
}

func configurationOps() map[string]operation {
	ops := collectionOps(func(e *env) *buildassert.AbstractFileCollectionAssert[*buildassert.ConfigurationAssert, host.Configuration] {
		return e.configuration().AbstractFileCollectionAssert
	})

	ops["has_name"] = op(func(e *env, c *Check) { e.configuration().HasName(text(c)) }, argString)
	ops["has_description"] = op(func(e *env, c *Check) { e.configuration().HasDescription(text(c)) }, argString)
	ops["can_be_consumed"] = op(func(e *env, c *Check) { e.configuration().CanBeConsumed() })
	ops["can_be_declared"] = op(func(e *env, c *Check) { e.configuration().CanBeDeclared() })
	ops["can_be_resolved"] = op(func(e *env, c *Check) { e.configuration().CanBeResolved() })
	ops["is_transitive"] = op(func(e *env, c *Check) { e.configuration().IsTransitive() })
	ops["is_not_transitive"] = op(func(e *env, c *Check) { e.configuration().IsNotTransitive() })
	return ops
}

func propertyOps() map[string]operation {
	return map[string]operation{
		"is_equal_to":    op(func(e *env, c *Check) { e.property().IsEqualTo(value(c)) }, argValue),
		"is_null":        op(func(e *env, c *Check) { e.property().IsNull() }),
		"is_instance_of": op(func(e *env, c *Check) { e.property().IsInstanceOf(typeOf(c)) }, argType),

		"is_present":           op(func(e *env, c *Check) { e.provider().IsPresent() }),
		"is_empty":             op(func(e *env, c *Check) { e.provider().IsEmpty() }),
		"has_value":            op(func(e *env, c *Check) { e.provider().HasValue(value(c)) }, argValue),
		"contains_instance_of": op(func(e *env, c *Check) { e.provider().ContainsInstanceOf(typeOf(c)) }, argType),
	}
}

func buildDirOps() map[string]operation {
	return map[string]operation{
		"is_present":   op(func(e *env, c *Check) { e.buildDir().IsPresent() }),
		"is_empty":     op(func(e *env, c *Check) { e.buildDir().IsEmpty() }),
		"exists":       op(func(e *env, c *Check) { e.buildDir().GetFile().Exists() }),
		"is_directory": op(func(e *env, c *Check) { e.buildDir().GetFile().IsDirectory() }),
		"has_name":     op(func(e *env, c *Check) { e.buildDir().GetFile().HasName(text(c)) }, argString),
		"contains": op(func(e *env, c *Check) {
			dir := e.buildDir().GetDirectory()
			dir.Files().Contains(dir.Actual().AsFile().Join(c.Path))
		}, argPath),
	}
}

func fileOps() map[string]operation {
	return map[string]operation{
		"exists":         op(func(e *env, c *Check) { e.file().Exists() }),
		"does_not_exist": op(func(e *env, c *Check) { e.file().DoesNotExist() }),
		"is_file":        op(func(e *env, c *Check) { e.file().IsFile() }),
		"is_directory":   op(func(e *env, c *Check) { e.file().IsDirectory() }),
		"has_name":       op(func(e *env, c *Check) { e.file().HasName(text(c)) }, argString),
		"has_extension":  op(func(e *env, c *Check) { e.file().HasExtension(text(c)) }, argString),
	}
}

// Operations returns the operation names available for a subject kind.
func Operations(kind string) []string {
	ops, ok := operations[kind]
	if !ok {
		return nil
	}
	return sortedNames(ops)
}

// SubjectKinds returns the subject kinds a check may use.
func SubjectKinds() []string {
	return sortedNames(operations)
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func joinSorted[V any](m map[string]V) string {
	return strings.Join(sortedNames(m), ", ")
}
