package host

import "reflect"

// FileCollection is an unordered set of files.
type FileCollection interface {
	// Files returns the members of the collection. The order carries no
	// meaning and the slice holds no duplicates.
	Files() []File
}

// Directory is a directory location in the build model.
type Directory interface {
	AsFile() File
	// AsFileTree returns the files beneath the directory.
	AsFileTree() FileCollection
}

// RegularFile is a regular file location in the build model.
type RegularFile interface {
	AsFile() File
}

// Configuration is a named bucket of dependencies that resolves to files.
type Configuration interface {
	FileCollection

	Name() string
	Description() string
	CanBeConsumed() bool
	CanBeDeclared() bool
	CanBeResolved() bool
	IsTransitive() bool
}

// TaskInputs describes the declared inputs of a task.
type TaskInputs interface {
	HasInputs() bool
	Files() FileCollection
}

// TaskOutputs describes the declared outputs of a task.
type TaskOutputs interface {
	HasOutput() bool
	Files() FileCollection
}

// Task is a unit of work in a project.
type Task interface {
	Name() string
	Description() string
	Group() string
	Path() string
	Enabled() bool

	HasProperty(name string) bool
	Property(name string) any

	// DependsOn returns the recorded dependency descriptors. A descriptor
	// may be a task name, a Task, a Provider or any other value the build
	// tool accepts.
	DependsOn() []any

	Inputs() TaskInputs
	Outputs() TaskOutputs
}

// Reporting is implemented by tasks that produce reports.
type Reporting interface {
	Reports() map[string]File
}

// ExtensionContainer holds the extension objects registered on a project.
type ExtensionContainer interface {
	FindByName(name string) (any, bool)
	// FindByType returns the first extension whose runtime type is t or,
	// for interface types, implements t.
	FindByType(t reflect.Type) (any, bool)
}

// ConfigurationContainer holds a project's configurations.
type ConfigurationContainer interface {
	FindByName(name string) (Configuration, bool)
}

// TaskContainer holds a project's tasks.
type TaskContainer interface {
	FindByName(name string) (Task, bool)
}

// PluginManager reports the plugins applied to a project.
type PluginManager interface {
	HasPlugin(id string) bool
}

// Project is the root object of a build model.
type Project interface {
	Name() string
	Path() string
	Group() string
	Version() string
	Description() string

	ProjectDir() File
	// File resolves path relative to the project directory.
	File(path string) File
	BuildDirectory() DirectoryProperty

	Extensions() ExtensionContainer
	Configurations() ConfigurationContainer
	Plugins() PluginManager
	Tasks() TaskContainer

	HasProperty(name string) bool
	Property(name string) any
}
