package buildtest

import (
	"maps"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/identity"
)

// Project is a project double. Tasks, configurations and extensions keep
// their registration order.
type Project struct {
	name        string
	path        string
	group       string
	version     string
	description string
	dir         host.File
	buildDir    *Property[host.Directory]

	extensions     []named[any]
	configurations []named[host.Configuration]
	tasks          []named[host.Task]
	plugins        []string
	properties     map[string]any
}

type named[V any] struct {
	name  string
	value V
}

// ProjectOption configures a project created by NewProject.
type ProjectOption func(*Project)

// WithDir sets the project directory. The build directory follows it
// unless set explicitly.
func WithDir(dir string) ProjectOption {
	return func(p *Project) { p.dir = host.File(dir) }
}

// WithBuildDir sets the build directory. A relative path is resolved
// against the project directory.
func WithBuildDir(dir string) ProjectOption {
	return func(p *Project) {
		p.buildDir.SetFrom(Provide(func() host.Directory {
			if filepath.IsAbs(dir) {
				return NewDirectory(dir)
			}
			return NewDirectory(p.dir.Join(dir).Path())
		}))
	}
}

// WithPath sets the project path. The default is ":".
func WithPath(path string) ProjectOption {
	return func(p *Project) { p.path = path }
}

func WithGroup(group string) ProjectOption {
	return func(p *Project) { p.group = group }
}

func WithVersion(version string) ProjectOption {
	return func(p *Project) { p.version = version }
}

func WithDescription(description string) ProjectOption {
	return func(p *Project) { p.description = description }
}

// NewProject returns an empty project named name rooted at the current
// directory with the build directory "build".
func NewProject(name string, opts ...ProjectOption) *Project {
	p := &Project{
		name:       name,
		path:       ":",
		version:    "unspecified",
		dir:        host.File("."),
		buildDir:   NewDirectoryProperty(),
		properties: map[string]any{},
	}
	p.buildDir.SetFrom(Provide(func() host.Directory {
		return NewDirectory(p.dir.Join("build").Path())
	}))

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddTask registers task and moves it under the project path when it is,
// or embeds, a *Task.
func (p *Project) AddTask(task host.Task) *Project {
	if t, ok := task.(interface{ setPath(string) }); ok {
		t.setPath(p.childPath(task.Name()))
	}
	p.tasks = upsert(p.tasks, task.Name(), task)
	return p
}

// AddConfiguration registers configuration.
func (p *Project) AddConfiguration(configuration host.Configuration) *Project {
	p.configurations = upsert(p.configurations, configuration.Name(), configuration)
	return p
}

// AddExtension registers extension under name.
func (p *Project) AddExtension(name string, extension any) *Project {
	p.extensions = upsert(p.extensions, name, extension)
	return p
}

// ApplyPlugin records the plugin ids as applied.
func (p *Project) ApplyPlugin(ids ...string) *Project {
	for _, id := range ids {
		if !slices.Contains(p.plugins, id) {
			p.plugins = append(p.plugins, id)
		}
	}
	return p
}

// SetProperty sets an extra project property. A nil value records the
// property without a value.
func (p *Project) SetProperty(name string, value any) *Project {
	p.properties[name] = value
	return p
}

func (p *Project) childPath(name string) string {
	if p.path == ":" {
		return ":" + name
	}
	return p.path + ":" + name
}

func upsert[V any](list []named[V], name string, value V) []named[V] {
	i := slices.IndexFunc(list, func(n named[V]) bool { return n.name == name })
	if i >= 0 {
		list[i].value = value
		return list
	}
	return append(list, named[V]{name: name, value: value})
}

func find[V any](list []named[V], name string) (V, bool) {
	for _, n := range list {
		if n.name == name {
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

func (p *Project) Name() string { return p.name }
func (p *Project) Path() string { return p.path }
func (p *Project) Group() string { return p.group }
func (p *Project) Version() string { return p.version }
func (p *Project) Description() string { return p.description }
func (p *Project) ProjectDir() host.File { return p.dir }

// File resolves path against the project directory. Absolute paths are
// returned unchanged.
func (p *Project) File(path string) host.File {
	if filepath.IsAbs(path) {
		return host.File(path)
	}
	return p.dir.Join(path)
}

func (p *Project) BuildDirectory() host.DirectoryProperty {
	return p.buildDir
}

func (p *Project) Extensions() host.ExtensionContainer { return extensionContainer{p} }
func (p *Project) Configurations() host.ConfigurationContainer { return configurationContainer{p} }
func (p *Project) Tasks() host.TaskContainer { return taskContainer{p} }
func (p *Project) Plugins() host.PluginManager { return pluginManager{p} }

// HasProperty reports extra properties as well as the built-in name, path,
// group, version and description properties.
func (p *Project) HasProperty(name string) bool {
	if _, ok := p.builtin(name); ok {
		return true
	}
	_, ok := p.properties[name]
	return ok
}

func (p *Project) Property(name string) any {
	if v, ok := p.builtin(name); ok {
		return v
	}
	return p.properties[name]
}

// Properties returns a copy of the extra project properties.
func (p *Project) Properties() map[string]any {
	return maps.Clone(p.properties)
}

func (p *Project) builtin(name string) (string, bool) {
	switch name {
	case "name":
		return p.name, true
	case "path":
		return p.path, true
	case "group":
		return p.group, true
	case "version":
		return p.version, true
	case "description":
		return p.description, true
	}
	return "", false
}

// TaskNames returns the registered task names in registration order.
func (p *Project) TaskNames() []string { return names(p.tasks) }

// ConfigurationNames returns the registered configuration names in
// registration order.
func (p *Project) ConfigurationNames() []string { return names(p.configurations) }

// ExtensionNames returns the registered extension names in registration
// order.
func (p *Project) ExtensionNames() []string { return names(p.extensions) }

// PluginIDs returns the applied plugin ids in application order.
func (p *Project) PluginIDs() []string { return slices.Clone(p.plugins) }

func names[V any](list []named[V]) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.name
	}
	return out
}

// String returns "root project '<name>'" or "project '<path>'".
func (p *Project) String() string {
	if p.path == ":" {
		return "root project '" + p.name + "'"
	}
	return "project '" + p.path + "'"
}

type extensionContainer struct{ p *Project }

func (c extensionContainer) FindByName(name string) (any, bool) {
	return find(c.p.extensions, name)
}

func (c extensionContainer) FindByType(t reflect.Type) (any, bool) {
	for _, n := range c.p.extensions {
		if identity.Implements(reflect.TypeOf(n.value), t) {
			return n.value, true
		}
	}
	return nil, false
}

type configurationContainer struct{ p *Project }

func (c configurationContainer) FindByName(name string) (host.Configuration, bool) {
	return find(c.p.configurations, name)
}

type taskContainer struct{ p *Project }

// FindByName accepts a task name or a task path such as ":app:build".
func (c taskContainer) FindByName(name string) (host.Task, bool) {
	if strings.HasPrefix(name, ":") {
		for _, n := range c.p.tasks {
			if n.value.Path() == name {
				return n.value, true
			}
		}
		return nil, false
	}
	return find(c.p.tasks, name)
}

type pluginManager struct{ p *Project }

func (m pluginManager) HasPlugin(id string) bool {
	return slices.Contains(m.p.plugins, id)
}
