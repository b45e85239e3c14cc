package fixture

import (
	"fmt"
	"path/filepath"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

// Task types accepted in fixtures.
const (
	TaskTypeDefault   = "task"
	TaskTypeReporting = "reporting"
)

// Project is the decoded form of a fixture file.
type Project struct {
	Name           string              `yaml:"name" json:"name"`
	Path           string              `yaml:"path,omitempty" json:"path,omitempty"`
	Group          string              `yaml:"group,omitempty" json:"group,omitempty"`
	Version        string              `yaml:"version,omitempty" json:"version,omitempty"`
	Description    string              `yaml:"description,omitempty" json:"description,omitempty"`
	Dir            string              `yaml:"dir,omitempty" json:"dir,omitempty"`
	BuildDir       string              `yaml:"build_dir,omitempty" json:"build_dir,omitempty"`
	Plugins        []string            `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Extensions     map[string]any      `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Properties     map[string]any      `yaml:"properties,omitempty" json:"properties,omitempty"`
	Providers      map[string]Provider `yaml:"providers,omitempty" json:"providers,omitempty"`
	Configurations []Configuration     `yaml:"configurations,omitempty" json:"configurations,omitempty"`
	Tasks          []Task              `yaml:"tasks,omitempty" json:"tasks,omitempty"`
}

// Provider is a lazily realized project property. A nil Value makes the
// provider absent.
type Provider struct {
	Value any `yaml:"value,omitempty" json:"value,omitempty"`
}

// Configuration describes one configuration. Unset flags keep the
// defaults of buildtest.NewConfiguration.
type Configuration struct {
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`
	CanBeConsumed *bool    `yaml:"can_be_consumed,omitempty" json:"can_be_consumed,omitempty"`
	CanBeDeclared *bool    `yaml:"can_be_declared,omitempty" json:"can_be_declared,omitempty"`
	CanBeResolved *bool    `yaml:"can_be_resolved,omitempty" json:"can_be_resolved,omitempty"`
	Transitive    *bool    `yaml:"transitive,omitempty" json:"transitive,omitempty"`
	Files         []string `yaml:"files,omitempty" json:"files,omitempty"`
}

// Task describes one task. A non-nil Inputs or Outputs declares that the
// task has inputs or outputs, even when the list is empty.
type Task struct {
	Name        string            `yaml:"name" json:"name"`
	Type        string            `yaml:"type,omitempty" json:"type,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Group       string            `yaml:"group,omitempty" json:"group,omitempty"`
	Enabled     *bool             `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Inputs      []string          `yaml:"inputs" json:"inputs"`
	Outputs     []string          `yaml:"outputs" json:"outputs"`
	Properties  map[string]any    `yaml:"properties,omitempty" json:"properties,omitempty"`
	Reports     map[string]string `yaml:"reports,omitempty" json:"reports,omitempty"`
}

// Validate reports the first structural problem in the fixture.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}

	seen := map[string]bool{}
	for i, c := range p.Configurations {
		if c.Name == "" {
			return fmt.Errorf("configurations[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("configurations[%d]: duplicate configuration %q", i, c.Name)
		}
		seen[c.Name] = true
	}

	seen = map[string]bool{}
	for i, t := range p.Tasks {
		if t.Name == "" {
			return fmt.Errorf("tasks[%d]: name is required", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("tasks[%d]: duplicate task %q", i, t.Name)
		}
		seen[t.Name] = true

		switch t.Type {
		case "", TaskTypeDefault, TaskTypeReporting:
		default:
			return fmt.Errorf("tasks[%d]: unknown task type %q (must be %q or %q)", i, t.Type, TaskTypeDefault, TaskTypeReporting)
		}
		if len(t.Reports) > 0 && t.Type != TaskTypeReporting {
			return fmt.Errorf("tasks[%d]: reports require type %q", i, TaskTypeReporting)
		}
	}

	for name := range p.Providers {
		if _, ok := p.Properties[name]; ok {
			return fmt.Errorf("providers: %q is also declared as a property", name)
		}
	}

	return nil
}

// Build returns the in-memory project described by the fixture. Relative
// paths resolve against baseDir.
func (p *Project) Build(baseDir string) *buildtest.Project {
	dir := resolve(baseDir, p.Dir)

	opts := []buildtest.ProjectOption{
		buildtest.WithDir(dir),
		buildtest.WithGroup(p.Group),
		buildtest.WithDescription(p.Description),
	}
	if p.Path != "" {
		opts = append(opts, buildtest.WithPath(p.Path))
	}
	if p.Version != "" {
		opts = append(opts, buildtest.WithVersion(p.Version))
	}
	if p.BuildDir != "" {
		opts = append(opts, buildtest.WithBuildDir(p.BuildDir))
	}

	project := buildtest.NewProject(p.Name, opts...).ApplyPlugin(p.Plugins...)

	for _, name := range sortedKeys(p.Extensions) {
		project.AddExtension(name, Normalize(p.Extensions[name]))
	}
	for _, name := range sortedKeys(p.Properties) {
		project.SetProperty(name, Normalize(p.Properties[name]))
	}
	for _, name := range sortedKeys(p.Providers) {
		property := buildtest.NewProperty[any]()
		if v := Normalize(p.Providers[name].Value); v != nil {
			property.Set(v)
		}
		project.SetProperty(name, property)
	}

	for _, c := range p.Configurations {
		project.AddConfiguration(c.build(dir))
	}
	for _, t := range p.Tasks {
		project.AddTask(t.build(dir))
	}

	return project
}

func (c Configuration) build(dir string) *buildtest.Configuration {
	configuration := buildtest.NewConfiguration(c.Name).
		SetDescription(c.Description).
		AddFiles(resolveAll(dir, c.Files)...)

	if c.CanBeConsumed != nil {
		configuration.SetCanBeConsumed(*c.CanBeConsumed)
	}
	if c.CanBeDeclared != nil {
		configuration.SetCanBeDeclared(*c.CanBeDeclared)
	}
	if c.CanBeResolved != nil {
		configuration.SetCanBeResolved(*c.CanBeResolved)
	}
	if c.Transitive != nil {
		configuration.SetTransitive(*c.Transitive)
	}
	return configuration
}

func (t Task) build(dir string) host.Task {
	var task *buildtest.Task
	var built host.Task

	if t.Type == TaskTypeReporting {
		reporting := buildtest.NewReportingTask(t.Name)
		for _, name := range sortedKeys(t.Reports) {
			reporting.AddReport(name, resolve(dir, t.Reports[name]))
		}
		task, built = reporting.Task, reporting
	} else {
		task = buildtest.NewTask(t.Name)
		built = task
	}

	task.SetDescription(t.Description).SetGroup(t.Group)
	if t.Enabled != nil {
		task.SetEnabled(*t.Enabled)
	}
	for _, dep := range t.DependsOn {
		task.AddDependsOn(dep)
	}
	if t.Inputs != nil {
		task.AddInputs(resolveAll(dir, t.Inputs)...)
	}
	if t.Outputs != nil {
		task.AddOutputs(resolveAll(dir, t.Outputs)...)
	}
	for _, name := range sortedKeys(t.Properties) {
		task.SetProperty(name, Normalize(t.Properties[name]))
	}

	return built
}

func resolve(base, path string) string {
	if path == "" {
		return base
	}
	if filepath.IsAbs(path) || base == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func resolveAll(base string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = resolve(base, p)
	}
	return out
}
