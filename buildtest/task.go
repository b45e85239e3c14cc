package buildtest

import (
	"maps"

	"github.com/roach88/buildassert/host"
)

// Task is a task double. Embed *Task to give a custom task type the host
// task surface:
//
//	type CompileTask struct {
//	    *buildtest.Task
//	    Release int
//	}
type Task struct {
	name        string
	description string
	group       string
	path        string
	enabled     bool
	properties  map[string]any
	dependsOn   []any
	inputs      TaskFiles
	outputs     TaskFiles
}

// NewTask returns an enabled task named name with path ":<name>". Adding
// the task to a project moves it under the project's path.
func NewTask(name string) *Task {
	return &Task{
		name:       name,
		path:       ":" + name,
		enabled:    true,
		properties: map[string]any{},
	}
}

func (t *Task) SetDescription(description string) *Task {
	t.description = description
	return t
}

func (t *Task) SetGroup(group string) *Task {
	t.group = group
	return t
}

func (t *Task) SetEnabled(enabled bool) *Task {
	t.enabled = enabled
	return t
}

// SetProperty sets a task property. A nil value records the property
// without a value.
func (t *Task) SetProperty(name string, value any) *Task {
	t.properties[name] = value
	return t
}

// AddDependsOn records dependency descriptors: task names, tasks or
// anything else the caller wants to compare against.
func (t *Task) AddDependsOn(dependencies ...any) *Task {
	t.dependsOn = append(t.dependsOn, dependencies...)
	return t
}

// AddInputs declares input files. Calling it with no paths still declares
// that the task has inputs.
func (t *Task) AddInputs(paths ...string) *Task {
	t.inputs.declare(paths)
	return t
}

// AddOutputs declares output files. Calling it with no paths still
// declares that the task has outputs.
func (t *Task) AddOutputs(paths ...string) *Task {
	t.outputs.declare(paths)
	return t
}

func (t *Task) Name() string { return t.name }
func (t *Task) Description() string { return t.description }
func (t *Task) Group() string { return t.group }
func (t *Task) Path() string { return t.path }
func (t *Task) Enabled() bool { return t.enabled }

func (t *Task) HasProperty(name string) bool {
	_, ok := t.properties[name]
	return ok
}

func (t *Task) Property(name string) any {
	return t.properties[name]
}

// Properties returns a copy of the task properties.
func (t *Task) Properties() map[string]any {
	return maps.Clone(t.properties)
}

func (t *Task) DependsOn() []any {
	return append([]any(nil), t.dependsOn...)
}

func (t *Task) Inputs() host.TaskInputs {
	return inputs{&t.inputs}
}

func (t *Task) Outputs() host.TaskOutputs {
	return outputs{&t.outputs}
}

// String returns "task '<path>'".
func (t *Task) String() string {
	return "task '" + t.path + "'"
}

func (t *Task) setPath(path string) {
	t.path = path
}

// TaskFiles is a declared set of task input or output files.
type TaskFiles struct {
	declared bool
	files    FileSet
}

func (f *TaskFiles) declare(paths []string) {
	all := make([]string, 0, len(f.files)+len(paths))
	for _, file := range f.files {
		all = append(all, file.Path())
	}
	f.files = Files(append(all, paths...)...)
	f.declared = true
}

type inputs struct{ *TaskFiles }

func (i inputs) HasInputs() bool { return i.declared }
func (i inputs) Files() host.FileCollection { return i.files }

type outputs struct{ *TaskFiles }

func (o outputs) HasOutput() bool { return o.declared }
func (o outputs) Files() host.FileCollection { return o.files }

// ReportingTask is a task that produces named reports.
type ReportingTask struct {
	*Task
	reports map[string]host.File
}

// NewReportingTask returns a reporting task named name with no reports.
func NewReportingTask(name string) *ReportingTask {
	return &ReportingTask{Task: NewTask(name), reports: map[string]host.File{}}
}

// AddReport registers the report name written to path.
func (t *ReportingTask) AddReport(name, path string) *ReportingTask {
	t.reports[name] = host.File(path)
	return t
}

// Reports implements host.Reporting.
func (t *ReportingTask) Reports() map[string]host.File {
	return maps.Clone(t.reports)
}
