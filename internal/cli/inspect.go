package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
	"github.com/roach88/buildassert/internal/fixture"
)

// ProjectSummary describes a loaded fixture project.
type ProjectSummary struct {
	Fixture        string                 `json:"fixture"`
	Format         string                 `json:"format"`
	Name           string                 `json:"name"`
	Path           string                 `json:"path"`
	Group          string                 `json:"group,omitempty"`
	Version        string                 `json:"version"`
	Description    string                 `json:"description,omitempty"`
	Dir            string                 `json:"dir"`
	BuildDir       string                 `json:"build_dir,omitempty"`
	Plugins        []string               `json:"plugins"`
	Extensions     []string               `json:"extensions"`
	Properties     map[string]string      `json:"properties"`
	Configurations []ConfigurationSummary `json:"configurations"`
	Tasks          []TaskSummary          `json:"tasks"`
}

// ConfigurationSummary describes one configuration.
type ConfigurationSummary struct {
	Name       string `json:"name"`
	Files      int    `json:"files"`
	Consumable bool   `json:"can_be_consumed"`
	Declarable bool   `json:"can_be_declared"`
	Resolvable bool   `json:"can_be_resolved"`
	Transitive bool   `json:"transitive"`
}

// TaskSummary describes one task.
type TaskSummary struct {
	Name      string   `json:"name"`
	Path      string   `json:"path"`
	Group     string   `json:"group,omitempty"`
	Enabled   bool     `json:"enabled"`
	DependsOn []string `json:"depends_on,omitempty"`
	Inputs    int      `json:"inputs"`
	Outputs   int      `json:"outputs"`
	Reports   []string `json:"reports,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <fixture>",
		Short: "Show the project a fixture describes",
		Long: `Load a YAML, CUE or HCL fixture and print the project it builds.

Examples:
  buildassert inspect ./fixtures/app.yaml
  buildassert inspect ./fixtures/app.hcl --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, rootOpts, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, opts *RootOptions, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := opts.formatter(cmd)

	fx, err := fixture.Load(ctx, path)
	if err != nil {
		if opts.Format == "json" {
			_ = out.Error(ErrCodeLoad, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}
	opts.Logger().Debug("fixture loaded", zap.String("path", fx.Path), zap.String("format", fx.Format))

	summary := summarize(fx, fx.Project.Build(fx.Dir()))
	if opts.Format == "json" {
		return out.Success(summary)
	}
	writeProjectText(out.Writer, summary)
	return nil
}

func summarize(fx *fixture.Fixture, project *buildtest.Project) ProjectSummary {
	s := ProjectSummary{
		Fixture:     fx.Path,
		Format:      fx.Format,
		Name:        project.Name(),
		Path:        project.Path(),
		Group:       project.Group(),
		Version:     project.Version(),
		Description: project.Description(),
		Dir:         project.ProjectDir().Path(),
		Plugins:     project.PluginIDs(),
		Extensions:  project.ExtensionNames(),
		Properties:  map[string]string{},
	}
	if dir, ok := project.BuildDirectory().Value(); ok && dir != nil {
		s.BuildDir = dir.AsFile().Path()
	}

	for name, v := range project.Properties() {
		s.Properties[name] = describeValue(v)
	}

	for _, name := range project.ConfigurationNames() {
		c, _ := project.Configurations().FindByName(name)
		s.Configurations = append(s.Configurations, ConfigurationSummary{
			Name:       c.Name(),
			Files:      len(c.Files()),
			Consumable: c.CanBeConsumed(),
			Declarable: c.CanBeDeclared(),
			Resolvable: c.CanBeResolved(),
			Transitive: c.IsTransitive(),
		})
	}

	for _, name := range project.TaskNames() {
		t, _ := project.Tasks().FindByName(name)
		ts := TaskSummary{
			Name:    t.Name(),
			Path:    t.Path(),
			Group:   t.Group(),
			Enabled: t.Enabled(),
			Inputs:  len(t.Inputs().Files().Files()),
			Outputs: len(t.Outputs().Files().Files()),
		}
		for _, dep := range t.DependsOn() {
			ts.DependsOn = append(ts.DependsOn, describeDependency(dep))
		}
		if r, ok := t.(host.Reporting); ok {
			ts.Reports = slices.Sorted(maps.Keys(r.Reports()))
		}
		s.Tasks = append(s.Tasks, ts)
	}

	return s
}

func describeDependency(dep any) string {
	if t, ok := dep.(host.Task); ok {
		return t.Name()
	}
	return describeValue(dep)
}

// describeValue renders a property value; providers are described, not
// realized.
func describeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func writeProjectText(w io.Writer, s ProjectSummary) {
	fmt.Fprintf(w, "Project %s (%s)\n", s.Name, s.Path)
	fmt.Fprintf(w, "  fixture:  %s [%s]\n", s.Fixture, s.Format)
	if s.Group != "" {
		fmt.Fprintf(w, "  group:    %s\n", s.Group)
	}
	fmt.Fprintf(w, "  version:  %s\n", s.Version)
	fmt.Fprintf(w, "  dir:      %s\n", s.Dir)
	if s.BuildDir != "" {
		fmt.Fprintf(w, "  buildDir: %s\n", s.BuildDir)
	}
	if len(s.Plugins) > 0 {
		fmt.Fprintf(w, "  plugins:  %s\n", strings.Join(s.Plugins, ", "))
	}
	if len(s.Extensions) > 0 {
		fmt.Fprintf(w, "  extensions: %s\n", strings.Join(s.Extensions, ", "))
	}

	if len(s.Properties) > 0 {
		fmt.Fprintln(w, "Properties:")
		for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
			fmt.Fprintf(w, "  %s = %s\n", name, s.Properties[name])
		}
	}

	if len(s.Configurations) > 0 {
		fmt.Fprintln(w, "Configurations:")
		for _, c := range s.Configurations {
			fmt.Fprintf(w, "  %s (%d files)\n", c.Name, c.Files)
		}
	}

	if len(s.Tasks) > 0 {
		fmt.Fprintln(w, "Tasks:")
		for _, t := range s.Tasks {
			line := "  " + t.Path
			if t.Group != "" {
				line += " [" + t.Group + "]"
			}
			if !t.Enabled {
				line += " (disabled)"
			}
			if len(t.DependsOn) > 0 {
				line += " -> " + strings.Join(t.DependsOn, ", ")
			}
			fmt.Fprintln(w, line)
		}
	}
}
