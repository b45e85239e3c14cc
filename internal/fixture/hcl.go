package fixture

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

type hclFile struct {
	Projects []*hclProject `hcl:"project,block"`
}

type hclProject struct {
	Name           string              `hcl:"name,label"`
	Path           string              `hcl:"path,optional"`
	Group          string              `hcl:"group,optional"`
	Version        string              `hcl:"version,optional"`
	Description    string              `hcl:"description,optional"`
	Dir            string              `hcl:"dir,optional"`
	BuildDir       string              `hcl:"build_dir,optional"`
	Plugins        []string            `hcl:"plugins,optional"`
	Extensions     hcl.Expression      `hcl:"extensions,optional"`
	Properties     hcl.Expression      `hcl:"properties,optional"`
	Providers      []*hclProvider      `hcl:"provider,block"`
	Configurations []*hclConfiguration `hcl:"configuration,block"`
	Tasks          []*hclTask          `hcl:"task,block"`
}

type hclProvider struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value,optional"`
}

type hclConfiguration struct {
	Name          string   `hcl:"name,label"`
	Description   string   `hcl:"description,optional"`
	CanBeConsumed *bool    `hcl:"can_be_consumed,optional"`
	CanBeDeclared *bool    `hcl:"can_be_declared,optional"`
	CanBeResolved *bool    `hcl:"can_be_resolved,optional"`
	Transitive    *bool    `hcl:"transitive,optional"`
	Files         []string `hcl:"files,optional"`
}

type hclTask struct {
	Name        string            `hcl:"name,label"`
	Type        string            `hcl:"type,optional"`
	Description string            `hcl:"description,optional"`
	Group       string            `hcl:"group,optional"`
	Enabled     *bool             `hcl:"enabled,optional"`
	DependsOn   []string          `hcl:"depends_on,optional"`
	Inputs      hcl.Expression    `hcl:"inputs,optional"`
	Outputs     hcl.Expression    `hcl:"outputs,optional"`
	Properties  hcl.Expression    `hcl:"properties,optional"`
	Reports     map[string]string `hcl:"reports,optional"`
}

func decodeHCL(path string, data []byte) (*Project, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, parseError(path, "HCL", diags)
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diags
	}
	if len(root.Projects) != 1 {
		return nil, &LoadError{
			Path:    path,
			Code:    ErrCodeInvalid,
			Message: fmt.Sprintf("expected exactly one project block, found %d", len(root.Projects)),
		}
	}

	return root.Projects[0].toProject()
}

func (h *hclProject) toProject() (*Project, error) {
	p := &Project{
		Name:        h.Name,
		Path:        h.Path,
		Group:       h.Group,
		Version:     h.Version,
		Description: h.Description,
		Dir:         h.Dir,
		BuildDir:    h.BuildDir,
		Plugins:     h.Plugins,
	}

	var err error
	if p.Extensions, err = objectAttr(h.Extensions, "extensions"); err != nil {
		return nil, err
	}
	if p.Properties, err = objectAttr(h.Properties, "properties"); err != nil {
		return nil, err
	}

	if len(h.Providers) > 0 {
		p.Providers = make(map[string]Provider, len(h.Providers))
	}
	for _, hp := range h.Providers {
		if _, dup := p.Providers[hp.Name]; dup {
			return nil, fmt.Errorf("provider %q declared twice", hp.Name)
		}
		value, err := exprToNative(hp.Value)
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", hp.Name, err)
		}
		p.Providers[hp.Name] = Provider{Value: value}
	}

	for _, hc := range h.Configurations {
		p.Configurations = append(p.Configurations, Configuration{
			Name:          hc.Name,
			Description:   hc.Description,
			CanBeConsumed: hc.CanBeConsumed,
			CanBeDeclared: hc.CanBeDeclared,
			CanBeResolved: hc.CanBeResolved,
			Transitive:    hc.Transitive,
			Files:         hc.Files,
		})
	}

	for _, ht := range h.Tasks {
		task := Task{
			Name:        ht.Name,
			Type:        ht.Type,
			Description: ht.Description,
			Group:       ht.Group,
			Enabled:     ht.Enabled,
			DependsOn:   ht.DependsOn,
			Reports:     ht.Reports,
		}
		if task.Inputs, err = stringList(ht.Inputs, "task "+ht.Name+" inputs"); err != nil {
			return nil, err
		}
		if task.Outputs, err = stringList(ht.Outputs, "task "+ht.Name+" outputs"); err != nil {
			return nil, err
		}
		if task.Properties, err = objectAttr(ht.Properties, "task "+ht.Name+" properties"); err != nil {
			return nil, err
		}
		p.Tasks = append(p.Tasks, task)
	}

	return p, nil
}

// exprToNative evaluates a static expression. A missing attribute
// evaluates to null and yields nil.
func exprToNative(expr hcl.Expression) (any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	return ctyToNative(val)
}

func objectAttr(expr hcl.Expression, what string) (map[string]any, error) {
	native, err := exprToNative(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if native == nil {
		return nil, nil
	}
	m, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected an object, got %T", what, native)
	}
	return m, nil
}

// stringList keeps the difference between a missing list (nil) and an
// empty one.
func stringList(expr hcl.Expression, what string) ([]string, error) {
	native, err := exprToNative(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if native == nil {
		return nil, nil
	}
	items, ok := native.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list of strings, got %T", what, native)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected a string, got %T", what, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// ctyToNative converts a cty value to plain Go values. Null and unknown
// values become nil and whole numbers become int.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return wholeInt64(i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", key.AsString(), err)
			}
			m[key.AsString()] = native
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
