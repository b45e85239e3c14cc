package fixture

import (
	"encoding/json"
	"math"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr string
	}{
		{"valid", Project{Name: "app"}, ""},
		{"missing name", Project{}, "project name is required"},
		{"unnamed configuration", Project{Name: "app", Configurations: []Configuration{{}}}, "configurations[0]: name is required"},
		{"duplicate configuration", Project{Name: "app", Configurations: []Configuration{{Name: "api"}, {Name: "api"}}}, `duplicate configuration "api"`},
		{"unnamed task", Project{Name: "app", Tasks: []Task{{}}}, "tasks[0]: name is required"},
		{"reports without reporting type", Project{Name: "app", Tasks: []Task{{Name: "test", Reports: map[string]string{"html": "out"}}}}, `reports require type "reporting"`},
		{"provider shadows property", Project{
			Name:       "app",
			Properties: map[string]any{"key": 1},
			Providers:  map[string]Provider{"key": {}},
		}, `"key" is also declared as a property`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"int64", int64(3), 3},
		{"uint8", uint8(3), 3},
		{"whole float", float64(4), 4},
		{"fraction", 2.5, 2.5},
		{"json integer", json.Number("12"), 12},
		{"json fraction", json.Number("1.25"), 1.25},
		{"big int", big.NewInt(9), 9},
		{"big float", big.NewFloat(1.5), 1.5},
		{"huge uint", uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"string", "x", "x"},
		{"nested", map[string]any{"a": []any{int64(1), map[any]any{2: 3.0}}}, map[string]any{"a": []any{1, map[string]any{"2": 3}}}},
		{"strings", []string{"a", "b"}, []any{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestBuild_ResolvesPaths(t *testing.T) {
	p := Project{
		Name:     "lib",
		Dir:      "lib",
		BuildDir: "out",
		Tasks:    []Task{{Name: "jar", Outputs: []string{"out/lib.jar"}}},
	}

	project := p.Build("/work")

	assert.Equal(t, filepath.Join("/work", "lib"), project.ProjectDir().Path())
	dir, ok := project.BuildDirectory().Value()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/work", "lib", "out"), dir.AsFile().Path())

	task, ok := project.Tasks().FindByName("jar")
	require.True(t, ok)
	assert.False(t, task.Inputs().HasInputs())
	assert.True(t, task.Outputs().HasOutput())
	assert.Len(t, task.Outputs().Files().Files(), 1)
	assert.Equal(t, filepath.Join("/work", "lib", "out", "lib.jar"), task.Outputs().Files().Files()[0].Path())
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "base", resolve("base", ""))
	assert.Equal(t, "/abs/x", resolve("base", "/abs/x"))
	assert.Equal(t, filepath.Join("base", "x"), resolve("base", "x"))
	assert.Equal(t, "x", resolve("", "x"))
}
