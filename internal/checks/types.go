package checks

import (
	"fmt"
	"reflect"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

// types maps the type names a check may use to Go types. Fixture values
// decode to these shapes.
var types = map[string]reflect.Type{
	"bool":           reflect.TypeFor[bool](),
	"float":          reflect.TypeFor[float64](),
	"int":            reflect.TypeFor[int](),
	"list":           reflect.TypeFor[[]any](),
	"map":            reflect.TypeFor[map[string]any](),
	"string":         reflect.TypeFor[string](),
	"task":           reflect.TypeFor[host.Task](),
	"plain_task":     reflect.TypeFor[*buildtest.Task](),
	"reporting":      reflect.TypeFor[host.Reporting](),
	"reporting_task": reflect.TypeFor[*buildtest.ReportingTask](),
	"provider":       reflect.TypeFor[host.Provider[any]](),
}

func lookupType(name string) (reflect.Type, error) {
	typ, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (known: %s)", name, joinSorted(types))
	}
	return typ, nil
}
