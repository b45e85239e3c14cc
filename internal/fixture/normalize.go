package fixture

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"slices"
)

// Normalize folds the numeric and collection types the decoders produce
// into one shape: whole numbers become int, other numbers float64, maps
// map[string]any and sequences []any.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return wholeInt64(x)
	case uint:
		return wholeUint64(uint64(x))
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return wholeUint64(uint64(x))
	case uint64:
		return wholeUint64(x)
	case float32:
		return wholeFloat(float64(x))
	case float64:
		return wholeFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return wholeInt64(i)
		}
		if f, err := x.Float64(); err == nil {
			return wholeFloat(f)
		}
		return x.String()
	case *big.Int:
		if x.IsInt64() {
			return wholeInt64(x.Int64())
		}
		return x.String()
	case *big.Float:
		if x.IsInt() {
			if i, acc := x.Int64(); acc == big.Exact {
				return wholeInt64(i)
			}
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	default:
		return v
	}
}

func wholeInt64(i int64) any {
	if i >= math.MinInt && i <= math.MaxInt {
		return int(i)
	}
	return i
}

func wholeUint64(u uint64) any {
	if u <= math.MaxInt {
		return int(u)
	}
	return u
}

func wholeFloat(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && f >= math.MinInt64 && f < math.MaxInt64 {
		return wholeInt64(int64(f))
	}
	return f
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
