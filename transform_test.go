package buildassert

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

func TestMap_PresentValue(t *testing.T) {
	p := present("value1")

	expectPass(t, func(rt TestingT) {
		Map(ThatProvider[string](rt, p), strings.ToUpper).Contains("VALUE1")
		Map(ThatProvider[string](rt, p), func(s string) int { return len(s) }).Contains(6)
	})
}

func TestMap_AbsentSourceIsEmptyWhateverTheTransform(t *testing.T) {
	transforms := map[string]func(string) string{
		"identity": func(s string) string { return s },
		"constant": func(string) string { return "x" },
		"panics":   func(string) string { panic("must not be called") },
	}

	for name, f := range transforms {
		t.Run(name, func(t *testing.T) {
			expectPass(t, func(rt TestingT) {
				Map(ThatProvider[string](rt, absent[string]()), f).IsEmpty()
			})
		})
	}
}

func TestMap_NilResultIsAbsent(t *testing.T) {
	expectPass(t, func(rt TestingT) {
		Map(ThatProvider[string](rt, present("v")), func(string) *int { return nil }).IsEmpty()
	})
}

func TestMap_DoesNotRealizeUntilQueried(t *testing.T) {
	p := present("v")
	calls := 0

	expectPass(t, func(rt TestingT) {
		mapped := Map(ThatProvider[string](rt, p), func(s string) string {
			calls++
			return s + s
		})
		assert.Zero(t, p.calls)
		assert.Zero(t, calls)

		mapped.Contains("vv")
		assert.Equal(t, 1, p.calls)
		assert.Equal(t, 1, calls)
	})
}

func TestMap_Descriptor(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		Map(ThatProvider[string](rt, buildtest.Empty[string]()), strings.ToUpper).IsPresent()
	})
	assert.Equal(t, "Expecting 'map(property(string, undefined))' to contain a value, but it was empty", msg)
}

func TestMap_Composes(t *testing.T) {
	f := strings.TrimSpace
	g := strconv.Quote

	expectPass(t, func(rt TestingT) {
		src := ThatProvider[string](rt, present(" v "))
		Map(Map(src, f), g).Contains(g(f(" v ")))
	})
}

func TestMap_NilTransformIsUsageError(t *testing.T) {
	usage := expectUsage(t, func(rt TestingT) {
		Map[string, string](ThatProvider[string](rt, present("v")), nil)
	})
	assert.Equal(t, "The transformation must not be <nil>.", usage.Message)
}

func TestMap_NilProviderFails(t *testing.T) {
	var p *buildtest.Property[string]

	msg := expectFailure(t, func(rt TestingT) {
		Map(ThatProvider[string](rt, p), strings.ToUpper)
	})
	assert.Equal(t, "Expecting actual not to be nil", msg)
}

func TestFlatMap_TakesInnerState(t *testing.T) {
	inner := map[string]host.Provider[int]{
		"present": buildtest.Fixed(42),
		"absent":  buildtest.Empty[int](),
	}
	lookup := func(name string) host.Provider[int] { return inner[name] }

	expectPass(t, func(rt TestingT) {
		FlatMap(ThatProvider[string](rt, present("present")), lookup).Contains(42)
		FlatMap(ThatProvider[string](rt, present("absent")), lookup).IsEmpty()
		FlatMap(ThatProvider[string](rt, present("missing")), lookup).IsEmpty()
		FlatMap(ThatProvider[string](rt, absent[string]()), lookup).IsEmpty()
	})
}

func TestFlatMap_DoesNotRealizeUntilQueried(t *testing.T) {
	source := present("v")
	inner := present(7)
	calls := 0

	expectPass(t, func(rt TestingT) {
		flat := FlatMap(ThatProvider[string](rt, source), func(string) host.Provider[int] {
			calls++
			return inner
		})
		assert.Zero(t, source.calls)
		assert.Zero(t, calls)
		assert.Zero(t, inner.calls)

		flat.Contains(7)
		assert.Equal(t, 1, source.calls)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, inner.calls)
	})
}

func TestFlatMap_Descriptor(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		FlatMap(ThatProvider[string](rt, buildtest.Empty[string]()), func(string) host.Provider[string] {
			return buildtest.Fixed("x")
		}).IsPresent()
	})
	assert.Equal(t, "Expecting 'flatMap(property(string, undefined))' to contain a value, but it was empty", msg)
}

func TestMap_OnDirectoryProperty(t *testing.T) {
	property := buildtest.NewDirectoryProperty().Set(buildtest.NewDirectory("/work/app/build"))

	expectPass(t, func(rt TestingT) {
		Map(ThatDirectoryProperty(rt, property), func(d host.Directory) string {
			return d.AsFile().Name()
		}).Contains("build")
	})
}
