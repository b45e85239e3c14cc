package buildassert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

func TestProvider_ContainsValue(t *testing.T) {
	property := buildtest.Fixed("value1")

	expectPass(t, func(rt TestingT) {
		ThatProvider[string](rt, property).Contains("value1")
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, property).Contains("value2")
	})
	assert.Equal(t, "Expecting provider to contain 'value2' but was 'value1'", msg)
}

func TestProvider_ContainsOnEmpty(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Empty[string]()).Contains("value1")
	})
	assert.Equal(t, "Expecting provider to contain 'value1' but was empty", msg)
}

func TestProvider_HasValueIsContains(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[int](rt, buildtest.Fixed(1)).HasValue(2)
	})
	assert.Equal(t, "Expecting provider to contain '2' but was '1'", msg)
}

func TestProvider_PresentAndEmpty(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Empty[string]()).IsPresent()
	})
	assert.Equal(t, "Expecting 'property(string, undefined)' to contain a value, but it was empty", msg)

	expectPass(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Empty[string]()).IsEmpty()
	})

	msg = expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Fixed("value1")).IsEmpty()
	})
	assert.Equal(t, "Expecting provider to be empty but contains 'property(string, fixed(string, value1))'", msg)
}

func TestProvider_PresenceIsTwoState(t *testing.T) {
	providers := map[string]host.Provider[string]{
		"fixed":      buildtest.Fixed("a"),
		"empty":      buildtest.Empty[string](),
		"convention": buildtest.NewProperty[string]().Convention("c"),
		"func":       buildtest.Provide(func() string { return "f" }),
		"absentFunc": buildtest.ProviderFunc[string](func() (string, bool) { return "", false }),
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			isPresent := (&recordingT{}).passes(func(rt TestingT) { ThatProvider(rt, p).IsPresent() })
			isEmpty := (&recordingT{}).passes(func(rt TestingT) { ThatProvider(rt, p).IsEmpty() })
			assert.NotEqual(t, isPresent, isEmpty)
		})
	}
}

func (r *recordingT) passes(fn func(TestingT)) bool {
	if usage := r.run(fn); usage != nil {
		panic(usage)
	}
	return !r.failed
}

func TestProvider_NilProvider(t *testing.T) {
	var p *buildtest.Property[string]

	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, p).IsPresent()
	})
	assert.Equal(t, "Expecting actual not to be nil", msg)
}

func TestProvider_NilExpectedIsUsageError(t *testing.T) {
	usage := expectUsage(t, func(rt TestingT) {
		ThatProvider[*int](rt, buildtest.Fixed(new(int))).Contains(nil)
	})
	assert.Equal(t, "The expected value must not be <nil>.", usage.Message)
	assert.ErrorIs(t, usage, ErrUsage)
}

func TestProvider_ContainsSame(t *testing.T) {
	value := &struct{ name string }{name: "a"}
	equal := &struct{ name string }{name: "a"}
	p := buildtest.Fixed(value)

	expectPass(t, func(rt TestingT) {
		ThatProvider[*struct{ name string }](rt, p).ContainsSame(value).Contains(equal)
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[*struct{ name string }](rt, p).ContainsSame(equal)
	})
	assert.Equal(t, "Expecting provider to contain value identical to '&{a}'", msg)
}

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestProvider_ContainsInstanceOf(t *testing.T) {
	p := buildtest.Fixed[greeter](english{})

	expectPass(t, func(rt TestingT) {
		ThatProvider[greeter](rt, p).
			ContainsInstanceOf(reflect.TypeFor[english]()).
			ContainsInstanceOf(reflect.TypeFor[greeter]())
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[greeter](rt, p).ContainsInstanceOf(reflect.TypeFor[string]())
	})
	assert.Equal(t,
		"Expecting 'Property[buildassert.greeter]' to contain an instance of 'string' but contained an instance of 'github.com/roach88/buildassert.english'",
		msg)

	usage := expectUsage(t, func(rt TestingT) {
		ThatProvider[greeter](rt, p).ContainsInstanceOf(nil)
	})
	assert.Equal(t, "The expected type must not be <nil>.", usage.Message)
}

func TestProvider_HasValueSatisfying(t *testing.T) {
	p := present("v")
	calls := 0

	expectPass(t, func(rt TestingT) {
		ThatProvider[string](rt, p).HasValueSatisfying(func(v string) {
			calls++
			assert.Equal(t, "v", v)
		})
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, p.calls)

	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, absent[string]()).HasValueSatisfying(func(string) {
			calls++
		})
	})
	assert.Equal(t, "Expecting 'counting()' to contain a value, but it was empty", msg)
	assert.Equal(t, 1, calls, "requirement must not run when absent")
}

func TestProvider_HasValueMatching(t *testing.T) {
	long := NewCondition(func(s string) bool { return len(s) > 3 }, "longer than 3")

	expectPass(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Fixed("value")).HasValueMatching(long)
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Fixed("v")).HasValueMatching(long)
	})
	assert.Equal(t, "Expecting actual:\n  'v'\nto match 'longer than 3'", msg)

	usage := expectUsage(t, func(rt TestingT) {
		ThatProvider[string](rt, buildtest.Fixed("v")).HasValueMatching(Condition[string]{})
	})
	assert.Equal(t, "The condition must not be <nil>.", usage.Message)
}

func TestProvider_RealizesOncePerCheckWithoutCaching(t *testing.T) {
	p := present("v")

	expectPass(t, func(rt TestingT) {
		a := ThatProvider[string](rt, p)
		a.IsPresent()
		require.Equal(t, 1, p.calls)
		a.Contains("v")
		require.Equal(t, 2, p.calls)
		a.Get()
		require.Equal(t, 3, p.calls)
	})
}

func TestProvider_ReadsProducerOnEveryCheck(t *testing.T) {
	property := buildtest.Fixed("before")
	a := ThatProvider[string](t, property)

	a.Contains("before")
	property.Set("after")
	a.Contains("after")
	property.Unset()
	a.IsEmpty()
}

func TestProvider_Get(t *testing.T) {
	value := &struct{}{}

	expectPass(t, func(rt TestingT) {
		got := ThatProvider[*struct{}](rt, buildtest.Fixed(value)).Get()
		assert.Same(t, value, got.Actual())
	})
}

func TestProvider_ChainsReturnLeafType(t *testing.T) {
	a := ThatProvider[string](t, buildtest.Fixed("v"))

	var chained *ProviderAssert[string] = a.IsNotNull().IsPresent().Contains("v").As("described")
	assert.Same(t, a, chained)
}

func TestProvider_ProducerPanicPropagates(t *testing.T) {
	p := buildtest.ProviderFunc[string](func() (string, bool) { panic(fmt.Errorf("cannot compute")) })

	assert.PanicsWithError(t, "cannot compute", func() {
		ThatProvider[string](t, p).IsPresent()
	})
}

func TestDirectoryProperty(t *testing.T) {
	dir := t.TempDir()
	property := buildtest.NewDirectoryProperty()
	property.Set(buildtest.NewDirectory(dir))

	expectPass(t, func(rt TestingT) {
		ThatDirectoryProperty(rt, property).IsPresent().GetFile().IsDirectory()
		ThatDirectoryProperty(rt, property).GetString().IsEqualTo(dir)
	})

	msg := expectFailure(t, func(rt TestingT) {
		ThatDirectoryProperty(rt, buildtest.NewDirectoryProperty()).GetDirectory()
	})
	assert.Equal(t, "Expecting 'property(host.Directory, undefined)' to contain a value, but it was empty", msg)
}

func TestRegularFileProperty(t *testing.T) {
	property := buildtest.NewRegularFileProperty().Set(buildtest.NewRegularFile("build/libs/app.jar"))

	expectPass(t, func(rt TestingT) {
		ThatRegularFileProperty(rt, property).
			IsPresent().
			GetFile().HasName("app.jar").HasExtension("jar")
		ThatRegularFileProperty(rt, property).GetString().EndsWith("app.jar")
	})
}
