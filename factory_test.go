package buildassert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/buildassert/buildtest"
	"github.com/roach88/buildassert/host"
)

func TestNarrow_ToConfiguration(t *testing.T) {
	configuration := buildtest.NewConfiguration("runtimeClasspath").AddFiles("libs/a.jar")
	p := buildtest.Fixed[any](configuration)

	expectPass(t, func(rt TestingT) {
		narrowed := Narrow(ThatProvider[any](rt, p), ConfigurationFactory)
		narrowed.HasName("runtimeClasspath").CanBeResolved().HasSingleFile()
		assert.Same(t, configuration, narrowed.Actual())
	})
}

func TestNarrow_KeepsSubjectIdentity(t *testing.T) {
	task := buildtest.NewTask("build")

	expectPass(t, func(rt TestingT) {
		narrowed := Narrow(ThatObject[any](rt, task), TaskFactory)
		assert.Same(t, task, narrowed.Actual())
	})
}

func TestNarrow_Mismatch(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		Narrow(ThatProvider[any](rt, buildtest.Fixed[any]("text")), TaskFactory)
	})
	assert.Equal(t,
		"Expecting 'text' to be an instance of 'github.com/roach88/buildassert/host.Task' but was an instance of 'string'",
		msg)
}

func TestNarrow_AbsentProvider(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		Narrow(ThatProvider[any](rt, buildtest.Empty[any]()), StringFactory)
	})
	assert.Equal(t, "Expecting 'property(interface {}, undefined)' to contain a value, but it was empty", msg)
}

func TestNarrow_NilObject(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		Narrow(ThatObject[host.Task](rt, nil), TaskFactory)
	})
	assert.Equal(t, "Expecting actual not to be nil", msg)
}

func TestNarrow_GenericFactories(t *testing.T) {
	expectPass(t, func(rt TestingT) {
		Narrow(ThatObject[any](rt, 7), ObjectFactory[int]()).IsEqualTo(7)
		Narrow(ThatObject[any](rt, []string{"b", "a"}), SetFactory[string]()).ContainsExactlyInAnyOrder("a", "b")
		Narrow(ThatObject[any](rt, "x"), StringFactory).IsEqualTo("x")
		Narrow(ThatObject[any](rt, host.File("a/b.txt")), FileFactory).HasName("b.txt")
	})
}

func TestNarrow_ConstructorReturningNilIsUsageError(t *testing.T) {
	broken := NewFactory(func(TestingT, string) *StringAssert { return nil })

	usage := expectUsage(t, func(rt TestingT) {
		Narrow(ThatObject[any](rt, "x"), broken)
	})
	assert.Equal(t, "The factory for 'string' accepted 'x' but built no assertion.", usage.Message)
}

func TestNarrow_ConstructorPanicIsUsageError(t *testing.T) {
	broken := NewFactory(func(TestingT, string) *StringAssert { panic("cast failed") })

	usage := expectUsage(t, func(rt TestingT) {
		Narrow(ThatObject[any](rt, "x"), broken)
	})
	assert.Equal(t, "The factory for 'string' failed to build an assertion for 'x': cast failed", usage.Message)
	assert.ErrorIs(t, usage, ErrUsage)
}

func TestNarrow_ConstructorUsageErrorPassesThrough(t *testing.T) {
	usage := expectUsage(t, func(rt TestingT) {
		Narrow(ThatObject[any](rt, "x"), NewFactory(func(TestingT, string) *StringAssert {
			return ThatString(nil, "x")
		}))
	})
	assert.Equal(t, "a TestingT is required to create an assertion", usage.Message)
}

func TestNarrow_ZeroFactoryIsUsageError(t *testing.T) {
	usage := expectUsage(t, func(rt TestingT) {
		Narrow(ThatObject[any](rt, "x"), Factory[string, *StringAssert]{})
	})
	assert.Equal(t, "The factory for 'string' has no constructor.", usage.Message)
}

func TestFactory_Type(t *testing.T) {
	assert.Equal(t, "host.Configuration", ConfigurationFactory.Type().String())
	assert.Equal(t, "[]int", SetFactory[int]().Type().String())
}
