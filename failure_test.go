package buildassert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/buildassert/buildtest"
)

func TestFailure_UnwrapsToSentinel(t *testing.T) {
	err := error(&Failure{Message: "boom"})

	assert.ErrorIs(t, err, ErrAssertionFailed)
	assert.NotErrorIs(t, err, ErrUsage)
	assert.Equal(t, "boom", err.Error())
}

func TestUsageError_UnwrapsToSentinel(t *testing.T) {
	err := error(&UsageError{Message: "misuse"})

	assert.ErrorIs(t, err, ErrUsage)
	assert.NotErrorIs(t, err, ErrAssertionFailed)

	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	assert.Equal(t, "misuse", usage.Message)
}

func TestIsNotNull(t *testing.T) {
	var nilProject *struct{ name string }

	msg := expectFailure(t, func(rt TestingT) {
		ThatObject(rt, nilProject).IsNotNull()
	})
	assert.Equal(t, "Expecting actual not to be nil", msg)

	expectPass(t, func(rt TestingT) {
		ThatObject(rt, &struct{}{}).IsNotNull()
	})
}

func TestAs_PrefixesFailures(t *testing.T) {
	msg := expectFailure(t, func(rt TestingT) {
		ThatProvider[string](rt, absent[string]()).As("version of %s", "app").IsPresent()
	})
	assert.Equal(t, "[version of app] Expecting 'counting()' to contain a value, but it was empty", msg)
}

// returningT is a TestingT whose FailNow returns, which *testing.T never
// does.
type returningT struct {
	messages []string
}

func (r *returningT) Errorf(format string, args ...any) { r.messages = append(r.messages, format) }
func (r *returningT) FailNow() {}

func TestFailWithMessage_PanicsWhenFailNowReturns(t *testing.T) {
	rt := &returningT{}

	defer func() {
		failure, ok := recover().(*Failure)
		require.True(t, ok)
		assert.Equal(t, "Expected file collection to be empty", failure.Message)
		assert.Len(t, rt.messages, 1)
	}()

	ThatFiles(rt, buildtest.Files("a")).IsEmpty()
	t.Fatal("unreachable")
}

func TestNewAssert_RequiresTestingT(t *testing.T) {
	assert.PanicsWithError(t, "a TestingT is required to create an assertion", func() {
		ThatString(nil, "x")
	})
}
