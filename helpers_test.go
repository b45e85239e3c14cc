package buildassert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingT collects reported failures. FailNow panics with stopped so
// that expectFailure can recover, much like a harness that does not run
// inside go test.
type recordingT struct {
	messages []string
	failed   bool
}

type stopped struct{}

func (r *recordingT) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
	panic(stopped{})
}

func (r *recordingT) run(fn func(TestingT)) (usage *UsageError) {
	defer func() {
		switch v := recover().(type) {
		case nil, stopped:
		case *UsageError:
			usage = v
		default:
			panic(v)
		}
	}()
	fn(r)
	return nil
}

// expectFailure runs fn and returns the single failure message it reported.
func expectFailure(t *testing.T, fn func(TestingT)) string {
	t.Helper()

	rt := &recordingT{}
	usage := rt.run(fn)
	require.Nil(t, usage, "unexpected usage error")
	require.True(t, rt.failed, "expected an assertion failure")
	require.Len(t, rt.messages, 1)
	return rt.messages[0]
}

// expectPass runs fn and requires that nothing was reported.
func expectPass(t *testing.T, fn func(TestingT)) {
	t.Helper()

	rt := &recordingT{}
	usage := rt.run(fn)
	require.Nil(t, usage, "unexpected usage error")
	require.False(t, rt.failed, "unexpected failure: %v", rt.messages)
}

// expectUsage runs fn and returns the usage error it raised.
func expectUsage(t *testing.T, fn func(TestingT)) *UsageError {
	t.Helper()

	rt := &recordingT{}
	usage := rt.run(fn)
	require.NotNil(t, usage, "expected a usage error")
	require.False(t, rt.failed, "usage errors must not report failures")
	return usage
}

// countingProvider counts realizations.
type countingProvider[V any] struct {
	value   V
	present bool
	calls   int
}

func (p *countingProvider[V]) Value() (V, bool) {
	p.calls++
	if !p.present {
		var zero V
		return zero, false
	}
	return p.value, true
}

func (p *countingProvider[V]) String() string {
	return fmt.Sprintf("counting(%v)", p.value)
}

func present[V any](v V) *countingProvider[V] {
	return &countingProvider[V]{value: v, present: true}
}

func absent[V any]() *countingProvider[V] {
	return &countingProvider[V]{}
}
