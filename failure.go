package buildassert

import (
	"errors"
	"fmt"
)

// TestingT is the subset of *testing.T used to report failures. FailNow
// must not return; *testing.T satisfies this by calling runtime.Goexit.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

// ErrAssertionFailed is the sentinel wrapped by every *Failure.
var ErrAssertionFailed = errors.New("assertion failed")

// ErrUsage is the sentinel wrapped by every *UsageError.
var ErrUsage = errors.New("invalid assertion usage")

// Failure describes an unmet expectation.
type Failure struct {
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f == nil {
		return ErrAssertionFailed.Error()
	}
	return f.Message
}

// Unwrap returns ErrAssertionFailed so errors.Is can classify failures.
func (f *Failure) Unwrap() error {
	return ErrAssertionFailed
}

// UsageError describes a misuse of the assertion API, such as a nil
// expected value. It is raised with panic.
type UsageError struct {
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e == nil {
		return ErrUsage.Error()
	}
	return e.Message
}

// Unwrap returns ErrUsage so errors.Is can classify usage errors.
func (e *UsageError) Unwrap() error {
	return ErrUsage
}

func usagef(format string, args ...any) {
	panic(&UsageError{Message: fmt.Sprintf(format, args...)})
}

// reporter is the single failure-reporting primitive shared by all
// assertions created for one subject.
type reporter struct {
	t           TestingT
	helper      func()
	description string
}

func newReporter(t TestingT) *reporter {
	if t == nil {
		usagef("a TestingT is required to create an assertion")
	}

	r := &reporter{t: t, helper: func() {}}
	if h, ok := t.(tHelper); ok {
		r.helper = h.Helper
	}
	return r
}

// failWithMessage reports a failure and stops the test. It never returns.
func (r *reporter) failWithMessage(format string, args ...any) {
	r.helper()

	msg := fmt.Sprintf(format, args...)
	if r.description != "" {
		msg = "[" + r.description + "] " + msg
	}

	failure := &Failure{Message: msg}
	r.t.Errorf("%s", failure.Message)
	r.t.FailNow()

	// FailNow returned, which a conforming TestingT never does.
	panic(failure)
}
