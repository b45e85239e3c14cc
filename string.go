package buildassert

import (
	"regexp"
	"strings"
)

// StringAssert verifies a string.
type StringAssert struct {
	*Assert[*StringAssert, string]
}

// ThatString returns an assertion over s.
func ThatString(t TestingT, s string) *StringAssert {
	a := &StringAssert{}
	a.Assert = newAssert(t, s, a)
	return a
}

func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	a.helper()
	if a.actual != expected {
		a.failWithMessage("Expecting '%s' to be equal to '%s'", a.actual, expected)
	}
	return a
}

func (a *StringAssert) IsNotEqualTo(other string) *StringAssert {
	a.helper()
	if a.actual == other {
		a.failWithMessage("Expecting '%s' not to be equal to '%s'", a.actual, other)
	}
	return a
}

func (a *StringAssert) IsEmpty() *StringAssert {
	a.helper()
	if a.actual != "" {
		a.failWithMessage("Expecting '%s' to be empty", a.actual)
	}
	return a
}

func (a *StringAssert) IsNotEmpty() *StringAssert {
	a.helper()
	if a.actual == "" {
		a.failWithMessage("Expecting actual not to be empty")
	}
	return a
}

func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	a.helper()
	if !strings.HasPrefix(a.actual, prefix) {
		a.failWithMessage("Expecting '%s' to start with '%s'", a.actual, prefix)
	}
	return a
}

func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	a.helper()
	if !strings.HasSuffix(a.actual, suffix) {
		a.failWithMessage("Expecting '%s' to end with '%s'", a.actual, suffix)
	}
	return a
}

func (a *StringAssert) Contains(substring string) *StringAssert {
	a.helper()
	if !strings.Contains(a.actual, substring) {
		a.failWithMessage("Expecting '%s' to contain '%s'", a.actual, substring)
	}
	return a
}

// Matches verifies that the string matches the regular expression pattern.
// An invalid pattern is a usage error.
func (a *StringAssert) Matches(pattern string) *StringAssert {
	a.helper()

	re, err := regexp.Compile(pattern)
	if err != nil {
		usagef("The pattern '%s' is not a valid regular expression: %v", pattern, err)
	}
	if !re.MatchString(a.actual) {
		a.failWithMessage("Expecting '%s' to match pattern '%s'", a.actual, pattern)
	}
	return a
}
