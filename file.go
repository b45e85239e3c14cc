package buildassert

import (
	"strings"

	"github.com/roach88/buildassert/host"
)

// FileAssert verifies a file location.
type FileAssert struct {
	*Assert[*FileAssert, host.File]
}

// ThatFile returns an assertion over file.
func ThatFile(t TestingT, file host.File) *FileAssert {
	a := &FileAssert{}
	a.Assert = newAssert(t, file, a)
	return a
}

// Exists verifies that something exists at the location.
func (a *FileAssert) Exists() *FileAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.Exists() {
		a.failWithMessage("Expecting file '%s' to exist", a.actual)
	}
	return a
}

// DoesNotExist verifies that nothing exists at the location.
func (a *FileAssert) DoesNotExist() *FileAssert {
	a.helper()
	a.IsNotNull()

	if a.actual.Exists() {
		a.failWithMessage("Expecting file '%s' not to exist", a.actual)
	}
	return a
}

// IsFile verifies that the location is an existing regular file.
func (a *FileAssert) IsFile() *FileAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.IsRegular() {
		a.failWithMessage("Expecting path '%s' to be an existing file", a.actual)
	}
	return a
}

// IsDirectory verifies that the location is an existing directory.
func (a *FileAssert) IsDirectory() *FileAssert {
	a.helper()
	a.IsNotNull()

	if !a.actual.IsDir() {
		a.failWithMessage("Expecting path '%s' to be an existing directory", a.actual)
	}
	return a
}

// HasName verifies the last element of the path.
func (a *FileAssert) HasName(name string) *FileAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Name(); actual != name {
		a.failWithMessage("Expecting file '%s' to have name '%s' but had '%s'", a.actual, name, actual)
	}
	return a
}

// HasExtension verifies the extension of the file name, without the dot.
func (a *FileAssert) HasExtension(extension string) *FileAssert {
	a.helper()
	a.IsNotNull()

	extension = strings.TrimPrefix(extension, ".")
	if actual := a.actual.Ext(); actual != extension {
		a.failWithMessage("Expecting file '%s' to have extension '%s' but had '%s'", a.actual, extension, actual)
	}
	return a
}

// HasPath verifies the path of the location.
func (a *FileAssert) HasPath(path string) *FileAssert {
	a.helper()
	a.IsNotNull()

	if a.actual.Path() != path {
		a.failWithMessage("Expecting file '%s' to have path '%s'", a.actual, path)
	}
	return a
}

// HasParent verifies the directory containing the location.
func (a *FileAssert) HasParent(parent host.File) *FileAssert {
	a.helper()
	a.IsNotNull()

	if actual := a.actual.Parent(); actual != parent {
		a.failWithMessage("Expecting file '%s' to have parent '%s' but had '%s'", a.actual, parent, actual)
	}
	return a
}

// IsEqualTo verifies that the location equals expected.
func (a *FileAssert) IsEqualTo(expected host.File) *FileAssert {
	a.helper()
	a.IsNotNull()

	if a.actual != expected {
		a.failWithMessage("Expecting file '%s' to be equal to '%s'", a.actual, expected)
	}
	return a
}

// AsString returns an assertion over the path of the location.
func (a *FileAssert) AsString() *StringAssert {
	a.helper()
	return ThatString(a.t, a.actual.Path())
}

func (a *FileAssert) narrowSubject() (*reporter, any) {
	a.helper()
	return a.reporter, a.actual
}
