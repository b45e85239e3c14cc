package buildassert

import "github.com/roach88/buildassert/host"

// RegularFileAssert verifies a regular file.
type RegularFileAssert struct {
	*Assert[*RegularFileAssert, host.RegularFile]
}

// ThatRegularFile returns an assertion over file.
func ThatRegularFile(t TestingT, file host.RegularFile) *RegularFileAssert {
	a := &RegularFileAssert{}
	a.Assert = newAssert(t, file, a)
	return a
}

// AsFile returns an assertion over the location of the file.
func (a *RegularFileAssert) AsFile() *FileAssert {
	a.helper()
	a.IsNotNull()
	return ThatFile(a.t, a.actual.AsFile())
}

// AsString returns an assertion over the path of the file.
func (a *RegularFileAssert) AsString() *StringAssert {
	a.helper()
	a.IsNotNull()
	return ThatString(a.t, a.actual.AsFile().Path())
}
