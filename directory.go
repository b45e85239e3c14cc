package buildassert

import "github.com/roach88/buildassert/host"

// DirectoryAssert verifies a directory.
type DirectoryAssert struct {
	*Assert[*DirectoryAssert, host.Directory]
}

// ThatDirectory returns an assertion over directory.
func ThatDirectory(t TestingT, directory host.Directory) *DirectoryAssert {
	a := &DirectoryAssert{}
	a.Assert = newAssert(t, directory, a)
	return a
}

// AsFile returns an assertion over the location of the directory.
func (a *DirectoryAssert) AsFile() *FileAssert {
	a.helper()
	a.IsNotNull()
	return ThatFile(a.t, a.actual.AsFile())
}

// AsString returns an assertion over the path of the directory.
func (a *DirectoryAssert) AsString() *StringAssert {
	a.helper()
	a.IsNotNull()
	return ThatString(a.t, a.actual.AsFile().Path())
}

// Files returns an assertion over the files beneath the directory.
func (a *DirectoryAssert) Files() *FileCollectionAssert {
	a.helper()
	a.IsNotNull()
	return ThatFiles(a.t, a.actual.AsFileTree())
}
