package buildassert

import (
	"slices"

	"github.com/roach88/buildassert/host"
)

// AbstractFileCollectionAssert holds the checks shared by assertions over
// file collections. Membership is set membership: order never matters.
type AbstractFileCollectionAssert[SELF any, FC host.FileCollection] struct {
	*Assert[SELF, FC]
}

func newAbstractFileCollectionAssert[SELF any, FC host.FileCollection](t TestingT, files FC, myself SELF) *AbstractFileCollectionAssert[SELF, FC] {
	return &AbstractFileCollectionAssert[SELF, FC]{Assert: newAssert(t, files, myself)}
}

// IsEmpty verifies that the collection has no files.
func (a *AbstractFileCollectionAssert[SELF, FC]) IsEmpty() SELF {
	a.helper()
	a.IsNotNull()

	if len(a.actual.Files()) != 0 {
		a.failWithMessage("Expected file collection to be empty")
	}
	return a.myself
}

// IsNotEmpty verifies that the collection has at least one file.
func (a *AbstractFileCollectionAssert[SELF, FC]) IsNotEmpty() SELF {
	a.helper()
	a.IsNotNull()

	if len(a.actual.Files()) == 0 {
		a.failWithMessage("Expected file collection to not be empty")
	}
	return a.myself
}

// Contains verifies that file is a member of the collection.
func (a *AbstractFileCollectionAssert[SELF, FC]) Contains(file host.File) SELF {
	a.helper()
	a.IsNotNull()

	if !slices.Contains(a.actual.Files(), file) {
		a.failWithMessage("Expected file collection to contain file '%s', but does not", file.Path())
	}
	return a.myself
}

// DoesNotContain verifies that file is not a member of the collection.
func (a *AbstractFileCollectionAssert[SELF, FC]) DoesNotContain(file host.File) SELF {
	a.helper()
	a.IsNotNull()

	if slices.Contains(a.actual.Files(), file) {
		a.failWithMessage("Expected file collection not to contain file '%s', but does", file.Path())
	}
	return a.myself
}

// HasSize verifies the number of files in the collection.
func (a *AbstractFileCollectionAssert[SELF, FC]) HasSize(size int) SELF {
	a.helper()
	a.IsNotNull()

	if n := len(a.actual.Files()); n != size {
		a.failWithMessage("Expected file collection to have %d files, but has %d", size, n)
	}
	return a.myself
}

// HasSingleFile verifies that the collection has exactly one file.
func (a *AbstractFileCollectionAssert[SELF, FC]) HasSingleFile() SELF {
	a.helper()
	a.IsNotNull()

	switch n := len(a.actual.Files()); {
	case n == 0:
		a.failWithMessage("Expected file collection to have a single file but is empty")
	case n > 1:
		a.failWithMessage("Expected file collection to have a single file, but has %d", n)
	}
	return a.myself
}

// AsFiles returns a set assertion over the files of the collection.
func (a *AbstractFileCollectionAssert[SELF, FC]) AsFiles() *SetAssert[host.File] {
	a.helper()
	a.IsNotNull()

	files := a.actual.Files()
	if files == nil {
		files = []host.File{}
	}
	return ThatSet(a.t, files)
}

// AsFile verifies that the collection has a single file and returns an
// assertion over it.
func (a *AbstractFileCollectionAssert[SELF, FC]) AsFile() *FileAssert {
	a.helper()
	a.HasSingleFile()
	return ThatFile(a.t, a.actual.Files()[0])
}

// FileCollectionAssert verifies a file collection.
type FileCollectionAssert struct {
	*AbstractFileCollectionAssert[*FileCollectionAssert, host.FileCollection]
}

// ThatFiles returns an assertion over files.
func ThatFiles(t TestingT, files host.FileCollection) *FileCollectionAssert {
	a := &FileCollectionAssert{}
	a.AbstractFileCollectionAssert = newAbstractFileCollectionAssert(t, files, a)
	return a
}
