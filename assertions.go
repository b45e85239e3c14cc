package buildassert

import "github.com/roach88/buildassert/host"

// That returns the most specific assertion for the runtime type of subject.
// Callers type-assert the result, for example
//
//	buildassert.That(t, project).(*buildassert.ProjectAssert).HasTask("build")
//
// The typed That* constructors are preferred when the static type is known.
// Only untyped providers are recognized: a host.Provider[string] or any
// other typed provider falls through to ThatObject. Pass typed providers to
// ThatProvider or view them through host.Erase first.
func That(t TestingT, subject any) any {
	// Cases are ordered from most to least specific: a configuration is
	// also a file collection, a directory is also a regular file, and a
	// directory property is also a provider.
	switch s := subject.(type) {
	case host.Project:
		return ThatProject(t, s)
	case host.Task:
		return ThatTask(t, s)
	case host.Configuration:
		return ThatConfiguration(t, s)
	case host.DirectoryProperty:
		return ThatDirectoryProperty(t, s)
	case host.RegularFileProperty:
		return ThatRegularFileProperty(t, s)
	case host.Provider[any]:
		return ThatProvider(t, s)
	case host.FileCollection:
		return ThatFiles(t, s)
	case host.Directory:
		return ThatDirectory(t, s)
	case host.RegularFile:
		return ThatRegularFile(t, s)
	case host.File:
		return ThatFile(t, s)
	case string:
		return ThatString(t, s)
	default:
		return ThatObject(t, subject)
	}
}
