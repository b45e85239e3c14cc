// Package buildassert provides fluent, chainable assertions for build-model
// subjects: lazily realized providers, file collections, projects, tasks,
// configurations, directories and regular files.
//
// Every assertion is created from a TestingT (usually *testing.T) and a
// subject, and every check either returns the assertion itself, so calls
// can be chained, or reports exactly one failure and stops the test:
//
//	buildassert.ThatProject(t, project).
//	    HasPlugin("java").
//	    HasTask("compileJava", "test").
//	    HasConfiguration("implementation")
//
//	buildassert.ThatTask(t, task).
//	    HasGroup("build").
//	    DependsOn("clean").
//	    OutputFiles().HasSingleFile()
//
// # Chaining
//
// Shared operations live on generic base types that are parameterized by
// the concrete assertion type (SELF). A leaf assertion embeds its base and
// passes itself as SELF, so IsNotNull, As and the provider and file
// collection checks all return the leaf type rather than the base.
//
// # Providers
//
// Provider assertions never realize a provider ahead of time. Map and
// FlatMap compose a new provider around the original one and return a new
// assertion over it; the composition only runs when that assertion is
// queried:
//
//	p := buildassert.ThatProvider(t, versionProperty)
//	buildassert.Map(p, strings.ToUpper).Contains("1.0-SNAPSHOT")
//
// # Narrowing
//
// Narrow turns an assertion over a realized value into a domain-specific
// assertion after checking the value's runtime type:
//
//	buildassert.Narrow(buildassert.ThatProvider(t, provider), buildassert.ConfigurationFactory).
//	    CanBeResolved()
//
// # Failures
//
// A failed check reports a *Failure through TestingT.Errorf followed by
// TestingT.FailNow. Misuse of the API itself, such as passing a nil
// expected value, panics with a *UsageError instead, since it indicates a
// defect in the test rather than an unmet expectation.
package buildassert
