// Package checks runs declarative check scenarios against project
// fixtures.
//
// A scenario names a fixture and lists checks. Each check picks a subject
// in the loaded project and an assertion to run on it:
//
//	name: app-layout
//	description: The sample app is a Java application
//	fixture: app.yaml
//	checks:
//	  - subject: project
//	    assert: has_plugin
//	    names: [java, application]
//	  - subject: task compileJava
//	    assert: depends_on
//	    values: [processResources]
//	  - subject: task compileJava inputs
//	    assert: has_size
//	    count: 1
//	  - subject: property signingKey
//	    assert: is_present
//	    expect_failure: "Expecting 'property(interface {}, undefined)' to contain a value, but it was empty"
//
// Checks run through the buildassert library with a recording TestingT, so
// a failing check carries the exact message a Go test would print. A check
// with expect_failure passes only when the assertion fails with exactly
// that message.
package checks
