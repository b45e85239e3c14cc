// Package buildtest is an in-memory implementation of the host build model
// for use in tests and fixtures.
//
// Everything here is a plain data holder: providers are closures or stored
// values, task graphs are lists of descriptors and nothing is ever
// scheduled or resolved.
package buildtest
