package checks

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/buildassert/internal/report"
)

// Canonical returns the canonical JSON encoding of result.
func Canonical(result *Result) ([]byte, error) {
	return report.MarshalCanonical(result.toCanonicalMap())
}

// Hash returns the report hash of result.
func Hash(result *Result) (string, error) {
	return report.Hash(result.toCanonicalMap())
}

// AssertGolden compares the canonical JSON of result against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/checks -update
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := Canonical(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
