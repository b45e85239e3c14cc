package checks

// Result is the outcome of running a scenario.
type Result struct {
	Scenario string        `json:"scenario"`
	Fixture  string        `json:"fixture"`
	Pass     bool          `json:"pass"`
	Checks   []CheckResult `json:"checks"`
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Index   int    `json:"index"`
	Subject string `json:"subject"`
	Assert  string `json:"assert"`
	Pass    bool   `json:"pass"`

	// Message is the failure message the library reported, if any.
	Message string `json:"message,omitempty"`

	// Expected is the check's expect_failure message.
	Expected string `json:"expected,omitempty"`

	// Error is set when the check itself was malformed at run time,
	// e.g. the library rejected a nil argument.
	Error string `json:"error,omitempty"`
}

// Passed returns the number of passing checks.
func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Pass {
			n++
		}
	}
	return n
}

// Failed returns the number of failing checks.
func (r *Result) Failed() int {
	return len(r.Checks) - r.Passed()
}

// toCanonicalMap converts the result to plain values for canonical JSON.
func (r *Result) toCanonicalMap() map[string]any {
	checks := make([]any, len(r.Checks))
	for i, c := range r.Checks {
		m := map[string]any{
			"index":   c.Index,
			"subject": c.Subject,
			"assert":  c.Assert,
			"pass":    c.Pass,
		}
		if c.Message != "" {
			m["message"] = c.Message
		}
		if c.Expected != "" {
			m["expected"] = c.Expected
		}
		if c.Error != "" {
			m["error"] = c.Error
		}
		checks[i] = m
	}

	return map[string]any{
		"scenario": r.Scenario,
		"fixture":  r.Fixture,
		"pass":     r.Pass,
		"checks":   checks,
	}
}
