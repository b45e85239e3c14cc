package buildassert

// Condition is a described predicate used by HasValueMatching and Is.
type Condition[V any] struct {
	description string
	matches     func(V) bool
}

// NewCondition returns a condition that holds when matches returns true.
func NewCondition[V any](matches func(V) bool, description string) Condition[V] {
	return Condition[V]{description: description, matches: matches}
}

// Description returns the text shown when the condition does not hold.
func (c Condition[V]) Description() string {
	return c.description
}

// Matches evaluates the condition against value.
func (c Condition[V]) Matches(value V) bool {
	return c.matches(value)
}

func (c Condition[V]) valid() bool {
	return c.matches != nil
}
