package engine

import (
	"fmt"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gcustom"
)

// Contain checks for a substring when both sides are strings and for a collection
// element otherwise.
func Contain(expected any) Constraint {
	return &containConstraint{expected: expected}
}

type containConstraint struct {
	expected any
}

func (c *containConstraint) pick(actual any) Constraint {
	if s, ok := c.expected.(string); ok {
		switch actual.(type) {
		case string, fmt.Stringer:
			return gomega.ContainSubstring(s)
		}
	}
	return gomega.ContainElement(c.expected)
}

func (c *containConstraint) Match(actual any) (bool, error) {
	return c.pick(actual).Match(actual)
}

func (c *containConstraint) FailureMessage(actual any) string {
	return c.pick(actual).FailureMessage(actual)
}

func (c *containConstraint) NegatedFailureMessage(actual any) string {
	return c.pick(actual).NegatedFailureMessage(actual)
}

// InRange succeeds when the actual value lies within [from, to]. Any numeric types
// gomega.BeNumerically can compare are accepted.
func InRange(from, to any) Constraint {
	lower := gomega.BeNumerically(">=", from)
	upper := gomega.BeNumerically("<=", to)

	return gcustom.MakeMatcher(func(actual any) (bool, error) {
		ok, err := lower.Match(actual)
		if err != nil || !ok {
			return false, err
		}
		return upper.Match(actual)
	}, Literal(fmt.Sprintf("be in range [%v, %v]", from, to)))
}
