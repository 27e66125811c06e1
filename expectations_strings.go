package expect

import (
	"github.com/onsi/gomega"

	"github.com/buildpacks/expect/does"
	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/has"
)

// Contains looks for a substring when expected is a string and for an equal item
// otherwise.
func Contains(expected any) engine.Constraint {
	if _, ok := expected.(string); ok {
		return does.Contain(expected)
	}
	return has.Some.EqualTo(expected)
}

// Deprecated: use Contains.
func ContainsSubstring(expected string) engine.Constraint {
	return gomega.ContainSubstring(expected)
}

// Deprecated: use Not.Contain.
func DoesNotContain(expected string) engine.Constraint {
	return does.Not.Contain(expected)
}

// Deprecated: use Not.EndWith.
func DoesNotEndWith(expected string) engine.Constraint {
	return does.Not.EndWith(expected)
}

// Deprecated: use Not.Match.
func DoesNotMatch(pattern string) engine.Constraint {
	return does.Not.Match(pattern)
}

// Deprecated: use Not.StartWith.
func DoesNotStartWith(expected string) engine.Constraint {
	return does.Not.StartWith(expected)
}

func EndsWith(expected string) engine.Constraint {
	return does.EndWith(expected)
}

func Matches(pattern string) engine.Constraint {
	return does.Match(pattern)
}

func StartsWith(expected string) engine.Constraint {
	return does.StartWith(expected)
}

// Map projects a field or zero-argument method out of every item of a slice, array or
// map:
//
//	names, err := expect.Map(buildpacks)
//	ids, err := names.Property("ID")
func Map(collection any) (*engine.ListMapper, error) {
	return engine.NewListMapper(collection)
}

// Deprecated: use Contains.
func StringContaining(expected string) engine.Constraint {
	return gomega.ContainSubstring(expected)
}

// Deprecated: use EndWith or EndsWith.
func StringEnding(expected string) engine.Constraint {
	return does.EndWith(expected)
}

// Deprecated: use Match or Matches.
func StringMatching(pattern string) engine.Constraint {
	return does.Match(pattern)
}

// Deprecated: use StartWith or StartsWith.
func StringStarting(expected string) engine.Constraint {
	return does.StartWith(expected)
}
