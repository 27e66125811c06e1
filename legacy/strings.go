package legacy

import (
	"github.com/onsi/gomega"

	"github.com/buildpacks/expect/does"
	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/has"
)

// Contains looks for a substring in a string and for an equal item in a collection.
func (a *AssertionHelper) Contains(expected any) engine.Constraint {
	if _, ok := expected.(string); ok {
		return does.Contain(expected)
	}
	return has.Some.EqualTo(expected)
}

// Deprecated: use Contains.
func (a *AssertionHelper) ContainsSubstring(expected string) engine.Constraint {
	return gomega.ContainSubstring(expected)
}

// Deprecated: use does.Not.Contain.
func (a *AssertionHelper) DoesNotContain(expected string) engine.Constraint {
	return does.Not.Contain(expected)
}

// Deprecated: use does.Not.EndWith.
func (a *AssertionHelper) DoesNotEndWith(expected string) engine.Constraint {
	return does.Not.EndWith(expected)
}

// Deprecated: use does.Not.Match.
func (a *AssertionHelper) DoesNotMatch(pattern string) engine.Constraint {
	return does.Not.Match(pattern)
}

// Deprecated: use does.Not.StartWith.
func (a *AssertionHelper) DoesNotStartWith(expected string) engine.Constraint {
	return does.Not.StartWith(expected)
}

func (a *AssertionHelper) EndsWith(expected string) engine.Constraint {
	return does.EndWith(expected)
}

func (a *AssertionHelper) Matches(pattern string) engine.Constraint {
	return does.Match(pattern)
}

func (a *AssertionHelper) StartsWith(expected string) engine.Constraint {
	return does.StartWith(expected)
}

// Map projects a field or method out of every item of a slice, array or map.
func (a *AssertionHelper) Map(collection any) (*engine.ListMapper, error) {
	return engine.NewListMapper(collection)
}

// Deprecated: use Contains.
func (a *AssertionHelper) StringContaining(expected string) engine.Constraint {
	return gomega.ContainSubstring(expected)
}

// Deprecated: use does.EndWith or EndsWith.
func (a *AssertionHelper) StringEnding(expected string) engine.Constraint {
	return does.EndWith(expected)
}

// Deprecated: use does.Match or Matches.
func (a *AssertionHelper) StringMatching(pattern string) engine.Constraint {
	return does.Match(pattern)
}

// Deprecated: use does.StartWith or StartsWith.
func (a *AssertionHelper) StringStarting(expected string) engine.Constraint {
	return does.StartWith(expected)
}
