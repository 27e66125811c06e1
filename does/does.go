// Package does holds constraints about what the actual value does: exist on disk,
// contain an item or substring, start or end with a string, match a pattern.
package does

import (
	"github.com/onsi/gomega"

	"github.com/buildpacks/expect/engine"
)

var (
	// Not negates the following constraint.
	Not = engine.NewExpression(gomega.Not)

	// Exist succeeds when the actual string names an existing file or directory.
	Exist = gomega.BeAnExistingFile()
)

// Contain looks for a substring when expected is a string and the actual value is a
// string, and for a collection item otherwise.
func Contain(expected any) engine.Constraint {
	return engine.Contain(expected)
}

// ContainKey succeeds when a map has the key expected.
func ContainKey(expected any) engine.Constraint {
	return gomega.HaveKey(expected)
}

// ContainValue succeeds when a map holds expected under any key.
func ContainValue(expected any) engine.Constraint {
	return gomega.ContainElement(expected)
}

func StartWith(prefix string) engine.Constraint {
	return gomega.HavePrefix(prefix)
}

func EndWith(suffix string) engine.Constraint {
	return gomega.HaveSuffix(suffix)
}

func Match(pattern string) engine.Constraint {
	return gomega.MatchRegexp(pattern)
}
