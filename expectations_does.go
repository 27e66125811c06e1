package expect

import (
	"github.com/buildpacks/expect/does"
	"github.com/buildpacks/expect/engine"
)

var (
	Exist = does.Exist

	ContainKey   = does.ContainKey
	ContainValue = does.ContainValue
	StartWith    = does.StartWith
	EndWith      = does.EndWith
	Match        = does.Match
)

// Contain looks for a substring when both sides are strings and for an item
// otherwise.
func Contain(expected any) engine.Constraint {
	return does.Contain(expected)
}
