package expect

import (
	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/has"
)

var (
	No      = has.No
	Some    = has.Some
	None    = has.None
	Length  = has.Length
	Count   = has.Count
	Message = has.Message
	Wrapped = has.Wrapped

	Property = has.Property
	Member   = has.Member
)

// Exactly succeeds when exactly count items of a collection satisfy the following
// constraint. Unlike has.Exactly it keeps the quantified expression type.
func Exactly(count int) *engine.ItemsExpression {
	return engine.NewItemsExpression(count)
}
