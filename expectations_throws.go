package expect

import "github.com/buildpacks/expect/throws"

var (
	ThrowsNothing   = throws.Nothing
	ThrowsException = throws.Exception

	ThrowsInstanceOf  = throws.InstanceOf
	ThrowsTypeOf      = throws.TypeOf
	ThrowsWithMessage = throws.WithMessage
)
