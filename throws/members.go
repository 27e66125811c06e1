package throws

import "github.com/buildpacks/expect/compat"

// Members lists the public surface of the package.
func Members() compat.Table {
	return compat.Table{
		compat.Property("Nothing", Nothing),
		compat.Property("Exception", Exception),

		compat.Func("InstanceOf", InstanceOf),
		compat.Func("TypeOf", TypeOf),
		compat.Func("WithMessage", WithMessage),
	}
}
