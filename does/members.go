package does

import "github.com/buildpacks/expect/compat"

// Members lists the public surface of the package.
func Members() compat.Table {
	return compat.Table{
		compat.Property("Not", Not),
		compat.Property("Exist", Exist),

		compat.Func("Contain", Contain),
		compat.Func("ContainKey", ContainKey),
		compat.Func("ContainValue", ContainValue),
		compat.Func("StartWith", StartWith),
		compat.Func("EndWith", EndWith),
		compat.Func("Match", Match),
	}
}
