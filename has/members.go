package has

import "github.com/buildpacks/expect/compat"

// Members lists the public surface of the package.
func Members() compat.Table {
	return compat.Table{
		compat.Property("No", No),
		compat.Property("Some", Some),
		compat.Property("None", None),
		compat.Property("Length", Length),
		compat.Property("Count", Count),
		compat.Property("Message", Message),
		compat.Property("Wrapped", Wrapped),

		compat.Func("Exactly", Exactly),
		compat.Func("Property", Property),
		compat.Func("Member", Member),
	}
}
