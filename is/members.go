package is

import "github.com/buildpacks/expect/compat"

// Members lists the public surface of the package.
func Members() compat.Table {
	return compat.Table{
		compat.Property("Not", Not),
		compat.Property("All", All),
		compat.Property("Null", Null),
		compat.Property("True", True),
		compat.Property("False", False),
		compat.Property("Zero", Zero),
		compat.Property("Empty", Empty),
		compat.Property("Positive", Positive),
		compat.Property("Negative", Negative),
		compat.Property("NaN", NaN),
		compat.Property("Unique", Unique),
		compat.Property("Ordered", Ordered),

		compat.Func("EqualTo", EqualTo),
		compat.Func("GreaterThan", GreaterThan),
		compat.Func("GreaterThanOrEqualTo", GreaterThanOrEqualTo),
		compat.Func("LessThan", LessThan),
		compat.Func("LessThanOrEqualTo", LessThanOrEqualTo),
		compat.Func("AtLeast", AtLeast),
		compat.Func("AtMost", AtMost),
		compat.Func("InRange", InRange),
		compat.Func("SameAs", SameAs),
		compat.Func("EquivalentTo", EquivalentTo),
		compat.Func("SubsetOf", SubsetOf),
		compat.Func("SupersetOf", SupersetOf),
		compat.Func("SamePath", SamePath),
		compat.Func("SamePathOrUnder", SamePathOrUnder),
		compat.Func("SubPathOf", SubPathOf),
		compat.Func("InstanceOf", InstanceOf),
		compat.Func("TypeOf", TypeOf),
		compat.Func("AssignableTo", AssignableTo),
		compat.Func("AssignableFrom", AssignableFrom),
	}
}
