package expect

import (
	"context"
	"reflect"

	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/does"
	"github.com/buildpacks/expect/has"
	"github.com/buildpacks/expect/is"
	"github.com/buildpacks/expect/legacy"
	"github.com/buildpacks/expect/throws"
)

// Reference is the helper whose methods the package mirrors.
var Reference = reflect.TypeOf(&legacy.AssertionHelper{})

var specialCases = []compat.SpecialCase{
	{
		Original: compat.FuncSignature("Exactly", reflect.TypeOf(has.Exactly), 0),
		Rewrite:  signature("Exactly", Exactly),
		Reason:   "Exactly returns *engine.ItemsExpression so the quantified form survives chaining",
	},
	{
		Original: compat.FuncSignature("InRange", reflect.TypeOf(is.InRange), 0),
		Rewrite:  signature("InRange", InRange),
		Reason:   "InRange accepts any numeric pair instead of float64",
	},
}

func signature(name string, fn any) *compat.Signature {
	sig := compat.FuncSignature(name, reflect.TypeOf(fn), 0)
	return &sig
}

// SpecialCases returns the members whose signature intentionally differs from the
// Reference.
func SpecialCases() (compat.SpecialCases, error) {
	return compat.NewSpecialCases(specialCases...)
}

// Aggregates returns the builder packages the package re-exports.
func Aggregates() []compat.Aggregate {
	exclude := []string{"Exactly", "InRange"}
	return []compat.Aggregate{
		{Name: "is", Members: is.Members(), Exclude: exclude},
		{Name: "has", Members: has.Members(), Exclude: exclude},
		{Name: "does", Members: does.Members(), Exclude: exclude},
		{Name: "throws", Members: throws.Members(), Prefix: "Throws"},
	}
}

// Verify checks the package against the Reference and the Aggregates.
func Verify(ctx context.Context) (compat.Report, error) {
	special, err := SpecialCases()
	if err != nil {
		return compat.Report{}, err
	}

	results, err := compat.NewVerifier(Members(), special).VerifyAll(ctx, Reference, Aggregates()...)
	if err != nil {
		return compat.Report{}, err
	}
	return compat.NewReport(results), nil
}

// Members lists the public surface of the package.
func Members() compat.Table {
	return compat.Table{
		compat.Func("Expect", Expect),
		compat.Func("ExpectFunc", ExpectFunc),
		compat.Func("ExpectValue", ExpectValue[any]),
		compat.Func("ExpectCode", ExpectCode),
		compat.Func("ExpectThat", ExpectThat),
		compat.Func("RegisterFailHandler", RegisterFailHandler),
		compat.Func("RegisterTestingT", RegisterTestingT),
		compat.Func("Capture", Capture),

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
		compat.Property("EqualTo", EqualTo),
		compat.Property("GreaterThan", GreaterThan),
		compat.Property("GreaterThanOrEqualTo", GreaterThanOrEqualTo),
		compat.Property("LessThan", LessThan),
		compat.Property("LessThanOrEqualTo", LessThanOrEqualTo),
		compat.Property("AtLeast", AtLeast),
		compat.Property("AtMost", AtMost),
		compat.Property("SameAs", SameAs),
		compat.Property("EquivalentTo", EquivalentTo),
		compat.Property("SubsetOf", SubsetOf),
		compat.Property("SupersetOf", SupersetOf),
		compat.Property("SamePath", SamePath),
		compat.Property("SamePathOrUnder", SamePathOrUnder),
		compat.Property("SubPathOf", SubPathOf),
		compat.Property("InRange", InRange),
		compat.Func("InstanceOf", InstanceOf),
		compat.Func("TypeOf", TypeOf),
		compat.Func("AssignableTo", AssignableTo),
		compat.Func("AssignableFrom", AssignableFrom),

		compat.Property("No", No),
		compat.Property("Some", Some),
		compat.Property("None", None),
		compat.Property("Length", Length),
		compat.Property("Count", Count),
		compat.Property("Message", Message),
		compat.Property("Wrapped", Wrapped),
		compat.Property("Property", Property),
		compat.Property("Member", Member),
		compat.Func("Exactly", Exactly),

		compat.Property("Exist", Exist),
		compat.Property("ContainKey", ContainKey),
		compat.Property("ContainValue", ContainValue),
		compat.Property("StartWith", StartWith),
		compat.Property("EndWith", EndWith),
		compat.Property("Match", Match),
		compat.Func("Contain", Contain),

		compat.Property("ThrowsNothing", ThrowsNothing),
		compat.Property("ThrowsException", ThrowsException),
		compat.Property("ThrowsInstanceOf", ThrowsInstanceOf),
		compat.Property("ThrowsTypeOf", ThrowsTypeOf),
		compat.Property("ThrowsWithMessage", ThrowsWithMessage),

		compat.Func("Contains", Contains),
		compat.Func("ContainsSubstring", ContainsSubstring),
		compat.Func("DoesNotContain", DoesNotContain),
		compat.Func("DoesNotEndWith", DoesNotEndWith),
		compat.Func("DoesNotMatch", DoesNotMatch),
		compat.Func("DoesNotStartWith", DoesNotStartWith),
		compat.Func("EndsWith", EndsWith),
		compat.Func("Map", Map),
		compat.Func("Matches", Matches),
		compat.Func("StartsWith", StartsWith),
		compat.Func("StringContaining", StringContaining),
		compat.Func("StringEnding", StringEnding),
		compat.Func("StringMatching", StringMatching),
		compat.Func("StringStarting", StringStarting),
	}
}
