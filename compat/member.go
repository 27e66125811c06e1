package compat

import (
	"fmt"
	"reflect"
	"sort"
)

// MemberKind distinguishes functions from package-level values.
type MemberKind int

const (
	// FuncMember is a declared function.
	FuncMember MemberKind = iota
	// PropertyMember is a package-level variable, possibly holding a function.
	PropertyMember
)

func (k MemberKind) String() string {
	if k == PropertyMember {
		return "property"
	}
	return "func"
}

// Member is one entry of a member table.
type Member struct {
	Kind  MemberKind
	Name  string
	Value any

	sig *Signature
}

// Func registers a declared function. Generic functions are registered through one of
// their instantiations; generic types in the signature collapse to their definition.
func Func(name string, fn any) Member {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Sprintf("compat: %s is %T, not a function", name, fn))
	}
	sig := FuncSignature(name, t, 0)
	return Member{Kind: FuncMember, Name: name, Value: fn, sig: &sig}
}

// Declared registers a function by an explicit signature, for members whose type
// parameters must be described positionally.
func Declared(name string, ret Type, params ...Type) Member {
	sig := NewSignature(name, ret, params...)
	return Member{Kind: FuncMember, Name: name, sig: &sig}
}

// Property registers a package-level variable.
func Property(name string, value any) Member {
	return Member{Kind: PropertyMember, Name: name, Value: value}
}

// Signature describes the member. A property holding a function is described by that
// function; any other property by the type of its value.
func (m Member) Signature() Signature {
	if m.sig != nil {
		return *m.sig
	}
	if fn, ok := m.function(); ok {
		return FuncSignature(m.Name, fn, 0)
	}
	return NewSignature(m.Name, TypeOf(reflect.TypeOf(m.Value)))
}

// function returns the type of the bound function a property holds.
func (m Member) function() (reflect.Type, bool) {
	t := reflect.TypeOf(m.Value)
	if t == nil || t.Kind() != reflect.Func {
		return nil, false
	}
	return t, true
}

// Table is the set of public members of a package.
type Table []Member

// Method finds a function with the name of sig and similar parameters.
func (t Table) Method(sig Signature) (Member, bool) {
	for _, m := range t {
		if m.Kind == FuncMember && m.Signature().Similar(sig) {
			return m, true
		}
	}
	return Member{}, false
}

// Property finds the property named name.
func (t Table) Property(name string) (Member, bool) {
	for _, m := range t {
		if m.Kind == PropertyMember && m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Named returns every member called name.
func (t Table) Named(name string) []Member {
	var found []Member
	for _, m := range t {
		if m.Name == name {
			found = append(found, m)
		}
	}
	return found
}

// Sorted returns a copy of t ordered by name, functions before properties.
func (t Table) Sorted() Table {
	sorted := append(Table{}, t...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Kind < sorted[j].Kind
	})
	return sorted
}
