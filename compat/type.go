package compat

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind classifies a type descriptor.
type Kind int

const (
	// Concrete is an ordinary, fully known type.
	Concrete Kind = iota
	// GenericDefinition is a generic type regardless of its type arguments.
	GenericDefinition
	// GenericParameter is a type parameter identified by its position.
	GenericParameter
)

func (k Kind) String() string {
	switch k {
	case GenericDefinition:
		return "generic"
	case GenericParameter:
		return "type-parameter"
	default:
		return "concrete"
	}
}

// Type describes a parameter or result type of a surface member.
type Type struct {
	Kind     Kind
	Name     string
	Position int

	rtype reflect.Type
}

// Void is the result type of members returning nothing.
var Void = Type{Kind: Concrete, Name: "void"}

// TypeOf describes t. Instantiated generic types are described by their generic
// definition, so engine.ActualValueDelegate[int] and engine.ActualValueDelegate[string]
// are the same descriptor.
func TypeOf(t reflect.Type) Type {
	if t == nil {
		return Void
	}

	name := t.String()
	if strings.Contains(t.Name(), "[") {
		return Type{Kind: GenericDefinition, Name: name[:strings.IndexByte(name, '[')], rtype: t}
	}
	return Type{Kind: Concrete, Name: name, rtype: t}
}

// Named describes a concrete type by name only.
func Named(name string) Type {
	return Type{Kind: Concrete, Name: name}
}

// Generic describes a generic type definition, e.g. Generic("engine.ActualValueDelegate").
func Generic(name string) Type {
	return Type{Kind: GenericDefinition, Name: name}
}

// Param describes the type parameter at position.
func Param(position int) Type {
	return Type{Kind: GenericParameter, Name: fmt.Sprintf("T%d", position), Position: position}
}

func (t Type) String() string {
	if t.Kind == GenericDefinition {
		return t.Name + "[...]"
	}
	return t.Name
}

// Similar reports whether a and b describe the same type. Two type parameters are
// similar when they occupy the same position; anything else compares by name, generic
// types by their definition.
func Similar(a, b Type) bool {
	if a.Kind == GenericParameter || b.Kind == GenericParameter {
		return a.Kind == b.Kind && a.Position == b.Position
	}
	return a.Name == b.Name
}

// accepts reports whether a value of type v can be used where t is expected.
func (t Type) accepts(v reflect.Type) bool {
	if v == nil {
		return false
	}
	if t.rtype != nil {
		return v.AssignableTo(t.rtype)
	}
	return TypeOf(v).Name == t.Name
}
