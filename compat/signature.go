package compat

import (
	"fmt"
	"reflect"
	"strings"
)

// Signature identifies a callable surface member.
type Signature struct {
	Name   string
	Return Type
	Params []Type
}

// NewSignature returns the signature of a member named name.
func NewSignature(name string, ret Type, params ...Type) Signature {
	return Signature{Name: name, Return: ret, Params: params}
}

// FuncSignature describes a function type, skipping the first skip parameters (a
// method receiver, for instance).
func FuncSignature(name string, fn reflect.Type, skip int) Signature {
	sig := Signature{Name: name, Return: results(fn)}
	for i := skip; i < fn.NumIn(); i++ {
		sig.Params = append(sig.Params, TypeOf(fn.In(i)))
	}
	return sig
}

func results(fn reflect.Type) Type {
	switch fn.NumOut() {
	case 0:
		return Void
	case 1:
		return TypeOf(fn.Out(0))
	default:
		var names []string
		for i := 0; i < fn.NumOut(); i++ {
			names = append(names, TypeOf(fn.Out(i)).Name)
		}
		return Named("(" + strings.Join(names, ", ") + ")")
	}
}

// Similar reports whether s and other have the same name and pairwise similar
// parameters.
func (s Signature) Similar(other Signature) bool {
	if s.Name != other.Name || len(s.Params) != len(other.Params) {
		return false
	}
	for i := range s.Params {
		if !Similar(s.Params[i], other.Params[i]) {
			return false
		}
	}
	return true
}

// ParamNames returns the parameter type names in order.
func (s Signature) ParamNames() []string {
	names := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		names = append(names, p.Name)
	}
	return names
}

func (s Signature) String() string {
	params := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		params = append(params, p.String())
	}
	if s.Return.Name == Void.Name {
		return fmt.Sprintf("%s(%s)", s.Name, strings.Join(params, ", "))
	}
	return fmt.Sprintf("%s(%s) %s", s.Name, strings.Join(params, ", "), s.Return)
}

// Reference enumerates the exported method set of t, receiver excluded. Go types have
// no properties; a zero-argument method stands in for one.
func Reference(t reflect.Type) []Signature {
	skip := 1
	if t.Kind() == reflect.Interface {
		skip = 0
	}

	sigs := make([]Signature, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		sigs = append(sigs, FuncSignature(m.Name, m.Type, skip))
	}
	return sigs
}
