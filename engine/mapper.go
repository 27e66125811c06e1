package engine

import (
	"reflect"

	"github.com/pkg/errors"
)

// ListMapper projects a field or zero-argument method out of every element of a
// collection.
type ListMapper struct {
	items []any
}

// NewListMapper returns a mapper over the elements of a slice, array or map.
func NewListMapper(collection any) (*ListMapper, error) {
	items, err := Items(collection)
	if err != nil {
		return nil, err
	}
	return &ListMapper{items: items}, nil
}

// Property returns the named field or method result of every element, in order.
func (m *ListMapper) Property(name string) ([]any, error) {
	values := make([]any, 0, len(m.items))
	for i, item := range m.items {
		value, err := property(item, name)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		values = append(values, value)
	}
	return values, nil
}

func property(item any, name string) (any, error) {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return nil, errors.Errorf("cannot read %q from nil", name)
	}

	if method := v.MethodByName(name); method.IsValid() && method.Type().NumIn() == 0 && method.Type().NumOut() > 0 {
		return method.Call(nil)[0].Interface(), nil
	}

	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, errors.Errorf("cannot read %q from nil", name)
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if field := v.FieldByName(name); field.IsValid() && field.CanInterface() {
			return field.Interface(), nil
		}
	}
	return nil, errors.Errorf("%s has no property %q", v.Type(), name)
}
