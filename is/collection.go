package is

import (
	"reflect"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	"github.com/pkg/errors"

	"github.com/buildpacks/expect/engine"
)

// EquivalentTo succeeds when actual holds the same items as expected in any order.
func EquivalentTo(expected any) engine.Constraint {
	return gomega.ConsistOf(expected)
}

// SubsetOf succeeds when every item of actual is an item of expected.
func SubsetOf(expected any) engine.Constraint {
	return gomega.Or(gomega.BeEmpty(), gomega.HaveEach(gomega.BeElementOf(expected)))
}

// SupersetOf succeeds when actual holds every item of expected.
func SupersetOf(expected any) engine.Constraint {
	return gomega.ContainElements(expected)
}

func unique(actual any) (bool, error) {
	items, err := engine.Items(actual)
	if err != nil {
		return false, err
	}

	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if reflect.DeepEqual(items[i], items[j]) {
				return false, nil
			}
		}
	}
	return true, nil
}

func ordered(actual any) (bool, error) {
	items, err := engine.Items(actual)
	if err != nil {
		return false, err
	}
	if reflect.ValueOf(actual).Kind() == reflect.Map {
		return false, errors.New("maps have no order")
	}

	for i := 1; i < len(items); i++ {
		ok, err := lessOrEqual(items[i-1], items[i])
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func lessOrEqual(a, b any) (bool, error) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return false, errors.Errorf("cannot order %s after a string", format.Object(b, 0))
		}
		return as <= bs, nil
	}
	return gomega.BeNumerically("<=", b).Match(a)
}
