package engine

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/gcustom"
	"github.com/pkg/errors"
)

// Expression is a prefix operator (negation, collection quantifier, property
// projection) waiting for the constraint it applies to.
type Expression struct {
	apply func(c Constraint, description string) Constraint
}

// NewExpression returns an Expression that combines the following constraint with
// apply.
func NewExpression(apply func(c Constraint) Constraint) *Expression {
	return &Expression{apply: func(c Constraint, _ string) Constraint {
		return apply(c)
	}}
}

// Not negates whatever follows.
func (e *Expression) Not() *Expression {
	return &Expression{apply: func(c Constraint, description string) Constraint {
		return e.apply(gomega.Not(c), "not "+description)
	}}
}

func (e *Expression) EqualTo(expected any) Constraint {
	return e.apply(gomega.Equal(expected), "equal to "+format.Object(expected, 0))
}

func (e *Expression) Null() Constraint {
	return e.apply(gomega.BeNil(), "that are nil")
}

func (e *Expression) True() Constraint {
	return e.apply(gomega.BeTrue(), "that are true")
}

func (e *Expression) False() Constraint {
	return e.apply(gomega.BeFalse(), "that are false")
}

func (e *Expression) Empty() Constraint {
	return e.apply(gomega.BeEmpty(), "that are empty")
}

func (e *Expression) GreaterThan(expected any) Constraint {
	return e.apply(gomega.BeNumerically(">", expected), "greater than "+format.Object(expected, 0))
}

func (e *Expression) LessThan(expected any) Constraint {
	return e.apply(gomega.BeNumerically("<", expected), "less than "+format.Object(expected, 0))
}

// Contain checks for a substring when expected is a string and for an element
// otherwise.
func (e *Expression) Contain(expected any) Constraint {
	return e.apply(Contain(expected), "containing "+format.Object(expected, 0))
}

func (e *Expression) StartWith(prefix string) Constraint {
	return e.apply(gomega.HavePrefix(prefix), fmt.Sprintf("starting with %q", prefix))
}

func (e *Expression) EndWith(suffix string) Constraint {
	return e.apply(gomega.HaveSuffix(suffix), fmt.Sprintf("ending with %q", suffix))
}

func (e *Expression) Match(pattern string) Constraint {
	return e.apply(gomega.MatchRegexp(pattern), fmt.Sprintf("matching /%s/", pattern))
}

// ItemsExpression is the Expression returned by counting quantifiers. It keeps the
// expected count so chained calls stay on the quantified form.
type ItemsExpression struct {
	Expression
	count int
}

// NewItemsExpression returns an expression succeeding when exactly count items of a
// slice, array or map satisfy the following constraint.
func NewItemsExpression(count int) *ItemsExpression {
	return &ItemsExpression{
		Expression: Expression{apply: func(c Constraint, description string) Constraint {
			return exactly(count, c, description)
		}},
		count: count,
	}
}

// Not negates whatever follows and keeps the quantified form.
func (e *ItemsExpression) Not() *ItemsExpression {
	return &ItemsExpression{Expression: *e.Expression.Not(), count: e.count}
}

// Count is the number of items that must match.
func (e *ItemsExpression) Count() int {
	return e.count
}

func exactly(count int, c Constraint, description string) Constraint {
	return gcustom.MakeMatcher(func(actual any) (bool, error) {
		items, err := Items(actual)
		if err != nil {
			return false, err
		}

		matched := 0
		for _, item := range items {
			ok, err := c.Match(item)
			if err != nil {
				return false, err
			}
			if ok {
				matched++
			}
		}
		return matched == count, nil
	}, Literal(fmt.Sprintf("contain exactly %d item(s) %s", count, description)))
}

// Items returns the elements of a slice or array, or the values of a map.
func Items(actual any) ([]any, error) {
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = v.Index(i).Interface()
		}
		return items, nil
	case reflect.Map:
		items := make([]any, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			items = append(items, iter.Value().Interface())
		}
		return items, nil
	default:
		return nil, errors.Errorf("expected a slice, array or map. Got:\n%s", format.Object(actual, 1))
	}
}
