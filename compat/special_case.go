package compat

import (
	"github.com/pkg/errors"
)

// ErrSpecialCaseMisconfigured is returned for a special case that does not say what
// the member was rewritten to.
var ErrSpecialCaseMisconfigured = errors.New("special case has no rewrite signature")

// SpecialCase records a member whose facade signature intentionally differs from the
// reference.
type SpecialCase struct {
	Original Signature
	Rewrite  *Signature
	Reason   string
}

// SpecialCases is an immutable, validated set of special cases.
type SpecialCases struct {
	cases []SpecialCase
}

// NewSpecialCases validates cases. Every case must carry a named rewrite.
func NewSpecialCases(cases ...SpecialCase) (SpecialCases, error) {
	for _, c := range cases {
		if c.Rewrite == nil || c.Rewrite.Name == "" {
			return SpecialCases{}, errors.Wrapf(ErrSpecialCaseMisconfigured, "%s", c.Original)
		}
	}
	return SpecialCases{cases: append([]SpecialCase(nil), cases...)}, nil
}

// Find returns the special case declared for sig.
func (s SpecialCases) Find(sig Signature) (SpecialCase, bool) {
	for _, c := range s.cases {
		if c.Original.Similar(sig) {
			return c, true
		}
	}
	return SpecialCase{}, false
}

// All returns the declared cases in declaration order.
func (s SpecialCases) All() []SpecialCase {
	return append([]SpecialCase(nil), s.cases...)
}
