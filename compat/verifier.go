// Package compat verifies that a static facade exposes an equivalent of every public
// member of a reference type, modulo declared special cases.
package compat

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// errMemberNotFound is raised when a bound function is read off a property that does
// not exist or does not hold a function. Resolution turns it into "not found".
var errMemberNotFound = errors.New("member not found")

// Outcome of a single member check.
type Outcome int

const (
	Passed Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "passed"
	}
}

// MarshalText renders the outcome by name in JSON and YAML reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result of checking one member.
type Result struct {
	Member   string    `json:"member" yaml:"member"`
	Expected Signature `json:"-" yaml:"-"`
	Resolved string    `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Outcome  Outcome   `json:"outcome" yaml:"outcome"`
	Reason   string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Aggregate is a constraint-builder package whose members the facade re-exports.
type Aggregate struct {
	Name    string
	Members Table
	// Prefix is prepended to member names to find their facade counterparts.
	Prefix string
	// Exclude lists members the facade deliberately implements with another type.
	Exclude []string
}

// Verifier checks reference members against a facade table.
type Verifier struct {
	facade  Table
	special SpecialCases
}

// NewVerifier returns a Verifier resolving against facade.
func NewVerifier(facade Table, special SpecialCases) *Verifier {
	return &Verifier{facade: facade, special: special}
}

type resolution struct {
	sig      Signature
	property bool
}

// Check resolves sig against the facade.
func (v *Verifier) Check(sig Signature) Result {
	expected := sig
	special, rewritten := v.special.Find(sig)
	if rewritten {
		expected = *special.Rewrite
	}

	result := Result{Member: sig.String(), Expected: expected}
	res, err := v.resolve(expected)
	switch {
	case err != nil:
		return result.fail(err.Error())
	case res == nil && rewritten:
		return result.fail(fmt.Sprintf("%s not found on facade (special case rewrite of %s)", expected, sig))
	case res == nil:
		return result.fail(fmt.Sprintf("%s not found on facade", sig.Name))
	}

	result.Resolved = res.sig.String()
	if !res.property && res.sig.Return.Name != expected.Return.Name {
		return result.fail(fmt.Sprintf("%s: return types don't match: expected %s, got %s", sig.Name, expected.Return, res.sig.Return))
	}

	if rewritten {
		result.Outcome = Skipped
		result.Reason = fmt.Sprintf("ignored by special case: %s", special.Reason)
		return result
	}
	result.Outcome = Passed
	return result
}

func (r Result) fail(reason string) Result {
	r.Outcome = Failed
	r.Reason = reason
	return r
}

func (v *Verifier) resolve(sig Signature) (*resolution, error) {
	if m, ok := v.facade.Method(sig); ok {
		return &resolution{sig: m.Signature()}, nil
	}

	if prop, ok := v.facade.Property(sig.Name); ok {
		if _, isFunc := prop.function(); !isFunc && len(sig.Params) == 0 {
			if !sig.Return.accepts(reflect.TypeOf(prop.Value)) {
				return nil, errors.Errorf("%s: property of type %T cannot be used as %s", sig.Name, prop.Value, sig.Return)
			}
			return &resolution{sig: prop.Signature(), property: true}, nil
		}
	}

	bound, err := v.boundFunction(sig.Name)
	if errors.Is(err, errMemberNotFound) {
		return nil, nil
	}

	want, got := sig.ParamNames(), bound.ParamNames()
	if diff := cmp.Diff(want, got); diff != "" {
		return nil, errors.Errorf("%s implemented as pass-through property, but parameter types don't match (-want +got):\n%s", sig.Name, diff)
	}
	return &resolution{sig: bound}, nil
}

// boundFunction describes the function held by the property called name.
func (v *Verifier) boundFunction(name string) (Signature, error) {
	prop, ok := v.facade.Property(name)
	if !ok {
		return Signature{}, errors.Wrapf(errMemberNotFound, "property %s", name)
	}
	fn, ok := prop.function()
	if !ok {
		return Signature{}, errors.Wrapf(errMemberNotFound, "property %s holds no function", name)
	}
	return FuncSignature(name, fn, 0), nil
}

// VerifyReference checks every exported method of ref.
func (v *Verifier) VerifyReference(ref reflect.Type) []Result {
	var results []Result
	for _, sig := range Reference(ref) {
		results = append(results, v.Check(sig))
	}
	return sortResults(results)
}

// VerifyAggregate checks that every member of an aggregate has a facade member of the
// same name whose value has the same concrete type. Members known only by a declared
// signature are not checked.
func (v *Verifier) VerifyAggregate(agg Aggregate) []Result {
	excluded := map[string]bool{}
	for _, name := range agg.Exclude {
		excluded[name] = true
	}

	var results []Result
	for _, m := range agg.Members {
		if m.Value == nil {
			continue
		}

		result := Result{Member: agg.Name + "." + m.Name, Expected: m.Signature()}
		if excluded[m.Name] {
			result.Outcome = Skipped
			result.Reason = "implemented on the facade with a different type"
			results = append(results, result)
			continue
		}

		results = append(results, v.checkReexport(result, agg.Prefix+m.Name, m))
	}
	return sortResults(results)
}

func (v *Verifier) checkReexport(result Result, name string, m Member) Result {
	want := reflect.TypeOf(m.Value)
	candidates := v.facade.Named(name)
	if len(candidates) == 0 {
		return result.fail(fmt.Sprintf("%s not found on facade", name))
	}

	for _, c := range candidates {
		if got := reflect.TypeOf(c.Value); got != nil && got == want {
			result.Resolved = c.Signature().String()
			result.Outcome = Passed
			return result
		}
	}
	return result.fail(fmt.Sprintf("%s: facade value is %T, expected %s", name, candidates[0].Value, want))
}

// VerifyAll checks ref and every aggregate concurrently and returns the combined
// results ordered by member.
func (v *Verifier) VerifyAll(ctx context.Context, ref reflect.Type, aggregates ...Aggregate) ([]Result, error) {
	batches := make([][]Result, len(aggregates)+1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		batches[0] = v.VerifyReference(ref)
		return ctx.Err()
	})
	for i, agg := range aggregates {
		g.Go(func() error {
			batches[i+1] = v.VerifyAggregate(agg)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "verifying facade")
	}

	var all []Result
	for _, b := range batches {
		all = append(all, b...)
	}
	return sortResults(all), nil
}

func sortResults(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Member < results[j].Member
	})
	return results
}
