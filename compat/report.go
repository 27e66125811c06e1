package compat

// Report is the outcome of a verification run.
type Report struct {
	Passed  int      `json:"passed" yaml:"passed"`
	Skipped int      `json:"skipped" yaml:"skipped"`
	Failed  int      `json:"failed" yaml:"failed"`
	Results []Result `json:"results" yaml:"results"`
}

// NewReport counts results by outcome.
func NewReport(results []Result) Report {
	r := Report{Results: results}
	for _, res := range results {
		switch res.Outcome {
		case Passed:
			r.Passed++
		case Skipped:
			r.Skipped++
		case Failed:
			r.Failed++
		}
	}
	return r
}

// OK reports whether no member failed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results.
func (r Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Outcome == Failed {
			failed = append(failed, res)
		}
	}
	return failed
}
