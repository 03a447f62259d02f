package rulefile

import (
	"fmt"

	"github.com/dmitrymomot/argverify"
)

// Outcome is the result of running one case.
type Outcome struct {
	Case   Case
	Result argverify.Result
	OK     bool
	Reason string
}

// Run verifies the case's arguments. The case label, or its name when no
// label is set, overrides any label in opts.
func (c Case) Run(opts ...argverify.Option) Outcome {
	label := c.Label
	if label == "" {
		label = c.Name
	}
	all := append(append([]argverify.Option(nil), opts...), argverify.WithLabel(label))

	out := Outcome{Case: c, Result: argverify.Check(c.Rules, c.Args, all...)}
	res := out.Result

	switch {
	case c.Expect == ExpectFail && res.Passed:
		out.Reason = "expected verification to fail, it passed"
	case c.Expect == ExpectFail && c.Position != nil && res.Diagnostic.Position != *c.Position:
		out.Reason = fmt.Sprintf("expected failure at position %d, got %s", *c.Position, res.Diagnostic.Error())
	case c.Expect != ExpectFail && !res.Passed:
		out.Reason = res.Diagnostic.Error()
	default:
		out.OK = true
	}
	return out
}

// Run runs every case in order.
func (s *Suite) Run(opts ...argverify.Option) []Outcome {
	outcomes := make([]Outcome, 0, len(s.Cases))
	for _, c := range s.Cases {
		outcomes = append(outcomes, c.Run(opts...))
	}
	return outcomes
}

// Failed counts outcomes that did not meet their expectation.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK {
			n++
		}
	}
	return n
}
