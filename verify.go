package argverify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/argverify/pkg/logger"
	"github.com/dmitrymomot/argverify/pkg/typeverify"
)

// ArgumentsVerify checks args against spec and reports whether they passed.
// A handler set with WithResultHandler still receives the result.
//
//	func CreateUser(args ...any) error {
//	    if !argverify.ArgumentsVerify(argverify.Rules(
//	        argverify.Types(typeverify.TagString),
//	        argverify.Types(typeverify.TagNumber), argverify.Repeat(2),
//	    ), args, argverify.WithLabel("CreateUser")) {
//	        return ErrBadArguments
//	    }
//	    ...
//	}
func ArgumentsVerify(spec RuleSpec, args []any, opts ...Option) bool {
	return Check(spec, args, opts...).Passed
}

// Check verifies args against spec and returns the full result.
func Check(spec RuleSpec, args []any, opts ...Option) Result {
	o := defaultOptions()
	o.apply(opts)
	return o.check(spec, args)
}

// VerifyWith verifies args and returns whatever consumer returns. consumer is
// called exactly once and takes the place of any configured ResultHandler.
func VerifyWith[T any](spec RuleSpec, args []any, consumer func(d *Diagnostic, passed bool) T, opts ...Option) T {
	o := defaultOptions()
	o.apply(opts)
	return verifyWith(o, spec, args, consumer)
}

// VerifyWithVerifier is VerifyWith using the defaults held by v.
func VerifyWithVerifier[T any](v *Verifier, spec RuleSpec, args []any, consumer func(d *Diagnostic, passed bool) T, opts ...Option) T {
	return verifyWith(v.options(opts), spec, args, consumer)
}

func verifyWith[T any](o options, spec RuleSpec, args []any, consumer func(d *Diagnostic, passed bool) T) T {
	o.handler = nil
	res := o.check(spec, args)
	return consumer(res.Diagnostic, res.Passed)
}

func (o *options) check(spec RuleSpec, args []any) Result {
	d := o.verify(o.normalize(spec), args)
	res := Result{Passed: d == nil, Diagnostic: d}

	if d != nil && o.logger != nil {
		attrs := []slog.Attr{
			logger.Component("argverify"),
			logger.Label(d.Label),
			logger.Position(d.Position),
			logger.Missing(d.Missing()),
		}
		if !d.Missing() {
			attrs = append(attrs, logger.Expected(shapeString(d.Expected)), logger.Actual(shapeString(d.Actual)))
		}
		o.logger.LogAttrs(context.Background(), slog.LevelDebug, "argument verification failed", attrs...)
	}

	if o.handler != nil {
		o.handler(res.Diagnostic, res.Passed)
	}
	return res
}

func (o *options) normalize(spec RuleSpec) []NormalizedRule {
	if !o.strict {
		return Normalize(spec)
	}
	rules, err := NormalizeStrict(spec)
	if err != nil {
		panic(err)
	}
	return rules
}

// verify walks rules left to right and returns the first failure.
// Arguments past the last covered position are never inspected.
func (o *options) verify(rules []NormalizedRule, args []any) *Diagnostic {
	for p, rule := range rules {
		if rule.Repeated {
			end := len(args)
			if rule.Repeat < end-p {
				end = p + rule.Repeat
			}
			for i := p; i < end; i++ {
				if d := o.compareAt(i, args[i], rule.RuleSet); d != nil {
					return d
				}
			}
			continue
		}

		if p >= len(args) {
			if len(rule.RuleSet) == 0 || o.missing == MissingReport {
				return &Diagnostic{Label: o.label, Position: p}
			}
			if d := o.compareAt(p, typeverify.Undefined, rule.RuleSet); d != nil {
				return d
			}
			continue
		}

		if d := o.compareAt(p, args[p], rule.RuleSet); d != nil {
			return d
		}
	}
	return nil
}

func (o *options) compareAt(pos int, value any, rs RuleSet) *Diagnostic {
	var d *Diagnostic
	ok := o.compare(value, rs, func(matched bool, v any, expected, actual typeverify.Shape) {
		if matched {
			return
		}
		d = &Diagnostic{
			Label:    o.label,
			Position: pos,
			Value:    v,
			Expected: &expected,
			Actual:   &actual,
		}
	})
	if ok {
		return nil
	}

	// Comparators are not required to report; fall back to the default shapes.
	if d == nil {
		expected := typeverify.ExpectedShape(rs)
		actual := typeverify.ActualShape(value)
		d = &Diagnostic{
			Label:    o.label,
			Position: pos,
			Value:    value,
			Expected: &expected,
			Actual:   &actual,
		}
	}
	return d
}
