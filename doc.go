// Package argverify checks a positional argument list against a declarative
// list of type rules and reports the first argument that does not fit.
//
// It is meant for the top of variadic or loosely typed functions:
//
//	func Schedule(args ...any) error {
//		return argverify.VerifyWith(scheduleRules, args, func(d *argverify.Diagnostic, ok bool) error {
//			if ok {
//				return nil
//			}
//			return d
//		}, argverify.WithLabel("Schedule"))
//	}
//
// # Rules
//
// A RuleSpec is an ordered list of RuleSet values, one per argument position,
// optionally closed by a RepeatPrevious marker:
//
//	argverify.Rules(
//		argverify.Types(typeverify.TagFunction),           // position 0
//		argverify.Types(typeverify.TagNumber),             // positions 1..3
//		argverify.Repeat(3),
//	)
//
// A RuleSet accepts a value when any of its descriptors matches (see package
// typeverify); an empty RuleSet accepts any value that is present. A repeat
// marker turns the preceding rule-set into an optional tail covering up to N
// positions. Arguments past the last covered position are never inspected.
//
// Normalize resolves markers permissively, dropping whatever follows a
// malformed element. NormalizeStrict, or WithStrictRules on a call, reports
// such specs instead.
//
// # Missing arguments
//
// When the list is shorter than the declared bare rule-sets, the default
// MissingCompare policy reports a missing-argument Diagnostic (only Label and
// Position set) for empty rule-sets and compares typeverify.Undefined for
// the others, so a rule-set listing TagUndefined makes a position optional.
// MissingReport always uses the missing-argument form. Repeated tails are
// always optional.
//
// # Results
//
// Check returns a Result; ArgumentsVerify returns only the passed flag;
// VerifyWith hands the outcome to a consumer and returns its value. A
// ResultHandler set with WithResultHandler is called exactly once per call,
// synchronously. A Verifier binds default options (label, handler, logger,
// comparator) for repeated use.
//
// Nothing in the package holds mutable state, so every function and Verifier
// is safe for concurrent use.
package argverify
