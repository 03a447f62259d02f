package argverify

// Verifier holds default options shared by many calls, typically one per
// function or package. Per-call options override the defaults.
// A Verifier is immutable and safe for concurrent use.
type Verifier struct {
	defaults []Option
}

// New creates a Verifier with the given default options.
// Options are validated eagerly, so a bad WithMissingPolicy panics here.
func New(opts ...Option) *Verifier {
	o := defaultOptions()
	o.apply(opts)
	return &Verifier{defaults: append([]Option(nil), opts...)}
}

// Check verifies args against spec.
func (v *Verifier) Check(spec RuleSpec, args []any, opts ...Option) Result {
	o := v.options(opts)
	return o.check(spec, args)
}

// Verify reports whether args pass spec.
func (v *Verifier) Verify(spec RuleSpec, args []any, opts ...Option) bool {
	return v.Check(spec, args, opts...).Passed
}

func (v *Verifier) options(opts []Option) options {
	o := defaultOptions()
	o.apply(v.defaults)
	o.apply(opts)
	return o
}
