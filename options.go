package argverify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/argverify/pkg/typeverify"
)

// ResultHandler receives the outcome of a verification. It is called exactly
// once per call, synchronously, before the call returns.
type ResultHandler func(d *Diagnostic, passed bool)

// MissingPolicy decides how an absent argument under a bare rule-set is judged.
type MissingPolicy int

const (
	// MissingCompare reports a missing argument for empty rule-sets and lets
	// the comparator judge typeverify.Undefined for non-empty ones.
	MissingCompare MissingPolicy = iota
	// MissingReport reports every absent bare position as a missing argument.
	MissingReport
)

func (p MissingPolicy) String() string {
	switch p {
	case MissingCompare:
		return "compare"
	case MissingReport:
		return "report"
	default:
		return fmt.Sprintf("MissingPolicy(%d)", int(p))
	}
}

// ParseMissingPolicy parses "compare" or "report".
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compare", "":
		return MissingCompare, nil
	case "report":
		return MissingReport, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMissingPolicy, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *MissingPolicy) UnmarshalText(text []byte) error {
	v, err := ParseMissingPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p MissingPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Option configures a verification call or a Verifier.
type Option func(*options)

type options struct {
	label   string
	handler ResultHandler
	compare typeverify.CompareFunc
	logger  *slog.Logger
	missing MissingPolicy
	strict  bool
}

func defaultOptions() options {
	return options{
		compare: typeverify.Verify,
		missing: MissingCompare,
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// WithLabel names the function being checked; the label is copied into
// every diagnostic.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithResultHandler delivers each result to h. Nil handlers are ignored.
func WithResultHandler(h ResultHandler) Option {
	return func(o *options) {
		if h != nil {
			o.handler = h
		}
	}
}

// WithComparator replaces typeverify.Verify. Nil comparators are ignored.
func WithComparator(c typeverify.CompareFunc) Option {
	return func(o *options) {
		if c != nil {
			o.compare = c
		}
	}
}

// WithLogger logs every failed verification at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMissingPolicy sets how absent arguments are judged.
// Panics for unknown policies: a misconfigured verifier should not start.
func WithMissingPolicy(p MissingPolicy) Option {
	return func(o *options) {
		switch p {
		case MissingCompare, MissingReport:
			o.missing = p
		default:
			panic(fmt.Errorf("%w: %s", ErrInvalidMissingPolicy, p))
		}
	}
}

// WithStrictRules makes malformed rule specs panic with the NormalizeStrict
// error instead of being silently truncated.
func WithStrictRules() Option {
	return func(o *options) { o.strict = true }
}
