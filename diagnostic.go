package argverify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/argverify/pkg/typeverify"
)

// Diagnostic describes the first failing argument position.
//
// In the missing-argument form only Label and Position are set; otherwise
// Value holds the offending argument (typeverify.Undefined when it was absent)
// and Expected/Actual hold the comparator's shapes.
type Diagnostic struct {
	Label    string            `json:"label,omitempty"`
	Position int               `json:"position"`
	Value    any               `json:"value,omitempty"`
	Expected *typeverify.Shape `json:"expected,omitempty"`
	Actual   *typeverify.Shape `json:"actual,omitempty"`
}

// Missing reports whether the argument was required but not supplied.
func (d *Diagnostic) Missing() bool {
	return d.Expected == nil && d.Actual == nil
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString("argverify: ")
	if d.Label != "" {
		b.WriteString(d.Label)
		b.WriteString(": ")
	}
	if d.Missing() {
		fmt.Fprintf(&b, "argument %d is missing", d.Position)
		return b.String()
	}

	fmt.Fprintf(&b, "argument %d: expected %s", d.Position, shapeString(d.Expected))
	fmt.Fprintf(&b, ", got %s", shapeString(d.Actual))
	return b.String()
}

// TranslationKey returns an i18n key for the failure kind.
func (d *Diagnostic) TranslationKey() string {
	if d.Missing() {
		return "argverify.missing"
	}
	return "argverify.mismatch"
}

// TranslationValues returns the values referenced by TranslationKey.
func (d *Diagnostic) TranslationValues() map[string]any {
	values := map[string]any{
		"label":    d.Label,
		"position": d.Position,
	}
	if d.Expected != nil {
		values["expected"] = d.Expected.String()
	}
	if d.Actual != nil {
		values["actual"] = d.Actual.String()
	}
	return values
}

func shapeString(s *typeverify.Shape) string {
	if s == nil {
		return "type[] instance[]"
	}
	return s.String()
}

// Result is the outcome of one verification.
type Result struct {
	Passed     bool
	Diagnostic *Diagnostic
}

// Err returns the diagnostic as an error, or nil when verification passed.
func (r Result) Err() error {
	if r.Diagnostic == nil {
		return nil
	}
	return r.Diagnostic
}

// ExtractDiagnostic returns the Diagnostic wrapped in err, if any.
func ExtractDiagnostic(err error) *Diagnostic {
	if err == nil {
		return nil
	}

	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return nil
}

// IsDiagnostic reports whether err wraps a Diagnostic.
func IsDiagnostic(err error) bool {
	return ExtractDiagnostic(err) != nil
}
