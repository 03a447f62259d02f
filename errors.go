package argverify

import "errors"

// Rule spec errors, reported by NormalizeStrict and raised by WithStrictRules.
var (
	// ErrRepeatWithoutRuleSet is returned when a repeat marker has no rule-set before it.
	ErrRepeatWithoutRuleSet = errors.New("repeat marker must follow a rule-set")

	// ErrInvalidRepeatCount is returned when a repeat marker is negative.
	ErrInvalidRepeatCount = errors.New("repeat count must not be negative")

	// ErrRulesAfterRepeat is returned when elements follow a repeat marker.
	ErrRulesAfterRepeat = errors.New("repeat marker must be the last rule element")

	// ErrNilRuleElement is returned when the spec contains a nil element.
	ErrNilRuleElement = errors.New("rule element is nil")

	// ErrInvalidMissingPolicy is returned when a missing-argument policy name is not recognized.
	ErrInvalidMissingPolicy = errors.New("invalid missing-argument policy")
)
