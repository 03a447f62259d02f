package argverify

import (
	"fmt"

	"github.com/dmitrymomot/argverify/pkg/typeverify"
)

// RuleElement is one raw entry of a RuleSpec: either a RuleSet or a
// RepeatPrevious marker.
type RuleElement interface {
	ruleElement()
}

// RuleSet lists the descriptors acceptable at one position.
// An empty set accepts any value that is present.
type RuleSet []typeverify.Descriptor

func (RuleSet) ruleElement() {}

// RepeatPrevious extends the preceding RuleSet so that it covers up to N
// positions, starting at its own. The covered positions are optional.
type RepeatPrevious int

func (RepeatPrevious) ruleElement() {}

// RuleSpec is the raw, ordered rule declaration for a function's arguments.
type RuleSpec []RuleElement

// Rules builds a RuleSpec.
func Rules(elems ...RuleElement) RuleSpec {
	return RuleSpec(elems)
}

// Set builds a RuleSet from descriptors.
func Set(descriptors ...typeverify.Descriptor) RuleSet {
	return RuleSet(descriptors)
}

// Types builds a RuleSet matching any of the given primitive tags.
func Types(tags ...typeverify.Tag) RuleSet {
	rs := make(RuleSet, 0, len(tags))
	for _, tag := range tags {
		rs = append(rs, typeverify.TypeOf(tag))
	}
	return rs
}

// Any is an empty RuleSet.
func Any() RuleSet {
	return RuleSet{}
}

// Repeat builds a RepeatPrevious marker.
func Repeat(n int) RepeatPrevious {
	return RepeatPrevious(n)
}

// NormalizedRule is the rule for one declared position. Repeated rules cover
// positions p through p+Repeat-1, where p is the rule's index.
type NormalizedRule struct {
	RuleSet  RuleSet
	Repeat   int
	Repeated bool
}

// Normalize resolves repeat markers into the rule-sets they follow.
//
// A repeat marker closes the spec. A leading marker, a negative count, a nil
// element or anything after a marker stops normalization; entries produced
// before that point are kept and the rest is ignored. Use NormalizeStrict to
// get an error instead.
func Normalize(spec RuleSpec) []NormalizedRule {
	rules, _ := normalize(spec)
	return rules
}

// NormalizeStrict is Normalize that reports malformed specs instead of
// truncating them.
func NormalizeStrict(spec RuleSpec) ([]NormalizedRule, error) {
	rules, err := normalize(spec)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func normalize(spec RuleSpec) ([]NormalizedRule, error) {
	rules := make([]NormalizedRule, 0, len(spec))

	for i, elem := range spec {
		switch e := elem.(type) {
		case RuleSet:
			rules = append(rules, NormalizedRule{RuleSet: e})

		case RepeatPrevious:
			if e < 0 {
				return rules, fmt.Errorf("%w: %d at index %d", ErrInvalidRepeatCount, int(e), i)
			}
			if len(rules) == 0 {
				return rules, fmt.Errorf("%w: index %d", ErrRepeatWithoutRuleSet, i)
			}
			last := &rules[len(rules)-1]
			last.Repeat = int(e)
			last.Repeated = true
			if i+1 < len(spec) {
				return rules, fmt.Errorf("%w: index %d", ErrRulesAfterRepeat, i+1)
			}
			return rules, nil

		default:
			return rules, fmt.Errorf("%w: index %d", ErrNilRuleElement, i)
		}
	}

	return rules, nil
}
