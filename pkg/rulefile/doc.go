// Package rulefile decodes YAML suites of argument-verification cases and runs
// them through argverify.
//
// A suite lists cases, each with a rule spec and an argument list:
//
//	cases:
//	  - name: repeated-tail
//	    label: Sum
//	    rules: [[Function], [Number], 3]
//	    args:
//	      - !func fn
//	      - 1
//	      - "bad"
//	    expect: fail
//	    position: 2
//
// Rule elements are either a list of descriptors or a repeat count.
// Descriptors are type tag names (case-insensitive, see typeverify.ParseTag)
// or {instance: <name>} for a Go type registered on the Parser.
//
// Arguments are plain YAML values (strings, ints, floats, bools, null, lists,
// maps) or one of the local tags !regexp, !date, !func, !error, !uuid and
// !undefined. Unquoted timestamps decode to time.Time.
package rulefile
