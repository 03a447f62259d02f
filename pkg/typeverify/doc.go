// Package typeverify classifies Go values into a small set of primitive type
// tags and checks a single value against a list of acceptable descriptors.
//
// A Descriptor matches on one of two axes:
//
//   - the type axis, built with TypeOf, compares the value's Tag
//     (String, Number, Boolean, Null, Undefined, Array, Object, Function,
//     RegExp, Date, Error);
//   - the instance axis, built with InstanceOf or InstanceOfType, compares the
//     value's dynamic Go type.
//
// Mismatches are described with a Shape that keeps both axes apart, so callers
// can tell "expected a Number" from "expected a *regexp.Regexp".
//
// # Usage
//
//	ok := typeverify.Verify(v, []typeverify.Descriptor{
//	    typeverify.TypeOf(typeverify.TagNumber),
//	    typeverify.InstanceOf[time.Duration](),
//	}, func(matched bool, value any, expected, actual typeverify.Shape) {
//	    if !matched {
//	        log.Printf("want %s, got %s", expected, actual)
//	    }
//	})
//
// The package holds no mutable state and is safe for concurrent use.
package typeverify
