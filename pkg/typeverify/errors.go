package typeverify

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTag is returned when a tag name does not match any known tag.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrNilType is returned when an instance descriptor is built from a nil reflect.Type.
	ErrNilType = errors.New("instance descriptor requires a non-nil type")
)

// UnknownTagError carries the name that failed to resolve.
type UnknownTagError struct {
	Name string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTag, e.Name)
}

func (e *UnknownTagError) Unwrap() error {
	return ErrUnknownTag
}
