package typeverify

import (
	"reflect"
	"strings"
)

// Descriptor identifies one acceptable type for a value. It either names a
// primitive Tag (the type axis) or a Go type (the instance axis).
type Descriptor struct {
	tag Tag
	typ reflect.Type
}

// TypeOf returns a descriptor matching values classified as tag.
func TypeOf(tag Tag) Descriptor {
	return Descriptor{tag: tag}
}

// InstanceOf returns a descriptor matching values of type T. Interface types
// match any implementation.
func InstanceOf[T any]() Descriptor {
	return Descriptor{typ: reflect.TypeFor[T]()}
}

// InstanceOfType is the reflect.Type form of InstanceOf.
// Panics when t is nil.
func InstanceOfType(t reflect.Type) Descriptor {
	if t == nil {
		panic(ErrNilType)
	}
	return Descriptor{typ: t}
}

// IsInstance reports whether d matches on the instance axis.
func (d Descriptor) IsInstance() bool {
	return d.typ != nil
}

// Name returns the tag name or the Go type name.
func (d Descriptor) Name() string {
	if d.typ != nil {
		return d.typ.String()
	}
	return string(d.tag)
}

func (d Descriptor) String() string {
	return d.Name()
}

// Match reports whether v satisfies d. An instance descriptor accepts values
// assignable to its type, and non-nil pointers to such values.
func (d Descriptor) Match(v any) bool {
	if d.typ == nil {
		return TagOf(v) == d.tag
	}

	if v == nil || v == Undefined {
		return false
	}

	vt := reflect.TypeOf(v)
	if vt.AssignableTo(d.typ) {
		return true
	}
	if vt.Kind() == reflect.Pointer && vt.Elem().AssignableTo(d.typ) {
		return !reflect.ValueOf(v).IsNil()
	}
	return false
}

// Shape describes a type set on two axes: primitive tag names and Go
// instance type names.
type Shape struct {
	Type     []string `json:"type" yaml:"type"`
	Instance []string `json:"instance" yaml:"instance"`
}

// ExpectedShape lists the names requested by descriptors, split by axis.
func ExpectedShape(descriptors []Descriptor) Shape {
	s := Shape{Type: []string{}, Instance: []string{}}
	for _, d := range descriptors {
		if d.IsInstance() {
			s.Instance = append(s.Instance, d.Name())
		} else {
			s.Type = append(s.Type, d.Name())
		}
	}
	return s
}

// ActualShape describes v: its tag, and its Go type followed by the pointed-to
// type for pointers. Null and Undefined values have no instance names.
func ActualShape(v any) Shape {
	s := Shape{Type: []string{string(TagOf(v))}, Instance: []string{}}
	if v == nil || v == Undefined {
		return s
	}

	vt := reflect.TypeOf(v)
	s.Instance = append(s.Instance, vt.String())
	if vt.Kind() == reflect.Pointer && !reflect.ValueOf(v).IsNil() {
		s.Instance = append(s.Instance, vt.Elem().String())
	}
	return s
}

func (s Shape) String() string {
	return "type[" + strings.Join(s.Type, " ") + "] instance[" + strings.Join(s.Instance, " ") + "]"
}
