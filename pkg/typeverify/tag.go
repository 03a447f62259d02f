package typeverify

import (
	"reflect"
	"regexp"
	"time"

	"golang.org/x/text/cases"
)

// Tag names a primitive type class a value can belong to.
type Tag string

const (
	TagString    Tag = "String"
	TagNumber    Tag = "Number"
	TagBoolean   Tag = "Boolean"
	TagNull      Tag = "Null"
	TagUndefined Tag = "Undefined"
	TagArray     Tag = "Array"
	TagObject    Tag = "Object"
	TagFunction  Tag = "Function"
	TagRegExp    Tag = "RegExp"
	TagDate      Tag = "Date"
	TagError     Tag = "Error"
)

// Tags lists every known tag in a stable order.
func Tags() []Tag {
	return []Tag{
		TagString, TagNumber, TagBoolean, TagNull, TagUndefined, TagArray,
		TagObject, TagFunction, TagRegExp, TagDate, TagError,
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands in for an argument that was not supplied at all.
// It is the only value tagged TagUndefined.
var Undefined any = undefined{}

// ParseTag resolves a tag by name, ignoring case ("regexp" -> TagRegExp).
func ParseTag(name string) (Tag, error) {
	folder := cases.Fold()
	want := folder.String(name)
	for _, tag := range Tags() {
		if folder.String(string(tag)) == want {
			return tag, nil
		}
	}
	return "", &UnknownTagError{Name: name}
}

// TagOf classifies a value. Untyped nil and nil pointers are Null; pointers
// to non-struct values take the tag of the value they point to.
func TagOf(v any) Tag {
	switch v.(type) {
	case nil:
		return TagNull
	case undefined:
		return TagUndefined
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return TagNull
	}

	switch v.(type) {
	case regexp.Regexp, *regexp.Regexp:
		return TagRegExp
	case time.Time, *time.Time:
		return TagDate
	case error:
		return TagError
	}

	switch rv.Kind() {
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return TagNumber
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Func:
		return TagFunction
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return TagObject
		}
		return TagOf(rv.Elem().Interface())
	default:
		return TagObject
	}
}
