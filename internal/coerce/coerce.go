// Package coerce tags runtime values with a coarse type and coerces loosely
// typed input (decoded config files, option maps) onto the shape of a default.
//
// Nothing in this package returns an error. A value that does not fit is
// replaced by its default.
package coerce

import (
	"reflect"
	"regexp"
)

// Tag is the coarse runtime type of a value.
type Tag string

const (
	Undefined Tag = "Undefined"
	Null      Tag = "Null"
	Bool      Tag = "Bool"
	Number    Tag = "Number"
	String    Tag = "String"
	Func      Tag = "Func"
	Array     Tag = "Array"
	Object    Tag = "Object"
	Struct    Tag = "Struct"
	Other     Tag = "Other"
)

// Tagged is implemented by values that report their own tag, such as
// ordered maps decoded from manifests.
type Tagged interface {
	TypeTag() Tag
}

// TypeOf returns the tag of x.
func TypeOf(x any) Tag {
	if x == nil {
		return Undefined
	}
	if t, ok := x.(Tagged); ok {
		return t.TypeTag()
	}

	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.String:
		return String
	case reflect.Func:
		if v.IsNil() {
			return Null
		}
		return Func
	case reflect.Slice:
		if v.IsNil() {
			return Null
		}
		return Array
	case reflect.Array:
		return Array
	case reflect.Map:
		if v.IsNil() {
			return Null
		}
		if v.Type().Key().Kind() == reflect.String {
			return Object
		}
		return Other
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return Null
		}
		return TypeOf(v.Elem().Interface())
	case reflect.Struct:
		return Struct
	default:
		return Other
	}
}

// Spec selects tags for Matches: a Tag, a []Tag or a *regexp.Regexp tested
// against the tag name. Anything else matches nothing.
type Spec any

// Matches reports whether the tag of x is selected by spec.
func Matches(x any, spec Spec) bool {
	tag := TypeOf(x)
	switch s := spec.(type) {
	case Tag:
		return tag == s
	case []Tag:
		for _, t := range s {
			if t == tag {
				return true
			}
		}
		return false
	case *regexp.Regexp:
		return s != nil && s.MatchString(string(tag))
	default:
		return false
	}
}

// Coerce returns x when its tag matches the tag of fallback or one of
// allowed, and fallback otherwise.
func Coerce(x, fallback any, allowed ...Tag) any {
	tags := append([]Tag{TypeOf(fallback)}, allowed...)
	if Matches(x, tags) {
		return x
	}
	return fallback
}

// CoercePattern is Coerce with the allowed set given as a pattern over tag
// names. The fallback's own tag is not implied.
func CoercePattern(x, fallback any, pattern *regexp.Regexp) any {
	if Matches(x, pattern) {
		return x
	}
	return fallback
}

// Shape copies obj and fills it in from defaults. Keys missing from obj take
// the default; keys present are coerced to the default's tag or one of the
// extra tags allowed for that key. Keys only in obj are kept as they are.
func Shape(obj, defaults map[string]any, allowed map[string][]Tag) map[string]any {
	out := make(map[string]any, len(obj)+len(defaults))
	for k, v := range obj {
		out[k] = v
	}

	for key, def := range defaults {
		v, ok := obj[key]
		if !ok {
			out[key] = def
			continue
		}
		out[key] = Coerce(v, def, allowed[key]...)
	}

	return out
}

// ShapeAll is Shape with the same extra tags allowed for every key.
func ShapeAll(obj, defaults map[string]any, allowed ...Tag) map[string]any {
	perKey := make(map[string][]Tag, len(defaults))
	for key := range defaults {
		perKey[key] = allowed
	}
	return Shape(obj, defaults, perKey)
}

// Strings collects the string elements of x. Non-array values give nil and
// non-string elements are skipped.
func Strings(x any) []string {
	switch s := x.(type) {
	case []string:
		return append([]string(nil), s...)
	case []any:
		var out []string
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}
