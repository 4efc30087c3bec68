package interpret

import (
	"fmt"
	"strconv"
)

// Value is a runtime value: Nil, Boolean, Number or String.
// Two values are equal with == only if they have the same
// type and the same contents.
type Value interface {
	fmt.Stringer
	value()
}

type Nil struct{}

type Boolean bool

type Number float64

type String string

func (Nil) value()     {}
func (Boolean) value() {}
func (Number) value()  {}
func (String) value()  {}

func (Nil) String() string {
	return "nil"
}

func (b Boolean) String() string {
	return fmt.Sprint(bool(b))
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s String) String() string {
	return string(s)
}

// Truthy reports whether a value counts as true. Only nil and false are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	}
	return true
}

// TypeName returns the name of a value's type as shown in error messages
func TypeName(v Value) string {
	switch v.(type) {
	case Nil:
		return "nil"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}
