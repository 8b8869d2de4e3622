package ssp

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type is the value type of an SSP parameter.
type Type int

const (
	TypeString Type = iota
	TypeReal
	TypeInteger
	TypeBoolean
)

var typeNames = [...]string{
	TypeString:  "String",
	TypeReal:    "Real",
	TypeInteger: "Integer",
	TypeBoolean: "Boolean",
}

func (t Type) valid() bool { return t >= 0 && int(t) < len(typeNames) }

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// UnsupportedTypeError reports a type token outside String, Real, Integer and Boolean.
type UnsupportedTypeError struct {
	Token string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported parameter type %q; valid: String, Real, Integer, Boolean", e.Token)
}

// ParseType capitalizes token ("real", "REAL" -> "Real") and maps it to a Type.
func ParseType(token string) (Type, error) {
	norm := cases.Title(language.Und).String(token)
	for t, name := range typeNames {
		if name == norm {
			return Type(t), nil
		}
	}
	return 0, &UnsupportedTypeError{Token: token}
}
