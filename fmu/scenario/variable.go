// Package scenario implements the textual codec for scenario variables.
//
// One variable per line, lines joined by "\n":
//
//	<name>;<interpolation>;<time>,<value>[;<time>,<value>]...
//
// Decode and Encode are inverses for any text Encode produces.
package scenario

import (
	"fmt"
	"unicode/utf8"
)

// Interpolation tags understood by the scenario runtime. The codec carries the tag
// through verbatim; only Validate checks it against this set.
const (
	Linear          = "L"
	ZeroOrderHold   = "ZOH"
	NearestNeighbor = "NN"
	Cubic           = "C"
)

// LocalTimeName is the conventional name of the first variable, the simulation local-time channel.
const LocalTimeName = "t"

var knownInterpolations = map[string]bool{
	Linear: true, ZeroOrderHold: true, NearestNeighbor: true, Cubic: true,
}

// IsKnownInterpolation reports whether tag is one of L, ZOH, NN or C.
func IsKnownInterpolation(tag string) bool {
	return knownInterpolations[tag]
}

// ValidText reports whether s is valid UTF-8 made only of characters an XML 1.0
// document can carry, so it survives being embedded in a descriptor.
func ValidText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// Point is one (time, value) sample of a series.
type Point struct {
	Time  float64
	Value float64
}

// Variable is one named, interpolated output of a scenario.
type Variable struct {
	Name          string
	Interpolation string
	Series        []Point
}

// StartValue returns the value of the first sample, or 0 for an empty series.
func (v Variable) StartValue() float64 {
	if len(v.Series) == 0 {
		return 0
	}
	return v.Series[0].Value
}

// List is an ordered list of variables. Position is significant: it determines the
// FMI value reference of each output.
type List []Variable

// Names returns the variable names in list order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, v := range l {
		names[i] = v.Name
	}
	return names
}

// Validate applies the strict checks the codec itself does not: every name is non-empty
// and unique, the first variable is the local-time channel, every interpolation tag is
// known and every series is ordered non-decreasing by time.
func (l List) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("scenario has no variables")
	}
	if l[0].Name != LocalTimeName {
		return fmt.Errorf("first variable must be %q, got %q", LocalTimeName, l[0].Name)
	}
	seen := make(map[string]int, len(l))
	for i, v := range l {
		if v.Name == "" {
			return fmt.Errorf("variable[%d]: empty name", i)
		}
		if j, dup := seen[v.Name]; dup {
			return fmt.Errorf("variable[%d]: name %q already used by variable[%d]", i, v.Name, j)
		}
		seen[v.Name] = i
		if !IsKnownInterpolation(v.Interpolation) {
			return fmt.Errorf("variable %q: unknown interpolation %q; valid: L, ZOH, NN, C", v.Name, v.Interpolation)
		}
		for k := 1; k < len(v.Series); k++ {
			if v.Series[k].Time < v.Series[k-1].Time {
				return fmt.Errorf("variable %q: time %v at sample %d precedes %v", v.Name, v.Series[k].Time, k, v.Series[k-1].Time)
			}
		}
	}
	return nil
}
