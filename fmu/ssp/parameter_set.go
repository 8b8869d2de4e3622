// Package ssp writes SSP 1.0 parameter sets (.ssv files).
package ssp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	// NamespaceParameterValues is bound to the ssv prefix.
	NamespaceParameterValues = "http://ssp-standard.org/SSP1/ParameterValues"
	// NamespaceCommon is bound to the ssc prefix.
	NamespaceCommon = "http://ssp-standard.org/SSP1/SystemStructureCommon"

	SchemaVersion = "1.0"
	DefaultName   = "Default"
)

// Parameter is one typed name/value pair. An empty Value is written as value="".
type Parameter struct {
	Name  string
	Type  Type
	Value string
}

// ParameterSet is an ordered, named collection of parameters.
type ParameterSet struct {
	Name   string
	params []Parameter
}

// NewParameterSet returns an empty set called name.
func NewParameterSet(name string) *ParameterSet {
	return &ParameterSet{Name: name}
}

// Add appends a parameter whose type is given as a free-form token. Unknown types
// are rejected here, not when the set is serialized.
func (s *ParameterSet) Add(name, typeToken, value string) error {
	t, err := ParseType(typeToken)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	s.params = append(s.params, Parameter{Name: name, Type: t, Value: value})
	return nil
}

func (s *ParameterSet) AddString(name, value string) *ParameterSet {
	return s.add(name, TypeString, value)
}

func (s *ParameterSet) AddReal(name, value string) *ParameterSet {
	return s.add(name, TypeReal, value)
}

func (s *ParameterSet) AddInteger(name, value string) *ParameterSet {
	return s.add(name, TypeInteger, value)
}

func (s *ParameterSet) AddBoolean(name, value string) *ParameterSet {
	return s.add(name, TypeBoolean, value)
}

// Extend appends ps in order. Nothing is appended if any parameter has a type
// outside String, Real, Integer and Boolean.
func (s *ParameterSet) Extend(ps ...Parameter) error {
	for _, p := range ps {
		if !p.Type.valid() {
			return fmt.Errorf("parameter %q: %w", p.Name, &UnsupportedTypeError{Token: p.Type.String()})
		}
	}
	for _, p := range ps {
		s.add(p.Name, p.Type, p.Value)
	}
	return nil
}

func (s *ParameterSet) add(name string, t Type, value string) *ParameterSet {
	s.params = append(s.params, Parameter{Name: name, Type: t, Value: value})
	return s
}

// Parameters returns a copy of the parameters in insertion order.
func (s *ParameterSet) Parameters() []Parameter {
	return append([]Parameter(nil), s.params...)
}

type parameterSetElem struct {
	XMLName  xml.Name        `xml:"ssv:ParameterSet"`
	NSssv    string          `xml:"xmlns:ssv,attr"`
	NSssc    string          `xml:"xmlns:ssc,attr"`
	Version  string          `xml:"version,attr"`
	Name     string          `xml:"name,attr"`
	Elements []parameterElem `xml:"ssv:Parameters>ssv:Parameter"`
}

type parameterElem struct {
	Name  string `xml:"name,attr"`
	Value typedValueElem
}

type typedValueElem struct {
	XMLName xml.Name
	Value   string `xml:"value,attr"`
}

// Marshal renders the set as a tab-indented UTF-8 document.
func (s *ParameterSet) Marshal() ([]byte, error) {
	root := parameterSetElem{
		NSssv:    NamespaceParameterValues,
		NSssc:    NamespaceCommon,
		Version:  SchemaVersion,
		Name:     s.Name,
		Elements: make([]parameterElem, len(s.params)),
	}
	for i, p := range s.params {
		root.Elements[i] = parameterElem{
			Name: p.Name,
			Value: typedValueElem{
				XMLName: xml.Name{Local: "ssv:" + p.Type.String()},
				Value:   p.Value,
			},
		}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding parameter set %q: %w", s.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding parameter set %q: %w", s.Name, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile marshals the set to path, creating parent directories.
func (s *ParameterSet) WriteFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing parameter set: %w", err)
	}
	logrus.Infof("Wrote parameter set: %s", path)
	return nil
}
