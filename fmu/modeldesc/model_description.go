// Package modeldesc generates and parses FMI 2.0 Co-Simulation model descriptions.
//
// The generated modelDescription.xml declares one tunable string parameter,
// scenario_input, holding the encoded scenario, followed by one Real output per
// scenario variable. Output is byte-identical for identical inputs.
package modeldesc

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/scenario-fmu/scenario-fmu/fmu/scenario"
)

const (
	FMIVersion     = "2.0"
	GenerationTool = "scenario_fmu"
	Author         = "scenario_fmu"

	causalityParameter = "parameter"
	causalityOutput    = "output"
	variabilityTunable = "tunable"
)

// DuplicateNameError reports two scenario variables sharing a name.
type DuplicateNameError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate variable name %q at positions %d and %d", e.Name, e.First, e.Second)
}

// InvalidTextError reports a name or attribute value holding characters XML cannot
// carry; writing it would silently replace them.
type InvalidTextError struct {
	Field string
	Value string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("%s %q contains characters XML cannot hold", e.Field, e.Value)
}

// ModelDescription mirrors the subset of the FMI 2.0 modelDescription schema this tool
// writes. Field order is element and attribute order in the output.
type ModelDescription struct {
	XMLName                 xml.Name          `xml:"fmiModelDescription"`
	FMIVersion              string            `xml:"fmiVersion,attr"`
	ModelName               string            `xml:"modelName,attr"`
	GUID                    string            `xml:"guid,attr"`
	Author                  string            `xml:"author,attr,omitempty"`
	Version                 string            `xml:"version,attr,omitempty"`
	GenerationTool          string            `xml:"generationTool,attr,omitempty"`
	NumberOfEventIndicators int               `xml:"numberOfEventIndicators,attr"`
	CoSimulation            *CoSimulation     `xml:"CoSimulation"`
	DefaultExperiment       DefaultExperiment `xml:"DefaultExperiment"`
	ModelVariables          []ScalarVariable  `xml:"ModelVariables>ScalarVariable"`
	ModelStructure          ModelStructure    `xml:"ModelStructure"`
}

type CoSimulation struct {
	ModelIdentifier                        string `xml:"modelIdentifier,attr"`
	CanHandleVariableCommunicationStepSize bool   `xml:"canHandleVariableCommunicationStepSize,attr"`
	CanInterpolateInputs                   bool   `xml:"canInterpolateInputs,attr"`
	NeedsExecutionTool                     bool   `xml:"needsExecutionTool,attr"`
	CanBeInstantiatedOnlyOncePerProcess    bool   `xml:"canBeInstantiatedOnlyOncePerProcess,attr"`
	CanNotUseMemoryManagementFunctions     bool   `xml:"canNotUseMemoryManagementFunctions,attr"`
	ProvidesDirectionalDerivative          bool   `xml:"providesDirectionalDerivative,attr"`
}

type DefaultExperiment struct {
	StartTime string `xml:"startTime,attr"`
}

type ScalarVariable struct {
	Name           string      `xml:"name,attr"`
	ValueReference uint32      `xml:"valueReference,attr"`
	Causality      string      `xml:"causality,attr,omitempty"`
	Variability    string      `xml:"variability,attr,omitempty"`
	String         *StringType `xml:"String"`
	Real           *RealType   `xml:"Real"`
}

type StringType struct {
	Start string `xml:"start,attr"`
}

type RealType struct{}

type ModelStructure struct {
	// Outputs is omitted when there are no outputs; the schema forbids an empty list.
	Outputs *Outputs `xml:"Outputs"`
}

type Outputs struct {
	Unknowns []Unknown `xml:"Unknown"`
}

type Unknown struct {
	Index int `xml:"index,attr"`
}

// New assembles the descriptor for id and l without serializing it.
func New(id Identity, l scenario.List) (*ModelDescription, error) {
	if err := checkText(id, l); err != nil {
		return nil, err
	}
	if err := checkUniqueNames(l); err != nil {
		return nil, err
	}
	refs := References(l)

	md := &ModelDescription{
		FMIVersion:              FMIVersion,
		ModelName:               id.ModelName,
		GUID:                    id.GUID,
		Author:                  Author,
		Version:                 id.Version,
		GenerationTool:          GenerationTool,
		NumberOfEventIndicators: 0,
		CoSimulation: &CoSimulation{
			ModelIdentifier:                        id.ModelID,
			CanHandleVariableCommunicationStepSize: true,
		},
		DefaultExperiment: DefaultExperiment{StartTime: "0.0"},
		ModelVariables:    make([]ScalarVariable, 0, len(l)+1),
	}

	md.ModelVariables = append(md.ModelVariables, ScalarVariable{
		Name:           ScenarioInputName,
		ValueReference: ScenarioInputReference,
		Causality:      causalityParameter,
		Variability:    variabilityTunable,
		String:         &StringType{Start: scenario.Encode(l)},
	})
	for _, r := range refs {
		md.ModelVariables = append(md.ModelVariables, ScalarVariable{
			Name:           r.Name,
			ValueReference: r.ValueReference,
			Causality:      causalityOutput,
			Real:           &RealType{},
		})
	}

	if len(refs) > 0 {
		outs := &Outputs{Unknowns: make([]Unknown, len(refs))}
		for i, r := range refs {
			outs.Unknowns[i] = Unknown{Index: r.StructureIndex}
		}
		md.ModelStructure.Outputs = outs
	}
	return md, nil
}

// Generate renders modelDescription.xml for id and l: tab-indented, UTF-8, with an
// XML declaration.
func Generate(id Identity, l scenario.List) ([]byte, error) {
	md, err := New(id, l)
	if err != nil {
		return nil, err
	}
	return md.Marshal()
}

// Marshal serializes md with an XML declaration and tab indentation.
func (md *ModelDescription) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := enc.Encode(md); err != nil {
		return nil, fmt.Errorf("encoding model description: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding model description: %w", err)
	}
	buf.WriteByte('\n')
	logrus.Debugf("model description: %d variables, %d bytes", len(md.ModelVariables), buf.Len())
	return buf.Bytes(), nil
}

func checkUniqueNames(l scenario.List) error {
	seen := make(map[string]int, len(l))
	for i, v := range l {
		if j, ok := seen[v.Name]; ok {
			return &DuplicateNameError{Name: v.Name, First: j, Second: i}
		}
		seen[v.Name] = i
	}
	return nil
}

func checkText(id Identity, l scenario.List) error {
	for _, f := range []struct{ field, value string }{
		{"modelIdentifier", id.ModelID},
		{"modelName", id.ModelName},
		{"guid", id.GUID},
		{"version", id.Version},
	} {
		if !scenario.ValidText(f.value) {
			return &InvalidTextError{Field: f.field, Value: f.value}
		}
	}
	for i, v := range l {
		if !scenario.ValidText(v.Name) {
			return &InvalidTextError{Field: fmt.Sprintf("variable[%d] name", i), Value: v.Name}
		}
		if !scenario.ValidText(v.Interpolation) {
			return &InvalidTextError{Field: fmt.Sprintf("variable %q interpolation", v.Name), Value: v.Interpolation}
		}
	}
	return nil
}
