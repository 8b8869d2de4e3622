package modeldesc

import (
	"encoding/xml"
	"fmt"

	"github.com/scenario-fmu/scenario-fmu/fmu/scenario"
)

// Parse reads a modelDescription.xml document.
func Parse(data []byte) (*ModelDescription, error) {
	var md ModelDescription
	if err := xml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parsing model description: %w", err)
	}
	return &md, nil
}

// Variable returns the scalar variable named name.
func (md *ModelDescription) Variable(name string) (ScalarVariable, bool) {
	for _, v := range md.ModelVariables {
		if v.Name == name {
			return v, true
		}
	}
	return ScalarVariable{}, false
}

// Outputs returns the output-causality variables in declaration order.
func (md *ModelDescription) Outputs() []ScalarVariable {
	var out []ScalarVariable
	for _, v := range md.ModelVariables {
		if v.Causality == causalityOutput {
			out = append(out, v)
		}
	}
	return out
}

// Scenario decodes the scenario embedded in the scenario_input start value.
func (md *ModelDescription) Scenario() (scenario.List, error) {
	v, ok := md.Variable(ScenarioInputName)
	if !ok || v.String == nil {
		return nil, fmt.Errorf("model description has no %s string parameter", ScenarioInputName)
	}
	if v.String.Start == "" {
		return scenario.List{}, nil
	}
	return scenario.Decode(v.String.Start)
}
