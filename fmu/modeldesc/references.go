package modeldesc

import "github.com/scenario-fmu/scenario-fmu/fmu/scenario"

const (
	// ScenarioInputName is the string parameter that embeds the encoded scenario.
	ScenarioInputName = "scenario_input"
	// ScenarioInputReference is the value reference of ScenarioInputName.
	ScenarioInputReference = 0
)

// Reference locates one scenario output in the descriptor.
type Reference struct {
	Name string
	// ValueReference is the FMI handle: list position + 1, after scenario_input.
	ValueReference uint32
	// StructureIndex is the 1-based position in ModelVariables: list position + 2.
	StructureIndex int
}

// References numbers every variable of l. Both the ModelVariables and the
// ModelStructure sections are built from its result.
func References(l scenario.List) []Reference {
	refs := make([]Reference, len(l))
	for i, v := range l {
		refs[i] = Reference{
			Name:           v.Name,
			ValueReference: uint32(i) + ScenarioInputReference + 1,
			StructureIndex: i + 2,
		}
	}
	return refs
}
