package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scenario-fmu/scenario-fmu/fmu/modeldesc"
	"github.com/scenario-fmu/scenario-fmu/fmu/scenario"
	"github.com/scenario-fmu/scenario-fmu/fmu/ssp"
)

var (
	sspName         string
	sspOut          string
	sspScenarioData string
	sspScenarioFile string
	sspParams       []string
)

var sspCmd = &cobra.Command{
	Use:   "ssp-params",
	Short: "Write an SSP parameter set (.ssv) carrying scenario_input",
	Long: "Write an SSP 1.0 ParameterSet with a scenario_input String parameter and any " +
		"extra --param name:type=value entries (type: string, real, integer, boolean).",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readScenario(sspScenarioData, sspScenarioFile)
		if err != nil {
			return err
		}
		set, err := buildParameterSet(sspName, text, sspParams)
		if err != nil {
			return err
		}
		return set.WriteFile(sspOut)
	},
}

// buildParameterSet starts with scenario_input and appends each name:type[=value] spec.
// Non-empty scenario text is decoded first so malformed lines fail here.
func buildParameterSet(name, scenarioText string, params []string) (*ssp.ParameterSet, error) {
	if scenarioText != "" {
		if _, err := scenario.Decode(scenarioText); err != nil {
			return nil, err
		}
	}
	set := ssp.NewParameterSet(name).AddString(modeldesc.ScenarioInputName, scenarioText)
	for _, p := range params {
		pname, ptype, pvalue, err := parseParamSpec(p)
		if err != nil {
			return nil, err
		}
		if err := set.Add(pname, ptype, pvalue); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// parseParamSpec splits "gain:real=2.5" into ("gain", "real", "2.5"). The value part is optional.
func parseParamSpec(s string) (name, typ, value string, err error) {
	head, value, _ := strings.Cut(s, "=")
	name, typ, ok := strings.Cut(head, ":")
	if !ok || name == "" || typ == "" {
		return "", "", "", fmt.Errorf("parameter %q: want name:type[=value]", s)
	}
	return name, typ, value, nil
}

func init() {
	sspCmd.Flags().StringVar(&sspName, "name", ssp.DefaultName, "Parameter set name")
	sspCmd.Flags().StringVar(&sspOut, "out", "parameters.ssv", "Output .ssv path")
	sspCmd.Flags().StringVarP(&sspScenarioData, "scenario-data", "s", "", "Scenario data")
	sspCmd.Flags().StringVar(&sspScenarioFile, "scenario-file", "", "Read scenario data from a file")
	sspCmd.Flags().StringArrayVar(&sspParams, "param", nil, "Extra parameter name:type=value (can be repeated)")

	rootCmd.AddCommand(sspCmd)
}
