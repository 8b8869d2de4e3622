package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenario-fmu/scenario-fmu/fmu/archive"
	"github.com/scenario-fmu/scenario-fmu/fmu/modeldesc"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.fmu>",
	Short: "List an FMU's entries and the scenario embedded in its descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspectFMU(cmd.OutOrStdout(), args[0])
	},
}

// inspectFMU reads an archive the way a co-simulation master would: the descriptor
// alone is enough to recover the scenario and the output value references.
func inspectFMU(w io.Writer, path string) error {
	c, err := archive.Read(path)
	if err != nil {
		return err
	}
	md, err := modeldesc.Parse(c.Descriptor)
	if err != nil {
		return err
	}
	vars, err := md.Scenario()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "FMU: %s\n", path)
	for _, e := range c.Entries {
		fmt.Fprintf(w, "  %s\n", e)
	}
	if md.CoSimulation != nil {
		fmt.Fprintf(w, "modelIdentifier: %s\n", md.CoSimulation.ModelIdentifier)
	}
	fmt.Fprintf(w, "modelName:       %s\n", md.ModelName)
	fmt.Fprintf(w, "guid:            %s\n", md.GUID)
	fmt.Fprintf(w, "version:         %s\n", md.Version)
	fmt.Fprintf(w, "outputs:         %d\n", len(md.Outputs()))

	refs := modeldesc.References(vars)
	for i, v := range vars {
		fmt.Fprintf(w, "  vr=%-5d %-24s %-4s samples=%d start=%g\n",
			refs[i].ValueReference, v.Name, v.Interpolation, len(v.Series), v.StartValue())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
