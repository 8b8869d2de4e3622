package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scenario-fmu/scenario-fmu/fmu/archive"
	"github.com/scenario-fmu/scenario-fmu/fmu/modeldesc"
	"github.com/scenario-fmu/scenario-fmu/fmu/scenario"
)

var (
	fmuOut           string  // Output .fmu path
	modelID          string  // FMI modelIdentifier, also the library base name
	modelName        string  // Human-readable modelName
	guid             string  // GUID to embed; random when empty
	toolVersion      string  // Version written to the descriptor
	binaryDir        string  // Root of <platform>/<libname> prebuilt libraries
	platformName     string  // FMI platform folder; detected when empty
	scenarioData     string  // Scenario text
	scenarioFile     string  // File holding scenario text
	placeholderCount int     // Size of the y1..yN bank used without scenario data
	localTimeUpper   float64 // Upper bound of the t channel in the default bank
	strictScenario   bool    // Reject scenarios failing scenario.List.Validate
)

// packageOptions is everything one packaging run needs.
type packageOptions struct {
	Out            string
	ModelID        string
	ModelName      string
	GUID           string
	Version        string
	BinaryDir      string
	Platform       archive.Platform
	Scenario       string
	Placeholders   int
	LocalTimeUpper float64
	Strict         bool
}

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Package scenario data as an FMI 2.0 Co-Simulation FMU",
	Long: "Generate modelDescription.xml for the scenario variables and zip it with the prebuilt shared library. " +
		"Without scenario data a bank of placeholder outputs y1..yN is declared.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readScenario(scenarioData, scenarioFile)
		if err != nil {
			return err
		}
		plat := archive.DetectPlatform()
		if platformName != "" {
			if plat, err = archive.ParsePlatform(platformName); err != nil {
				return err
			}
		}
		_, err = packageFMU(packageOptions{
			Out:            fmuOut,
			ModelID:        modelID,
			ModelName:      modelName,
			GUID:           guid,
			Version:        toolVersion,
			BinaryDir:      binaryDir,
			Platform:       plat,
			Scenario:       text,
			Placeholders:   placeholderCount,
			LocalTimeUpper: localTimeUpper,
			Strict:         strictScenario,
		})
		return err
	},
}

// packageFMU locates the library, generates the descriptor and assembles the archive.
// The library is located first so a missing binary produces no output at all.
func packageFMU(o packageOptions) (*archive.Result, error) {
	logrus.Info("Locate shared library")
	lib, err := archive.Locate(o.BinaryDir, o.ModelID, o.Platform)
	if err != nil {
		return nil, err
	}
	logrus.Infof("- Using packaged library: %s", lib)

	if o.Placeholders < 0 {
		return nil, fmt.Errorf("placeholders must be non-negative, got %d", o.Placeholders)
	}
	vars, err := scenario.Load(o.Scenario, scenario.Bank(o.LocalTimeUpper, o.Placeholders))
	if err != nil {
		return nil, err
	}
	if o.Strict {
		if err := vars.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scenario: %w", err)
		}
	}

	checkVersion(o.Version)
	id, err := modeldesc.NewIdentity(o.ModelID, o.ModelName, o.GUID, o.Version)
	if err != nil {
		return nil, err
	}
	md, err := modeldesc.Generate(id, vars)
	if err != nil {
		return nil, err
	}

	logrus.Info("Generate fmu structure and content")
	res, err := archive.Assemble(archive.Request{
		Descriptor:  md,
		BinaryPath:  lib,
		Platform:    o.Platform,
		LibraryName: archive.ArchiveLibraryName(o.ModelID, o.Platform),
		OutputPath:  o.Out,
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Created FMU: %s", res.Path)
	logrus.Infof("  modelIdentifier: %s", id.ModelID)
	logrus.Infof("  modelName:       %s", id.ModelName)
	logrus.Infof("  guid:            %s", id.GUID)
	logrus.Infof("  outputs:         %d", len(vars))
	for _, e := range res.Entries {
		logrus.Debugf("  %s", e)
	}
	return res, nil
}

func init() {
	packageCmd.Flags().StringVar(&fmuOut, "out", "./build/scenario.fmu", "Output .fmu path")
	packageCmd.Flags().StringVar(&modelID, "model-id", "scenario", "FMI modelIdentifier (also library base name)")
	packageCmd.Flags().StringVar(&modelName, "model-name", "ScenarioFMU", "Human-readable modelName")
	packageCmd.Flags().StringVar(&guid, "guid", "", "GUID to embed (default: random uuid4)")
	packageCmd.Flags().StringVar(&toolVersion, "tool-version", Version, "Generator version written to the descriptor")
	packageCmd.Flags().StringVar(&binaryDir, "binary-dir", "_binaries", "Directory holding <platform>/<libname> prebuilt libraries")
	packageCmd.Flags().StringVar(&platformName, "platform", "", "Platform folder: linux64, linux32, darwin64, win64, win32 (default: detected)")
	packageCmd.Flags().StringVarP(&scenarioData, "scenario-data", "s", "", "Scenario data; if empty a bank of generic outputs is declared")
	packageCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "Read scenario data from a file")
	packageCmd.Flags().IntVar(&placeholderCount, "placeholders", scenario.DefaultPlaceholderCount, "Number of generic outputs declared without scenario data")
	packageCmd.Flags().Float64Var(&localTimeUpper, "local-time-upper", scenario.DefaultLocalTimeUpper, "Upper bound of the local-time channel t in the generic bank")
	packageCmd.Flags().BoolVar(&strictScenario, "strict", false, "Require t first, unique names, known interpolation tags and ordered times")

	rootCmd.AddCommand(packageCmd)
}
