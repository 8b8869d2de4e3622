package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the optional defaults file. Every field maps onto a command flag and is
// applied only when that flag was given neither on the command line nor in the
// environment.
type Config struct {
	ModelID          string   `yaml:"model_id"`
	ModelName        string   `yaml:"model_name"`
	GUID             string   `yaml:"guid"`
	Version          string   `yaml:"version"`
	BinaryDir        string   `yaml:"binary_dir"`
	Platform         string   `yaml:"platform"`
	FMUOut           string   `yaml:"fmu_out"`
	Placeholders     *int     `yaml:"placeholders"`
	LocalTimeUpper   *float64 `yaml:"local_time_upper"`
	Strict           bool     `yaml:"strict"`
	ParameterSetName string   `yaml:"parameter_set_name"`
	SSVOut           string   `yaml:"ssv_out"`
}

// LoadConfig parses a defaults file. Unknown keys are rejected so typos surface.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// flagValues returns the configured values for the flags of the named command.
// Unset fields are left out.
func (c *Config) flagValues(command string) map[string]string {
	vals := map[string]string{}
	put := func(flag, v string) {
		if v != "" {
			vals[flag] = v
		}
	}
	switch command {
	case "package":
		put("model-id", c.ModelID)
		put("model-name", c.ModelName)
		put("guid", c.GUID)
		put("tool-version", c.Version)
		put("binary-dir", c.BinaryDir)
		put("platform", c.Platform)
		put("out", c.FMUOut)
		if c.Placeholders != nil {
			put("placeholders", strconv.Itoa(*c.Placeholders))
		}
		if c.LocalTimeUpper != nil {
			put("local-time-upper", strconv.FormatFloat(*c.LocalTimeUpper, 'g', -1, 64))
		}
		if c.Strict {
			put("strict", "true")
		}
	case "ssp-params":
		put("name", c.ParameterSetName)
		put("out", c.SSVOut)
	}
	return vals
}

// applyOverrides fills flags the user did not set: first from SCENARIO_FMU_* environment
// variables, then from the defaults file.
func applyOverrides(cmd *cobra.Command, cfgPath string) error {
	flags := cmd.Flags()
	explicit := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = true })

	fromEnv, err := applyEnv(flags, explicit)
	if err != nil {
		return err
	}
	// --config itself may come from the environment
	if fromEnv["config"] {
		cfgPath = flags.Lookup("config").Value.String()
	}
	if cfgPath == "" {
		return nil
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	for name, val := range cfg.flagValues(cmd.Name()) {
		if explicit[name] || fromEnv[name] || flags.Lookup(name) == nil {
			continue
		}
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("config %s: %s: %w", cfgPath, name, err)
		}
	}
	return nil
}
