package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SCENARIO_FMU"

// applyEnv sets every flag not in skip from SCENARIO_FMU_<FLAG_NAME> when that variable
// is set and non-empty. It returns the names it set.
func applyEnv(flags *pflag.FlagSet, skip map[string]bool) (map[string]bool, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	set := map[string]bool{}
	var firstErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if firstErr != nil || skip[f.Name] || f.Name == "help" {
			return
		}
		if err := v.BindEnv(f.Name); err != nil {
			firstErr = err
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		val := v.GetString(f.Name)
		if err := flags.Set(f.Name, val); err != nil {
			firstErr = fmt.Errorf("environment %s_%s: %w", envPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err)
			return
		}
		logrus.Debugf("flag --%s set from environment", f.Name)
		set[f.Name] = true
	})
	return set, firstErr
}
