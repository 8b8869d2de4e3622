package cmd

import (
	"fmt"
	"os"
	"strings"
)

// readScenario returns the scenario text from --scenario-data or --scenario-file.
// A single trailing newline in the file is dropped; empty means "use the defaults".
func readScenario(data, file string) (string, error) {
	if data != "" && file != "" {
		return "", fmt.Errorf("--scenario-data and --scenario-file are mutually exclusive")
	}
	if file == "" {
		return data, nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading scenario file: %w", err)
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
