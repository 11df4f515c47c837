// Package benchconfig loads the YAML perft benchmark suite consumed by
// the "perft" CLI subcommand's batch mode: a named list of FEN positions
// and the depth each should be counted to, with the node counts expected
// on a clean run for regression comparison. Grounded on the yamlbook
// package's Load/yaml.Unmarshal idiom for a small, hand-editable data
// file rather than a generated one.
package benchconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one benchmark-suite entry.
type Case struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
	Nodes uint64 `yaml:"nodes"`
}

// Suite is an ordered list of benchmark cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and parses a benchmark-suite YAML file.
func Load(filename string) (Suite, error) {
	var data, err = os.ReadFile(filename)
	if err != nil {
		return Suite{}, fmt.Errorf("benchconfig: read %q: %w", filename, err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("benchconfig: parse %q: %w", filename, err)
	}
	return suite, nil
}
