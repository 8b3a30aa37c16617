/*
File    : expert-system/solver/scenarios_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package solver

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/expert-system/eval"
)

// scenarioCase is one named entry of testdata/scenarios.yaml, mirroring the
// end-to-end scenarios of spec §8.
type scenarioCase struct {
	Name    string   `yaml:"name"`
	Rules   []string `yaml:"rules"`
	Initial string   `yaml:"initial"`
	Query   string   `yaml:"query"`
	Expect  string   `yaml:"expect"`
}

func loadScenarios(t *testing.T) []scenarioCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	assert.NoError(t, err)

	var cases []scenarioCase
	assert.NoError(t, yaml.Unmarshal(raw, &cases))
	assert.NotEmpty(t, cases)
	return cases
}

func expectedTruthValue(t *testing.T, name string) eval.TruthValue {
	t.Helper()
	switch name {
	case "True":
		return eval.True
	case "False":
		return eval.False
	case "Unknown":
		return eval.Unknown
	default:
		t.Fatalf("unknown expect value %q", name)
		return eval.Unknown
	}
}

// TestScenarios_FromYAMLFixture re-runs spec §8's named scenarios from a
// YAML fixture, independent of the hand-written Go cases in solver_test.go — a change
// to the solver's behavior that breaks a named scenario shows up here even
// if the corresponding Go test happens to get edited out of sync.
func TestScenarios_FromYAMLFixture(t *testing.T) {
	for _, c := range loadScenarios(t) {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			k := buildKB(t, c.Rules, c.Initial)
			s := NewSession(k)
			got := s.Solve(rune(c.Query[0]))
			assert.Equal(t, expectedTruthValue(t, c.Expect), got, "scenario %s: query %s", c.Name, c.Query)
		})
	}
}
