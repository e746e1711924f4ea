package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/loglens/loglens/internal/deps"
)

// RunWithGolden executes a scenario and compares its rendered report
// and canonical dependency set against the golden file
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) (*Outcome, error) {
	t.Helper()

	out, err := Run(sc)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, sc.Name, out)
	return out, nil
}

// AssertGolden compares an already computed outcome against the golden
// file for the given scenario name.
func AssertGolden(t *testing.T, scenarioName string, out *Outcome) {
	t.Helper()

	var b strings.Builder
	b.WriteString(out.Report.Render())
	b.WriteString("\nCanonical dependencies:\n")
	for _, d := range out.Canonical {
		b.WriteString(deps.Encode(d))
		b.WriteString("\n")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, []byte(b.String()))
}
