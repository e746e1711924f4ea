package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// Profile is an analysis profile: the tunable parameters of a matrix
// run, loadable from a CUE file so a team can pin and share them.
type Profile struct {
	// TemporalThreshold is the vote share required for a temporal
	// relation, in [0,1].
	TemporalThreshold float64 `json:"temporalThreshold"`

	// ExistentialThreshold is the evidence share required for an
	// existential relation, in [0,1].
	ExistentialThreshold float64 `json:"existentialThreshold"`

	// CellWidth is the rendered matrix column width.
	CellWidth int `json:"cellWidth"`

	// Input selects the log source format and, for SQLite, the event
	// query.
	Input InputOptions `json:"input"`
}

// DefaultProfile is the profile used when no file is given: exact
// thresholds, default rendering, auto-detected input.
func DefaultProfile() Profile {
	return Profile{
		TemporalThreshold:    1.0,
		ExistentialThreshold: 1.0,
		CellWidth:            0,
		Input:                InputOptions{Format: FormatAuto},
	}
}

// profileSchema constrains and defaults profile files. Files only need
// to state the fields they change.
const profileSchema = `
profile: {
	temporalThreshold:    number & >=0 & <=1 | *1.0
	existentialThreshold: number & >=0 & <=1 | *1.0
	cellWidth:            int & >=0 | *0
	input: {
		format: "auto" | "text" | "xes" | "sqlite" | *"auto"
		query:  string | *""
	}
}
`

// LoadProfile reads an analysis profile from a CUE file and validates
// it against the profile schema.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(profileSchema)
	if err := schema.Err(); err != nil {
		return Profile{}, fmt.Errorf("profile schema: %w", err)
	}

	file := ctx.CompileBytes(data, cue.Filename(path))
	if err := file.Err(); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %s", errors.Details(err, nil))
	}

	merged := schema.Unify(file)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %s", errors.Details(err, nil))
	}

	var out struct {
		Profile struct {
			TemporalThreshold    float64 `json:"temporalThreshold"`
			ExistentialThreshold float64 `json:"existentialThreshold"`
			CellWidth            int     `json:"cellWidth"`
			Input                struct {
				Format string `json:"format"`
				Query  string `json:"query"`
			} `json:"input"`
		} `json:"profile"`
	}
	if err := merged.Decode(&out); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}

	return Profile{
		TemporalThreshold:    out.Profile.TemporalThreshold,
		ExistentialThreshold: out.Profile.ExistentialThreshold,
		CellWidth:            out.Profile.CellWidth,
		Input: InputOptions{
			Format: out.Profile.Input.Format,
			Query:  out.Profile.Input.Query,
		},
	}, nil
}
