package deps

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeError reports a malformed compact-notation line. It identifies
// the offending field so a caller can surface the failure without
// aborting a whole batch.
type DecodeError struct {
	// Field names the part of the line that failed ("from", "to",
	// "temporal kind", "temporal direction", "existential kind",
	// "existential direction").
	Field string

	// Token is the offending token, empty when the field was missing.
	Token string

	// Line is the 1-based line number for batch decodes, 0 otherwise.
	Line int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	what := "missing " + e.Field
	if e.Token != "" {
		what = fmt.Sprintf("invalid %s %q", e.Field, e.Token)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, what)
	}
	return what
}

func notationTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ':' || r == ' '
	})
}

// Decode parses one compact-notation line into a dependency record.
//
// The line is tokenized uniformly on commas, colons, and spaces, so
// "a,b:d,f i,b" and "a, b : d, f i, b" decode identically. An omitted
// existential direction token defaults to Both.
func Decode(line string) (Dependency, error) {
	tokens := notationTokens(line)
	next := func() (string, bool) {
		if len(tokens) == 0 {
			return "", false
		}
		tok := tokens[0]
		tokens = tokens[1:]
		return tok, true
	}

	from, ok := next()
	if !ok {
		return Dependency{}, &DecodeError{Field: "from"}
	}
	to, ok := next()
	if !ok {
		return Dependency{}, &DecodeError{Field: "to"}
	}

	tok, ok := next()
	if !ok {
		return Dependency{}, &DecodeError{Field: "temporal kind"}
	}
	var tempKind TemporalKind
	switch tok {
	case "d":
		tempKind = Direct
	case "e":
		tempKind = Eventual
	case "-":
		tempKind = 0
	default:
		return Dependency{}, &DecodeError{Field: "temporal kind", Token: tok}
	}

	tok, ok = next()
	if !ok {
		return Dependency{}, &DecodeError{Field: "temporal direction"}
	}
	var tempDir TemporalDirection
	switch tok {
	case "f":
		tempDir = TemporalForward
	case "b":
		tempDir = TemporalBackward
	case "-":
		tempDir = 0
	default:
		return Dependency{}, &DecodeError{Field: "temporal direction", Token: tok}
	}

	// "-" is only valid paired with a "-" kind.
	if (tempKind == 0) != (tempDir == 0) {
		return Dependency{}, &DecodeError{Field: "temporal direction", Token: tok}
	}

	var temporal *TemporalDependency
	if tempKind != 0 {
		temporal = NewTemporal(from, to, tempKind, tempDir)
	}

	tok, ok = next()
	if !ok {
		return Dependency{}, &DecodeError{Field: "existential kind"}
	}
	var exKind ExistentialKind
	switch tok {
	case "i":
		exKind = Implication
	case "e":
		exKind = Equivalence
	case "ne":
		exKind = NegatedEquivalence
	case "n":
		exKind = Nand
	case "o":
		exKind = Or
	case "-":
		exKind = 0
	default:
		return Dependency{}, &DecodeError{Field: "existential kind", Token: tok}
	}

	// The direction token may be omitted entirely, which reads as Both.
	exDir := ExistentialBoth
	if tok, ok = next(); ok {
		switch tok {
		case "f":
			exDir = ExistentialForward
		case "b":
			exDir = ExistentialBackward
		case "-":
			exDir = 0
		default:
			return Dependency{}, &DecodeError{Field: "existential direction", Token: tok}
		}
		if exKind != 0 && exDir == 0 {
			return Dependency{}, &DecodeError{Field: "existential direction", Token: tok}
		}
	}

	var existential *ExistentialDependency
	if exKind != 0 {
		existential = NewExistential(from, to, exKind, exDir)
	}

	return New(from, to, temporal, existential), nil
}

// DecodeAll parses a batch of compact-notation lines, skipping blank
// lines. A malformed line surfaces as a *DecodeError carrying its line
// number; previously decoded records are returned alongside the error.
func DecodeAll(s string) ([]Dependency, error) {
	var out []Dependency
	for i, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		dep, err := Decode(line)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				de.Line = i + 1
			}
			return out, err
		}
		out = append(out, dep)
	}
	return out, nil
}

// Encode renders a dependency record as one compact-notation line.
// Decoding the result yields a semantically equivalent record; note the
// write/read asymmetry for Both-direction existential relations, which
// emit no direction token.
func Encode(d Dependency) string {
	temporal := "-,-"
	if d.Temporal != nil {
		temporal = d.Temporal.String()
	}
	existential := "-,-"
	if d.Existential != nil {
		existential = d.Existential.String()
	}
	return d.From + "," + d.To + ":" + temporal + " " + existential
}
