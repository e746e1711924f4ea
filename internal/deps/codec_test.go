package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_FullRecord(t *testing.T) {
	d, err := Decode("a,b:d,f i,b")
	require.NoError(t, err)

	assert.Equal(t, "a", d.From)
	assert.Equal(t, "b", d.To)
	assert.Equal(t, NewTemporal("a", "b", Direct, TemporalForward), d.Temporal)
	assert.Equal(t, NewExistential("a", "b", Implication, ExistentialBackward), d.Existential)
}

func TestDecode_OmittedExistentialDirectionReadsAsBoth(t *testing.T) {
	d, err := Decode("a,b:d,f e")
	require.NoError(t, err)

	require.NotNil(t, d.Existential)
	assert.Equal(t, Equivalence, d.Existential.Kind)
	assert.Equal(t, ExistentialBoth, d.Existential.Direction)
}

func TestDecode_SpacesAroundSeparators(t *testing.T) {
	// Tokenization is uniform over commas, colons, and spaces, so padded
	// input decodes identically to the compact form.
	padded, err := Decode("a, b : d, f i, b")
	require.NoError(t, err)
	compact, err := Decode("a,b:d,f i,b")
	require.NoError(t, err)

	assert.Equal(t, compact, padded)
}

func TestDecode_AbsentRelations(t *testing.T) {
	testCases := []struct {
		name        string
		line        string
		temporal    bool
		existential bool
	}{
		{"temporal only", "a,b:d,f -,-", true, false},
		{"existential only", "a,b:-,- ne", false, true},
		{"fully independent", "a,b:-,- -,-", false, false},
		{"independent, direction omitted", "a,b:-,- -", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decode(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.temporal, d.Temporal != nil)
			assert.Equal(t, tc.existential, d.Existential != nil)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		line  string
		field string
	}{
		{"missing to", "a", "to"},
		{"missing temporal kind", "a,b", "temporal kind"},
		{"bad temporal kind", "a,b:x,f i,b", "temporal kind"},
		{"missing temporal direction", "a,b:d", "temporal direction"},
		{"bad temporal direction", "a,b:d,x i,b", "temporal direction"},
		{"dash direction with kind", "a,b:d,- i,b", "temporal direction"},
		{"dash kind with direction", "a,b:-,f i,b", "temporal direction"},
		{"missing existential kind", "a,b:d,f", "existential kind"},
		{"bad existential kind", "a,b:d,f x,f", "existential kind"},
		{"bad existential direction", "a,b:d,f i,x", "existential direction"},
		{"dash existential direction with kind", "a,b:d,f i,-", "existential direction"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.line)
			require.Error(t, err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestDecodeAll(t *testing.T) {
	deps, err := DecodeAll(`
a,b:d,f i,b
a,c:e,f i,b
a,d:e,f e

b,c:-,- ne
`)
	require.NoError(t, err)
	require.Len(t, deps, 4)

	assert.Equal(t, "a", deps[0].From)
	assert.Equal(t, "b", deps[0].To)
	assert.Equal(t, NewTemporal("a", "c", Eventual, TemporalForward), deps[1].Temporal)
	assert.Equal(t, NewExistential("a", "d", Equivalence, ExistentialBoth), deps[2].Existential)
	assert.Nil(t, deps[3].Temporal)
	assert.Equal(t, NegatedEquivalence, deps[3].Existential.Kind)
}

func TestDecodeAll_ReportsLineNumber(t *testing.T) {
	_, err := DecodeAll("a,b:d,f i,b\na,c:q,f i,b\n")
	require.Error(t, err)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Line)
	assert.Equal(t, "temporal kind", de.Field)
}

func TestEncode_RoundTrip(t *testing.T) {
	// Decoding a well-formed line and re-encoding it reproduces a
	// semantically equivalent record. A Both direction renders with no
	// token, so its lines are compared against the token-free form.
	lines := []string{
		"a,b:d,f i,b",
		"a,c:e,f i,f",
		"a,d:e,f e",
		"b,e:-,- ne",
		"a,e:d,b -,-",
		"c,d:-,- -,-",
		"x,y:e,b o",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			first, err := Decode(line)
			require.NoError(t, err)

			encoded := Encode(first)
			second, err := Decode(encoded)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestEncode_BothDirectionEmitsNoToken(t *testing.T) {
	d := New("a", "b", nil, NewExistential("a", "b", Equivalence, ExistentialBoth))
	assert.Equal(t, "a,b:-,- e", Encode(d))

	// An explicit Both on read and an omitted token are treated as equal.
	decoded, err := Decode("a,b:-,- e")
	require.NoError(t, err)
	assert.Equal(t, d, decoded)
}

func TestDependency_String(t *testing.T) {
	testCases := []struct {
		name string
		dep  Dependency
		want string
	}{
		{
			"both relations",
			New("a", "b",
				NewTemporal("a", "b", Direct, TemporalForward),
				NewExistential("a", "b", Implication, ExistentialBackward)),
			"d,f,i,b",
		},
		{
			"temporal only",
			New("a", "b", NewTemporal("a", "b", Eventual, TemporalBackward), nil),
			"e,b,-",
		},
		{
			"existential only, symmetric",
			New("a", "b", nil, NewExistential("a", "b", NegatedEquivalence, ExistentialBoth)),
			"-,ne",
		},
		{
			"independent",
			New("a", "b", nil, nil),
			"None",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dep.String())
		})
	}
}
