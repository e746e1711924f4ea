package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loglens/loglens/internal/deps"
	"github.com/loglens/loglens/internal/testutil"
)

const scenarioTable = `
a,b:d,f i,b
a,c:e,f e
b,c:-,- ne
`

func TestDiscover_CanonicalSet(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\na,b\na,c\n")
	classifier := testutil.NewTableClassifier(scenarioTable)

	canonical := Discover(log, classifier)

	// k=3 activities: exactly k·(k−1)/2 = 3 unordered pairs, kept in
	// sorted order with the lexicographically smaller endpoint first.
	require.Len(t, canonical, 3)
	assert.Equal(t, "a", canonical[0].From)
	assert.Equal(t, "b", canonical[0].To)
	assert.Equal(t, "a", canonical[1].From)
	assert.Equal(t, "c", canonical[1].To)
	assert.Equal(t, "b", canonical[2].From)
	assert.Equal(t, "c", canonical[2].To)

	seen := make(map[[2]string]struct{})
	for _, d := range canonical {
		_, fwd := seen[[2]string{d.From, d.To}]
		_, rev := seen[[2]string{d.To, d.From}]
		assert.False(t, fwd || rev, "duplicate unordered pair %s/%s", d.From, d.To)
		seen[[2]string{d.From, d.To}] = struct{}{}
	}
}

func TestDiscover_Idempotent(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\na,c\n")
	classifier := testutil.NewTableClassifier(scenarioTable)

	first := Discover(log, classifier)
	second := Discover(log, classifier)
	assert.Equal(t, first, second)
}

func TestEvaluate_PerfectHypothesis(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\na,c\nb,c\n")
	classifier := testutil.NewTableClassifier(scenarioTable)

	hypotheses, err := deps.DecodeAll(scenarioTable)
	require.NoError(t, err)

	score := Evaluate(hypotheses, log, classifier)

	assert.Equal(t, Score{
		CorrectTemporal:    3,
		TotalTemporal:      3,
		CorrectExistential: 3,
		TotalExistential:   3,
	}, score)

	ratio, ok := score.TemporalAccuracy()
	require.True(t, ok)
	assert.Equal(t, 1.0, ratio)
}

func TestEvaluate_SymmetricKindIgnoresDirection(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\nb,c\n")
	classifier := testutil.NewTableClassifier("b,c:-,- ne")

	// The hypothesis states a direction for a symmetric kind; it still
	// counts as correct because only the kind is compared.
	hypotheses, err := deps.DecodeAll("b,c:-,- ne,f")
	require.NoError(t, err)

	score := Evaluate(hypotheses, log, classifier)
	assert.Equal(t, 1, score.CorrectExistential)
}

func TestEvaluate_ImplicationRequiresFullEquality(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\n")
	classifier := testutil.NewTableClassifier("a,b:d,f i,b")

	testCases := []struct {
		name            string
		hypothesis      string
		wantTemporal    int
		wantExistential int
	}{
		{"exact match", "a,b:d,f i,b", 1, 1},
		{"wrong existential direction", "a,b:d,f i,f", 1, 0},
		{"wrong temporal kind", "a,b:e,f i,b", 0, 1},
		// A reversed hypothesis matches the unordered pair but fails
		// structural equality on both asymmetric axes.
		{"reversed endpoints", "b,a:d,b i,f", 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hypotheses, err := deps.DecodeAll(tc.hypothesis)
			require.NoError(t, err)

			score := Evaluate(hypotheses, log, classifier)
			assert.Equal(t, tc.wantTemporal, score.CorrectTemporal)
			assert.Equal(t, tc.wantExistential, score.CorrectExistential)
		})
	}
}

func TestEvaluate_BothAbsentExistentialCounts(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\n")
	classifier := testutil.NewTableClassifier("a,b:d,f -,-")

	hypotheses, err := deps.DecodeAll("a,b:d,f -,-")
	require.NoError(t, err)

	score := Evaluate(hypotheses, log, classifier)
	assert.Equal(t, 1, score.CorrectTemporal)
	assert.Equal(t, 1, score.CorrectExistential)
}

func TestEvaluate_UnmatchedPairCountsTowardTotals(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\n")
	classifier := testutil.NewTableClassifier("a,b:d,f i,b")

	// x/y never occurs in the log, so no canonical counterpart exists.
	hypotheses, err := deps.DecodeAll("a,b:d,f i,b\nx,y:d,f i,b\n")
	require.NoError(t, err)

	score := Evaluate(hypotheses, log, classifier)
	assert.Equal(t, 1, score.CorrectTemporal)
	assert.Equal(t, 2, score.TotalTemporal)
	assert.Equal(t, 1, score.CorrectExistential)
	assert.Equal(t, 2, score.TotalExistential)
}

func TestEvaluate_EmptyHypothesisSetIsNoData(t *testing.T) {
	log := testutil.MustParseLog(t, "a,b\n")
	classifier := testutil.NewTableClassifier("")

	score := Evaluate(nil, log, classifier)

	assert.True(t, score.NoData())
	_, ok := score.TemporalAccuracy()
	assert.False(t, ok)
	_, ok = score.ExistentialAccuracy()
	assert.False(t, ok)
}
