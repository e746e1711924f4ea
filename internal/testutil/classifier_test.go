package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loglens/loglens/internal/deps"
)

func TestTableClassifier_ForwardLookup(t *testing.T) {
	c := NewTableClassifier("a,b:d,f i,b")

	temporal := c.Temporal("a", "b", nil, 1.0)
	require.NotNil(t, temporal)
	assert.Equal(t, deps.NewTemporal("a", "b", deps.Direct, deps.TemporalForward), temporal)

	existential := c.Existential("a", "b", nil, 1.0)
	require.NotNil(t, existential)
	assert.Equal(t, deps.Implication, existential.Kind)
	assert.Equal(t, deps.ExistentialBackward, existential.Direction)
}

func TestTableClassifier_MirroredLookup(t *testing.T) {
	c := NewTableClassifier("a,b:d,f i,b")

	// The reversed pair answers with flipped directions and re-homed
	// endpoints, like a real classifier would.
	temporal := c.Temporal("b", "a", nil, 1.0)
	require.NotNil(t, temporal)
	assert.Equal(t, deps.NewTemporal("b", "a", deps.Direct, deps.TemporalBackward), temporal)

	existential := c.Existential("b", "a", nil, 1.0)
	require.NotNil(t, existential)
	assert.Equal(t, deps.NewExistential("b", "a", deps.Implication, deps.ExistentialForward), existential)
}

func TestTableClassifier_SymmetricKindStaysBoth(t *testing.T) {
	c := NewTableClassifier("a,b:-,- e")

	existential := c.Existential("b", "a", nil, 1.0)
	require.NotNil(t, existential)
	assert.Equal(t, deps.ExistentialBoth, existential.Direction)
}

func TestTableClassifier_UnknownPair(t *testing.T) {
	c := NewTableClassifier("a,b:d,f i,b")

	assert.Nil(t, c.Temporal("a", "c", nil, 1.0))
	assert.Nil(t, c.Existential("c", "a", nil, 1.0))
}
