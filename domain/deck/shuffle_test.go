package deck

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	d, err := NewDeck(2, WithRand(SeededRand(7)))
	require.NoError(t, err)
	before := d.Cards()

	d.Shuffle()
	after := d.Cards()

	require.Len(t, after, len(before))
	assert.NotEqual(t, before, after)

	cmp := func(a, b Card) int {
		if a.suit != b.suit {
			return int(a.suit) - int(b.suit)
		}
		return int(a.rank) - int(b.rank)
	}
	slices.SortFunc(before, cmp)
	slices.SortFunc(after, cmp)
	assert.Equal(t, before, after)
}

func TestShuffleSeededIsReproducible(t *testing.T) {
	a, err := NewDeck(1, WithRand(SeededRand(99)))
	require.NoError(t, err)
	b, err := NewDeck(1, WithRand(SeededRand(99)))
	require.NoError(t, err)

	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestNewSeedVaries(t *testing.T) {
	assert.NotEqual(t, NewSeed(), NewSeed())
}

func TestProcessRandIsShared(t *testing.T) {
	assert.Same(t, ProcessRand(), ProcessRand())
}
