package rummy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionType(t *testing.T) {
	tests := map[string]ActionType{
		"M":     ActionMove,
		"p":     ActionPick,
		" t ":   ActionTake,
		"d":     ActionDrop,
		"S":     ActionSort,
		"c":     ActionClose,
		"r":     ActionRules,
		"close": ActionClose,
		"Rules": ActionRules,
		"PICK ": ActionPick,
	}
	for in, want := range tests {
		got, err := ParseActionType(in)
		require.NoErrorf(t, err, "input %q", in)
		assert.Equalf(t, want, got, "input %q", in)
	}

	_, err := ParseActionType("x")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestNeedsCard(t *testing.T) {
	for _, a := range ActionTypes {
		want := a == ActionMove || a == ActionDrop || a == ActionClose
		assert.Equal(t, want, a.NeedsCard(), string(a))
	}
}

func TestParseCloseMode(t *testing.T) {
	mode, err := ParseCloseMode("")
	require.NoError(t, err)
	assert.Equal(t, ClosePositional, mode)

	mode, err = ParseCloseMode(" SEARCH ")
	require.NoError(t, err)
	assert.Equal(t, CloseSearch, mode)

	_, err = ParseCloseMode("greedy")
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "continue", OutcomeContinue.String())
	assert.Equal(t, "turn over", OutcomeTurnOver.String())
	assert.Equal(t, "game over", OutcomeGameOver.String())
}

func TestNewPlayer(t *testing.T) {
	a, b := NewPlayer("ann"), NewPlayer("bea")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 0, a.Hand.Len())
}
