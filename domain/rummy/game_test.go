package rummy

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
)

// newDealtGame deals an unshuffled two pack deck to alice and bob. Alice
// holds AH 3H 5H 7H 9H JH KH 2C 4C 6C 8C TC QC, the pile shows AS and the
// deck starts at 2S.
func newDealtGame(t *testing.T, opts ...GameOption) *Game {
	t.Helper()
	d, err := deck.NewDeck(2, deck.WithRand(deck.SeededRand(1)))
	require.NoError(t, err)
	g, err := NewGame([]string{"alice", "bob"}, d, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Deal())
	return g
}

func snapshot(g *Game) ([]deck.Card, []deck.Card, int) {
	return g.Current().Hand.Cards(), g.Pile.Cards(), g.Deck.Len()
}

func TestNewGameValidation(t *testing.T) {
	d, err := deck.NewDeck(1)
	require.NoError(t, err)

	_, err = NewGame([]string{"alice"}, d)
	assert.Error(t, err)

	_, err = NewGame([]string{"a", "b", "c", "d"}, d)
	assert.Error(t, err)

	_, err = NewGame([]string{"a", "b", "c"}, d)
	assert.NoError(t, err)

	_, err = NewGame([]string{"a", "b"}, nil)
	assert.Error(t, err)
}

func TestDeal(t *testing.T) {
	g := newDealtGame(t)

	assert.Equal(t, PhaseAwaitingAction, g.Phase)
	for _, p := range g.Players {
		assert.Equal(t, HandSize, p.Hand.Len())
	}
	assert.Equal(t, cards(t, "AH 3H 5H 7H 9H JH KH 2C 4C 6C 8C TC QC"), g.Players[0].Hand.Cards())
	assert.Equal(t, "A♠", g.PileTop())
	assert.Equal(t, 2*deck.PackSize-2*HandSize-1, g.Deck.Len())
	assert.Equal(t, g.Deck.Total(), g.CardCount())

	assert.Error(t, g.Deal())
}

func TestActionBeforeDeal(t *testing.T) {
	d, err := deck.NewDeck(2)
	require.NoError(t, err)
	g, err := NewGame([]string{"alice", "bob"}, d)
	require.NoError(t, err)

	_, err = g.Apply(Action{Type: ActionSort})
	assert.ErrorIs(t, err, ErrNotDealt)
}

func TestDropRejectedWithThirteenCards(t *testing.T) {
	g := newDealtGame(t)
	hand, pile, deckLen := snapshot(g)

	outcome, err := g.Apply(Action{Type: ActionDrop, Card: "AH"})
	assert.ErrorIs(t, err, ErrHandSize)
	assert.Equal(t, OutcomeContinue, outcome)

	gotHand, gotPile, gotDeck := snapshot(g)
	assert.Equal(t, hand, gotHand)
	assert.Equal(t, pile, gotPile)
	assert.Equal(t, deckLen, gotDeck)
	assert.Equal(t, 0, g.CurrentTurn)
}

func TestTakeThenDrop(t *testing.T) {
	g := newDealtGame(t)

	outcome, err := g.Apply(Action{Type: ActionTake})
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, outcome)
	assert.Equal(t, MaxHandSize, g.Current().Hand.Len())
	assert.True(t, g.Current().Hand.Contains(deck.MustParse("2S")))

	_, err = g.Apply(Action{Type: ActionTake})
	assert.ErrorIs(t, err, ErrHandSize)

	outcome, err = g.Apply(Action{Type: ActionDrop, Card: "kh"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeTurnOver, outcome)
	assert.Equal(t, "bob", g.Current().Name)
	assert.Equal(t, "K♡", g.PileTop())
	assert.Equal(t, HandSize, g.Players[0].Hand.Len())
	assert.Equal(t, g.Deck.Total(), g.CardCount())
}

func TestPickFromPile(t *testing.T) {
	g := newDealtGame(t)

	_, err := g.Apply(Action{Type: ActionPick})
	require.NoError(t, err)
	assert.True(t, g.Current().Hand.Contains(deck.MustParse("AS")))
	assert.Equal(t, "Empty pile.", g.PileTop())

	_, err = g.Apply(Action{Type: ActionPick})
	assert.ErrorIs(t, err, ErrHandSize)
}

func TestPickFromEmptyPile(t *testing.T) {
	g := newDealtGame(t)
	_, err := g.Pile.Pop()
	require.NoError(t, err)
	hand, _, _ := snapshot(g)

	_, err = g.Apply(Action{Type: ActionPick})
	assert.ErrorIs(t, err, deck.ErrEmptyPile)
	assert.Equal(t, hand, g.Current().Hand.Cards())
}

func TestTakeFromEmptyDeck(t *testing.T) {
	g := newDealtGame(t)
	for g.Deck.Len() > 0 {
		_, err := g.Deck.Draw()
		require.NoError(t, err)
	}
	hand, _, _ := snapshot(g)

	_, err := g.Apply(Action{Type: ActionTake})
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
	assert.Equal(t, hand, g.Current().Hand.Cards())
}

func TestMoveAndSort(t *testing.T) {
	g := newDealtGame(t)

	_, err := g.Apply(Action{Type: ActionMove, Card: "QC", Target: "AH"})
	require.NoError(t, err)
	assert.Equal(t, deck.MustParse("QC"), g.Current().Hand.Cards()[0])

	_, err = g.Apply(Action{Type: ActionMove, Card: "QC"})
	require.NoError(t, err)
	assert.Equal(t, deck.MustParse("QC"), g.Current().Hand.Cards()[HandSize-1])

	_, err = g.Apply(Action{Type: ActionSort})
	require.NoError(t, err)
	assert.Equal(t, cards(t, "AH 2C 3H 4C 5H 6C 7H 8C 9H TC JH QC KH"), g.Current().Hand.Cards())
}

func TestCardErrors(t *testing.T) {
	g := newDealtGame(t)

	_, err := g.Apply(Action{Type: ActionMove, Card: "1H"})
	assert.ErrorIs(t, err, deck.ErrInvalidCard)

	_, err = g.Apply(Action{Type: ActionMove, Card: "2H"})
	assert.ErrorIs(t, err, ErrCardNotInHand)

	_, err = g.Apply(Action{Type: ActionMove, Card: "AH", Target: "2H"})
	assert.ErrorIs(t, err, ErrCardNotInHand)

	_, err = g.Apply(Action{Type: "shuffle"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestFailedCloseRestoresHandAndPile(t *testing.T) {
	g := newDealtGame(t)
	_, err := g.Apply(Action{Type: ActionTake})
	require.NoError(t, err)
	hand, pile, deckLen := snapshot(g)

	outcome, err := g.Apply(Action{Type: ActionClose, Card: "7H"})
	assert.ErrorIs(t, err, ErrInvalidClose)
	assert.Equal(t, OutcomeContinue, outcome)

	gotHand, gotPile, gotDeck := snapshot(g)
	assert.Equal(t, hand, gotHand)
	assert.Equal(t, pile, gotPile)
	assert.Equal(t, deckLen, gotDeck)
	assert.Equal(t, PhaseAwaitingAction, g.Phase)
	assert.Equal(t, "alice", g.Current().Name)
}

func TestCloseNeedsFourteenCards(t *testing.T) {
	g := newDealtGame(t)

	_, err := g.Apply(Action{Type: ActionClose, Card: "AH"})
	assert.ErrorIs(t, err, ErrHandSize)
}

func TestSuccessfulClose(t *testing.T) {
	g := newDealtGame(t)
	g.Current().Hand.set(append(cards(t, winningHand), deck.MustParse("2C")))

	outcome, err := g.Apply(Action{Type: ActionClose, Card: "2C"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeGameOver, outcome)
	assert.Equal(t, PhaseOver, g.Phase)
	require.NotNil(t, g.Winner)
	assert.Equal(t, "alice", g.Winner.Name)
	assert.Equal(t, "2♣", g.PileTop())
	assert.Equal(t, cards(t, winningHand), g.Winner.Hand.Cards())

	outcome, err = g.Apply(Action{Type: ActionSort})
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, OutcomeGameOver, outcome)
}

func TestCloseModes(t *testing.T) {
	scrambled := "KS 3D 4H 9C QS 5H 3S 9D TS 6H 3C 9S JS 2C"

	positional := newDealtGame(t)
	positional.Current().Hand.set(cards(t, scrambled))
	_, err := positional.Apply(Action{Type: ActionClose, Card: "2C"})
	assert.ErrorIs(t, err, ErrInvalidClose)
	assert.Equal(t, cards(t, scrambled), positional.Current().Hand.Cards())

	search := newDealtGame(t, WithRules(Rules{CloseMode: CloseSearch}))
	search.Current().Hand.set(cards(t, scrambled))
	outcome, err := search.Apply(Action{Type: ActionClose, Card: "2C"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeGameOver, outcome)
	assert.True(t, CanClose(search.Winner.Hand.Cards(), nil))
}

func TestJournalRecordsEveryAction(t *testing.T) {
	g := newDealtGame(t)
	alice := g.Current()

	_, err := g.Apply(Action{Type: ActionDrop, Card: "AH"})
	require.Error(t, err)
	_, err = g.Apply(Action{Type: ActionTake})
	require.NoError(t, err)

	j := g.Journal()
	require.NoError(t, j.Verify())
	require.Equal(t, 4, j.Len()) // genesis, deal, drop, take

	rejected, err := j.Get(2)
	require.NoError(t, err)
	assert.True(t, rejected.Rejected())
	assert.Equal(t, alice.ID.String(), rejected.PlayerID)
	assert.Equal(t, g.Deck.Total(), rejected.CardCount)

	latest := j.Latest()
	assert.False(t, latest.Rejected())
	assert.Equal(t, OutcomeContinue.String(), latest.Outcome)
}

func TestJokerGameConservesCards(t *testing.T) {
	d, err := deck.NewDeck(2, deck.WithRand(deck.SeededRand(9)))
	require.NoError(t, err)
	d.Shuffle()
	indicator, err := d.DesignateJoker()
	require.NoError(t, err)

	g, err := NewGame([]string{"alice", "bob"}, d)
	require.NoError(t, err)
	require.NoError(t, g.Deal())

	assert.Equal(t, 2*deck.PackSize-1, g.CardCount())
	assert.Equal(t, indicator.String(), g.View().Indicator)
	assert.True(t, g.Jokers().IsJoker(indicator))
}

// TestCardCountConserved plays random actions, valid or not, and checks the
// number of cards in play never changes.
func TestCardCountConserved(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		d, err := deck.NewDeck(2, deck.WithRand(deck.SeededRand(seed)))
		require.NoError(t, err)
		d.Shuffle()
		g, err := NewGame([]string{"alice", "bob", "carol"}, d, WithRules(Rules{CloseMode: CloseSearch}))
		require.NoError(t, err)
		require.NoError(t, g.Deal())

		rng := rand.New(rand.NewPCG(seed, 7))
		total := g.Deck.Total()
		for i := 0; i < 400 && g.Phase != PhaseOver; i++ {
			a := Action{Type: ActionTypes[rng.IntN(len(ActionTypes))]}
			hand := g.Current().Hand.Cards()
			if a.Type.NeedsCard() {
				if rng.IntN(5) == 0 {
					a.Card = "ZZ"
				} else {
					a.Card = hand[rng.IntN(len(hand))].ID()
				}
			}
			if a.Type == ActionMove && rng.IntN(2) == 0 {
				a.Target = hand[rng.IntN(len(hand))].ID()
			}

			_, _ = g.Apply(a)
			require.Equalf(t, total, g.CardCount(), "seed %d step %d after %+v", seed, i, a)
			require.GreaterOrEqual(t, g.Current().Hand.Len(), HandSize)
			require.LessOrEqual(t, g.Current().Hand.Len(), MaxHandSize)
		}
		require.NoError(t, g.Journal().Verify())
	}
}
