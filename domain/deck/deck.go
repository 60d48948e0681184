package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// PackSize is the number of cards in one pack.
const PackSize = 52

var (
	// ErrEmptyDeck is returned when drawing from an exhausted deck.
	ErrEmptyDeck = errors.New("deck is empty")
	// ErrJokerAlreadySet is returned when a deck already has a joker rank.
	ErrJokerAlreadySet = errors.New("joker already designated")
)

// Deck holds the cards that have not been dealt yet. Index 0 is the top.
type Deck struct {
	packs     int
	cards     []Card
	jokers    JokerSet
	indicator *Card
	rng       *rand.Rand
}

// Option configures a Deck.
type Option func(*Deck)

// WithRand makes the deck use r for shuffling and joker selection.
func WithRand(r *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = r
	}
}

// NewDeck builds an unshuffled deck of packs × 52 cards. Cards are laid out
// pack by pack, suit by suit (Hearts, Clubs, Spades, Diamonds) and Ace to
// King within a suit, so the order is reproducible.
func NewDeck(packs int, opts ...Option) (*Deck, error) {
	if packs < 1 {
		return nil, fmt.Errorf("deck needs at least one pack, got %d", packs)
	}
	d := &Deck{
		packs:  packs,
		cards:  make([]Card, 0, packs*PackSize),
		jokers: JokerSet{},
	}
	for i := 0; i < packs; i++ {
		for _, s := range Suits {
			for r := Ace; r <= King; r++ {
				d.cards = append(d.cards, Card{suit: s, rank: r})
			}
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = ProcessRand()
	}
	return d, nil
}

// Packs returns the number of packs the deck was built from.
func (d *Deck) Packs() int {
	return d.packs
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards, top first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DesignateJoker picks a card at random, takes it out of play as the joker
// indicator and marks every card of the same rank as a joker. A deck has at
// most one joker rank.
func (d *Deck) DesignateJoker() (Card, error) {
	if d.indicator != nil {
		return Card{}, ErrJokerAlreadySet
	}
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	i := d.rng.IntN(len(d.cards))
	c := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)
	d.indicator = &c
	d.jokers[c.rank] = true
	return c, nil
}

// Jokers returns the deck's joker ranks.
func (d *Deck) Jokers() JokerSet {
	return d.jokers
}

// Indicator returns the card removed by DesignateJoker, if any.
func (d *Deck) Indicator() (Card, bool) {
	if d.indicator == nil {
		return Card{}, false
	}
	return *d.indicator, true
}

// Total returns the number of cards in circulation: every card built for
// the deck minus the joker indicator.
func (d *Deck) Total() int {
	n := d.packs * PackSize
	if d.indicator != nil {
		n--
	}
	return n
}
