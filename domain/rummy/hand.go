package rummy

import (
	"fmt"
	"slices"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
)

// Hand is the ordered stash of cards a player holds. The order matters:
// closing reads the hand positionally.
type Hand struct {
	cards []deck.Card
}

// NewHand returns a hand holding a copy of cards.
func NewHand(cards ...deck.Card) *Hand {
	return &Hand{cards: slices.Clone(cards)}
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand in its current order.
func (h *Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// Add appends c. A hand never holds more than MaxHandSize cards.
func (h *Hand) Add(c deck.Card) error {
	if len(h.cards) >= MaxHandSize {
		return fmt.Errorf("%w: cannot hold more than %d cards", ErrHandSize, MaxHandSize)
	}
	h.cards = append(h.cards, c)
	return nil
}

// Index returns the position of the first card equal to c, or -1.
func (h *Hand) Index(c deck.Card) int {
	return slices.Index(h.cards, c)
}

func (h *Hand) Contains(c deck.Card) bool {
	return h.Index(c) >= 0
}

// Remove takes the first card equal to c out of the hand and returns the
// position it held.
func (h *Hand) Remove(c deck.Card) (int, error) {
	i := h.Index(c)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrCardNotInHand, c.ID())
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return i, nil
}

// Insert puts c at position i, clamped to the hand bounds.
func (h *Hand) Insert(i int, c deck.Card) error {
	if len(h.cards) >= MaxHandSize {
		return fmt.Errorf("%w: cannot hold more than %d cards", ErrHandSize, MaxHandSize)
	}
	i = max(0, min(i, len(h.cards)))
	h.cards = slices.Insert(h.cards, i, c)
	return nil
}

// Move relocates what to just before the card before, or to the end of the
// hand when before is nil. All other cards keep their relative order.
func (h *Hand) Move(what deck.Card, before *deck.Card) error {
	from := h.Index(what)
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, what.ID())
	}
	to := len(h.cards) - 1
	if before != nil {
		to = h.Index(*before)
		if to < 0 {
			return fmt.Errorf("%w: %s", ErrCardNotInHand, before.ID())
		}
		if to > from {
			to--
		}
	}
	h.cards = slices.Delete(h.cards, from, from+1)
	h.cards = slices.Insert(h.cards, to, what)
	return nil
}

// Sort orders the hand by ascending rank, ace low. Cards of equal rank keep
// their order.
func (h *Hand) Sort() {
	sortByRank(h.cards, false)
}

// Format renders the hand as space separated tokens, marking jokers.
func (h *Hand) Format(jokers deck.JokerSet) string {
	return jokers.FormatCards(h.cards)
}

func (h *Hand) set(cards []deck.Card) {
	h.cards = slices.Clone(cards)
}
