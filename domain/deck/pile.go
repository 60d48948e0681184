package deck

import (
	"errors"
	"slices"
)

// ErrEmptyPile is returned when drawing from an empty discard pile.
var ErrEmptyPile = errors.New("pile is empty")

// Pile is the shared discard stack. Index 0 is the most recently dropped card.
type Pile struct {
	cards []Card
}

// Push puts c on top of the pile.
func (p *Pile) Push(c Card) {
	p.cards = slices.Insert(p.cards, 0, c)
}

// Pop removes and returns the top card.
func (p *Pile) Pop() (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	c := p.cards[0]
	p.cards = slices.Delete(p.cards, 0, 1)
	return c, nil
}

// Top returns the top card without removing it.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[0], true
}

func (p *Pile) Len() int {
	return len(p.cards)
}

// Cards returns a copy of the pile, top first.
func (p *Pile) Cards() []Card {
	return slices.Clone(p.cards)
}
