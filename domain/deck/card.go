package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Suit identifies one of the four French suits.
type Suit uint8

// Suits in deck build order.
const (
	Hearts Suit = iota
	Clubs
	Spades
	Diamonds
)

// Suits lists the suits in the order a pack is built.
var Suits = []Suit{Hearts, Clubs, Spades, Diamonds}

// Rank is the face of a card, Ace (1) through King (13).
type Rank uint8

// Rank constants for the ace and the court cards. Pip cards use their number.
const (
	Ace   Rank = 1
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

const (
	rankLetters  = "A23456789TJQK"
	suitInitials = "HCSD"
)

var suitSymbols = [...]string{"♡", "♣", "♠", "♢"}

var suitNames = [...]string{"Hearts", "Clubs", "Spades", "Diamonds"}

// ErrInvalidCard is returned when a card identifier is malformed.
var ErrInvalidCard = errors.New("invalid card identifier")

// Card is an immutable playing card. Two cards with the same rank and suit
// are equal, even when they come from different packs.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Hearts, Clubs, Spades or Diamonds
//   - rank: 1-13 (Ace=1, 2-9 face value, Ten=10, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Diamonds || rank == 0 || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is NewCard for constant cards; it panics on invalid input.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the ordering value of the rank. Ace counts 1, or 14 when
// aceHigh is set; every other rank counts its face value.
func (r Rank) Value(aceHigh bool) int {
	if r == Ace && aceHigh {
		return 14
	}
	return int(r)
}

// IsCourt reports whether the rank is Jack, Queen or King.
func (r Rank) IsCourt() bool {
	return r >= Jack && r <= King
}

func (r Rank) String() string {
	if r == 0 || r > King {
		return "?"
	}
	return string(rankLetters[r-1])
}

// Symbol returns the suit glyph used when rendering a hand.
func (s Suit) Symbol() string {
	if int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return "Unknown"
	}
	return suitNames[s]
}

// String renders the card as rank letter followed by the suit glyph, e.g. "T♡".
func (c Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}

// ID returns the two character identifier players type to name the card,
// e.g. "4H" for the four of hearts or "TS" for the ten of spades.
func (c Card) ID() string {
	if c.suit > Diamonds {
		return c.rank.String() + "?"
	}
	return c.rank.String() + string(suitInitials[c.suit])
}

// ParseCard converts an identifier such as "4H" or "ks" into a Card. The
// first character is the rank (A, 2-9, T, J, Q, K) and the second the suit
// initial (H, C, S, D). Surrounding spaces and letter case are ignored.
func ParseCard(id string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(id))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	r := strings.IndexByte(rankLetters, s[0])
	u := strings.IndexByte(suitInitials, s[1])
	if r < 0 || u < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	return Card{suit: Suit(u), rank: Rank(r + 1)}, nil
}

// MustParse is ParseCard for literals in tests and tables.
func MustParse(id string) Card {
	c, err := ParseCard(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a space separated list of identifiers.
func ParseCards(ids string) ([]Card, error) {
	fields := strings.Fields(ids)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// JokerSet holds the ranks designated as wild for a single deck. The zero
// value has no jokers.
type JokerSet map[Rank]bool

// IsJoker reports whether the card's rank was designated wild.
func (js JokerSet) IsJoker(c Card) bool {
	return js[c.rank]
}

// Format renders a card the way it is shown in a hand: jokers carry a "-J"
// suffix.
func (js JokerSet) Format(c Card) string {
	if js.IsJoker(c) {
		return c.String() + "-J"
	}
	return c.String()
}

// FormatCards renders cards as space separated tokens.
func (js JokerSet) FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = js.Format(c)
	}
	return strings.Join(parts, " ")
}
