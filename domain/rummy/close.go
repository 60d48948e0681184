package rummy

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
)

const (
	// HandSize is the number of cards a player holds between turns.
	HandSize = 13
	// MaxHandSize is the number of cards a player may hold after drawing.
	MaxHandSize = HandSize + 1
)

// groupBounds is the fixed layout of a closing hand: three sets of three
// followed by one set of four.
var groupBounds = [...][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 13}}

// Partition splits a 13 card hand into its four positional groups.
func Partition(hand []deck.Card) ([][]deck.Card, error) {
	if len(hand) != HandSize {
		return nil, fmt.Errorf("%w: closing needs %d cards, have %d", ErrHandSize, HandSize, len(hand))
	}
	groups := make([][]deck.Card, len(groupBounds))
	for i, b := range groupBounds {
		groups[i] = slices.Clone(hand[b[0]:b[1]])
	}
	return groups, nil
}

// CanClose reports whether the hand, read positionally as 3-3-3-4, is a
// winning hand: at least one group is a run without jokers and every group
// is a run, a book or a joker run.
func CanClose(hand []deck.Card, jokers deck.JokerSet) bool {
	groups, err := Partition(hand)
	if err != nil {
		return false
	}
	pure := 0
	for _, g := range groups {
		if IsRun(g) {
			pure++
		}
	}
	if pure == 0 {
		return false
	}
	for _, g := range groups {
		if !IsValidSet(g, jokers) {
			return false
		}
	}
	return true
}

type verdict uint8

const (
	unchecked verdict = iota
	invalidSet
	validSet
	pureRun
)

// closeSearch memoises set verdicts per subset of the hand, keyed by a
// bitmask of card positions.
type closeSearch struct {
	hand   []deck.Card
	jokers deck.JokerSet
	memo   map[uint16]verdict
}

func (s *closeSearch) cards(mask uint16) []deck.Card {
	out := make([]deck.Card, 0, bits.OnesCount16(mask))
	for i := range s.hand {
		if mask&(1<<i) != 0 {
			out = append(out, s.hand[i])
		}
	}
	return out
}

func (s *closeSearch) verdict(mask uint16) verdict {
	if v, ok := s.memo[mask]; ok {
		return v
	}
	g := s.cards(mask)
	v := invalidSet
	switch {
	case IsRun(g):
		v = pureRun
	case IsBook(g, s.jokers) || IsRunWithJoker(g, s.jokers):
		v = validSet
	}
	s.memo[mask] = v
	return v
}

// subsets calls fn for every k-element subset of mask until fn returns false.
func subsets(mask uint16, k int, fn func(uint16) bool) bool {
	if k == 0 {
		return fn(0)
	}
	for m := mask; m != 0; m &= m - 1 {
		low := m & -m
		// m only holds bits at or above low, so each subset is seen once
		higher := m &^ low
		if bits.OnesCount16(higher) < k-1 {
			return true
		}
		if !subsets(higher, k-1, func(sub uint16) bool { return fn(low | sub) }) {
			return false
		}
	}
	return true
}

// SearchClose looks for any way to arrange a 13 card hand into three sets of
// three and one set of four that CanClose accepts. It returns the hand
// reordered into that arrangement. The player's own order is tried first.
func SearchClose(hand []deck.Card, jokers deck.JokerSet) ([]deck.Card, bool) {
	if len(hand) != HandSize {
		return nil, false
	}
	if CanClose(hand, jokers) {
		return slices.Clone(hand), true
	}

	s := &closeSearch{hand: hand, jokers: jokers, memo: make(map[uint16]verdict)}
	full := uint16(1)<<HandSize - 1
	var found []uint16

	subsets(full, 4, func(quad uint16) bool {
		vq := s.verdict(quad)
		if vq == invalidSet {
			return true
		}
		rest := full &^ quad
		first := rest & -rest
		return subsets(rest&^first, 2, func(p1 uint16) bool {
			t1 := first | p1
			v1 := s.verdict(t1)
			if v1 == invalidSet {
				return true
			}
			rest2 := rest &^ t1
			first2 := rest2 & -rest2
			return subsets(rest2&^first2, 2, func(p2 uint16) bool {
				t2 := first2 | p2
				t3 := rest2 &^ t2
				v2, v3 := s.verdict(t2), s.verdict(t3)
				if v2 == invalidSet || v3 == invalidSet {
					return true
				}
				if vq != pureRun && v1 != pureRun && v2 != pureRun && v3 != pureRun {
					return true
				}
				found = []uint16{t1, t2, t3, quad}
				return false
			})
		})
	})

	if found == nil {
		return nil, false
	}
	out := make([]deck.Card, 0, HandSize)
	for _, m := range found {
		out = append(out, s.cards(m)...)
	}
	return out, true
}
