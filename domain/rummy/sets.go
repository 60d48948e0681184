package rummy

import (
	"slices"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
)

// minSetSize is the smallest group that can form a set.
const minSetSize = 3

// sortByRank stable-sorts cards in place by rank value.
func sortByRank(cards []deck.Card, aceHigh bool) {
	slices.SortStableFunc(cards, func(a, b deck.Card) int {
		return a.Rank().Value(aceHigh) - b.Rank().Value(aceHigh)
	})
}

// pushJokersToEnd moves jokers behind the natural cards, keeping the
// relative order of both, and returns how many jokers were moved.
func pushJokersToEnd(cards []deck.Card, jokers deck.JokerSet) int {
	natural := make([]deck.Card, 0, len(cards))
	var wild []deck.Card
	for _, c := range cards {
		if jokers.IsJoker(c) {
			wild = append(wild, c)
		} else {
			natural = append(natural, c)
		}
	}
	copy(cards, natural)
	copy(cards[len(natural):], wild)
	return len(wild)
}

// wantsAceHigh reports whether a rank-sorted group should be read with the
// ace above the king: it starts with an ace followed by a court card.
func wantsAceHigh(sorted []deck.Card) bool {
	return len(sorted) > 1 && sorted[0].Rank() == deck.Ace && sorted[1].Rank().IsCourt()
}

// IsBook reports whether the group is a set of cards of the same rank.
// Jokers stand in for any rank and suits may repeat.
func IsBook(group []deck.Card, jokers deck.JokerSet) bool {
	if len(group) < minSetSize {
		return false
	}
	cards := slices.Clone(group)
	sortByRank(cards, false)

	var first *deck.Card
	for i, c := range cards {
		if jokers.IsJoker(c) {
			continue
		}
		if first == nil {
			first = &cards[i]
			continue
		}
		if c.Rank() != first.Rank() {
			return false
		}
	}
	return true
}

// IsRun reports whether the group is a same-suit sequence of consecutive
// ranks, without any joker substitution. An ace may follow a king (Q-K-A).
func IsRun(group []deck.Card) bool {
	if len(group) < minSetSize {
		return false
	}
	cards := slices.Clone(group)
	sortByRank(cards, false)

	for _, c := range cards {
		if c.Suit() != cards[0].Suit() {
			return false
		}
	}

	aceHigh := wantsAceHigh(cards)
	if aceHigh {
		sortByRank(cards, true)
	}

	for i := 1; i < len(cards); i++ {
		if cards[i].Rank().Value(aceHigh) != cards[i-1].Rank().Value(aceHigh)+1 {
			return false
		}
	}
	return true
}

// IsRunWithJoker reports whether the group is a run once its jokers fill
// the gaps between the natural cards. Every missing rank costs one joker;
// spare jokers extend the run.
func IsRunWithJoker(group []deck.Card, jokers deck.JokerSet) bool {
	if len(group) < minSetSize {
		return false
	}
	cards := slices.Clone(group)
	sortByRank(cards, false)
	jokerCount := pushJokersToEnd(cards, jokers)

	for _, c := range cards {
		if jokers.IsJoker(c) {
			continue
		}
		if c.Suit() != cards[0].Suit() {
			return false
		}
	}

	aceHigh := wantsAceHigh(cards)
	if aceHigh {
		sortByRank(cards, true)
		pushJokersToEnd(cards, jokers)
	}

	for i := 1; i < len(cards); i++ {
		if jokers.IsJoker(cards[i]) {
			continue
		}
		prev := cards[i-1].Rank().Value(aceHigh)
		cur := cards[i].Rank().Value(aceHigh)
		gap := 1
		for cur != prev+gap {
			if jokerCount == 0 || cur < prev+gap {
				return false
			}
			jokerCount--
			gap++
		}
	}
	return true
}

// IsValidSet reports whether the group is a run, a book or a joker run.
func IsValidSet(group []deck.Card, jokers deck.JokerSet) bool {
	return IsRun(group) || IsBook(group, jokers) || IsRunWithJoker(group, jokers)
}
