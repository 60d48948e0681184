package rummy

import "time"

// RulesText explains the game to the players.
const RulesText = `- Rummy is a card game based on making sets.
- From a hand of 13 cards, 4 sets must be created (3 sets of 3, 1 set of 4).
- The set of 4 must always be at the end.
- A valid set can either be a run or a book.
- One set must be a run WITHOUT using a joker.
- A run is a sequence of ranks in a row, all with the same suit.
    For example: 4 of Hearts, 5 of Hearts and 6 of Hearts
- A book of cards must have the same rank but may have different suits.
    For example: 3 of Diamonds, 3 of Spades, 3 of Clubs
- Jokers are randomly picked from the deck at the start of the game.
- A joker is marked with '-J' and can be used to complete sets.
- During each turn, the player may take a card from the pile or from the deck.
  Immediately after, the player must drop one card into the pile so as not to
  go over the 13 card limit.
- When a player has created all the sets, select Close and drop the excess
  card into the pile.
- The card with rank 10 is written as T.`

// Greeting returns a salutation for the time of day of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Hello! Good morning!"
	case h < 18:
		return "Hey! Good afternoon!"
	default:
		return "Hey! Good evening!"
	}
}
