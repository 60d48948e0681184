// Package rummy implements the rules of 13-card Rummy: set validation,
// closing a hand and the turn by turn flow of a game.
//
// # Core Types
//
// Game: The state of one round, with its players, deck, pile and the player
// whose turn it is.
//
// Hand: The ordered stash of 13 or 14 cards a player holds.
//
// Action: A request of the acting player (move, pick, take, drop, sort,
// close or rules).
//
// # Sets
//
// A set is a group of 3 or 4 cards that is a run (same suit, consecutive
// ranks, ace either low or after the king), a book (same rank) or a run
// whose gaps are filled by jokers. Jokers are the cards whose rank matches
// the deck's designated joker rank.
//
// # Game Flow
//
// After the deal each player holds 13 cards. On their turn a player draws
// from the pile or the deck, rearranges freely and then drops a card, or
// closes by dropping a card and showing 13 cards that form three sets of
// three and one set of four, at least one of them a run without jokers.
//
// Game.Apply performs actions directly; Game.Play drives a whole game
// through the Input and Output collaborators.
package rummy
