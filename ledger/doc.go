// Package ledger implements an append-only journal recording every action
// applied to a rummy game.
//
// # Core Components
//
// Journal: An in-memory log of entries with SHA-256 hash chaining for
// tamper detection.
//
// Entry: A single applied action with the acting player, the outcome or
// the error it was rejected with, and the number of cards in play after it.
//
// # Usage
//
// Create a journal, then append an entry after each action. The Verify
// method can be called at any time to ensure the chain remains intact.
// Nothing is written to disk; the journal lives as long as the game.
package ledger
